package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/mappers"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

// CompanyRepositoryImpl implements the organization.CompanyRepository interface
type CompanyRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
	logger logger.Interface
}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository(database *gorm.DB, logger logger.Interface) organization.CompanyRepository {
	return &CompanyRepositoryImpl{
		db:     database,
		mapper: mappers.NewCompanyMapper(),
		logger: logger,
	}
}

// conn returns the ambient transaction when one is running, otherwise the
// base connection.
func (r *CompanyRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new company
func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *organization.Company) error {
	model := r.mapper.ToModel(company)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		// duplicate tax id errors flow back unwrapped in message so the
		// use case can classify them; only unexpected failures are logged
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create company in database", "error", err)
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	if err := company.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set company ID: %w", err)
	}

	return nil
}

// GetByID retrieves a company by its ID
func (r *CompanyRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Company, error) {
	var model models.CompanyModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("company not found")
		}
		r.logger.Errorw("failed to get company by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByTaxID retrieves a company by its tax id
func (r *CompanyRepositoryImpl) GetByTaxID(ctx context.Context, taxID string) (*organization.Company, error) {
	var model models.CompanyModel

	if err := r.conn(ctx).Where("tax_id = ?", taxID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("company not found")
		}
		r.logger.Errorw("failed to get company by tax id", "tax_id", taxID, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListAll retrieves every company regardless of status
func (r *CompanyRepositoryImpl) ListAll(ctx context.Context) ([]*organization.Company, error) {
	var companyModels []*models.CompanyModel

	if err := r.conn(ctx).Order("name ASC").Find(&companyModels).Error; err != nil {
		r.logger.Errorw("failed to list companies", "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return r.mapper.ToEntities(companyModels)
}

// List retrieves companies, optionally filtered by active status
func (r *CompanyRepositoryImpl) List(ctx context.Context, activeOnly *bool) ([]*organization.Company, error) {
	query := r.conn(ctx).Model(&models.CompanyModel{})
	if activeOnly != nil {
		query = query.Where("active = ?", *activeOnly)
	}

	var companyModels []*models.CompanyModel
	if err := query.Order("name ASC").Find(&companyModels).Error; err != nil {
		r.logger.Errorw("failed to list companies", "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return r.mapper.ToEntities(companyModels)
}

// Update persists changes to an existing company
func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *organization.Company) error {
	model := r.mapper.ToModel(company)

	result := r.conn(ctx).Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"tax_id":       model.TaxID,
			"is_principal": model.IsPrincipal,
			"active":       model.Active,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update company", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}

	return nil
}
