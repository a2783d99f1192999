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

// ContractRepositoryImpl implements the organization.ContractRepository interface
type ContractRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ContractMapper
	logger logger.Interface
}

// NewContractRepository creates a new contract repository instance
func NewContractRepository(database *gorm.DB, logger logger.Interface) organization.ContractRepository {
	return &ContractRepositoryImpl{
		db:     database,
		mapper: mappers.NewContractMapper(),
		logger: logger,
	}
}

func (r *ContractRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new contract
func (r *ContractRepositoryImpl) Create(ctx context.Context, contract *organization.Contract) error {
	model := r.mapper.ToModel(contract)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contract in database", "error", err)
		return fmt.Errorf("failed to create contract: %w", err)
	}

	if err := contract.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set contract ID: %w", err)
	}

	return nil
}

// GetByID retrieves a contract by its ID
func (r *ContractRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Contract, error) {
	var model models.ContractModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("contract not found")
		}
		r.logger.Errorw("failed to get contract by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByProjectAndCompany retrieves the active contract between a project and
// a company. At most one is active per pair, which the bulk import relies on
// when resolving event rows.
func (r *ContractRepositoryImpl) GetByProjectAndCompany(ctx context.Context, projectID, companyID uint) (*organization.Contract, error) {
	var model models.ContractModel

	err := r.conn(ctx).
		Where("project_id = ? AND company_id = ? AND active = ?", projectID, companyID, true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("contract not found")
		}
		r.logger.Errorw("failed to get contract by project and company",
			"project_id", projectID, "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByProject retrieves every contract under a project
func (r *ContractRepositoryImpl) ListByProject(ctx context.Context, projectID uint) ([]*organization.Contract, error) {
	var contractModels []*models.ContractModel

	err := r.conn(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&contractModels).Error
	if err != nil {
		r.logger.Errorw("failed to list contracts by project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	return r.mapper.ToEntities(contractModels)
}

// ListActiveByProject retrieves the active contracts under a project
func (r *ContractRepositoryImpl) ListActiveByProject(ctx context.Context, projectID uint) ([]*organization.Contract, error) {
	var contractModels []*models.ContractModel

	err := r.conn(ctx).
		Where("project_id = ? AND active = ?", projectID, true).
		Order("id ASC").
		Find(&contractModels).Error
	if err != nil {
		r.logger.Errorw("failed to list active contracts by project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	return r.mapper.ToEntities(contractModels)
}

// ListAll retrieves every contract
func (r *ContractRepositoryImpl) ListAll(ctx context.Context) ([]*organization.Contract, error) {
	var contractModels []*models.ContractModel

	if err := r.conn(ctx).Order("id ASC").Find(&contractModels).Error; err != nil {
		r.logger.Errorw("failed to list contracts", "error", err)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	return r.mapper.ToEntities(contractModels)
}

// Update persists changes to an existing contract
func (r *ContractRepositoryImpl) Update(ctx context.Context, contract *organization.Contract) error {
	model := r.mapper.ToModel(contract)

	result := r.conn(ctx).Model(&models.ContractModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"project_id":      model.ProjectID,
			"service_type_id": model.ServiceTypeID,
			"company_id":      model.CompanyID,
			"shift_pattern":   model.ShiftPattern,
			"rotation_tag":    model.RotationTag,
			"active":          model.Active,
			"start_date":      model.StartDate,
			"end_date":        model.EndDate,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update contract", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("contract not found")
	}

	return nil
}
