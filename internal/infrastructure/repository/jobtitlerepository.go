package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/mappers"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

// JobTitleRepositoryImpl implements the workforce.JobTitleRepository interface
type JobTitleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.JobTitleMapper
	logger logger.Interface
}

// NewJobTitleRepository creates a new job title repository instance
func NewJobTitleRepository(database *gorm.DB, logger logger.Interface) workforce.JobTitleRepository {
	return &JobTitleRepositoryImpl{
		db:     database,
		mapper: mappers.NewJobTitleMapper(),
		logger: logger,
	}
}

func (r *JobTitleRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new job title
func (r *JobTitleRepositoryImpl) Create(ctx context.Context, title *workforce.JobTitle) error {
	model := r.mapper.ToModel(title)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create job title in database", "error", err)
		}
		return fmt.Errorf("failed to create job title: %w", err)
	}

	if err := title.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set job title ID: %w", err)
	}

	return nil
}

// GetByID retrieves a job title by its ID
func (r *JobTitleRepositoryImpl) GetByID(ctx context.Context, id uint) (*workforce.JobTitle, error) {
	var model models.JobTitleModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("job title not found")
		}
		r.logger.Errorw("failed to get job title by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get job title: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByNameInScope matches a title name case-insensitively within a project
// and company. Names are stored normalized, but the comparison stays
// case-insensitive so import rows with stray casing still resolve.
func (r *JobTitleRepositoryImpl) GetByNameInScope(ctx context.Context, name string, projectID, companyID uint) (*workforce.JobTitle, error) {
	var model models.JobTitleModel

	err := r.conn(ctx).
		Where("LOWER(name) = LOWER(?) AND project_id = ? AND company_id = ?", name, projectID, companyID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("job title not found")
		}
		r.logger.Errorw("failed to get job title by name",
			"name", name, "project_id", projectID, "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to get job title: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByProject retrieves every job title scoped to a project
func (r *JobTitleRepositoryImpl) ListByProject(ctx context.Context, projectID uint) ([]*workforce.JobTitle, error) {
	var titleModels []*models.JobTitleModel

	err := r.conn(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&titleModels).Error
	if err != nil {
		r.logger.Errorw("failed to list job titles by project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}

	return r.mapper.ToEntities(titleModels)
}

// Update persists changes to an existing job title
func (r *JobTitleRepositoryImpl) Update(ctx context.Context, title *workforce.JobTitle) error {
	model := r.mapper.ToModel(title)

	result := r.conn(ctx).Model(&models.JobTitleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"project_id": model.ProjectID,
			"company_id": model.CompanyID,
			"parent_id":  model.ParentID,
			"level":      model.Level,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update job title", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update job title: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("job title not found")
	}

	return nil
}
