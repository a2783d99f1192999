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

// ProjectRepositoryImpl implements the organization.ProjectRepository interface
type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
	logger logger.Interface
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(database *gorm.DB, logger logger.Interface) organization.ProjectRepository {
	return &ProjectRepositoryImpl{
		db:     database,
		mapper: mappers.NewProjectMapper(),
		logger: logger,
	}
}

func (r *ProjectRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new project
func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *organization.Project) error {
	model := r.mapper.ToModel(project)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create project in database", "error", err)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	if err := project.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set project ID: %w", err)
	}

	return nil
}

// GetByID retrieves a project by its ID
func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Project, error) {
	var model models.ProjectModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("project not found")
		}
		r.logger.Errorw("failed to get project by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListAll retrieves every project regardless of status
func (r *ProjectRepositoryImpl) ListAll(ctx context.Context) ([]*organization.Project, error) {
	var projectModels []*models.ProjectModel

	if err := r.conn(ctx).Order("name ASC").Find(&projectModels).Error; err != nil {
		r.logger.Errorw("failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.mapper.ToEntities(projectModels)
}

// List retrieves projects, optionally filtered by active status
func (r *ProjectRepositoryImpl) List(ctx context.Context, activeOnly *bool) ([]*organization.Project, error) {
	query := r.conn(ctx).Model(&models.ProjectModel{})
	if activeOnly != nil {
		query = query.Where("active = ?", *activeOnly)
	}

	var projectModels []*models.ProjectModel
	if err := query.Order("name ASC").Find(&projectModels).Error; err != nil {
		r.logger.Errorw("failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.mapper.ToEntities(projectModels)
}

// Update persists changes to an existing project
func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *organization.Project) error {
	model := r.mapper.ToModel(project)

	result := r.conn(ctx).Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"active":      model.Active,
			"start_date":  model.StartDate,
			"end_date":    model.EndDate,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update project", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found")
	}

	return nil
}
