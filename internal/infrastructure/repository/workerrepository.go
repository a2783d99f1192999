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

// WorkerRepositoryImpl implements the workforce.WorkerRepository interface
type WorkerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.WorkerMapper
	logger logger.Interface
}

// NewWorkerRepository creates a new worker repository instance
func NewWorkerRepository(database *gorm.DB, logger logger.Interface) workforce.WorkerRepository {
	return &WorkerRepositoryImpl{
		db:     database,
		mapper: mappers.NewWorkerMapper(),
		logger: logger,
	}
}

func (r *WorkerRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new worker
func (r *WorkerRepositoryImpl) Create(ctx context.Context, worker *workforce.Worker) error {
	model := r.mapper.ToModel(worker)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create worker in database", "error", err)
		}
		return fmt.Errorf("failed to create worker: %w", err)
	}

	if err := worker.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set worker ID: %w", err)
	}

	return nil
}

// GetByID retrieves a worker by its ID
func (r *WorkerRepositoryImpl) GetByID(ctx context.Context, id uint) (*workforce.Worker, error) {
	var model models.WorkerModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("worker not found")
		}
		r.logger.Errorw("failed to get worker by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByNationalID retrieves a worker by national id, the natural key the
// bulk import deduplicates people with
func (r *WorkerRepositoryImpl) GetByNationalID(ctx context.Context, nationalID string) (*workforce.Worker, error) {
	var model models.WorkerModel

	if err := r.conn(ctx).Where("national_id = ?", nationalID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("worker not found")
		}
		r.logger.Errorw("failed to get worker by national id", "national_id", nationalID, "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs retrieves workers by a set of IDs. Missing IDs are silently
// omitted; callers treat absent workers as unmatched.
func (r *WorkerRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*workforce.Worker, error) {
	if len(ids) == 0 {
		return []*workforce.Worker{}, nil
	}

	var workerModels []*models.WorkerModel
	if err := r.conn(ctx).Where("id IN ?", ids).Find(&workerModels).Error; err != nil {
		r.logger.Errorw("failed to get workers by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get workers: %w", err)
	}

	return r.mapper.ToEntities(workerModels)
}

// ListByProject retrieves workers attached to a project, optionally filtered
// by active status
func (r *WorkerRepositoryImpl) ListByProject(ctx context.Context, projectID uint, activeOnly *bool) ([]*workforce.Worker, error) {
	query := r.conn(ctx).Model(&models.WorkerModel{}).Where("project_id = ?", projectID)
	if activeOnly != nil {
		query = query.Where("active = ?", *activeOnly)
	}

	var workerModels []*models.WorkerModel
	if err := query.Order("last_names ASC, first_names ASC").Find(&workerModels).Error; err != nil {
		r.logger.Errorw("failed to list workers by project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	return r.mapper.ToEntities(workerModels)
}

// CountActiveByProject counts the active workers attached to a project
func (r *WorkerRepositoryImpl) CountActiveByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64

	err := r.conn(ctx).Model(&models.WorkerModel{}).
		Where("project_id = ? AND active = ?", projectID, true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count active workers", "project_id", projectID, "error", err)
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}

	return count, nil
}

// Update persists changes to an existing worker
func (r *WorkerRepositoryImpl) Update(ctx context.Context, worker *workforce.Worker) error {
	model := r.mapper.ToModel(worker)

	result := r.conn(ctx).Model(&models.WorkerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"national_id":  model.NationalID,
			"first_names":  model.FirstNames,
			"last_names":   model.LastNames,
			"email":        model.Email,
			"phone":        model.Phone,
			"company_id":   model.CompanyID,
			"project_id":   model.ProjectID,
			"job_title_id": model.JobTitleID,
			"active":       model.Active,
			"hired_at":     model.HiredAt,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update worker", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update worker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("worker not found")
	}

	return nil
}
