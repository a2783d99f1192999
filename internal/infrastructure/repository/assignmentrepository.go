package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/mappers"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

// AssignmentRepositoryImpl implements the roster.AssignmentRepository interface
type AssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
	logger logger.Interface
}

// NewAssignmentRepository creates a new assignment repository instance
func NewAssignmentRepository(database *gorm.DB, logger logger.Interface) roster.AssignmentRepository {
	return &AssignmentRepositoryImpl{
		db:     database,
		mapper: mappers.NewAssignmentMapper(),
		logger: logger,
	}
}

func (r *AssignmentRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new assignment. The unique index on
// (cycle_id, worker_id) arbitrates racing assigns; the driver error message
// stays intact so the use case can classify it through IsDuplicateError.
func (r *AssignmentRepositoryImpl) Create(ctx context.Context, assignment *roster.Assignment) error {
	model := r.mapper.ToModel(assignment)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create assignment in database", "error", err)
		}
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	if err := assignment.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set assignment ID: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment by its ID
func (r *AssignmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*roster.Assignment, error) {
	var model models.AssignmentModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignment not found")
		}
		r.logger.Errorw("failed to get assignment by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByCycleAndWorker retrieves the assignment linking one worker to one cycle
func (r *AssignmentRepositoryImpl) GetByCycleAndWorker(ctx context.Context, cycleID, workerID uint) (*roster.Assignment, error) {
	var model models.AssignmentModel

	err := r.conn(ctx).
		Where("cycle_id = ? AND worker_id = ?", cycleID, workerID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignment not found")
		}
		r.logger.Errorw("failed to get assignment",
			"cycle_id", cycleID, "worker_id", workerID, "error", err)
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByCycle retrieves every assignment of a cycle
func (r *AssignmentRepositoryImpl) ListByCycle(ctx context.Context, cycleID uint) ([]*roster.Assignment, error) {
	var assignmentModels []*models.AssignmentModel

	err := r.conn(ctx).
		Where("cycle_id = ?", cycleID).
		Order("id ASC").
		Find(&assignmentModels).Error
	if err != nil {
		r.logger.Errorw("failed to list assignments by cycle", "cycle_id", cycleID, "error", err)
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return r.mapper.ToEntities(assignmentModels)
}

// CountByCycle counts the assignments of a cycle
func (r *AssignmentRepositoryImpl) CountByCycle(ctx context.Context, cycleID uint) (int64, error) {
	var count int64

	err := r.conn(ctx).Model(&models.AssignmentModel{}).
		Where("cycle_id = ?", cycleID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count assignments", "cycle_id", cycleID, "error", err)
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	return count, nil
}

// Delete removes an assignment
func (r *AssignmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.conn(ctx).Delete(&models.AssignmentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete assignment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("assignment not found")
	}

	return nil
}
