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

// RequirementRepositoryImpl implements the roster.RequirementRepository interface
type RequirementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RequirementMapper
	logger logger.Interface
}

// NewRequirementRepository creates a new requirement repository instance
func NewRequirementRepository(database *gorm.DB, logger logger.Interface) roster.RequirementRepository {
	return &RequirementRepositoryImpl{
		db:     database,
		mapper: mappers.NewRequirementMapper(),
		logger: logger,
	}
}

func (r *RequirementRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new requirement. The unique index on
// (cycle_id, job_title_id) arbitrates racing upserts.
func (r *RequirementRepositoryImpl) Create(ctx context.Context, requirement *roster.Requirement) error {
	model := r.mapper.ToModel(requirement)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create requirement in database", "error", err)
		}
		return fmt.Errorf("failed to create requirement: %w", err)
	}

	if err := requirement.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set requirement ID: %w", err)
	}

	return nil
}

// GetByCycleAndJobTitle retrieves the requirement for one job title in one cycle
func (r *RequirementRepositoryImpl) GetByCycleAndJobTitle(ctx context.Context, cycleID, jobTitleID uint) (*roster.Requirement, error) {
	var model models.RequirementModel

	err := r.conn(ctx).
		Where("cycle_id = ? AND job_title_id = ?", cycleID, jobTitleID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("requirement not found")
		}
		r.logger.Errorw("failed to get requirement",
			"cycle_id", cycleID, "job_title_id", jobTitleID, "error", err)
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByCycle retrieves every requirement of a cycle
func (r *RequirementRepositoryImpl) ListByCycle(ctx context.Context, cycleID uint) ([]*roster.Requirement, error) {
	var requirementModels []*models.RequirementModel

	err := r.conn(ctx).
		Where("cycle_id = ?", cycleID).
		Order("id ASC").
		Find(&requirementModels).Error
	if err != nil {
		r.logger.Errorw("failed to list requirements by cycle", "cycle_id", cycleID, "error", err)
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}

	return r.mapper.ToEntities(requirementModels)
}

// Update persists changes to an existing requirement
func (r *RequirementRepositoryImpl) Update(ctx context.Context, requirement *roster.Requirement) error {
	model := r.mapper.ToModel(requirement)

	result := r.conn(ctx).Model(&models.RequirementModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"required_count": model.RequiredCount,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update requirement", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update requirement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("requirement not found")
	}

	return nil
}

// Delete removes a requirement
func (r *RequirementRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.conn(ctx).Delete(&models.RequirementModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete requirement", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete requirement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("requirement not found")
	}

	return nil
}
