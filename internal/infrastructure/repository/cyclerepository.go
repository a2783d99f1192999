package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/mappers"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
	"github.com/faena-hq/faena/internal/shared/constants"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

// CycleRepositoryImpl implements the roster.CycleRepository interface
type CycleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CycleMapper
	logger logger.Interface
}

// NewCycleRepository creates a new cycle repository instance
func NewCycleRepository(database *gorm.DB, logger logger.Interface) roster.CycleRepository {
	return &CycleRepositoryImpl{
		db:     database,
		mapper: mappers.NewCycleMapper(),
		logger: logger,
	}
}

func (r *CycleRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new cycle. The unique index on
// (contract_id, letter, start_date) rejects duplicated natural keys; the
// error flows back with its driver message intact so the use case can
// classify it as a conflict.
func (r *CycleRepositoryImpl) Create(ctx context.Context, cycle *roster.Cycle) error {
	model := r.mapper.ToModel(cycle)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create cycle in database", "error", err)
		}
		return fmt.Errorf("failed to create cycle: %w", err)
	}

	if err := cycle.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set cycle ID: %w", err)
	}

	return nil
}

// GetByID retrieves a cycle by its ID
func (r *CycleRepositoryImpl) GetByID(ctx context.Context, id uint) (*roster.Cycle, error) {
	var model models.CycleModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("cycle not found")
		}
		r.logger.Errorw("failed to get cycle by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get cycle: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByNaturalKey resolves a cycle by contract, rotation letter and start
// date, the identity the bulk import deduplicates against
func (r *CycleRepositoryImpl) GetByNaturalKey(ctx context.Context, contractID uint, letter string, startDate time.Time) (*roster.Cycle, error) {
	var model models.CycleModel

	err := r.conn(ctx).
		Where("contract_id = ? AND letter = ? AND start_date = ?", contractID, letter, startDate).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("cycle not found")
		}
		r.logger.Errorw("failed to get cycle by natural key",
			"contract_id", contractID, "letter", letter, "error", err)
		return nil, fmt.Errorf("failed to get cycle: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByContract retrieves every cycle under a contract ordered by start date
func (r *CycleRepositoryImpl) ListByContract(ctx context.Context, contractID uint) ([]*roster.Cycle, error) {
	var cycleModels []*models.CycleModel

	err := r.conn(ctx).
		Where("contract_id = ?", contractID).
		Order("start_date ASC, letter ASC").
		Find(&cycleModels).Error
	if err != nil {
		r.logger.Errorw("failed to list cycles by contract", "contract_id", contractID, "error", err)
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}

	return r.mapper.ToEntities(cycleModels)
}

// ListByProject retrieves every cycle whose contract belongs to the project
func (r *CycleRepositoryImpl) ListByProject(ctx context.Context, projectID uint) ([]*roster.Cycle, error) {
	var cycleModels []*models.CycleModel

	err := r.conn(ctx).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.contract_id",
			constants.TableContracts, constants.TableContracts, constants.TableCycles)).
		Where(fmt.Sprintf("%s.project_id = ?", constants.TableContracts), projectID).
		Order(fmt.Sprintf("%s.start_date ASC, %s.letter ASC", constants.TableCycles, constants.TableCycles)).
		Find(&cycleModels).Error
	if err != nil {
		r.logger.Errorw("failed to list cycles by project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}

	return r.mapper.ToEntities(cycleModels)
}

// FindActiveByContract retrieves the cycles whose inclusive date range
// contains the given date
func (r *CycleRepositoryImpl) FindActiveByContract(ctx context.Context, contractID uint, date time.Time) ([]*roster.Cycle, error) {
	var cycleModels []*models.CycleModel

	err := r.conn(ctx).
		Where("contract_id = ? AND start_date <= ? AND end_date >= ?", contractID, date, date).
		Order("letter ASC").
		Find(&cycleModels).Error
	if err != nil {
		r.logger.Errorw("failed to find active cycles", "contract_id", contractID, "error", err)
		return nil, fmt.Errorf("failed to find active cycles: %w", err)
	}

	return r.mapper.ToEntities(cycleModels)
}

// Update persists changes to an existing cycle
func (r *CycleRepositoryImpl) Update(ctx context.Context, cycle *roster.Cycle) error {
	model := r.mapper.ToModel(cycle)

	result := r.conn(ctx).Model(&models.CycleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"letter":     model.Letter,
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"state":      model.State,
			"shift":      model.Shift,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update cycle", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update cycle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("cycle not found")
	}

	return nil
}
