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

// ServiceTypeRepositoryImpl implements the organization.ServiceTypeRepository interface
type ServiceTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ServiceTypeMapper
	logger logger.Interface
}

// NewServiceTypeRepository creates a new service type repository instance
func NewServiceTypeRepository(database *gorm.DB, logger logger.Interface) organization.ServiceTypeRepository {
	return &ServiceTypeRepositoryImpl{
		db:     database,
		mapper: mappers.NewServiceTypeMapper(),
		logger: logger,
	}
}

func (r *ServiceTypeRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create persists a new service type
func (r *ServiceTypeRepositoryImpl) Create(ctx context.Context, serviceType *organization.ServiceType) error {
	model := r.mapper.ToModel(serviceType)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create service type in database", "error", err)
		}
		return fmt.Errorf("failed to create service type: %w", err)
	}

	if err := serviceType.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set service type ID: %w", err)
	}

	return nil
}

// GetByID retrieves a service type by its ID
func (r *ServiceTypeRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.ServiceType, error) {
	var model models.ServiceTypeModel

	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("service type not found")
		}
		r.logger.Errorw("failed to get service type by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListAll retrieves every service type
func (r *ServiceTypeRepositoryImpl) ListAll(ctx context.Context) ([]*organization.ServiceType, error) {
	var serviceTypeModels []*models.ServiceTypeModel

	if err := r.conn(ctx).Order("name ASC").Find(&serviceTypeModels).Error; err != nil {
		r.logger.Errorw("failed to list service types", "error", err)
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}

	return r.mapper.ToEntities(serviceTypeModels)
}
