package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// ServiceTypeMapper handles the conversion between domain entities and persistence models
type ServiceTypeMapper interface {
	ToEntity(model *models.ServiceTypeModel) (*organization.ServiceType, error)
	ToModel(entity *organization.ServiceType) *models.ServiceTypeModel
	ToEntities(models []*models.ServiceTypeModel) ([]*organization.ServiceType, error)
}

// ServiceTypeMapperImpl is the concrete implementation of ServiceTypeMapper
type ServiceTypeMapperImpl struct{}

// NewServiceTypeMapper creates a new service type mapper
func NewServiceTypeMapper() ServiceTypeMapper {
	return &ServiceTypeMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ServiceTypeMapperImpl) ToEntity(model *models.ServiceTypeModel) (*organization.ServiceType, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := organization.ReconstructServiceType(
		model.ID,
		model.Name,
		model.Description,
		model.Active,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct service type entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ServiceTypeMapperImpl) ToModel(entity *organization.ServiceType) *models.ServiceTypeModel {
	if entity == nil {
		return nil
	}

	return &models.ServiceTypeModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Active:      entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *ServiceTypeMapperImpl) ToEntities(serviceTypeModels []*models.ServiceTypeModel) ([]*organization.ServiceType, error) {
	entities := make([]*organization.ServiceType, 0, len(serviceTypeModels))
	for _, model := range serviceTypeModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map service type model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
