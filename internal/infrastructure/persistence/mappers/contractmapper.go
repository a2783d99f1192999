package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// ContractMapper handles the conversion between domain entities and persistence models
type ContractMapper interface {
	ToEntity(model *models.ContractModel) (*organization.Contract, error)
	ToModel(entity *organization.Contract) *models.ContractModel
	ToEntities(models []*models.ContractModel) ([]*organization.Contract, error)
}

// ContractMapperImpl is the concrete implementation of ContractMapper
type ContractMapperImpl struct{}

// NewContractMapper creates a new contract mapper
func NewContractMapper() ContractMapper {
	return &ContractMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ContractMapperImpl) ToEntity(model *models.ContractModel) (*organization.Contract, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := organization.ReconstructContract(organization.ContractReconstructParams{
		ID:            model.ID,
		ProjectID:     model.ProjectID,
		ServiceTypeID: model.ServiceTypeID,
		CompanyID:     model.CompanyID,
		ShiftPattern:  model.ShiftPattern,
		RotationTag:   model.RotationTag,
		Active:        model.Active,
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contract entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ContractMapperImpl) ToModel(entity *organization.Contract) *models.ContractModel {
	if entity == nil {
		return nil
	}

	return &models.ContractModel{
		ID:            entity.ID(),
		ProjectID:     entity.ProjectID(),
		ServiceTypeID: entity.ServiceTypeID(),
		CompanyID:     entity.CompanyID(),
		ShiftPattern:  string(entity.ShiftPattern()),
		RotationTag:   entity.RotationTag(),
		Active:        entity.IsActive(),
		StartDate:     entity.StartDate(),
		EndDate:       entity.EndDate(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *ContractMapperImpl) ToEntities(contractModels []*models.ContractModel) ([]*organization.Contract, error) {
	entities := make([]*organization.Contract, 0, len(contractModels))
	for _, model := range contractModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map contract model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
