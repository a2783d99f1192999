package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// CycleMapper handles the conversion between domain entities and persistence models
type CycleMapper interface {
	ToEntity(model *models.CycleModel) (*roster.Cycle, error)
	ToModel(entity *roster.Cycle) *models.CycleModel
	ToEntities(models []*models.CycleModel) ([]*roster.Cycle, error)
}

// CycleMapperImpl is the concrete implementation of CycleMapper
type CycleMapperImpl struct{}

// NewCycleMapper creates a new cycle mapper
func NewCycleMapper() CycleMapper {
	return &CycleMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *CycleMapperImpl) ToEntity(model *models.CycleModel) (*roster.Cycle, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := roster.ReconstructCycle(roster.CycleReconstructParams{
		ID:         model.ID,
		ContractID: model.ContractID,
		Letter:     model.Letter,
		StartDate:  model.StartDate,
		EndDate:    model.EndDate,
		State:      model.State,
		Shift:      model.Shift,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct cycle entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *CycleMapperImpl) ToModel(entity *roster.Cycle) *models.CycleModel {
	if entity == nil {
		return nil
	}

	return &models.CycleModel{
		ID:         entity.ID(),
		ContractID: entity.ContractID(),
		Letter:     entity.Letter(),
		StartDate:  entity.StartDate(),
		EndDate:    entity.EndDate(),
		State:      string(entity.State()),
		Shift:      string(entity.Shift()),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *CycleMapperImpl) ToEntities(cycleModels []*models.CycleModel) ([]*roster.Cycle, error) {
	entities := make([]*roster.Cycle, 0, len(cycleModels))
	for _, model := range cycleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map cycle model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
