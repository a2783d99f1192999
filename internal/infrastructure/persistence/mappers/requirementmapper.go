package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// RequirementMapper handles the conversion between domain entities and persistence models
type RequirementMapper interface {
	ToEntity(model *models.RequirementModel) (*roster.Requirement, error)
	ToModel(entity *roster.Requirement) *models.RequirementModel
	ToEntities(models []*models.RequirementModel) ([]*roster.Requirement, error)
}

// RequirementMapperImpl is the concrete implementation of RequirementMapper
type RequirementMapperImpl struct{}

// NewRequirementMapper creates a new requirement mapper
func NewRequirementMapper() RequirementMapper {
	return &RequirementMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *RequirementMapperImpl) ToEntity(model *models.RequirementModel) (*roster.Requirement, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := roster.ReconstructRequirement(
		model.ID,
		model.CycleID,
		model.JobTitleID,
		model.RequiredCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct requirement entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *RequirementMapperImpl) ToModel(entity *roster.Requirement) *models.RequirementModel {
	if entity == nil {
		return nil
	}

	return &models.RequirementModel{
		ID:            entity.ID(),
		CycleID:       entity.CycleID(),
		JobTitleID:    entity.JobTitleID(),
		RequiredCount: entity.RequiredCount(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *RequirementMapperImpl) ToEntities(requirementModels []*models.RequirementModel) ([]*roster.Requirement, error) {
	entities := make([]*roster.Requirement, 0, len(requirementModels))
	for _, model := range requirementModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map requirement model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
