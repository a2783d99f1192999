package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// AssignmentMapper handles the conversion between domain entities and persistence models
type AssignmentMapper interface {
	ToEntity(model *models.AssignmentModel) (*roster.Assignment, error)
	ToModel(entity *roster.Assignment) *models.AssignmentModel
	ToEntities(models []*models.AssignmentModel) ([]*roster.Assignment, error)
}

// AssignmentMapperImpl is the concrete implementation of AssignmentMapper
type AssignmentMapperImpl struct{}

// NewAssignmentMapper creates a new assignment mapper
func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *AssignmentMapperImpl) ToEntity(model *models.AssignmentModel) (*roster.Assignment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := roster.ReconstructAssignment(
		model.ID,
		model.CycleID,
		model.WorkerID,
		model.AssignedAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assignment entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *AssignmentMapperImpl) ToModel(entity *roster.Assignment) *models.AssignmentModel {
	if entity == nil {
		return nil
	}

	return &models.AssignmentModel{
		ID:         entity.ID(),
		CycleID:    entity.CycleID(),
		WorkerID:   entity.WorkerID(),
		AssignedAt: entity.AssignedAt(),
		CreatedAt:  entity.CreatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *AssignmentMapperImpl) ToEntities(assignmentModels []*models.AssignmentModel) ([]*roster.Assignment, error) {
	entities := make([]*roster.Assignment, 0, len(assignmentModels))
	for _, model := range assignmentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map assignment model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
