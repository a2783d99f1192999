package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between domain entities and persistence models
type ProjectMapper interface {
	ToEntity(model *models.ProjectModel) (*organization.Project, error)
	ToModel(entity *organization.Project) *models.ProjectModel
	ToEntities(models []*models.ProjectModel) ([]*organization.Project, error)
}

// ProjectMapperImpl is the concrete implementation of ProjectMapper
type ProjectMapperImpl struct{}

// NewProjectMapper creates a new project mapper
func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel) (*organization.Project, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := organization.ReconstructProject(
		model.ID,
		model.Name,
		model.Description,
		model.Active,
		model.StartDate,
		model.EndDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct project entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ProjectMapperImpl) ToModel(entity *organization.Project) *models.ProjectModel {
	if entity == nil {
		return nil
	}

	return &models.ProjectModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Active:      entity.IsActive(),
		StartDate:   entity.StartDate(),
		EndDate:     entity.EndDate(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *ProjectMapperImpl) ToEntities(projectModels []*models.ProjectModel) ([]*organization.Project, error) {
	entities := make([]*organization.Project, 0, len(projectModels))
	for _, model := range projectModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map project model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
