package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// JobTitleMapper handles the conversion between domain entities and persistence models
type JobTitleMapper interface {
	ToEntity(model *models.JobTitleModel) (*workforce.JobTitle, error)
	ToModel(entity *workforce.JobTitle) *models.JobTitleModel
	ToEntities(models []*models.JobTitleModel) ([]*workforce.JobTitle, error)
}

// JobTitleMapperImpl is the concrete implementation of JobTitleMapper
type JobTitleMapperImpl struct{}

// NewJobTitleMapper creates a new job title mapper
func NewJobTitleMapper() JobTitleMapper {
	return &JobTitleMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *JobTitleMapperImpl) ToEntity(model *models.JobTitleModel) (*workforce.JobTitle, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := workforce.ReconstructJobTitle(
		model.ID,
		model.Name,
		model.ProjectID,
		model.CompanyID,
		model.ParentID,
		model.Level,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct job title entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *JobTitleMapperImpl) ToModel(entity *workforce.JobTitle) *models.JobTitleModel {
	if entity == nil {
		return nil
	}

	return &models.JobTitleModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		ProjectID: entity.ProjectID(),
		CompanyID: entity.CompanyID(),
		ParentID:  entity.ParentID(),
		Level:     string(entity.Level()),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *JobTitleMapperImpl) ToEntities(titleModels []*models.JobTitleModel) ([]*workforce.JobTitle, error) {
	entities := make([]*workforce.JobTitle, 0, len(titleModels))
	for _, model := range titleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map job title model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
