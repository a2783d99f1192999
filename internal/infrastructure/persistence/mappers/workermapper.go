package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// WorkerMapper handles the conversion between domain entities and persistence models
type WorkerMapper interface {
	ToEntity(model *models.WorkerModel) (*workforce.Worker, error)
	ToModel(entity *workforce.Worker) *models.WorkerModel
	ToEntities(models []*models.WorkerModel) ([]*workforce.Worker, error)
}

// WorkerMapperImpl is the concrete implementation of WorkerMapper
type WorkerMapperImpl struct{}

// NewWorkerMapper creates a new worker mapper
func NewWorkerMapper() WorkerMapper {
	return &WorkerMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *WorkerMapperImpl) ToEntity(model *models.WorkerModel) (*workforce.Worker, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := workforce.ReconstructWorker(workforce.WorkerReconstructParams{
		ID:         model.ID,
		NationalID: model.NationalID,
		FirstNames: model.FirstNames,
		LastNames:  model.LastNames,
		Email:      model.Email,
		Phone:      model.Phone,
		CompanyID:  model.CompanyID,
		ProjectID:  model.ProjectID,
		JobTitleID: model.JobTitleID,
		Active:     model.Active,
		HiredAt:    model.HiredAt,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct worker entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *WorkerMapperImpl) ToModel(entity *workforce.Worker) *models.WorkerModel {
	if entity == nil {
		return nil
	}

	return &models.WorkerModel{
		ID:         entity.ID(),
		NationalID: entity.NationalID(),
		FirstNames: entity.FirstNames(),
		LastNames:  entity.LastNames(),
		Email:      entity.Email(),
		Phone:      entity.Phone(),
		CompanyID:  entity.CompanyID(),
		ProjectID:  entity.ProjectID(),
		JobTitleID: entity.JobTitleID(),
		Active:     entity.IsActive(),
		HiredAt:    entity.HiredAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *WorkerMapperImpl) ToEntities(workerModels []*models.WorkerModel) ([]*workforce.Worker, error) {
	entities := make([]*workforce.Worker, 0, len(workerModels))
	for _, model := range workerModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map worker model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
