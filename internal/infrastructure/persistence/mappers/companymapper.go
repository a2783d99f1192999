package mappers

import (
	"fmt"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between domain entities and persistence models
type CompanyMapper interface {
	ToEntity(model *models.CompanyModel) (*organization.Company, error)
	ToModel(entity *organization.Company) *models.CompanyModel
	ToEntities(models []*models.CompanyModel) ([]*organization.Company, error)
}

// CompanyMapperImpl is the concrete implementation of CompanyMapper
type CompanyMapperImpl struct{}

// NewCompanyMapper creates a new company mapper
func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *CompanyMapperImpl) ToEntity(model *models.CompanyModel) (*organization.Company, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := organization.ReconstructCompany(
		model.ID,
		model.Name,
		model.TaxID,
		model.IsPrincipal,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct company entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *CompanyMapperImpl) ToModel(entity *organization.Company) *models.CompanyModel {
	if entity == nil {
		return nil
	}

	return &models.CompanyModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		TaxID:       entity.TaxID(),
		IsPrincipal: entity.IsPrincipal(),
		Active:      entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *CompanyMapperImpl) ToEntities(companyModels []*models.CompanyModel) ([]*organization.Company, error) {
	entities := make([]*organization.Company, 0, len(companyModels))
	for _, model := range companyModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map company model ID %d: %w", model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
