package dto

import (
	"time"

	"github.com/faena-hq/faena/internal/domain/organization"
)

type CompanyDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	TaxID       string `json:"tax_id"`
	IsPrincipal bool   `json:"is_principal"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
}

func CompanyFromDomain(company *organization.Company) CompanyDTO {
	return CompanyDTO{
		ID:          company.ID(),
		Name:        company.Name(),
		TaxID:       company.TaxID(),
		IsPrincipal: company.IsPrincipal(),
		Active:      company.IsActive(),
		CreatedAt:   company.CreatedAt().Format(time.RFC3339),
	}
}

type ProjectDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func ProjectFromDomain(project *organization.Project) ProjectDTO {
	var endDate *string
	if project.EndDate() != nil {
		s := project.EndDate().Format("2006-01-02")
		endDate = &s
	}
	return ProjectDTO{
		ID:          project.ID(),
		Name:        project.Name(),
		Description: project.Description(),
		Active:      project.IsActive(),
		StartDate:   project.StartDate().Format("2006-01-02"),
		EndDate:     endDate,
	}
}

type ContractDTO struct {
	ID            uint   `json:"id"`
	ProjectID     uint   `json:"project_id"`
	ServiceTypeID uint   `json:"service_type_id"`
	CompanyID     uint   `json:"company_id"`
	ShiftPattern  string `json:"shift_pattern"`
	RotationTag   string `json:"rotation_tag"`
	Active        bool   `json:"active"`
}

func ContractFromDomain(contract *organization.Contract) ContractDTO {
	return ContractDTO{
		ID:            contract.ID(),
		ProjectID:     contract.ProjectID(),
		ServiceTypeID: contract.ServiceTypeID(),
		CompanyID:     contract.CompanyID(),
		ShiftPattern:  string(contract.ShiftPattern()),
		RotationTag:   contract.RotationTag(),
		Active:        contract.IsActive(),
	}
}

type ServiceTypeDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ServiceTypeFromDomain(serviceType *organization.ServiceType) ServiceTypeDTO {
	return ServiceTypeDTO{
		ID:   serviceType.ID(),
		Name: serviceType.Name(),
	}
}
