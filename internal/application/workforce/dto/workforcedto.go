package dto

import (
	"github.com/faena-hq/faena/internal/domain/workforce"
)

type WorkerDTO struct {
	ID         uint   `json:"id"`
	NationalID string `json:"national_id"`
	FirstNames string `json:"first_names"`
	LastNames  string `json:"last_names"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	CompanyID  uint   `json:"company_id"`
	ProjectID  *uint  `json:"project_id"`
	JobTitleID *uint  `json:"job_title_id"`
	Active     bool   `json:"active"`
}

func WorkerFromDomain(worker *workforce.Worker) WorkerDTO {
	return WorkerDTO{
		ID:         worker.ID(),
		NationalID: worker.NationalID(),
		FirstNames: worker.FirstNames(),
		LastNames:  worker.LastNames(),
		FullName:   worker.FullName(),
		Email:      worker.Email(),
		Phone:      worker.Phone(),
		CompanyID:  worker.CompanyID(),
		ProjectID:  worker.ProjectID(),
		JobTitleID: worker.JobTitleID(),
		Active:     worker.IsActive(),
	}
}

type JobTitleDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ProjectID uint   `json:"project_id"`
	CompanyID uint   `json:"company_id"`
	ParentID  *uint  `json:"parent_id"`
	Level     string `json:"level"`
}

func JobTitleFromDomain(title *workforce.JobTitle) JobTitleDTO {
	return JobTitleDTO{
		ID:        title.ID(),
		Name:      title.Name(),
		ProjectID: title.ProjectID(),
		CompanyID: title.CompanyID(),
		ParentID:  title.ParentID(),
		Level:     string(title.Level()),
	}
}
