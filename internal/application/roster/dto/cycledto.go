package dto

import (
	"time"

	"github.com/faena-hq/faena/internal/domain/roster"
)

// CycleDTO is the API representation of a cycle.
type CycleDTO struct {
	ID         uint   `json:"id"`
	ContractID uint   `json:"contract_id"`
	Letter     string `json:"letter"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	State      string `json:"state"`
	Shift      string `json:"shift"`
	CreatedAt  string `json:"created_at"`
}

// CycleFromDomain converts a cycle aggregate to its API representation.
// Dates are rendered as plain calendar days; cycles have no sub-day bounds.
func CycleFromDomain(cycle *roster.Cycle) CycleDTO {
	return CycleDTO{
		ID:         cycle.ID(),
		ContractID: cycle.ContractID(),
		Letter:     cycle.Letter(),
		StartDate:  cycle.StartDate().Format("2006-01-02"),
		EndDate:    cycle.EndDate().Format("2006-01-02"),
		State:      string(cycle.State()),
		Shift:      string(cycle.Shift()),
		CreatedAt:  cycle.CreatedAt().Format(time.RFC3339),
	}
}

// AssignmentDTO is the API representation of a worker-cycle assignment.
type AssignmentDTO struct {
	ID         uint   `json:"id"`
	CycleID    uint   `json:"cycle_id"`
	WorkerID   uint   `json:"worker_id"`
	AssignedAt string `json:"assigned_at"`
}

func AssignmentFromDomain(assignment *roster.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         assignment.ID(),
		CycleID:    assignment.CycleID(),
		WorkerID:   assignment.WorkerID(),
		AssignedAt: assignment.AssignedAt().Format(time.RFC3339),
	}
}

// RequirementDTO is the API representation of a staffing requirement.
type RequirementDTO struct {
	ID            uint `json:"id"`
	CycleID       uint `json:"cycle_id"`
	JobTitleID    uint `json:"job_title_id"`
	RequiredCount int  `json:"required_count"`
}

func RequirementFromDomain(requirement *roster.Requirement) RequirementDTO {
	return RequirementDTO{
		ID:            requirement.ID(),
		CycleID:       requirement.CycleID(),
		JobTitleID:    requirement.JobTitleID(),
		RequiredCount: requirement.RequiredCount(),
	}
}
