package dto

import "github.com/faena-hq/faena/internal/domain/coverage"

// TitleCoverageDTO is one per-title line of a coverage report.
type TitleCoverageDTO struct {
	JobTitleID    uint     `json:"job_title_id"`
	JobTitleName  string   `json:"job_title_name"`
	RequiredCount int      `json:"required_count"`
	AssignedCount int      `json:"assigned_count"`
	Percentage    *float64 `json:"percentage"`
}

// CoverageReportDTO is the API representation of a cycle coverage report.
type CoverageReportDTO struct {
	CycleID       uint               `json:"cycle_id"`
	State         string             `json:"state"`
	TotalRequired int                `json:"total_required"`
	TotalAssigned int                `json:"total_assigned"`
	Percentage    *float64           `json:"percentage"`
	Titles        []TitleCoverageDTO `json:"titles"`
}

// CoverageFromDomain converts a coverage report to its API representation.
func CoverageFromDomain(report *coverage.Report, state string) CoverageReportDTO {
	titles := make([]TitleCoverageDTO, 0, len(report.Titles))
	for _, line := range report.Titles {
		titles = append(titles, TitleCoverageDTO{
			JobTitleID:    line.JobTitleID,
			JobTitleName:  line.JobTitleName,
			RequiredCount: line.RequiredCount,
			AssignedCount: line.AssignedCount,
			Percentage:    line.Percentage,
		})
	}
	return CoverageReportDTO{
		CycleID:       report.CycleID,
		State:         state,
		TotalRequired: report.TotalRequired,
		TotalAssigned: report.TotalAssigned,
		Percentage:    report.Percentage,
		Titles:        titles,
	}
}

// AlertDTO is one panel alert.
type AlertDTO struct {
	CycleID    uint    `json:"cycle_id"`
	Letter     string  `json:"letter"`
	Shift      string  `json:"shift"`
	Severity   string  `json:"severity"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}

func AlertFromDomain(alert coverage.Alert) AlertDTO {
	return AlertDTO{
		CycleID:    alert.CycleID,
		Letter:     alert.Letter,
		Shift:      string(alert.Shift),
		Severity:   string(alert.Severity),
		Percentage: alert.Percentage,
		Message:    alert.Message,
	}
}
