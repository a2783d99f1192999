package dto

// ContractPanelDTO is the panel block for one contract: its active cycles
// with coverage, plus the alerts they raise.
type ContractPanelDTO struct {
	ContractID  uint                `json:"contract_id"`
	CompanyID   uint                `json:"company_id"`
	CompanyName string              `json:"company_name"`
	Cycles      []CoverageReportDTO `json:"cycles"`
	Alerts      []AlertDTO          `json:"alerts"`
}

// ProjectPanelDTO is the client-facing operational panel for a project.
type ProjectPanelDTO struct {
	ProjectID     uint               `json:"project_id"`
	ProjectName   string             `json:"project_name"`
	Date          string             `json:"date"`
	ActiveWorkers int64              `json:"active_workers"`
	Contracts     []ContractPanelDTO `json:"contracts"`
	GeneratedAt   string             `json:"generated_at"`
}
