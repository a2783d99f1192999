package dto

// RosterRow is one staffing event of a roster export: who worked which
// rotation of which contract, under which title. Rows arrive denormalized;
// the deriver resolves the names against stored records and counts rows per
// (cycle, job title) to derive required headcounts.
type RosterRow struct {
	ProjectName  string `json:"project_name"`
	CompanyName  string `json:"company_name"`
	CycleLetter  string `json:"cycle_letter"`
	CycleStart   string `json:"cycle_start"`
	CycleEnd     string `json:"cycle_end"`
	Shift        string `json:"shift"`
	JobTitleName string `json:"job_title_name"`
	NationalID   string `json:"national_id"`
	FirstNames   string `json:"first_names"`
	LastNames    string `json:"last_names"`
}

// ImportSummaryDTO reports what a roster import did.
type ImportSummaryDTO struct {
	Processed           int      `json:"processed"`
	Skipped             int      `json:"skipped"`
	CompaniesMatched    int      `json:"companies_matched"`
	WorkersCreated      int      `json:"workers_created"`
	JobTitlesCreated    int      `json:"job_titles_created"`
	CyclesCreated       int      `json:"cycles_created"`
	AssignmentsCreated  int      `json:"assignments_created"`
	RequirementsUpdated int      `json:"requirements_updated"`
	SkipReasons         []string `json:"skip_reasons,omitempty"`
}
