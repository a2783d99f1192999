// Package coverage computes staffing coverage for cycles: how many workers
// hold each required job title, the aggregate percentage, the derived cycle
// state and the alerts shown on the client panel. Everything here is pure;
// callers load the rows and hand them in.
package coverage

// TitleCoverage is the per-job-title line of a coverage report.
type TitleCoverage struct {
	JobTitleID    uint
	JobTitleName  string
	RequiredCount int
	AssignedCount int
	// Percentage is rounded to one decimal. Nil when RequiredCount is
	// zero, so the client can render a dash instead of a misleading number.
	Percentage *float64
}

// Report is the full coverage picture for one cycle.
type Report struct {
	CycleID       uint
	TotalRequired int
	// TotalAssigned counts every assignment on the cycle, including
	// workers whose current title matches no requirement.
	TotalAssigned int
	// Percentage is TotalAssigned over TotalRequired, one decimal.
	// Nil when the cycle has no requirements.
	Percentage *float64
	Titles     []TitleCoverage
}

// IsComplete reports whether every requirement line is met. A cycle with
// no requirements is not complete; it is undefined.
func (r *Report) IsComplete() bool {
	if len(r.Titles) == 0 {
		return false
	}
	for _, t := range r.Titles {
		if t.AssignedCount < t.RequiredCount {
			return false
		}
	}
	return true
}
