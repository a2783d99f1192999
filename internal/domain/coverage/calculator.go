package coverage

import (
	"math"
	"sort"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
)

// Compute builds the coverage report for a cycle from its requirement and
// assignment rows plus the assigned workers. Per-title counts follow each
// worker's current job title, so a worker retitled after being assigned
// counts toward the new title, not the one they held at assignment time.
func Compute(cycle *roster.Cycle, requirements []*roster.Requirement,
	assignments []*roster.Assignment, workers []*workforce.Worker,
	titles []*workforce.JobTitle) *Report {

	titleNames := make(map[uint]string, len(titles))
	for _, t := range titles {
		titleNames[t.ID()] = t.Name()
	}

	workerTitle := make(map[uint]uint, len(workers))
	for _, w := range workers {
		if id := w.JobTitleID(); id != nil {
			workerTitle[w.ID()] = *id
		}
	}

	assignedByTitle := make(map[uint]int)
	for _, a := range assignments {
		if titleID, ok := workerTitle[a.WorkerID()]; ok {
			assignedByTitle[titleID]++
		}
	}

	report := &Report{
		CycleID:       cycle.ID(),
		TotalAssigned: len(assignments),
		Titles:        make([]TitleCoverage, 0, len(requirements)),
	}

	for _, req := range requirements {
		assigned := assignedByTitle[req.JobTitleID()]
		report.TotalRequired += req.RequiredCount()
		report.Titles = append(report.Titles, TitleCoverage{
			JobTitleID:    req.JobTitleID(),
			JobTitleName:  titleNames[req.JobTitleID()],
			RequiredCount: req.RequiredCount(),
			AssignedCount: assigned,
			Percentage:    percentage(assigned, req.RequiredCount()),
		})
	}

	sort.Slice(report.Titles, func(i, j int) bool {
		return report.Titles[i].JobTitleName < report.Titles[j].JobTitleName
	})

	report.Percentage = percentage(report.TotalAssigned, report.TotalRequired)
	return report
}

// DeriveState maps a report onto the cycle state machine: no requirements
// means undefined, every line met means complete, anything else incomplete.
func DeriveState(report *Report) roster.CycleState {
	if len(report.Titles) == 0 {
		return roster.StateUndefined
	}
	if report.IsComplete() {
		return roster.StateComplete
	}
	return roster.StateIncomplete
}

// percentage returns assigned/required as a percentage rounded to one
// decimal, or nil when required is zero.
func percentage(assigned, required int) *float64 {
	if required == 0 {
		return nil
	}
	pct := math.Round(float64(assigned)/float64(required)*1000) / 10
	return &pct
}
