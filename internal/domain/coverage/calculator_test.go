package coverage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
)

func newCycle(t *testing.T, id uint) *roster.Cycle {
	t.Helper()
	cycle, err := roster.ReconstructCycle(roster.CycleReconstructParams{
		ID:         id,
		ContractID: 1,
		Letter:     "A",
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return cycle
}

func newRequirement(t *testing.T, id, cycleID, jobTitleID uint, count int) *roster.Requirement {
	t.Helper()
	req, err := roster.ReconstructRequirement(id, cycleID, jobTitleID, count, time.Now(), time.Now())
	require.NoError(t, err)
	return req
}

func newAssignment(t *testing.T, id, cycleID, workerID uint) *roster.Assignment {
	t.Helper()
	assignment, err := roster.ReconstructAssignment(id, cycleID, workerID, time.Now(), time.Now())
	require.NoError(t, err)
	return assignment
}

func newWorker(t *testing.T, id uint, jobTitleID *uint) *workforce.Worker {
	t.Helper()
	worker, err := workforce.ReconstructWorker(workforce.WorkerReconstructParams{
		ID:         id,
		NationalID: "12345678-9",
		FirstNames: "Test",
		LastNames:  "Worker",
		CompanyID:  1,
		JobTitleID: jobTitleID,
		Active:     true,
	})
	require.NoError(t, err)
	return worker
}

func newTitle(t *testing.T, id uint, name string) *workforce.JobTitle {
	t.Helper()
	title, err := workforce.ReconstructJobTitle(id, name, 1, 1, nil,
		string(workforce.LevelOperational), time.Now(), time.Now())
	require.NoError(t, err)
	return title
}

func uintPtr(v uint) *uint { return &v }

func TestComputePartialCoverage(t *testing.T) {
	// three drillers required, two assigned: 66.7%
	cycle := newCycle(t, 1)
	requirements := []*roster.Requirement{newRequirement(t, 1, 1, 10, 3)}
	assignments := []*roster.Assignment{
		newAssignment(t, 1, 1, 100),
		newAssignment(t, 2, 1, 101),
	}
	workers := []*workforce.Worker{
		newWorker(t, 100, uintPtr(10)),
		newWorker(t, 101, uintPtr(10)),
	}
	titles := []*workforce.JobTitle{newTitle(t, 10, "Perforista")}

	report := Compute(cycle, requirements, assignments, workers, titles)

	assert.Equal(t, 3, report.TotalRequired)
	assert.Equal(t, 2, report.TotalAssigned)
	require.NotNil(t, report.Percentage)
	assert.Equal(t, 66.7, *report.Percentage)

	require.Len(t, report.Titles, 1)
	line := report.Titles[0]
	assert.Equal(t, "Perforista", line.JobTitleName)
	assert.Equal(t, 3, line.RequiredCount)
	assert.Equal(t, 2, line.AssignedCount)
	require.NotNil(t, line.Percentage)
	assert.Equal(t, 66.7, *line.Percentage)

	assert.False(t, report.IsComplete())
	assert.Equal(t, roster.StateIncomplete, DeriveState(report))
}

func TestComputeNoRequirements(t *testing.T) {
	cycle := newCycle(t, 1)
	assignments := []*roster.Assignment{newAssignment(t, 1, 1, 100)}
	workers := []*workforce.Worker{newWorker(t, 100, uintPtr(10))}

	report := Compute(cycle, nil, assignments, workers, nil)

	assert.Equal(t, 0, report.TotalRequired)
	assert.Equal(t, 1, report.TotalAssigned)
	assert.Nil(t, report.Percentage, "percentage is undefined without requirements")
	assert.Equal(t, roster.StateUndefined, DeriveState(report))
}

func TestComputeUsesCurrentJobTitle(t *testing.T) {
	// the worker was retitled after being assigned; coverage follows the
	// current title, not the one held at assignment time
	cycle := newCycle(t, 1)
	requirements := []*roster.Requirement{
		newRequirement(t, 1, 1, 10, 1),
		newRequirement(t, 2, 1, 20, 1),
	}
	assignments := []*roster.Assignment{newAssignment(t, 1, 1, 100)}
	workers := []*workforce.Worker{newWorker(t, 100, uintPtr(20))}
	titles := []*workforce.JobTitle{
		newTitle(t, 10, "Perforista"),
		newTitle(t, 20, "Supervisor"),
	}

	report := Compute(cycle, requirements, assignments, workers, titles)

	require.Len(t, report.Titles, 2)
	for _, line := range report.Titles {
		switch line.JobTitleID {
		case 10:
			assert.Equal(t, 0, line.AssignedCount)
		case 20:
			assert.Equal(t, 1, line.AssignedCount)
		}
	}
}

func TestComputeTotalCountsUnmatchedWorkers(t *testing.T) {
	// workers with no title, or a title no requirement asks for, still
	// count toward the cycle total
	cycle := newCycle(t, 1)
	requirements := []*roster.Requirement{newRequirement(t, 1, 1, 10, 2)}
	assignments := []*roster.Assignment{
		newAssignment(t, 1, 1, 100),
		newAssignment(t, 2, 1, 101),
		newAssignment(t, 3, 1, 102),
	}
	workers := []*workforce.Worker{
		newWorker(t, 100, uintPtr(10)),
		newWorker(t, 101, uintPtr(99)),
		newWorker(t, 102, nil),
	}
	titles := []*workforce.JobTitle{newTitle(t, 10, "Perforista")}

	report := Compute(cycle, requirements, assignments, workers, titles)

	assert.Equal(t, 3, report.TotalAssigned)
	require.Len(t, report.Titles, 1)
	assert.Equal(t, 1, report.Titles[0].AssignedCount)
	require.NotNil(t, report.Percentage)
	assert.Equal(t, 150.0, *report.Percentage)
}

func TestComputeCompleteCoverage(t *testing.T) {
	cycle := newCycle(t, 1)
	requirements := []*roster.Requirement{newRequirement(t, 1, 1, 10, 2)}
	assignments := []*roster.Assignment{
		newAssignment(t, 1, 1, 100),
		newAssignment(t, 2, 1, 101),
	}
	workers := []*workforce.Worker{
		newWorker(t, 100, uintPtr(10)),
		newWorker(t, 101, uintPtr(10)),
	}
	titles := []*workforce.JobTitle{newTitle(t, 10, "Perforista")}

	report := Compute(cycle, requirements, assignments, workers, titles)

	require.NotNil(t, report.Percentage)
	assert.Equal(t, 100.0, *report.Percentage)
	assert.True(t, report.IsComplete())
	assert.Equal(t, roster.StateComplete, DeriveState(report))
}

func TestComputeRoundsToOneDecimal(t *testing.T) {
	tests := []struct {
		name     string
		assigned int
		required int
		want     float64
	}{
		{"one of three", 1, 3, 33.3},
		{"two of three", 2, 3, 66.7},
		{"one of six", 1, 6, 16.7},
		{"five of seven", 5, 7, 71.4},
		{"exact", 4, 5, 80.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentage(tt.assigned, tt.required)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestComputeSortsTitlesByName(t *testing.T) {
	cycle := newCycle(t, 1)
	requirements := []*roster.Requirement{
		newRequirement(t, 1, 1, 30, 1),
		newRequirement(t, 2, 1, 10, 1),
		newRequirement(t, 3, 1, 20, 1),
	}
	titles := []*workforce.JobTitle{
		newTitle(t, 10, "Ayudante"),
		newTitle(t, 20, "Perforista"),
		newTitle(t, 30, "Supervisor"),
	}

	report := Compute(cycle, requirements, nil, nil, titles)

	require.Len(t, report.Titles, 3)
	assert.Equal(t, "Ayudante", report.Titles[0].JobTitleName)
	assert.Equal(t, "Perforista", report.Titles[1].JobTitleName)
	assert.Equal(t, "Supervisor", report.Titles[2].JobTitleName)
}
