package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/db"
)

// newTestTxManager backs the transaction manager with an in-memory sqlite
// database. The repositories in these tests are mocks, so the transaction
// only provides begin/commit semantics.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testCycle(t *testing.T, id uint, state roster.CycleState) *roster.Cycle {
	t.Helper()
	cycle, err := roster.ReconstructCycle(roster.CycleReconstructParams{
		ID:         id,
		ContractID: 3,
		Letter:     "A",
		StartDate:  testDate(2026, 1, 1),
		EndDate:    testDate(2026, 1, 7),
		State:      string(state),
	})
	require.NoError(t, err)
	return cycle
}

func testContract(t *testing.T, id, projectID, companyID uint, pattern organization.ShiftPattern) *organization.Contract {
	t.Helper()
	contract, err := organization.ReconstructContract(organization.ContractReconstructParams{
		ID:            id,
		ProjectID:     projectID,
		ServiceTypeID: 1,
		CompanyID:     companyID,
		ShiftPattern:  string(pattern),
		RotationTag:   "7x7",
		Active:        true,
	})
	require.NoError(t, err)
	return contract
}

func testWorker(t *testing.T, id uint, jobTitleID *uint) *workforce.Worker {
	t.Helper()
	worker, err := workforce.ReconstructWorker(workforce.WorkerReconstructParams{
		ID:         id,
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  2,
		JobTitleID: jobTitleID,
		Active:     true,
	})
	require.NoError(t, err)
	return worker
}

func testJobTitle(t *testing.T, id uint, name string) *workforce.JobTitle {
	t.Helper()
	title, err := workforce.ReconstructJobTitle(id, name, 1, 2, nil,
		string(workforce.LevelOperational), time.Now(), time.Now())
	require.NoError(t, err)
	return title
}

func testRequirement(t *testing.T, id, cycleID, jobTitleID uint, count int) *roster.Requirement {
	t.Helper()
	req, err := roster.ReconstructRequirement(id, cycleID, jobTitleID, count, time.Now(), time.Now())
	require.NoError(t, err)
	return req
}

func testAssignment(t *testing.T, id, cycleID, workerID uint) *roster.Assignment {
	t.Helper()
	assignment, err := roster.ReconstructAssignment(id, cycleID, workerID, time.Now(), time.Now())
	require.NoError(t, err)
	return assignment
}

func uintPtr(v uint) *uint { return &v }
