package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
)

// seedCycleAndWorker creates one cycle under the contract and one worker
// employed by the contract's company.
func seedCycleAndWorker(t *testing.T, gormDB *gorm.DB, contract *organization.Contract) (*roster.Cycle, *workforce.Worker) {
	t.Helper()
	ctx := context.Background()

	cycle, err := roster.NewCycle(contract.ID(), "A", testDate(2026, 3, 1), testDate(2026, 3, 7), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, NewCycleRepository(gormDB, testLogger()).Create(ctx, cycle))

	worker, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  contract.CompanyID(),
	})
	require.NoError(t, err)
	require.NoError(t, NewWorkerRepository(gormDB, testLogger()).Create(ctx, worker))

	return cycle, worker
}

func TestAssignmentRepository_CreateAndGet(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	cycle, worker := seedCycleAndWorker(t, gormDB, contract)
	ctx := context.Background()

	repo := NewAssignmentRepository(gormDB, testLogger())

	assignment, err := roster.NewAssignment(cycle.ID(), worker.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, assignment))
	require.NotZero(t, assignment.ID())

	found, err := repo.GetByCycleAndWorker(ctx, cycle.ID(), worker.ID())
	require.NoError(t, err)
	assert.Equal(t, assignment.ID(), found.ID())

	count, err := repo.CountByCycle(ctx, cycle.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAssignmentRepository_DuplicatePair(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	cycle, worker := seedCycleAndWorker(t, gormDB, contract)
	ctx := context.Background()

	repo := NewAssignmentRepository(gormDB, testLogger())

	first, err := roster.NewAssignment(cycle.ID(), worker.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := roster.NewAssignment(cycle.ID(), worker.ID())
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestAssignmentRepository_Delete(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	cycle, worker := seedCycleAndWorker(t, gormDB, contract)
	ctx := context.Background()

	repo := NewAssignmentRepository(gormDB, testLogger())

	assignment, err := roster.NewAssignment(cycle.ID(), worker.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, assignment))

	require.NoError(t, repo.Delete(ctx, assignment.ID()))

	count, err := repo.CountByCycle(ctx, cycle.ID())
	require.NoError(t, err)
	assert.Zero(t, count)

	err = repo.Delete(ctx, assignment.ID())
	assert.True(t, errors.IsNotFoundError(err))
}
