package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/shared/errors"
)

func TestCycleRepository_CreateAndGetByID(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewCycleRepository(gormDB, testLogger())
	ctx := context.Background()

	cycle, err := roster.NewCycle(contract.ID(), "A", testDate(2026, 3, 1), testDate(2026, 3, 7), roster.ShiftDay)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, cycle))
	require.NotZero(t, cycle.ID())

	found, err := repo.GetByID(ctx, cycle.ID())
	require.NoError(t, err)
	assert.Equal(t, contract.ID(), found.ContractID())
	assert.Equal(t, "A", found.Letter())
	assert.Equal(t, roster.StateUndefined, found.State())
	assert.Equal(t, roster.ShiftDay, found.Shift())
}

func TestCycleRepository_GetByID_NotFound(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewCycleRepository(gormDB, testLogger())

	found, err := repo.GetByID(context.Background(), 999)
	assert.Nil(t, found)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCycleRepository_DuplicateNaturalKey(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewCycleRepository(gormDB, testLogger())
	ctx := context.Background()

	first, err := roster.NewCycle(contract.ID(), "A", testDate(2026, 3, 1), testDate(2026, 3, 7), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := roster.NewCycle(contract.ID(), "A", testDate(2026, 3, 1), testDate(2026, 3, 7), roster.ShiftNight)
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestCycleRepository_GetByNaturalKey(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewCycleRepository(gormDB, testLogger())
	ctx := context.Background()

	cycle, err := roster.NewCycle(contract.ID(), "B", testDate(2026, 3, 8), testDate(2026, 3, 14), roster.ShiftNight)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, cycle))

	found, err := repo.GetByNaturalKey(ctx, contract.ID(), "B", testDate(2026, 3, 8))
	require.NoError(t, err)
	assert.Equal(t, cycle.ID(), found.ID())

	missing, err := repo.GetByNaturalKey(ctx, contract.ID(), "C", testDate(2026, 3, 8))
	assert.Nil(t, missing)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCycleRepository_FindActiveByContract(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewCycleRepository(gormDB, testLogger())
	ctx := context.Background()

	current, err := roster.NewCycle(contract.ID(), "A", testDate(2026, 3, 1), testDate(2026, 3, 7), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, current))

	past, err := roster.NewCycle(contract.ID(), "B", testDate(2026, 2, 1), testDate(2026, 2, 7), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, past))

	active, err := repo.FindActiveByContract(ctx, contract.ID(), testDate(2026, 3, 4))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, current.ID(), active[0].ID())
}

func TestCycleRepository_ListByProject(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewCycleRepository(gormDB, testLogger())
	ctx := context.Background()

	first, err := roster.NewCycle(contract.ID(), "B", testDate(2026, 3, 8), testDate(2026, 3, 14), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := roster.NewCycle(contract.ID(), "A", testDate(2026, 3, 1), testDate(2026, 3, 7), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))

	cycles, err := repo.ListByProject(ctx, contract.ProjectID())
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	// ordered by start date
	assert.Equal(t, "A", cycles[0].Letter())
	assert.Equal(t, "B", cycles[1].Letter())
}

func TestCycleRepository_UpdateState(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewCycleRepository(gormDB, testLogger())
	ctx := context.Background()

	cycle, err := roster.NewCycle(contract.ID(), "A", testDate(2026, 3, 1), testDate(2026, 3, 7), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, cycle))

	require.NoError(t, cycle.ApplyState(roster.StateComplete))
	require.NoError(t, repo.Update(ctx, cycle))

	found, err := repo.GetByID(ctx, cycle.ID())
	require.NoError(t, err)
	assert.Equal(t, roster.StateComplete, found.State())
}
