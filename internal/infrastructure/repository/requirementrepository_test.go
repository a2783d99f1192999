package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
)

func TestRequirementRepository_CreateAndGet(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	cycle, _ := seedCycleAndWorker(t, gormDB, contract)
	ctx := context.Background()

	title, err := workforce.NewJobTitle("Operador Jumbo", contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, NewJobTitleRepository(gormDB, testLogger()).Create(ctx, title))

	repo := NewRequirementRepository(gormDB, testLogger())

	requirement, err := roster.NewRequirement(cycle.ID(), title.ID(), 4)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, requirement))
	require.NotZero(t, requirement.ID())

	found, err := repo.GetByCycleAndJobTitle(ctx, cycle.ID(), title.ID())
	require.NoError(t, err)
	assert.Equal(t, 4, found.RequiredCount())

	missing, err := repo.GetByCycleAndJobTitle(ctx, cycle.ID(), 999)
	assert.Nil(t, missing)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRequirementRepository_Update(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	cycle, _ := seedCycleAndWorker(t, gormDB, contract)
	ctx := context.Background()

	title, err := workforce.NewJobTitle("Operador Jumbo", contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, NewJobTitleRepository(gormDB, testLogger()).Create(ctx, title))

	repo := NewRequirementRepository(gormDB, testLogger())

	requirement, err := roster.NewRequirement(cycle.ID(), title.ID(), 4)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, requirement))

	require.NoError(t, requirement.SetRequiredCount(6))
	require.NoError(t, repo.Update(ctx, requirement))

	found, err := repo.GetByCycleAndJobTitle(ctx, cycle.ID(), title.ID())
	require.NoError(t, err)
	assert.Equal(t, 6, found.RequiredCount())
}

func TestRequirementRepository_DuplicateCycleTitle(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	cycle, _ := seedCycleAndWorker(t, gormDB, contract)
	ctx := context.Background()

	title, err := workforce.NewJobTitle("Operador Jumbo", contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, NewJobTitleRepository(gormDB, testLogger()).Create(ctx, title))

	repo := NewRequirementRepository(gormDB, testLogger())

	first, err := roster.NewRequirement(cycle.ID(), title.ID(), 4)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := roster.NewRequirement(cycle.ID(), title.ID(), 2)
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestRequirementRepository_ListByCycleAndDelete(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	cycle, _ := seedCycleAndWorker(t, gormDB, contract)
	ctx := context.Background()

	titleRepo := NewJobTitleRepository(gormDB, testLogger())
	repo := NewRequirementRepository(gormDB, testLogger())

	for _, name := range []string{"Operador Jumbo", "Supervisor Turno"} {
		title, err := workforce.NewJobTitle(name, contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
		require.NoError(t, err)
		require.NoError(t, titleRepo.Create(ctx, title))

		requirement, err := roster.NewRequirement(cycle.ID(), title.ID(), 2)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, requirement))
	}

	requirements, err := repo.ListByCycle(ctx, cycle.ID())
	require.NoError(t, err)
	require.Len(t, requirements, 2)

	require.NoError(t, repo.Delete(ctx, requirements[0].ID()))

	remaining, err := repo.ListByCycle(ctx, cycle.ID())
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
