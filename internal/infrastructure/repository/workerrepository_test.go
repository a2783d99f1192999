package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
)

func TestWorkerRepository_CreateAndGetByNationalID(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewWorkerRepository(gormDB, testLogger())
	ctx := context.Background()

	projectID := contract.ProjectID()
	worker, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  contract.CompanyID(),
		ProjectID:  &projectID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, worker))
	require.NotZero(t, worker.ID())

	found, err := repo.GetByNationalID(ctx, "12.345.678-9")
	require.NoError(t, err)
	assert.Equal(t, worker.ID(), found.ID())
	assert.Equal(t, "Juan Rojas", found.FullName())

	missing, err := repo.GetByNationalID(ctx, "11.111.111-1")
	assert.Nil(t, missing)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestWorkerRepository_DuplicateNationalID(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewWorkerRepository(gormDB, testLogger())
	ctx := context.Background()

	first, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  contract.CompanyID(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Pedro",
		LastNames:  "Soto",
		CompanyID:  contract.CompanyID(),
	})
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestWorkerRepository_ListByProjectActiveFilter(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewWorkerRepository(gormDB, testLogger())
	ctx := context.Background()

	projectID := contract.ProjectID()

	active, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  contract.CompanyID(),
		ProjectID:  &projectID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, active))

	inactive, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "11.111.111-1",
		FirstNames: "Pedro",
		LastNames:  "Soto",
		CompanyID:  contract.CompanyID(),
		ProjectID:  &projectID,
	})
	require.NoError(t, err)
	inactive.Deactivate()
	require.NoError(t, repo.Create(ctx, inactive))

	all, err := repo.ListByProject(ctx, projectID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly := true
	filtered, err := repo.ListByProject(ctx, projectID, &activeOnly)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, active.ID(), filtered[0].ID())

	count, err := repo.CountActiveByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWorkerRepository_GetByIDs(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewWorkerRepository(gormDB, testLogger())
	ctx := context.Background()

	worker, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  contract.CompanyID(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, worker))

	found, err := repo.GetByIDs(ctx, []uint{worker.ID(), 999})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, worker.ID(), found[0].ID())

	empty, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWorkerRepository_UpdateDeactivates(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewWorkerRepository(gormDB, testLogger())
	ctx := context.Background()

	worker, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  contract.CompanyID(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, worker))

	worker.Deactivate()
	require.NoError(t, repo.Update(ctx, worker))

	found, err := repo.GetByID(ctx, worker.ID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())
}
