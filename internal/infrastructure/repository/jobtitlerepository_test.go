package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
)

func TestJobTitleRepository_GetByNameInScope(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewJobTitleRepository(gormDB, testLogger())
	ctx := context.Background()

	title, err := workforce.NewJobTitle("Operador Jumbo", contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, title))

	// name matching is case-insensitive within the project and company
	found, err := repo.GetByNameInScope(ctx, "OPERADOR JUMBO", contract.ProjectID(), contract.CompanyID())
	require.NoError(t, err)
	assert.Equal(t, title.ID(), found.ID())

	missing, err := repo.GetByNameInScope(ctx, "Operador Jumbo", contract.ProjectID()+1, contract.CompanyID())
	assert.Nil(t, missing)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestJobTitleRepository_DuplicateInScope(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewJobTitleRepository(gormDB, testLogger())
	ctx := context.Background()

	first, err := workforce.NewJobTitle("Operador Jumbo", contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := workforce.NewJobTitle("Operador Jumbo", contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestJobTitleRepository_SetParentAndListByProject(t *testing.T) {
	gormDB := newTestDB(t)
	contract := seedContract(t, gormDB)
	repo := NewJobTitleRepository(gormDB, testLogger())
	ctx := context.Background()

	parent, err := workforce.NewJobTitle("Supervisor Turno", contract.ProjectID(), contract.CompanyID(), workforce.LevelSupervision)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, parent))

	child, err := workforce.NewJobTitle("Operador Jumbo", contract.ProjectID(), contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, child))

	parentID := parent.ID()
	hierarchy := workforce.NewHierarchy([]*workforce.JobTitle{parent, child})
	require.NoError(t, hierarchy.SetParent(child.ID(), &parentID))
	require.NoError(t, repo.Update(ctx, child))

	titles, err := repo.ListByProject(ctx, contract.ProjectID())
	require.NoError(t, err)
	require.Len(t, titles, 2)

	byID := map[uint]*workforce.JobTitle{}
	for _, title := range titles {
		byID[title.ID()] = title
	}
	require.NotNil(t, byID[child.ID()].ParentID())
	assert.Equal(t, parent.ID(), *byID[child.ID()].ParentID())
}
