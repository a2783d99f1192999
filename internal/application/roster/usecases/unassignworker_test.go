package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/shared/errors"
)

func newUnassignWorkerFixture(t *testing.T) (*UnassignWorkerUseCase, *mockCycleRepository, *mockRequirementRepository, *mockAssignmentRepository, *mockJobTitleRepository, *mockContractRepository, *mockPanelCache) {
	t.Helper()
	cycleRepo := new(mockCycleRepository)
	requirementRepo := new(mockRequirementRepository)
	assignmentRepo := new(mockAssignmentRepository)
	workerRepo := new(mockWorkerRepository)
	jobTitleRepo := new(mockJobTitleRepository)
	contractRepo := new(mockContractRepository)
	cache := new(mockPanelCache)

	uc := NewUnassignWorkerUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo,
		jobTitleRepo, contractRepo, newTestTxManager(t), cache, noopLogger{})
	return uc, cycleRepo, requirementRepo, assignmentRepo, jobTitleRepo, contractRepo, cache
}

func TestUnassignWorkerUseCase_Execute_RemovesAssignment(t *testing.T) {
	uc, cycleRepo, requirementRepo, assignmentRepo, jobTitleRepo, contractRepo, cache := newUnassignWorkerFixture(t)

	cycle := testCycle(t, 1, roster.StateComplete)
	cycleRepo.On("GetByID", mock.Anything, uint(1)).Return(cycle, nil)
	assignmentRepo.On("GetByCycleAndWorker", mock.Anything, uint(1), uint(100)).
		Return(testAssignment(t, 9, 1, 100), nil)
	assignmentRepo.On("Delete", mock.Anything, uint(9)).Return(nil)

	// reconciliation sees the requirement uncovered again
	requirementRepo.On("ListByCycle", mock.Anything, uint(1)).
		Return([]*roster.Requirement{testRequirement(t, 1, 1, 10, 1)}, nil)
	assignmentRepo.On("ListByCycle", mock.Anything, uint(1)).
		Return([]*roster.Assignment{}, nil)
	jobTitleRepo.On("GetByID", mock.Anything, uint(10)).Return(testJobTitle(t, 10, "Perforista"), nil)
	cycleRepo.On("Update", mock.Anything, cycle).Return(nil)

	contractRepo.On("GetByID", mock.Anything, uint(3)).Return(testContract(t, 3, 5, 2, organization.ShiftPatternABCD), nil)
	cache.On("Invalidate", mock.Anything, uint(5)).Return()

	result, err := uc.Execute(context.Background(), UnassignWorkerCommand{CycleID: 1, WorkerID: 100})

	require.NoError(t, err)
	assert.Equal(t, string(roster.StateIncomplete), result.CycleState)
	assignmentRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUnassignWorkerUseCase_Execute_NoOpWhenAbsent(t *testing.T) {
	uc, cycleRepo, _, assignmentRepo, _, contractRepo, cache := newUnassignWorkerFixture(t)

	cycle := testCycle(t, 1, roster.StateIncomplete)
	cycleRepo.On("GetByID", mock.Anything, uint(1)).Return(cycle, nil)
	assignmentRepo.On("GetByCycleAndWorker", mock.Anything, uint(1), uint(100)).
		Return(nil, errors.NewNotFoundError("assignment not found"))

	contractRepo.On("GetByID", mock.Anything, uint(3)).Return(testContract(t, 3, 5, 2, organization.ShiftPatternABCD), nil)
	cache.On("Invalidate", mock.Anything, uint(5)).Return()

	// removing a worker who was never assigned succeeds without touching rows
	result, err := uc.Execute(context.Background(), UnassignWorkerCommand{CycleID: 1, WorkerID: 100})

	require.NoError(t, err)
	assert.Equal(t, string(roster.StateIncomplete), result.CycleState)
	assignmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	cycleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUnassignWorkerUseCase_Execute_CycleNotFound(t *testing.T) {
	uc, cycleRepo, _, _, _, _, _ := newUnassignWorkerFixture(t)

	cycleRepo.On("GetByID", mock.Anything, uint(1)).
		Return(nil, errors.NewNotFoundError("cycle not found"))

	result, err := uc.Execute(context.Background(), UnassignWorkerCommand{CycleID: 1, WorkerID: 100})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
