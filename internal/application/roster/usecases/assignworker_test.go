package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
)

func newAssignWorkerFixture(t *testing.T) (*AssignWorkerUseCase, *mockCycleRepository, *mockRequirementRepository, *mockAssignmentRepository, *mockWorkerRepository, *mockJobTitleRepository, *mockContractRepository, *mockPanelCache) {
	t.Helper()
	cycleRepo := new(mockCycleRepository)
	requirementRepo := new(mockRequirementRepository)
	assignmentRepo := new(mockAssignmentRepository)
	workerRepo := new(mockWorkerRepository)
	jobTitleRepo := new(mockJobTitleRepository)
	contractRepo := new(mockContractRepository)
	cache := new(mockPanelCache)

	uc := NewAssignWorkerUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo,
		jobTitleRepo, contractRepo, newTestTxManager(t), cache, noopLogger{})
	return uc, cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, cache
}

func TestAssignWorkerUseCase_Execute_Success(t *testing.T) {
	uc, cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, cache := newAssignWorkerFixture(t)

	cycle := testCycle(t, 1, roster.StateIncomplete)
	worker := testWorker(t, 100, uintPtr(10))

	cycleRepo.On("GetByID", mock.Anything, uint(1)).Return(cycle, nil)
	workerRepo.On("GetByID", mock.Anything, uint(100)).Return(worker, nil)
	assignmentRepo.On("GetByCycleAndWorker", mock.Anything, uint(1), uint(100)).Return(nil, roster.ErrAssignmentNotFound)
	assignmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*roster.Assignment")).Return(nil)

	// reconciliation sees the requirement now fully covered
	requirementRepo.On("ListByCycle", mock.Anything, uint(1)).
		Return([]*roster.Requirement{testRequirement(t, 1, 1, 10, 1)}, nil)
	assignmentRepo.On("ListByCycle", mock.Anything, uint(1)).
		Return([]*roster.Assignment{testAssignment(t, 1, 1, 100)}, nil)
	workerRepo.On("GetByIDs", mock.Anything, []uint{100}).Return([]*workforce.Worker{worker}, nil)
	jobTitleRepo.On("GetByID", mock.Anything, uint(10)).Return(testJobTitle(t, 10, "Perforista"), nil)
	cycleRepo.On("Update", mock.Anything, cycle).Return(nil)

	contractRepo.On("GetByID", mock.Anything, uint(3)).Return(testContract(t, 3, 5, 2, organization.ShiftPatternABCD), nil)
	cache.On("Invalidate", mock.Anything, uint(5)).Return()

	result, err := uc.Execute(context.Background(), AssignWorkerCommand{CycleID: 1, WorkerID: 100})

	require.NoError(t, err)
	assert.Equal(t, string(roster.StateComplete), result.CycleState)
	assert.False(t, result.AlreadyAssigned)
	cycleRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAssignWorkerUseCase_Execute_DuplicateErrors(t *testing.T) {
	uc, cycleRepo, _, assignmentRepo, workerRepo, _, _, _ := newAssignWorkerFixture(t)

	cycle := testCycle(t, 1, roster.StateIncomplete)
	workerRepo.On("GetByID", mock.Anything, uint(100)).Return(testWorker(t, 100, uintPtr(10)), nil)
	cycleRepo.On("GetByID", mock.Anything, uint(1)).Return(cycle, nil)
	assignmentRepo.On("GetByCycleAndWorker", mock.Anything, uint(1), uint(100)).
		Return(testAssignment(t, 9, 1, 100), nil)

	result, err := uc.Execute(context.Background(), AssignWorkerCommand{CycleID: 1, WorkerID: 100})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err), "default policy surfaces a conflict")
}

func TestAssignWorkerUseCase_Execute_DuplicateIgnored(t *testing.T) {
	uc, cycleRepo, _, assignmentRepo, workerRepo, _, contractRepo, cache := newAssignWorkerFixture(t)

	cycle := testCycle(t, 1, roster.StateComplete)
	workerRepo.On("GetByID", mock.Anything, uint(100)).Return(testWorker(t, 100, uintPtr(10)), nil)
	cycleRepo.On("GetByID", mock.Anything, uint(1)).Return(cycle, nil)
	assignmentRepo.On("GetByCycleAndWorker", mock.Anything, uint(1), uint(100)).
		Return(testAssignment(t, 9, 1, 100), nil)
	contractRepo.On("GetByID", mock.Anything, uint(3)).Return(testContract(t, 3, 5, 2, organization.ShiftPatternABCD), nil)
	cache.On("Invalidate", mock.Anything, uint(5)).Return()

	result, err := uc.Execute(context.Background(), AssignWorkerCommand{
		CycleID:    1,
		WorkerID:   100,
		OnConflict: OnConflictIgnore,
	})

	require.NoError(t, err)
	assert.True(t, result.AlreadyAssigned)
	assert.Equal(t, uint(9), result.Assignment.ID)
}

func TestAssignWorkerUseCase_Execute_InactiveWorker(t *testing.T) {
	uc, cycleRepo, _, _, workerRepo, _, _, _ := newAssignWorkerFixture(t)

	cycle := testCycle(t, 1, roster.StateIncomplete)
	worker := testWorker(t, 100, uintPtr(10))
	worker.Deactivate()

	cycleRepo.On("GetByID", mock.Anything, uint(1)).Return(cycle, nil)
	workerRepo.On("GetByID", mock.Anything, uint(100)).Return(worker, nil)

	result, err := uc.Execute(context.Background(), AssignWorkerCommand{CycleID: 1, WorkerID: 100})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignWorkerUseCase_Execute_Validation(t *testing.T) {
	uc, _, _, _, _, _, _, _ := newAssignWorkerFixture(t)

	_, err := uc.Execute(context.Background(), AssignWorkerCommand{WorkerID: 100})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AssignWorkerCommand{CycleID: 1})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AssignWorkerCommand{CycleID: 1, WorkerID: 100, OnConflict: "upsert"})
	assert.True(t, errors.IsValidationError(err))
}
