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

func TestCreateCycleUseCase_Execute_Success(t *testing.T) {
	cycleRepo := new(mockCycleRepository)
	contractRepo := new(mockContractRepository)
	uc := NewCreateCycleUseCase(cycleRepo, contractRepo, noopLogger{})

	contractRepo.On("GetByID", mock.Anything, uint(3)).
		Return(testContract(t, 3, 1, 2, organization.ShiftPatternABCD), nil)
	cycleRepo.On("GetByNaturalKey", mock.Anything, uint(3), "C", testDate(2026, 1, 1)).
		Return(nil, roster.ErrCycleNotFound)
	cycleRepo.On("Create", mock.Anything, mock.AnythingOfType("*roster.Cycle")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*roster.Cycle).SetID(7))
		}).Return(nil)

	result, err := uc.Execute(context.Background(), CreateCycleCommand{
		ContractID: 3,
		Letter:     "C",
		StartDate:  "2026-01-01",
		EndDate:    "2026-01-07",
		Shift:      "NOCHE",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.Cycle.ID)
	assert.Equal(t, string(roster.StateUndefined), result.Cycle.State)
	assert.Equal(t, "NOCHE", result.Cycle.Shift)
	cycleRepo.AssertExpectations(t)
}

func TestCreateCycleUseCase_Execute_LetterOutsidePattern(t *testing.T) {
	cycleRepo := new(mockCycleRepository)
	contractRepo := new(mockContractRepository)
	uc := NewCreateCycleUseCase(cycleRepo, contractRepo, noopLogger{})

	// an AB contract has no C rotation
	contractRepo.On("GetByID", mock.Anything, uint(3)).
		Return(testContract(t, 3, 1, 2, organization.ShiftPatternAB), nil)

	_, err := uc.Execute(context.Background(), CreateCycleCommand{
		ContractID: 3,
		Letter:     "C",
		StartDate:  "2026-01-01",
		EndDate:    "2026-01-07",
	})

	assert.True(t, errors.IsValidationError(err))
	cycleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCycleUseCase_Execute_DuplicateNaturalKey(t *testing.T) {
	cycleRepo := new(mockCycleRepository)
	contractRepo := new(mockContractRepository)
	uc := NewCreateCycleUseCase(cycleRepo, contractRepo, noopLogger{})

	contractRepo.On("GetByID", mock.Anything, uint(3)).
		Return(testContract(t, 3, 1, 2, organization.ShiftPatternABCD), nil)
	cycleRepo.On("GetByNaturalKey", mock.Anything, uint(3), "A", testDate(2026, 1, 1)).
		Return(testCycle(t, 7, roster.StateUndefined), nil)

	_, err := uc.Execute(context.Background(), CreateCycleCommand{
		ContractID: 3,
		Letter:     "A",
		StartDate:  "2026-01-01",
		EndDate:    "2026-01-07",
	})

	assert.True(t, errors.IsConflictError(err))
}

func TestCreateCycleUseCase_Execute_BadDates(t *testing.T) {
	uc := NewCreateCycleUseCase(new(mockCycleRepository), new(mockContractRepository), noopLogger{})

	_, err := uc.Execute(context.Background(), CreateCycleCommand{
		ContractID: 3, Letter: "A", StartDate: "01/01/2026", EndDate: "2026-01-07",
	})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateCycleCommand{
		ContractID: 3, Letter: "A", StartDate: "2026-01-07", EndDate: "2026-01-01",
	})
	assert.True(t, errors.IsValidationError(err))
}
