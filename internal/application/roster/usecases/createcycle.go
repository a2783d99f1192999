package usecases

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

const dateLayout = "2006-01-02"

type CreateCycleCommand struct {
	ContractID uint
	Letter     string
	StartDate  string
	EndDate    string
	Shift      string
}

type CreateCycleResult struct {
	Cycle dto.CycleDTO
}

type CreateCycleUseCase struct {
	cycleRepo    roster.CycleRepository
	contractRepo organization.ContractRepository
	logger       logger.Interface
}

func NewCreateCycleUseCase(
	cycleRepo roster.CycleRepository,
	contractRepo organization.ContractRepository,
	logger logger.Interface,
) *CreateCycleUseCase {
	return &CreateCycleUseCase{
		cycleRepo:    cycleRepo,
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *CreateCycleUseCase) Execute(ctx context.Context, cmd CreateCycleCommand) (*CreateCycleResult, error) {
	uc.logger.Infow("executing create cycle use case",
		"contract_id", cmd.ContractID,
		"letter", cmd.Letter,
	)

	start, end, err := parseDateRange(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	contract, err := uc.contractRepo.GetByID(ctx, cmd.ContractID)
	if err != nil {
		uc.logger.Errorw("failed to get contract", "error", err, "contract_id", cmd.ContractID)
		return nil, errors.NewNotFoundError("contract not found")
	}

	if !slices.Contains(contract.ShiftPattern().Letters(), cmd.Letter) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("rotation letter %s is not valid for a %s contract", cmd.Letter, contract.ShiftPattern()))
	}

	if existing, err := uc.cycleRepo.GetByNaturalKey(ctx, cmd.ContractID, cmd.Letter, start); err == nil && existing != nil {
		return nil, errors.NewConflictError("a cycle with this letter and start date already exists for the contract")
	}

	cycle, err := roster.NewCycle(cmd.ContractID, cmd.Letter, start, end, roster.ShiftSchedule(cmd.Shift))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.cycleRepo.Create(ctx, cycle); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a cycle with this letter and start date already exists for the contract")
		}
		uc.logger.Errorw("failed to create cycle", "error", err)
		return nil, fmt.Errorf("failed to create cycle: %w", err)
	}

	uc.logger.Infow("cycle created",
		"cycle_id", cycle.ID(),
		"contract_id", cmd.ContractID,
		"letter", cmd.Letter,
	)

	return &CreateCycleResult{Cycle: dto.CycleFromDomain(cycle)}, nil
}

// parseDateRange parses the calendar-day bounds of a cycle.
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewValidationError("invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewValidationError("invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewValidationError("end date cannot be before start date")
	}
	return start, end, nil
}
