package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type GetCycleCommand struct {
	CycleID uint
}

type GetCycleResult struct {
	Cycle        dto.CycleDTO
	Requirements []dto.RequirementDTO
	Assignments  []dto.AssignmentDTO
}

type GetCycleUseCase struct {
	cycleRepo       roster.CycleRepository
	requirementRepo roster.RequirementRepository
	assignmentRepo  roster.AssignmentRepository
	logger          logger.Interface
}

func NewGetCycleUseCase(
	cycleRepo roster.CycleRepository,
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	logger logger.Interface,
) *GetCycleUseCase {
	return &GetCycleUseCase{
		cycleRepo:       cycleRepo,
		requirementRepo: requirementRepo,
		assignmentRepo:  assignmentRepo,
		logger:          logger,
	}
}

func (uc *GetCycleUseCase) Execute(ctx context.Context, cmd GetCycleCommand) (*GetCycleResult, error) {
	if cmd.CycleID == 0 {
		return nil, errors.NewValidationError("cycle ID is required")
	}

	cycle, err := uc.cycleRepo.GetByID(ctx, cmd.CycleID)
	if err != nil {
		return nil, errors.NewNotFoundError("cycle not found")
	}

	requirements, err := uc.requirementRepo.ListByCycle(ctx, cycle.ID())
	if err != nil {
		uc.logger.Errorw("failed to list requirements", "error", err, "cycle_id", cycle.ID())
		return nil, err
	}

	assignments, err := uc.assignmentRepo.ListByCycle(ctx, cycle.ID())
	if err != nil {
		uc.logger.Errorw("failed to list assignments", "error", err, "cycle_id", cycle.ID())
		return nil, err
	}

	result := &GetCycleResult{
		Cycle:        dto.CycleFromDomain(cycle),
		Requirements: make([]dto.RequirementDTO, 0, len(requirements)),
		Assignments:  make([]dto.AssignmentDTO, 0, len(assignments)),
	}
	for _, req := range requirements {
		result.Requirements = append(result.Requirements, dto.RequirementFromDomain(req))
	}
	for _, a := range assignments {
		result.Assignments = append(result.Assignments, dto.AssignmentFromDomain(a))
	}
	return result, nil
}
