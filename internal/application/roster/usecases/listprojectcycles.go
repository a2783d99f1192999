package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ListProjectCyclesCommand struct {
	ProjectID uint
}

type ListProjectCyclesResult struct {
	Cycles []dto.CycleDTO
}

type ListProjectCyclesUseCase struct {
	cycleRepo   roster.CycleRepository
	projectRepo organization.ProjectRepository
	logger      logger.Interface
}

func NewListProjectCyclesUseCase(
	cycleRepo roster.CycleRepository,
	projectRepo organization.ProjectRepository,
	logger logger.Interface,
) *ListProjectCyclesUseCase {
	return &ListProjectCyclesUseCase{
		cycleRepo:   cycleRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectCyclesUseCase) Execute(ctx context.Context, cmd ListProjectCyclesCommand) (*ListProjectCyclesResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	cycles, err := uc.cycleRepo.ListByProject(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list project cycles", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	result := &ListProjectCyclesResult{Cycles: make([]dto.CycleDTO, 0, len(cycles))}
	for _, cycle := range cycles {
		result.Cycles = append(result.Cycles, dto.CycleFromDomain(cycle))
	}
	return result, nil
}
