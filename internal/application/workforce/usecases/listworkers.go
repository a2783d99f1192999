package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/workforce/dto"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ListWorkersCommand struct {
	ProjectID  uint
	ActiveOnly *bool
}

type ListWorkersResult struct {
	Workers []dto.WorkerDTO
}

type ListWorkersUseCase struct {
	workerRepo workforce.WorkerRepository
	logger     logger.Interface
}

func NewListWorkersUseCase(workerRepo workforce.WorkerRepository, logger logger.Interface) *ListWorkersUseCase {
	return &ListWorkersUseCase{workerRepo: workerRepo, logger: logger}
}

func (uc *ListWorkersUseCase) Execute(ctx context.Context, cmd ListWorkersCommand) (*ListWorkersResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	workers, err := uc.workerRepo.ListByProject(ctx, cmd.ProjectID, cmd.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list workers", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	result := &ListWorkersResult{Workers: make([]dto.WorkerDTO, 0, len(workers))}
	for _, worker := range workers {
		result.Workers = append(result.Workers, dto.WorkerFromDomain(worker))
	}
	return result, nil
}
