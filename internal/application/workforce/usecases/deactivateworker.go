package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type DeactivateWorkerCommand struct {
	WorkerID uint
}

// DeactivateWorkerUseCase soft-deletes a worker. Past assignments remain;
// the worker simply stops counting toward active headcount and cannot be
// assigned to new cycles.
type DeactivateWorkerUseCase struct {
	workerRepo workforce.WorkerRepository
	logger     logger.Interface
}

func NewDeactivateWorkerUseCase(workerRepo workforce.WorkerRepository, logger logger.Interface) *DeactivateWorkerUseCase {
	return &DeactivateWorkerUseCase{workerRepo: workerRepo, logger: logger}
}

func (uc *DeactivateWorkerUseCase) Execute(ctx context.Context, cmd DeactivateWorkerCommand) error {
	if cmd.WorkerID == 0 {
		return errors.NewValidationError("worker ID is required")
	}

	worker, err := uc.workerRepo.GetByID(ctx, cmd.WorkerID)
	if err != nil {
		return errors.NewNotFoundError("worker not found")
	}

	worker.Deactivate()
	if err := uc.workerRepo.Update(ctx, worker); err != nil {
		uc.logger.Errorw("failed to deactivate worker", "error", err, "worker_id", cmd.WorkerID)
		return fmt.Errorf("failed to deactivate worker: %w", err)
	}

	uc.logger.Infow("worker deactivated", "worker_id", cmd.WorkerID)
	return nil
}
