package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type UnassignWorkerCommand struct {
	CycleID  uint
	WorkerID uint
}

type UnassignWorkerResult struct {
	CycleState string
}

type UnassignWorkerUseCase struct {
	cycleRepo      roster.CycleRepository
	assignmentRepo roster.AssignmentRepository
	contractRepo   organization.ContractRepository
	reconciler     *cycleReconciler
	txManager      *db.TransactionManager
	panelCache     PanelCache
	logger         logger.Interface
}

func NewUnassignWorkerUseCase(
	cycleRepo roster.CycleRepository,
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	workerRepo workforce.WorkerRepository,
	jobTitleRepo workforce.JobTitleRepository,
	contractRepo organization.ContractRepository,
	txManager *db.TransactionManager,
	panelCache PanelCache,
	logger logger.Interface,
) *UnassignWorkerUseCase {
	return &UnassignWorkerUseCase{
		cycleRepo:      cycleRepo,
		assignmentRepo: assignmentRepo,
		contractRepo:   contractRepo,
		reconciler:     newCycleReconciler(requirementRepo, assignmentRepo, workerRepo, jobTitleRepo),
		txManager:      txManager,
		panelCache:     panelCache,
		logger:         logger,
	}
}

func (uc *UnassignWorkerUseCase) Execute(ctx context.Context, cmd UnassignWorkerCommand) (*UnassignWorkerResult, error) {
	uc.logger.Infow("executing unassign worker use case",
		"cycle_id", cmd.CycleID,
		"worker_id", cmd.WorkerID,
	)

	if cmd.CycleID == 0 {
		return nil, errors.NewValidationError("cycle ID is required")
	}
	if cmd.WorkerID == 0 {
		return nil, errors.NewValidationError("worker ID is required")
	}

	cycle, err := uc.cycleRepo.GetByID(ctx, cmd.CycleID)
	if err != nil {
		return nil, errors.NewNotFoundError("cycle not found")
	}

	var result *UnassignWorkerResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		assignment, err := uc.assignmentRepo.GetByCycleAndWorker(txCtx, cmd.CycleID, cmd.WorkerID)
		if err != nil && !errors.IsNotFoundError(err) {
			return fmt.Errorf("failed to load assignment: %w", err)
		}
		if assignment == nil {
			// unassigning a worker who is not on the cycle is a no-op
			result = &UnassignWorkerResult{CycleState: string(cycle.State())}
			return nil
		}

		if err := uc.assignmentRepo.Delete(txCtx, assignment.ID()); err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}

		if _, err := uc.reconciler.reconcile(txCtx, uc.cycleRepo, cycle); err != nil {
			return err
		}

		result = &UnassignWorkerResult{CycleState: string(cycle.State())}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to unassign worker", "error", err, "cycle_id", cmd.CycleID, "worker_id", cmd.WorkerID)
		return nil, err
	}

	invalidateCyclePanel(ctx, uc.contractRepo, uc.panelCache, cycle)

	uc.logger.Infow("worker unassigned",
		"cycle_id", cmd.CycleID,
		"worker_id", cmd.WorkerID,
		"cycle_state", result.CycleState,
	)
	return result, nil
}
