package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

// ConflictPolicy decides what happens when the worker is already assigned
// to the cycle. The API surfaces the duplicate as a 409; the bulk import
// treats re-imported rows as already done and moves on.
type ConflictPolicy string

const (
	OnConflictError  ConflictPolicy = "error"
	OnConflictIgnore ConflictPolicy = "ignore"
)

type AssignWorkerCommand struct {
	CycleID    uint
	WorkerID   uint
	OnConflict ConflictPolicy
}

type AssignWorkerResult struct {
	Assignment dto.AssignmentDTO
	CycleState string
	// AlreadyAssigned is true when the ignore policy found an existing row.
	AlreadyAssigned bool
}

type AssignWorkerUseCase struct {
	cycleRepo      roster.CycleRepository
	assignmentRepo roster.AssignmentRepository
	workerRepo     workforce.WorkerRepository
	contractRepo   organization.ContractRepository
	reconciler     *cycleReconciler
	txManager      *db.TransactionManager
	panelCache     PanelCache
	logger         logger.Interface
}

func NewAssignWorkerUseCase(
	cycleRepo roster.CycleRepository,
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	workerRepo workforce.WorkerRepository,
	jobTitleRepo workforce.JobTitleRepository,
	contractRepo organization.ContractRepository,
	txManager *db.TransactionManager,
	panelCache PanelCache,
	logger logger.Interface,
) *AssignWorkerUseCase {
	return &AssignWorkerUseCase{
		cycleRepo:      cycleRepo,
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		contractRepo:   contractRepo,
		reconciler:     newCycleReconciler(requirementRepo, assignmentRepo, workerRepo, jobTitleRepo),
		txManager:      txManager,
		panelCache:     panelCache,
		logger:         logger,
	}
}

func (uc *AssignWorkerUseCase) Execute(ctx context.Context, cmd AssignWorkerCommand) (*AssignWorkerResult, error) {
	uc.logger.Infow("executing assign worker use case",
		"cycle_id", cmd.CycleID,
		"worker_id", cmd.WorkerID,
		"on_conflict", cmd.OnConflict,
	)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}
	policy := cmd.OnConflict
	if policy == "" {
		policy = OnConflictError
	}

	cycle, err := uc.cycleRepo.GetByID(ctx, cmd.CycleID)
	if err != nil {
		return nil, errors.NewNotFoundError("cycle not found")
	}

	worker, err := uc.workerRepo.GetByID(ctx, cmd.WorkerID)
	if err != nil {
		return nil, errors.NewNotFoundError("worker not found")
	}
	if !worker.IsActive() {
		return nil, errors.NewValidationError("worker is inactive")
	}

	var result *AssignWorkerResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if existing, err := uc.assignmentRepo.GetByCycleAndWorker(txCtx, cmd.CycleID, cmd.WorkerID); err == nil && existing != nil {
			if policy == OnConflictIgnore {
				result = &AssignWorkerResult{
					Assignment:      dto.AssignmentFromDomain(existing),
					CycleState:      string(cycle.State()),
					AlreadyAssigned: true,
				}
				return nil
			}
			return errors.NewConflictError("worker is already assigned to this cycle")
		}

		assignment, err := roster.NewAssignment(cmd.CycleID, cmd.WorkerID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.assignmentRepo.Create(txCtx, assignment); err != nil {
			// a racing writer may land the row between the lookup and
			// the insert; the unique index is the arbiter
			if errors.IsDuplicateError(err) {
				if policy == OnConflictIgnore {
					existing, lookupErr := uc.assignmentRepo.GetByCycleAndWorker(txCtx, cmd.CycleID, cmd.WorkerID)
					if lookupErr != nil {
						return fmt.Errorf("failed to load existing assignment: %w", lookupErr)
					}
					result = &AssignWorkerResult{
						Assignment:      dto.AssignmentFromDomain(existing),
						CycleState:      string(cycle.State()),
						AlreadyAssigned: true,
					}
					return nil
				}
				return errors.NewConflictError("worker is already assigned to this cycle")
			}
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		if _, err := uc.reconciler.reconcile(txCtx, uc.cycleRepo, cycle); err != nil {
			return err
		}

		result = &AssignWorkerResult{
			Assignment: dto.AssignmentFromDomain(assignment),
			CycleState: string(cycle.State()),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to assign worker", "error", err, "cycle_id", cmd.CycleID, "worker_id", cmd.WorkerID)
		return nil, err
	}

	invalidateCyclePanel(ctx, uc.contractRepo, uc.panelCache, cycle)

	uc.logger.Infow("worker assigned",
		"cycle_id", cmd.CycleID,
		"worker_id", cmd.WorkerID,
		"cycle_state", result.CycleState,
		"already_assigned", result.AlreadyAssigned,
	)
	return result, nil
}

func (uc *AssignWorkerUseCase) validateCommand(cmd AssignWorkerCommand) error {
	if cmd.CycleID == 0 {
		return errors.NewValidationError("cycle ID is required")
	}
	if cmd.WorkerID == 0 {
		return errors.NewValidationError("worker ID is required")
	}
	if cmd.OnConflict != "" && cmd.OnConflict != OnConflictError && cmd.OnConflict != OnConflictIgnore {
		return errors.NewValidationError("on_conflict must be \"error\" or \"ignore\"")
	}
	return nil
}
