package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/coverage"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ComputeCoverageCommand struct {
	CycleID uint
}

type ComputeCoverageResult struct {
	Coverage dto.CoverageReportDTO
}

// ComputeCoverageUseCase builds the coverage report for one cycle. It reads
// inside a transaction so the requirement and assignment rows are a
// consistent snapshot, and reconciles the stored state on the way.
type ComputeCoverageUseCase struct {
	cycleRepo  roster.CycleRepository
	reconciler *cycleReconciler
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewComputeCoverageUseCase(
	cycleRepo roster.CycleRepository,
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	workerRepo workforce.WorkerRepository,
	jobTitleRepo workforce.JobTitleRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ComputeCoverageUseCase {
	return &ComputeCoverageUseCase{
		cycleRepo:  cycleRepo,
		reconciler: newCycleReconciler(requirementRepo, assignmentRepo, workerRepo, jobTitleRepo),
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ComputeCoverageUseCase) Execute(ctx context.Context, cmd ComputeCoverageCommand) (*ComputeCoverageResult, error) {
	if cmd.CycleID == 0 {
		return nil, errors.NewValidationError("cycle ID is required")
	}

	cycle, err := uc.cycleRepo.GetByID(ctx, cmd.CycleID)
	if err != nil {
		return nil, errors.NewNotFoundError("cycle not found")
	}

	var report *coverage.Report
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		report, err = uc.reconciler.reconcile(txCtx, uc.cycleRepo, cycle)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to compute coverage", "error", err, "cycle_id", cmd.CycleID)
		return nil, err
	}

	return &ComputeCoverageResult{
		Coverage: dto.CoverageFromDomain(report, string(cycle.State())),
	}, nil
}
