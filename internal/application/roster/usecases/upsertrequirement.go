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

type UpsertRequirementCommand struct {
	CycleID       uint
	JobTitleID    uint
	RequiredCount int
}

type UpsertRequirementResult struct {
	Requirement dto.RequirementDTO
	CycleState  string
	Created     bool
}

// UpsertRequirementUseCase sets the required headcount of a job title on a
// cycle. Setting it again with a new count overwrites; the operation is
// idempotent on the (cycle, job title) natural key.
type UpsertRequirementUseCase struct {
	cycleRepo       roster.CycleRepository
	requirementRepo roster.RequirementRepository
	jobTitleRepo    workforce.JobTitleRepository
	contractRepo    organization.ContractRepository
	reconciler      *cycleReconciler
	txManager       *db.TransactionManager
	panelCache      PanelCache
	logger          logger.Interface
}

func NewUpsertRequirementUseCase(
	cycleRepo roster.CycleRepository,
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	workerRepo workforce.WorkerRepository,
	jobTitleRepo workforce.JobTitleRepository,
	contractRepo organization.ContractRepository,
	txManager *db.TransactionManager,
	panelCache PanelCache,
	logger logger.Interface,
) *UpsertRequirementUseCase {
	return &UpsertRequirementUseCase{
		cycleRepo:       cycleRepo,
		requirementRepo: requirementRepo,
		jobTitleRepo:    jobTitleRepo,
		contractRepo:    contractRepo,
		reconciler:      newCycleReconciler(requirementRepo, assignmentRepo, workerRepo, jobTitleRepo),
		txManager:       txManager,
		panelCache:      panelCache,
		logger:          logger,
	}
}

func (uc *UpsertRequirementUseCase) Execute(ctx context.Context, cmd UpsertRequirementCommand) (*UpsertRequirementResult, error) {
	uc.logger.Infow("executing upsert requirement use case",
		"cycle_id", cmd.CycleID,
		"job_title_id", cmd.JobTitleID,
		"required_count", cmd.RequiredCount,
	)

	if cmd.CycleID == 0 {
		return nil, errors.NewValidationError("cycle ID is required")
	}
	if cmd.JobTitleID == 0 {
		return nil, errors.NewValidationError("job title ID is required")
	}
	if cmd.RequiredCount < 1 {
		return nil, errors.NewValidationError("required count must be at least 1")
	}

	cycle, err := uc.cycleRepo.GetByID(ctx, cmd.CycleID)
	if err != nil {
		return nil, errors.NewNotFoundError("cycle not found")
	}
	if _, err := uc.jobTitleRepo.GetByID(ctx, cmd.JobTitleID); err != nil {
		return nil, errors.NewNotFoundError("job title not found")
	}

	var result *UpsertRequirementResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		requirement, err := uc.requirementRepo.GetByCycleAndJobTitle(txCtx, cmd.CycleID, cmd.JobTitleID)
		created := false
		switch {
		case err == nil && requirement != nil:
			if err := requirement.SetRequiredCount(cmd.RequiredCount); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.requirementRepo.Update(txCtx, requirement); err != nil {
				return fmt.Errorf("failed to update requirement: %w", err)
			}
		default:
			requirement, err = roster.NewRequirement(cmd.CycleID, cmd.JobTitleID, cmd.RequiredCount)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.requirementRepo.Create(txCtx, requirement); err != nil {
				return fmt.Errorf("failed to create requirement: %w", err)
			}
			created = true
		}

		if _, err := uc.reconciler.reconcile(txCtx, uc.cycleRepo, cycle); err != nil {
			return err
		}

		result = &UpsertRequirementResult{
			Requirement: dto.RequirementFromDomain(requirement),
			CycleState:  string(cycle.State()),
			Created:     created,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to upsert requirement", "error", err, "cycle_id", cmd.CycleID)
		return nil, err
	}

	invalidateCyclePanel(ctx, uc.contractRepo, uc.panelCache, cycle)

	uc.logger.Infow("requirement upserted",
		"cycle_id", cmd.CycleID,
		"job_title_id", cmd.JobTitleID,
		"created", result.Created,
		"cycle_state", result.CycleState,
	)
	return result, nil
}
