package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/domain/coverage"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
)

// cycleReconciler recomputes a cycle's coverage report and staffing state
// from the stored rows. Every roster mutation funnels through it so the
// state column never drifts from the requirement and assignment tables.
type cycleReconciler struct {
	requirementRepo roster.RequirementRepository
	assignmentRepo  roster.AssignmentRepository
	workerRepo      workforce.WorkerRepository
	jobTitleRepo    workforce.JobTitleRepository
}

func newCycleReconciler(
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	workerRepo workforce.WorkerRepository,
	jobTitleRepo workforce.JobTitleRepository,
) *cycleReconciler {
	return &cycleReconciler{
		requirementRepo: requirementRepo,
		assignmentRepo:  assignmentRepo,
		workerRepo:      workerRepo,
		jobTitleRepo:    jobTitleRepo,
	}
}

// snapshot loads the cycle's rows and computes its coverage report.
func (r *cycleReconciler) snapshot(ctx context.Context, cycle *roster.Cycle) (*coverage.Report, error) {
	requirements, err := r.requirementRepo.ListByCycle(ctx, cycle.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}

	assignments, err := r.assignmentRepo.ListByCycle(ctx, cycle.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	workerIDs := make([]uint, 0, len(assignments))
	for _, a := range assignments {
		workerIDs = append(workerIDs, a.WorkerID())
	}
	var workers []*workforce.Worker
	if len(workerIDs) > 0 {
		workers, err = r.workerRepo.GetByIDs(ctx, workerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load assigned workers: %w", err)
		}
	}

	titles := make([]*workforce.JobTitle, 0, len(requirements))
	for _, req := range requirements {
		title, err := r.jobTitleRepo.GetByID(ctx, req.JobTitleID())
		if err != nil {
			return nil, fmt.Errorf("failed to load job title %d: %w", req.JobTitleID(), err)
		}
		titles = append(titles, title)
	}

	return coverage.Compute(cycle, requirements, assignments, workers, titles), nil
}

// reconcile recomputes the report and persists the derived state when it
// changed. cycleRepo is passed in rather than held so the caller's
// transactional context decides which connection writes.
func (r *cycleReconciler) reconcile(ctx context.Context, cycleRepo roster.CycleRepository, cycle *roster.Cycle) (*coverage.Report, error) {
	report, err := r.snapshot(ctx, cycle)
	if err != nil {
		return nil, err
	}

	newState := coverage.DeriveState(report)
	if newState == cycle.State() {
		return report, nil
	}

	if err := cycle.ApplyState(newState); err != nil {
		return nil, fmt.Errorf("failed to apply cycle state: %w", err)
	}
	if err := cycleRepo.Update(ctx, cycle); err != nil {
		return nil, fmt.Errorf("failed to persist cycle state: %w", err)
	}
	return report, nil
}
