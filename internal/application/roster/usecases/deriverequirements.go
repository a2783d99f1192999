package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type DeriveRequirementsCommand struct {
	Rows []dto.RosterRow
}

type DeriveRequirementsResult struct {
	Summary dto.ImportSummaryDTO
}

// DeriveRequirementsUseCase ingests a denormalized roster export and derives
// the structured records from it: workers, job titles, cycles and
// assignments per row, and requirements by counting. The required headcount
// of a (cycle, job title) pair is the number of export rows that land on it;
// the counted value overwrites whatever the stored requirement says. Names
// are matched exactly first, then loosely (legal-form suffixes and the
// "Proyecto " prefix stripped); rows that still resolve to no stored
// project, company or contract are skipped and counted, never fatal. The
// whole import runs in one transaction, and re-running the same export is a
// no-op: every record is keyed by its natural key.
type DeriveRequirementsUseCase struct {
	projectRepo     organization.ProjectRepository
	companyRepo     organization.CompanyRepository
	contractRepo    organization.ContractRepository
	cycleRepo       roster.CycleRepository
	requirementRepo roster.RequirementRepository
	assignmentRepo  roster.AssignmentRepository
	workerRepo      workforce.WorkerRepository
	jobTitleRepo    workforce.JobTitleRepository
	reconciler      *cycleReconciler
	txManager       *db.TransactionManager
	panelCache      PanelCache
	logger          logger.Interface
}

func NewDeriveRequirementsUseCase(
	projectRepo organization.ProjectRepository,
	companyRepo organization.CompanyRepository,
	contractRepo organization.ContractRepository,
	cycleRepo roster.CycleRepository,
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	workerRepo workforce.WorkerRepository,
	jobTitleRepo workforce.JobTitleRepository,
	txManager *db.TransactionManager,
	panelCache PanelCache,
	logger logger.Interface,
) *DeriveRequirementsUseCase {
	return &DeriveRequirementsUseCase{
		projectRepo:     projectRepo,
		companyRepo:     companyRepo,
		contractRepo:    contractRepo,
		cycleRepo:       cycleRepo,
		requirementRepo: requirementRepo,
		assignmentRepo:  assignmentRepo,
		workerRepo:      workerRepo,
		jobTitleRepo:    jobTitleRepo,
		reconciler:      newCycleReconciler(requirementRepo, assignmentRepo, workerRepo, jobTitleRepo),
		txManager:       txManager,
		panelCache:      panelCache,
		logger:          logger,
	}
}

// importState carries the lookup maps and counters through one run.
type importState struct {
	projectsByName  map[string]*organization.Project
	companiesByName map[string]*organization.Company
	touchedCycles   map[uint]*roster.Cycle
	// requirementCounts tallies processed rows per cycle and job title;
	// the tally becomes the required headcount.
	requirementCounts map[uint]map[uint]int
	summary           dto.ImportSummaryDTO
}

func (uc *DeriveRequirementsUseCase) Execute(ctx context.Context, cmd DeriveRequirementsCommand) (*DeriveRequirementsResult, error) {
	uc.logger.Infow("executing derive requirements use case", "rows", len(cmd.Rows))

	if len(cmd.Rows) == 0 {
		return nil, errors.NewValidationError("no rows to import")
	}

	state := &importState{
		touchedCycles:     make(map[uint]*roster.Cycle),
		requirementCounts: make(map[uint]map[uint]int),
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.loadLookups(txCtx, state); err != nil {
			return err
		}

		for i, row := range cmd.Rows {
			if err := uc.processRow(txCtx, state, i, row); err != nil {
				return err
			}
		}

		for cycleID, counts := range state.requirementCounts {
			for titleID, count := range counts {
				if err := uc.upsertRequirement(txCtx, state, cycleID, titleID, count); err != nil {
					return err
				}
			}
		}

		for _, cycle := range state.touchedCycles {
			if _, err := uc.reconciler.reconcile(txCtx, uc.cycleRepo, cycle); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("roster import failed", "error", err)
		return nil, err
	}

	for _, project := range state.projectsByName {
		uc.panelCache.Invalidate(ctx, project.ID())
	}

	uc.logger.Infow("roster import finished",
		"processed", state.summary.Processed,
		"skipped", state.summary.Skipped,
		"workers_created", state.summary.WorkersCreated,
		"cycles_created", state.summary.CyclesCreated,
		"assignments_created", state.summary.AssignmentsCreated,
	)
	return &DeriveRequirementsResult{Summary: state.summary}, nil
}

// loadLookups builds the name maps for projects and companies. Each record
// is keyed by its exact name and, when free, by its simplified name; an
// exact name always beats another record's simplified form, so "Acme" and
// "Acme SpA" stay distinct when both are stored.
func (uc *DeriveRequirementsUseCase) loadLookups(ctx context.Context, state *importState) error {
	projects, err := uc.projectRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	state.projectsByName = make(map[string]*organization.Project, len(projects))
	for _, p := range projects {
		state.projectsByName[normalizeLookupName(p.Name())] = p
	}
	for _, p := range projects {
		simplified := normalizeLookupName(organization.SimplifiedProjectName(p.Name()))
		if _, taken := state.projectsByName[simplified]; !taken {
			state.projectsByName[simplified] = p
		}
	}

	companies, err := uc.companyRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	state.companiesByName = make(map[string]*organization.Company, len(companies))
	for _, c := range companies {
		state.companiesByName[normalizeLookupName(c.Name())] = c
	}
	for _, c := range companies {
		simplified := normalizeLookupName(organization.SimplifiedName(c.Name()))
		if _, taken := state.companiesByName[simplified]; !taken {
			state.companiesByName[simplified] = c
		}
	}
	return nil
}

// resolveProject matches an imported project name, exact form first.
func (uc *DeriveRequirementsUseCase) resolveProject(state *importState, name string) (*organization.Project, bool) {
	if p, ok := state.projectsByName[normalizeLookupName(name)]; ok {
		return p, true
	}
	p, ok := state.projectsByName[normalizeLookupName(organization.SimplifiedProjectName(name))]
	return p, ok
}

// resolveCompany matches an imported company name, exact form first.
func (uc *DeriveRequirementsUseCase) resolveCompany(state *importState, name string) (*organization.Company, bool) {
	if c, ok := state.companiesByName[normalizeLookupName(name)]; ok {
		return c, true
	}
	c, ok := state.companiesByName[normalizeLookupName(organization.SimplifiedName(name))]
	return c, ok
}

func (uc *DeriveRequirementsUseCase) processRow(ctx context.Context, state *importState, index int, row dto.RosterRow) error {
	skip := func(reason string) {
		state.summary.Skipped++
		state.summary.SkipReasons = append(state.summary.SkipReasons,
			fmt.Sprintf("row %d: %s", index+1, reason))
		uc.logger.Warnw("roster row skipped", "row", index+1, "reason", reason)
	}

	project, ok := uc.resolveProject(state, row.ProjectName)
	if !ok {
		skip(fmt.Sprintf("unknown project %q", row.ProjectName))
		return nil
	}

	company, ok := uc.resolveCompany(state, row.CompanyName)
	if !ok {
		skip(fmt.Sprintf("unknown company %q", row.CompanyName))
		return nil
	}
	state.summary.CompaniesMatched++

	contract, err := uc.contractRepo.GetByProjectAndCompany(ctx, project.ID(), company.ID())
	if err != nil || contract == nil {
		skip(fmt.Sprintf("no contract between %q and %q", row.ProjectName, row.CompanyName))
		return nil
	}

	start, err := time.Parse(dateLayout, row.CycleStart)
	if err != nil {
		skip(fmt.Sprintf("invalid cycle start %q", row.CycleStart))
		return nil
	}
	end, err := time.Parse(dateLayout, row.CycleEnd)
	if err != nil {
		skip(fmt.Sprintf("invalid cycle end %q", row.CycleEnd))
		return nil
	}

	cycle, err := uc.findOrCreateCycle(ctx, state, contract, row, start, end)
	if err != nil {
		skip(err.Error())
		return nil
	}
	state.touchedCycles[cycle.ID()] = cycle

	title, err := uc.findOrCreateJobTitle(ctx, state, row.JobTitleName, project.ID(), company.ID())
	if err != nil {
		skip(err.Error())
		return nil
	}

	worker, err := uc.findOrCreateWorker(ctx, state, row, company.ID(), project.ID(), title.ID())
	if err != nil {
		skip(err.Error())
		return nil
	}

	if err := uc.ensureAssignment(ctx, state, cycle.ID(), worker.ID()); err != nil {
		return err
	}

	if state.requirementCounts[cycle.ID()] == nil {
		state.requirementCounts[cycle.ID()] = make(map[uint]int)
	}
	state.requirementCounts[cycle.ID()][title.ID()]++

	state.summary.Processed++
	return nil
}

func (uc *DeriveRequirementsUseCase) findOrCreateCycle(ctx context.Context, state *importState,
	contract *organization.Contract, row dto.RosterRow, start, end time.Time) (*roster.Cycle, error) {

	if cycle, err := uc.cycleRepo.GetByNaturalKey(ctx, contract.ID(), row.CycleLetter, start); err == nil && cycle != nil {
		return cycle, nil
	}

	shift := roster.ShiftDay
	if strings.EqualFold(strings.TrimSpace(row.Shift), string(roster.ShiftNight)) {
		shift = roster.ShiftNight
	}

	cycle, err := roster.NewCycle(contract.ID(), row.CycleLetter, start, end, shift)
	if err != nil {
		return nil, fmt.Errorf("invalid cycle: %v", err)
	}
	if err := uc.cycleRepo.Create(ctx, cycle); err != nil {
		return nil, fmt.Errorf("failed to create cycle: %v", err)
	}
	state.summary.CyclesCreated++
	return cycle, nil
}

func (uc *DeriveRequirementsUseCase) findOrCreateJobTitle(ctx context.Context, state *importState,
	name string, projectID, companyID uint) (*workforce.JobTitle, error) {

	normalized := workforce.NormalizeTitleName(name)
	if normalized == "" {
		return nil, fmt.Errorf("empty job title name")
	}

	if title, err := uc.jobTitleRepo.GetByNameInScope(ctx, normalized, projectID, companyID); err == nil && title != nil {
		return title, nil
	}

	title, err := workforce.NewJobTitle(normalized, projectID, companyID, workforce.LevelOperational)
	if err != nil {
		return nil, fmt.Errorf("invalid job title %q: %v", name, err)
	}
	if err := uc.jobTitleRepo.Create(ctx, title); err != nil {
		return nil, fmt.Errorf("failed to create job title %q: %v", name, err)
	}
	state.summary.JobTitlesCreated++
	return title, nil
}

func (uc *DeriveRequirementsUseCase) findOrCreateWorker(ctx context.Context, state *importState,
	row dto.RosterRow, companyID, projectID, jobTitleID uint) (*workforce.Worker, error) {

	nationalID := strings.TrimSpace(row.NationalID)
	if nationalID == "" {
		return nil, fmt.Errorf("missing national id")
	}

	if worker, err := uc.workerRepo.GetByNationalID(ctx, nationalID); err == nil && worker != nil {
		return worker, nil
	}

	worker, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: nationalID,
		FirstNames: row.FirstNames,
		LastNames:  row.LastNames,
		CompanyID:  companyID,
		ProjectID:  &projectID,
		JobTitleID: &jobTitleID,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid worker %q: %v", nationalID, err)
	}
	if err := uc.workerRepo.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("failed to create worker %q: %v", nationalID, err)
	}
	state.summary.WorkersCreated++
	return worker, nil
}

func (uc *DeriveRequirementsUseCase) ensureAssignment(ctx context.Context, state *importState, cycleID, workerID uint) error {
	if existing, err := uc.assignmentRepo.GetByCycleAndWorker(ctx, cycleID, workerID); err == nil && existing != nil {
		return nil
	}

	assignment, err := roster.NewAssignment(cycleID, workerID)
	if err != nil {
		return err
	}
	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	state.summary.AssignmentsCreated++
	return nil
}

func (uc *DeriveRequirementsUseCase) upsertRequirement(ctx context.Context, state *importState, cycleID, jobTitleID uint, count int) error {
	requirement, err := uc.requirementRepo.GetByCycleAndJobTitle(ctx, cycleID, jobTitleID)
	if err == nil && requirement != nil {
		if requirement.RequiredCount() == count {
			return nil
		}
		if err := requirement.SetRequiredCount(count); err != nil {
			return err
		}
		if err := uc.requirementRepo.Update(ctx, requirement); err != nil {
			return fmt.Errorf("failed to update requirement: %w", err)
		}
		state.summary.RequirementsUpdated++
		return nil
	}

	requirement, err = roster.NewRequirement(cycleID, jobTitleID, count)
	if err != nil {
		return err
	}
	if err := uc.requirementRepo.Create(ctx, requirement); err != nil {
		return fmt.Errorf("failed to create requirement: %w", err)
	}
	state.summary.RequirementsUpdated++
	return nil
}

// normalizeLookupName folds a name for loose matching.
func normalizeLookupName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
