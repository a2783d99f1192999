package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/coverage"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/biztime"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ProjectPanelCommand struct {
	ProjectID uint
}

type ProjectPanelResult struct {
	Panel *dto.ProjectPanelDTO
	// FromCache is true when the panel was served without touching storage.
	FromCache bool
}

// ProjectPanelUseCase assembles the client operational panel: every active
// contract with its cycles running today, their coverage and the alerts for
// understaffed shifts. The panel is cached; mutations invalidate it.
type ProjectPanelUseCase struct {
	projectRepo  organization.ProjectRepository
	contractRepo organization.ContractRepository
	companyRepo  organization.CompanyRepository
	cycleRepo    roster.CycleRepository
	workerRepo   workforce.WorkerRepository
	reconciler   *cycleReconciler
	panelCache   PanelCache
	logger       logger.Interface
}

func NewProjectPanelUseCase(
	projectRepo organization.ProjectRepository,
	contractRepo organization.ContractRepository,
	companyRepo organization.CompanyRepository,
	cycleRepo roster.CycleRepository,
	requirementRepo roster.RequirementRepository,
	assignmentRepo roster.AssignmentRepository,
	workerRepo workforce.WorkerRepository,
	jobTitleRepo workforce.JobTitleRepository,
	panelCache PanelCache,
	logger logger.Interface,
) *ProjectPanelUseCase {
	return &ProjectPanelUseCase{
		projectRepo:  projectRepo,
		contractRepo: contractRepo,
		companyRepo:  companyRepo,
		cycleRepo:    cycleRepo,
		workerRepo:   workerRepo,
		reconciler:   newCycleReconciler(requirementRepo, assignmentRepo, workerRepo, jobTitleRepo),
		panelCache:   panelCache,
		logger:       logger,
	}
}

func (uc *ProjectPanelUseCase) Execute(ctx context.Context, cmd ProjectPanelCommand) (*ProjectPanelResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	if cached, ok := uc.panelCache.Get(ctx, cmd.ProjectID); ok {
		uc.logger.Debugw("project panel served from cache", "project_id", cmd.ProjectID)
		return &ProjectPanelResult{Panel: cached, FromCache: true}, nil
	}

	project, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	today := biztime.Today()

	contracts, err := uc.contractRepo.ListActiveByProject(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	activeWorkers, err := uc.workerRepo.CountActiveByProject(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to count active workers", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to count active workers: %w", err)
	}

	panel := &dto.ProjectPanelDTO{
		ProjectID:     project.ID(),
		ProjectName:   project.Name(),
		Date:          today.Format(dateLayout),
		ActiveWorkers: activeWorkers,
		Contracts:     make([]dto.ContractPanelDTO, 0, len(contracts)),
		GeneratedAt:   biztime.NowUTC().Format(time.RFC3339),
	}

	for _, contract := range contracts {
		block, err := uc.buildContractBlock(ctx, contract, today)
		if err != nil {
			return nil, err
		}
		panel.Contracts = append(panel.Contracts, *block)
	}

	uc.panelCache.Set(ctx, cmd.ProjectID, panel)

	uc.logger.Infow("project panel built",
		"project_id", cmd.ProjectID,
		"contracts", len(panel.Contracts),
	)
	return &ProjectPanelResult{Panel: panel}, nil
}

func (uc *ProjectPanelUseCase) buildContractBlock(ctx context.Context, contract *organization.Contract, today time.Time) (*dto.ContractPanelDTO, error) {
	companyName := ""
	if company, err := uc.companyRepo.GetByID(ctx, contract.CompanyID()); err == nil {
		companyName = company.Name()
	}

	cycles, err := uc.cycleRepo.FindActiveByContract(ctx, contract.ID(), today)
	if err != nil {
		return nil, fmt.Errorf("failed to find active cycles for contract %d: %w", contract.ID(), err)
	}

	block := &dto.ContractPanelDTO{
		ContractID:  contract.ID(),
		CompanyID:   contract.CompanyID(),
		CompanyName: companyName,
		Cycles:      make([]dto.CoverageReportDTO, 0, len(cycles)),
		Alerts:      []dto.AlertDTO{},
	}

	reports := make(map[uint]*coverage.Report, len(cycles))
	for _, cycle := range cycles {
		report, err := uc.reconciler.snapshot(ctx, cycle)
		if err != nil {
			return nil, err
		}
		reports[cycle.ID()] = report
		block.Cycles = append(block.Cycles, dto.CoverageFromDomain(report, string(coverage.DeriveState(report))))
	}

	for _, alert := range coverage.BuildAlerts(cycles, reports, today) {
		block.Alerts = append(block.Alerts, dto.AlertFromDomain(alert))
	}
	return block, nil
}
