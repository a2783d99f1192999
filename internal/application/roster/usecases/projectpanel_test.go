package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/biztime"
)

type panelFixture struct {
	uc              *ProjectPanelUseCase
	projectRepo     *mockProjectRepository
	contractRepo    *mockContractRepository
	companyRepo     *mockCompanyRepository
	cycleRepo       *mockCycleRepository
	requirementRepo *mockRequirementRepository
	assignmentRepo  *mockAssignmentRepository
	workerRepo      *mockWorkerRepository
	jobTitleRepo    *mockJobTitleRepository
	cache           *mockPanelCache
}

func newPanelFixture(t *testing.T) *panelFixture {
	t.Helper()
	f := &panelFixture{
		projectRepo:     new(mockProjectRepository),
		contractRepo:    new(mockContractRepository),
		companyRepo:     new(mockCompanyRepository),
		cycleRepo:       new(mockCycleRepository),
		requirementRepo: new(mockRequirementRepository),
		assignmentRepo:  new(mockAssignmentRepository),
		workerRepo:      new(mockWorkerRepository),
		jobTitleRepo:    new(mockJobTitleRepository),
		cache:           new(mockPanelCache),
	}
	f.uc = NewProjectPanelUseCase(f.projectRepo, f.contractRepo, f.companyRepo,
		f.cycleRepo, f.requirementRepo, f.assignmentRepo, f.workerRepo, f.jobTitleRepo,
		f.cache, noopLogger{})
	return f
}

func TestProjectPanelUseCase_Execute_CacheHit(t *testing.T) {
	f := newPanelFixture(t)

	cached := &dto.ProjectPanelDTO{ProjectID: 1, ProjectName: "Proyecto Quebrada Sur"}
	f.cache.On("Get", mock.Anything, uint(1)).Return(cached, true)

	result, err := f.uc.Execute(context.Background(), ProjectPanelCommand{ProjectID: 1})

	require.NoError(t, err)
	assert.True(t, result.FromCache)
	assert.Same(t, cached, result.Panel)
	f.projectRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProjectPanelUseCase_Execute_BuildsPanelWithAlert(t *testing.T) {
	f := newPanelFixture(t)
	today := biztime.Today()

	project, err := organization.ReconstructProject(1, "Proyecto Quebrada Sur", "", true,
		testDate(2025, 1, 1), nil, testDate(2025, 1, 1), testDate(2025, 1, 1))
	require.NoError(t, err)
	company, err := organization.ReconstructCompany(2, "Acme SpA", "76.123.456-7", false, true,
		testDate(2025, 1, 1), testDate(2025, 1, 1))
	require.NoError(t, err)

	// cycle running today, 2 of 3 drillers covered: DANGER alert
	cycle, err := roster.ReconstructCycle(roster.CycleReconstructParams{
		ID:         7,
		ContractID: 3,
		Letter:     "A",
		StartDate:  today.AddDate(0, 0, -3),
		EndDate:    today.AddDate(0, 0, 3),
		State:      string(roster.StateIncomplete),
	})
	require.NoError(t, err)

	f.cache.On("Get", mock.Anything, uint(1)).Return(nil, false)
	f.projectRepo.On("GetByID", mock.Anything, uint(1)).Return(project, nil)
	f.contractRepo.On("ListActiveByProject", mock.Anything, uint(1)).
		Return([]*organization.Contract{testContract(t, 3, 1, 2, organization.ShiftPatternABCD)}, nil)
	f.workerRepo.On("CountActiveByProject", mock.Anything, uint(1)).Return(int64(42), nil)
	f.companyRepo.On("GetByID", mock.Anything, uint(2)).Return(company, nil)
	f.cycleRepo.On("FindActiveByContract", mock.Anything, uint(3), today).
		Return([]*roster.Cycle{cycle}, nil)

	f.requirementRepo.On("ListByCycle", mock.Anything, uint(7)).
		Return([]*roster.Requirement{testRequirement(t, 1, 7, 10, 3)}, nil)
	f.assignmentRepo.On("ListByCycle", mock.Anything, uint(7)).
		Return([]*roster.Assignment{
			testAssignment(t, 1, 7, 100),
			testAssignment(t, 2, 7, 101),
		}, nil)
	f.workerRepo.On("GetByIDs", mock.Anything, []uint{100, 101}).
		Return([]*workforce.Worker{
			testWorker(t, 100, uintPtr(10)),
			testWorker(t, 101, uintPtr(10)),
		}, nil)
	f.jobTitleRepo.On("GetByID", mock.Anything, uint(10)).Return(testJobTitle(t, 10, "Perforista"), nil)

	f.cache.On("Set", mock.Anything, uint(1), mock.AnythingOfType("*dto.ProjectPanelDTO")).Return()

	result, err := f.uc.Execute(context.Background(), ProjectPanelCommand{ProjectID: 1})

	require.NoError(t, err)
	assert.False(t, result.FromCache)

	panel := result.Panel
	assert.Equal(t, "Proyecto Quebrada Sur", panel.ProjectName)
	assert.Equal(t, int64(42), panel.ActiveWorkers)
	require.Len(t, panel.Contracts, 1)

	block := panel.Contracts[0]
	assert.Equal(t, "Acme SpA", block.CompanyName)
	require.Len(t, block.Cycles, 1)
	require.NotNil(t, block.Cycles[0].Percentage)
	assert.Equal(t, 66.7, *block.Cycles[0].Percentage)
	assert.Equal(t, string(roster.StateIncomplete), block.Cycles[0].State)

	require.Len(t, block.Alerts, 1)
	assert.Equal(t, "DANGER", block.Alerts[0].Severity)
	assert.Equal(t, "Turno A: cobertura 66.7% (2/3)", block.Alerts[0].Message)

	f.cache.AssertExpectations(t)
}
