package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type mockCycleRepository struct {
	mock.Mock
}

func (m *mockCycleRepository) Create(ctx context.Context, cycle *roster.Cycle) error {
	return m.Called(ctx, cycle).Error(0)
}

func (m *mockCycleRepository) GetByID(ctx context.Context, id uint) (*roster.Cycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Cycle), args.Error(1)
}

func (m *mockCycleRepository) GetByNaturalKey(ctx context.Context, contractID uint, letter string, startDate time.Time) (*roster.Cycle, error) {
	args := m.Called(ctx, contractID, letter, startDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Cycle), args.Error(1)
}

func (m *mockCycleRepository) ListByContract(ctx context.Context, contractID uint) ([]*roster.Cycle, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Cycle), args.Error(1)
}

func (m *mockCycleRepository) ListByProject(ctx context.Context, projectID uint) ([]*roster.Cycle, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Cycle), args.Error(1)
}

func (m *mockCycleRepository) FindActiveByContract(ctx context.Context, contractID uint, date time.Time) ([]*roster.Cycle, error) {
	args := m.Called(ctx, contractID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Cycle), args.Error(1)
}

func (m *mockCycleRepository) Update(ctx context.Context, cycle *roster.Cycle) error {
	return m.Called(ctx, cycle).Error(0)
}

type mockRequirementRepository struct {
	mock.Mock
}

func (m *mockRequirementRepository) Create(ctx context.Context, requirement *roster.Requirement) error {
	return m.Called(ctx, requirement).Error(0)
}

func (m *mockRequirementRepository) GetByCycleAndJobTitle(ctx context.Context, cycleID, jobTitleID uint) (*roster.Requirement, error) {
	args := m.Called(ctx, cycleID, jobTitleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Requirement), args.Error(1)
}

func (m *mockRequirementRepository) ListByCycle(ctx context.Context, cycleID uint) ([]*roster.Requirement, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Requirement), args.Error(1)
}

func (m *mockRequirementRepository) Update(ctx context.Context, requirement *roster.Requirement) error {
	return m.Called(ctx, requirement).Error(0)
}

func (m *mockRequirementRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockAssignmentRepository struct {
	mock.Mock
}

func (m *mockAssignmentRepository) Create(ctx context.Context, assignment *roster.Assignment) error {
	return m.Called(ctx, assignment).Error(0)
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id uint) (*roster.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Assignment), args.Error(1)
}

func (m *mockAssignmentRepository) GetByCycleAndWorker(ctx context.Context, cycleID, workerID uint) (*roster.Assignment, error) {
	args := m.Called(ctx, cycleID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Assignment), args.Error(1)
}

func (m *mockAssignmentRepository) ListByCycle(ctx context.Context, cycleID uint) ([]*roster.Assignment, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Assignment), args.Error(1)
}

func (m *mockAssignmentRepository) CountByCycle(ctx context.Context, cycleID uint) (int64, error) {
	args := m.Called(ctx, cycleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAssignmentRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockWorkerRepository struct {
	mock.Mock
}

func (m *mockWorkerRepository) Create(ctx context.Context, worker *workforce.Worker) error {
	return m.Called(ctx, worker).Error(0)
}

func (m *mockWorkerRepository) GetByID(ctx context.Context, id uint) (*workforce.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Worker), args.Error(1)
}

func (m *mockWorkerRepository) GetByNationalID(ctx context.Context, nationalID string) (*workforce.Worker, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Worker), args.Error(1)
}

func (m *mockWorkerRepository) GetByIDs(ctx context.Context, ids []uint) ([]*workforce.Worker, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workforce.Worker), args.Error(1)
}

func (m *mockWorkerRepository) ListByProject(ctx context.Context, projectID uint, activeOnly *bool) ([]*workforce.Worker, error) {
	args := m.Called(ctx, projectID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workforce.Worker), args.Error(1)
}

func (m *mockWorkerRepository) CountActiveByProject(ctx context.Context, projectID uint) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWorkerRepository) Update(ctx context.Context, worker *workforce.Worker) error {
	return m.Called(ctx, worker).Error(0)
}

type mockJobTitleRepository struct {
	mock.Mock
}

func (m *mockJobTitleRepository) Create(ctx context.Context, title *workforce.JobTitle) error {
	return m.Called(ctx, title).Error(0)
}

func (m *mockJobTitleRepository) GetByID(ctx context.Context, id uint) (*workforce.JobTitle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.JobTitle), args.Error(1)
}

func (m *mockJobTitleRepository) GetByNameInScope(ctx context.Context, name string, projectID, companyID uint) (*workforce.JobTitle, error) {
	args := m.Called(ctx, name, projectID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.JobTitle), args.Error(1)
}

func (m *mockJobTitleRepository) ListByProject(ctx context.Context, projectID uint) ([]*workforce.JobTitle, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workforce.JobTitle), args.Error(1)
}

func (m *mockJobTitleRepository) Update(ctx context.Context, title *workforce.JobTitle) error {
	return m.Called(ctx, title).Error(0)
}

type mockContractRepository struct {
	mock.Mock
}

func (m *mockContractRepository) Create(ctx context.Context, contract *organization.Contract) error {
	return m.Called(ctx, contract).Error(0)
}

func (m *mockContractRepository) GetByID(ctx context.Context, id uint) (*organization.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Contract), args.Error(1)
}

func (m *mockContractRepository) GetByProjectAndCompany(ctx context.Context, projectID, companyID uint) (*organization.Contract, error) {
	args := m.Called(ctx, projectID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Contract), args.Error(1)
}

func (m *mockContractRepository) ListByProject(ctx context.Context, projectID uint) ([]*organization.Contract, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Contract), args.Error(1)
}

func (m *mockContractRepository) ListActiveByProject(ctx context.Context, projectID uint) ([]*organization.Contract, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Contract), args.Error(1)
}

func (m *mockContractRepository) ListAll(ctx context.Context) ([]*organization.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Contract), args.Error(1)
}

func (m *mockContractRepository) Update(ctx context.Context, contract *organization.Contract) error {
	return m.Called(ctx, contract).Error(0)
}

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, project *organization.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*organization.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Project), args.Error(1)
}

func (m *mockProjectRepository) ListAll(ctx context.Context) ([]*organization.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Project), args.Error(1)
}

func (m *mockProjectRepository) List(ctx context.Context, activeOnly *bool) ([]*organization.Project, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Project), args.Error(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *organization.Project) error {
	return m.Called(ctx, project).Error(0)
}

type mockCompanyRepository struct {
	mock.Mock
}

func (m *mockCompanyRepository) Create(ctx context.Context, company *organization.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id uint) (*organization.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Company), args.Error(1)
}

func (m *mockCompanyRepository) GetByTaxID(ctx context.Context, taxID string) (*organization.Company, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Company), args.Error(1)
}

func (m *mockCompanyRepository) ListAll(ctx context.Context) ([]*organization.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Company), args.Error(1)
}

func (m *mockCompanyRepository) List(ctx context.Context, activeOnly *bool) ([]*organization.Company, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Company), args.Error(1)
}

func (m *mockCompanyRepository) Update(ctx context.Context, company *organization.Company) error {
	return m.Called(ctx, company).Error(0)
}

type mockPanelCache struct {
	mock.Mock
}

func (m *mockPanelCache) Get(ctx context.Context, projectID uint) (*dto.ProjectPanelDTO, bool) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*dto.ProjectPanelDTO), args.Bool(1)
}

func (m *mockPanelCache) Set(ctx context.Context, projectID uint, panel *dto.ProjectPanelDTO) {
	m.Called(ctx, projectID, panel)
}

func (m *mockPanelCache) Invalidate(ctx context.Context, projectID uint) {
	m.Called(ctx, projectID)
}

// noopLogger keeps use case tests quiet without mock expectations on
// every log line.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface              { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
