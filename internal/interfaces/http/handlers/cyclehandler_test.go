package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	rosterusecases "github.com/faena-hq/faena/internal/application/roster/usecases"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/infrastructure/migration"
	"github.com/faena-hq/faena/internal/infrastructure/repository"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

// cycleTestEnv runs the cycle endpoints against an in-memory sqlite
// database with the real use cases and repositories behind them.
type cycleTestEnv struct {
	engine   *gin.Engine
	gormDB   *gorm.DB
	contract *organization.Contract
}

func newCycleTestEnv(t *testing.T) *cycleTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	ctx := context.Background()

	companyRepo := repository.NewCompanyRepository(gormDB, log)
	projectRepo := repository.NewProjectRepository(gormDB, log)
	serviceTypeRepo := repository.NewServiceTypeRepository(gormDB, log)
	contractRepo := repository.NewContractRepository(gormDB, log)
	jobTitleRepo := repository.NewJobTitleRepository(gormDB, log)
	workerRepo := repository.NewWorkerRepository(gormDB, log)
	cycleRepo := repository.NewCycleRepository(gormDB, log)
	requirementRepo := repository.NewRequirementRepository(gormDB, log)
	assignmentRepo := repository.NewAssignmentRepository(gormDB, log)

	company, err := organization.NewCompany("Minera Andes", "76.123.456-7", false)
	require.NoError(t, err)
	require.NoError(t, companyRepo.Create(ctx, company))

	project, err := organization.NewProject("Tronadura Norte", "", testDate2026(1, 1), nil)
	require.NoError(t, err)
	require.NoError(t, projectRepo.Create(ctx, project))

	serviceType, err := organization.NewServiceType("Perforacion", "")
	require.NoError(t, err)
	require.NoError(t, serviceTypeRepo.Create(ctx, serviceType))

	contract, err := organization.NewContract(project.ID(), serviceType.ID(), company.ID(), organization.ShiftPatternAB, "7x7")
	require.NoError(t, err)
	require.NoError(t, contractRepo.Create(ctx, contract))

	txManager := db.NewTransactionManager(gormDB)
	panelCache := rosterusecases.NoopPanelCache()

	handler := NewCycleHandler(
		rosterusecases.NewCreateCycleUseCase(cycleRepo, contractRepo, log),
		rosterusecases.NewGetCycleUseCase(cycleRepo, requirementRepo, assignmentRepo, log),
		rosterusecases.NewComputeCoverageUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, txManager, log),
		rosterusecases.NewUpsertRequirementUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, txManager, panelCache, log),
		rosterusecases.NewAssignWorkerUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, txManager, panelCache, log),
		rosterusecases.NewUnassignWorkerUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, txManager, panelCache, log),
	)

	engine := gin.New()
	engine.POST("/cycles", handler.CreateCycle)
	engine.GET("/cycles/:id", handler.GetCycle)
	engine.GET("/cycles/:id/coverage", handler.GetCoverage)
	engine.PUT("/cycles/:id/requirements/:jobTitleID", handler.UpsertRequirement)
	engine.POST("/cycles/:id/assignments", handler.AssignWorker)
	engine.DELETE("/cycles/:id/assignments/:workerID", handler.UnassignWorker)

	return &cycleTestEnv{engine: engine, gormDB: gormDB, contract: contract}
}

func testDate2026(m, d int) time.Time {
	return time.Date(2026, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func (e *cycleTestEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	e.engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var response utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestCycleHandler_CreateCycle(t *testing.T) {
	env := newCycleTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/cycles", gin.H{
		"contract_id": env.contract.ID(),
		"letter":      "A",
		"start_date":  "2026-03-01",
		"end_date":    "2026-03-07",
		"shift":       "DIA",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.True(t, response.Success)

	// creating the same cycle again conflicts on the natural key
	recorder = env.request(t, http.MethodPost, "/cycles", gin.H{
		"contract_id": env.contract.ID(),
		"letter":      "A",
		"start_date":  "2026-03-01",
		"end_date":    "2026-03-07",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCycleHandler_CreateCycle_LetterOutsidePattern(t *testing.T) {
	env := newCycleTestEnv(t)

	// an AB contract has no C rotation
	recorder := env.request(t, http.MethodPost, "/cycles", gin.H{
		"contract_id": env.contract.ID(),
		"letter":      "C",
		"start_date":  "2026-03-01",
		"end_date":    "2026-03-07",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCycleHandler_AssignmentLifecycle(t *testing.T) {
	env := newCycleTestEnv(t)
	ctx := context.Background()
	log := logger.NewLogger()

	cycle, err := roster.NewCycle(env.contract.ID(), "A", testDate2026(3, 1), testDate2026(3, 7), roster.ShiftDay)
	require.NoError(t, err)
	require.NoError(t, repository.NewCycleRepository(env.gormDB, log).Create(ctx, cycle))

	title, err := workforce.NewJobTitle("Operador Jumbo", env.contract.ProjectID(), env.contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, repository.NewJobTitleRepository(env.gormDB, log).Create(ctx, title))

	titleID := title.ID()
	worker, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan",
		LastNames:  "Rojas",
		CompanyID:  env.contract.CompanyID(),
		JobTitleID: &titleID,
	})
	require.NoError(t, err)
	require.NoError(t, repository.NewWorkerRepository(env.gormDB, log).Create(ctx, worker))

	// one operator required
	recorder := env.request(t, http.MethodPut,
		fmt.Sprintf("/cycles/%d/requirements/%d", cycle.ID(), title.ID()),
		gin.H{"required_count": 1})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// assigning the worker satisfies the requirement
	recorder = env.request(t, http.MethodPost,
		fmt.Sprintf("/cycles/%d/assignments", cycle.ID()),
		gin.H{"worker_id": worker.ID()})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var assignResult rosterusecases.AssignWorkerResult
	response := decodeResponse(t, recorder)
	payload, err := json.Marshal(response.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &assignResult))
	assert.Equal(t, string(roster.StateComplete), assignResult.CycleState)

	// a repeat assignment conflicts unless the caller opts into ignore
	recorder = env.request(t, http.MethodPost,
		fmt.Sprintf("/cycles/%d/assignments", cycle.ID()),
		gin.H{"worker_id": worker.ID()})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = env.request(t, http.MethodPost,
		fmt.Sprintf("/cycles/%d/assignments", cycle.ID()),
		gin.H{"worker_id": worker.ID(), "on_conflict": "ignore"})
	assert.Equal(t, http.StatusOK, recorder.Code)

	// unassigning drops the cycle back to incomplete
	recorder = env.request(t, http.MethodDelete,
		fmt.Sprintf("/cycles/%d/assignments/%d", cycle.ID(), worker.ID()), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var unassignResult rosterusecases.UnassignWorkerResult
	response = decodeResponse(t, recorder)
	payload, err = json.Marshal(response.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &unassignResult))
	assert.Equal(t, string(roster.StateIncomplete), unassignResult.CycleState)
}

func TestCycleHandler_GetCoverage(t *testing.T) {
	env := newCycleTestEnv(t)
	ctx := context.Background()
	log := logger.NewLogger()

	cycle, err := roster.NewCycle(env.contract.ID(), "B", testDate2026(3, 8), testDate2026(3, 14), roster.ShiftNight)
	require.NoError(t, err)
	require.NoError(t, repository.NewCycleRepository(env.gormDB, log).Create(ctx, cycle))

	title, err := workforce.NewJobTitle("Operador Jumbo", env.contract.ProjectID(), env.contract.CompanyID(), workforce.LevelOperational)
	require.NoError(t, err)
	require.NoError(t, repository.NewJobTitleRepository(env.gormDB, log).Create(ctx, title))

	recorder := env.request(t, http.MethodPut,
		fmt.Sprintf("/cycles/%d/requirements/%d", cycle.ID(), title.ID()),
		gin.H{"required_count": 2})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = env.request(t, http.MethodGet,
		fmt.Sprintf("/cycles/%d/coverage", cycle.ID()), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	response := decodeResponse(t, recorder)
	assert.True(t, response.Success)
	assert.NotNil(t, response.Data)
}
