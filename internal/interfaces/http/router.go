package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "github.com/faena-hq/faena/internal/application/auth/usecases"
	orgusecases "github.com/faena-hq/faena/internal/application/organization/usecases"
	rosterusecases "github.com/faena-hq/faena/internal/application/roster/usecases"
	workforceusecases "github.com/faena-hq/faena/internal/application/workforce/usecases"
	"github.com/faena-hq/faena/internal/infrastructure/auth"
	"github.com/faena-hq/faena/internal/infrastructure/config"
	"github.com/faena-hq/faena/internal/infrastructure/repository"
	"github.com/faena-hq/faena/internal/interfaces/http/handlers"
	"github.com/faena-hq/faena/internal/interfaces/http/middleware"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

// Router wires repositories, use cases and handlers onto a Gin engine.
type Router struct {
	engine          *gin.Engine
	authHandler     *handlers.AuthHandler
	companyHandler  *handlers.CompanyHandler
	projectHandler  *handlers.ProjectHandler
	contractHandler *handlers.ContractHandler
	cycleHandler    *handlers.CycleHandler
	workerHandler   *handlers.WorkerHandler
	jobTitleHandler *handlers.JobTitleHandler
	importHandler   *handlers.ImportHandler
	authMiddleware  *middleware.AuthMiddleware
	allowedOrigins  []string
	log             logger.Interface
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(database *gorm.DB, panelCache rosterusecases.PanelCache, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	companyRepo := repository.NewCompanyRepository(database, log)
	projectRepo := repository.NewProjectRepository(database, log)
	serviceTypeRepo := repository.NewServiceTypeRepository(database, log)
	contractRepo := repository.NewContractRepository(database, log)
	jobTitleRepo := repository.NewJobTitleRepository(database, log)
	workerRepo := repository.NewWorkerRepository(database, log)
	cycleRepo := repository.NewCycleRepository(database, log)
	requirementRepo := repository.NewRequirementRepository(database, log)
	assignmentRepo := repository.NewAssignmentRepository(database, log)
	userRepo := repository.NewUserRepository(database, log)

	txManager := db.NewTransactionManager(database)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)

	loginUC := authusecases.NewLoginUseCase(userRepo, jwtService, log)
	createUserUC := authusecases.NewCreateUserUseCase(userRepo, log)

	createCompanyUC := orgusecases.NewCreateCompanyUseCase(companyRepo, log)
	listCompaniesUC := orgusecases.NewListCompaniesUseCase(companyRepo, log)
	deactivateCompanyUC := orgusecases.NewDeactivateCompanyUseCase(companyRepo, log)
	createProjectUC := orgusecases.NewCreateProjectUseCase(projectRepo, log)
	listProjectsUC := orgusecases.NewListProjectsUseCase(projectRepo, log)
	getProjectUC := orgusecases.NewGetProjectUseCase(projectRepo, contractRepo, log)
	createContractUC := orgusecases.NewCreateContractUseCase(contractRepo, projectRepo, companyRepo, serviceTypeRepo, log)
	listServiceTypesUC := orgusecases.NewListServiceTypesUseCase(serviceTypeRepo, log)

	createWorkerUC := workforceusecases.NewCreateWorkerUseCase(workerRepo, companyRepo, jobTitleRepo, log)
	listWorkersUC := workforceusecases.NewListWorkersUseCase(workerRepo, log)
	deactivateWorkerUC := workforceusecases.NewDeactivateWorkerUseCase(workerRepo, log)
	createJobTitleUC := workforceusecases.NewCreateJobTitleUseCase(jobTitleRepo, log)
	setParentUC := workforceusecases.NewSetJobTitleParentUseCase(jobTitleRepo, log)
	listJobTitlesUC := workforceusecases.NewListJobTitlesUseCase(jobTitleRepo, log)
	getJobTitleTreeUC := workforceusecases.NewGetJobTitleTreeUseCase(jobTitleRepo, log)

	createCycleUC := rosterusecases.NewCreateCycleUseCase(cycleRepo, contractRepo, log)
	getCycleUC := rosterusecases.NewGetCycleUseCase(cycleRepo, requirementRepo, assignmentRepo, log)
	listProjectCyclesUC := rosterusecases.NewListProjectCyclesUseCase(cycleRepo, projectRepo, log)
	computeCoverageUC := rosterusecases.NewComputeCoverageUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, txManager, log)
	upsertRequirementUC := rosterusecases.NewUpsertRequirementUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, txManager, panelCache, log)
	assignWorkerUC := rosterusecases.NewAssignWorkerUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, txManager, panelCache, log)
	unassignWorkerUC := rosterusecases.NewUnassignWorkerUseCase(cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, contractRepo, txManager, panelCache, log)
	projectPanelUC := rosterusecases.NewProjectPanelUseCase(projectRepo, contractRepo, companyRepo, cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, panelCache, log)
	deriveRequirementsUC := rosterusecases.NewDeriveRequirementsUseCase(projectRepo, companyRepo, contractRepo, cycleRepo, requirementRepo, assignmentRepo, workerRepo, jobTitleRepo, txManager, panelCache, log)

	return &Router{
		engine:          engine,
		authHandler:     handlers.NewAuthHandler(loginUC, createUserUC, cfg.Auth.Password.BcryptCost),
		companyHandler:  handlers.NewCompanyHandler(createCompanyUC, listCompaniesUC, deactivateCompanyUC),
		projectHandler:  handlers.NewProjectHandler(createProjectUC, listProjectsUC, getProjectUC, projectPanelUC, listProjectCyclesUC),
		contractHandler: handlers.NewContractHandler(createContractUC, listServiceTypesUC),
		cycleHandler:    handlers.NewCycleHandler(createCycleUC, getCycleUC, computeCoverageUC, upsertRequirementUC, assignWorkerUC, unassignWorkerUC),
		workerHandler:   handlers.NewWorkerHandler(createWorkerUC, listWorkersUC, deactivateWorkerUC),
		jobTitleHandler: handlers.NewJobTitleHandler(createJobTitleUC, setParentUC, listJobTitlesUC, getJobTitleTreeUC),
		importHandler:   handlers.NewImportHandler(deriveRequirementsUC),
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		allowedOrigins:  cfg.Server.AllowedOrigins,
		log:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "Service healthy", gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	users := v1.Group("/users")
	users.Use(r.authMiddleware.RequireAuth(), middleware.RequireAdmin())
	{
		users.POST("", r.authHandler.CreateUser)
	}

	companies := v1.Group("/companies")
	companies.Use(r.authMiddleware.RequireAuth())
	{
		companies.GET("", r.companyHandler.ListCompanies)
		companies.POST("", middleware.RequireWriteAccess(), r.companyHandler.CreateCompany)
		companies.DELETE("/:id", middleware.RequireWriteAccess(), r.companyHandler.DeactivateCompany)
	}

	projects := v1.Group("/projects")
	projects.Use(r.authMiddleware.RequireAuth())
	{
		projects.GET("", r.projectHandler.ListProjects)
		projects.POST("", middleware.RequireWriteAccess(), r.projectHandler.CreateProject)
		projects.GET("/:id", r.projectHandler.GetProject)
		projects.GET("/:id/panel", r.projectHandler.GetProjectPanel)
		projects.GET("/:id/contracts", r.projectHandler.ListProjectContracts)
		projects.GET("/:id/cycles", r.projectHandler.ListProjectCycles)
		projects.GET("/:id/workers", r.workerHandler.ListProjectWorkers)
		projects.POST("/:id/workers", middleware.RequireWriteAccess(), r.workerHandler.CreateProjectWorker)
		projects.GET("/:id/job-titles", r.jobTitleHandler.ListProjectJobTitles)
		projects.GET("/:id/job-titles/tree", r.jobTitleHandler.GetProjectTree)
	}

	contracts := v1.Group("/contracts")
	contracts.Use(r.authMiddleware.RequireAuth())
	{
		contracts.POST("", middleware.RequireWriteAccess(), r.contractHandler.CreateContract)
	}

	serviceTypes := v1.Group("/service-types")
	serviceTypes.Use(r.authMiddleware.RequireAuth())
	{
		serviceTypes.GET("", r.contractHandler.ListServiceTypes)
	}

	cycles := v1.Group("/cycles")
	cycles.Use(r.authMiddleware.RequireAuth())
	{
		cycles.POST("", middleware.RequireWriteAccess(), r.cycleHandler.CreateCycle)
		cycles.GET("/:id", r.cycleHandler.GetCycle)
		cycles.GET("/:id/coverage", r.cycleHandler.GetCoverage)
		cycles.GET("/:id/requirements", r.cycleHandler.ListRequirements)
		cycles.GET("/:id/assignments", r.cycleHandler.ListAssignments)
		cycles.PUT("/:id/requirements/:jobTitleID", middleware.RequireWriteAccess(), r.cycleHandler.UpsertRequirement)
		cycles.POST("/:id/assignments", middleware.RequireWriteAccess(), r.cycleHandler.AssignWorker)
		cycles.DELETE("/:id/assignments/:workerID", middleware.RequireWriteAccess(), r.cycleHandler.UnassignWorker)
	}

	workers := v1.Group("/workers")
	workers.Use(r.authMiddleware.RequireAuth())
	{
		workers.POST("", middleware.RequireWriteAccess(), r.workerHandler.CreateWorker)
		workers.DELETE("/:id", middleware.RequireWriteAccess(), r.workerHandler.DeactivateWorker)
	}

	jobTitles := v1.Group("/job-titles")
	jobTitles.Use(r.authMiddleware.RequireAuth())
	{
		jobTitles.POST("", middleware.RequireWriteAccess(), r.jobTitleHandler.CreateJobTitle)
		jobTitles.PUT("/:id/parent", middleware.RequireWriteAccess(), r.jobTitleHandler.SetParent)
	}

	imports := v1.Group("/imports")
	imports.Use(r.authMiddleware.RequireAuth(), middleware.RequireWriteAccess())
	{
		imports.POST("/roster", r.importHandler.ImportRoster)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
