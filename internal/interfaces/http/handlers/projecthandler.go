package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orgusecases "github.com/faena-hq/faena/internal/application/organization/usecases"
	rosterusecases "github.com/faena-hq/faena/internal/application/roster/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC     *orgusecases.CreateProjectUseCase
	listProjectsUC      *orgusecases.ListProjectsUseCase
	getProjectUC        *orgusecases.GetProjectUseCase
	projectPanelUC      *rosterusecases.ProjectPanelUseCase
	listProjectCyclesUC *rosterusecases.ListProjectCyclesUseCase
	logger              logger.Interface
}

func NewProjectHandler(
	createProjectUC *orgusecases.CreateProjectUseCase,
	listProjectsUC *orgusecases.ListProjectsUseCase,
	getProjectUC *orgusecases.GetProjectUseCase,
	projectPanelUC *rosterusecases.ProjectPanelUseCase,
	listProjectCyclesUC *rosterusecases.ListProjectCyclesUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC:     createProjectUC,
		listProjectsUC:      listProjectsUC,
		getProjectUC:        getProjectUC,
		projectPanelUC:      projectPanelUC,
		listProjectCyclesUC: listProjectCyclesUC,
		logger:              logger.NewLogger(),
	}
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := orgusecases.CreateProjectCommand{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	activeOnly, err := utils.ParseBoolQuery(c, "active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listProjectsUC.Execute(c.Request.Context(), orgusecases.ListProjectsCommand{ActiveOnly: activeOnly})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Projects retrieved successfully", result)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), orgusecases.GetProjectCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project retrieved successfully", result)
}

func (h *ProjectHandler) ListProjectContracts(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), orgusecases.GetProjectCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contracts retrieved successfully", result.Contracts)
}

func (h *ProjectHandler) GetProjectPanel(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.projectPanelUC.Execute(c.Request.Context(), rosterusecases.ProjectPanelCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.FromCache {
		c.Header("X-Cache", "HIT")
	}

	utils.SuccessResponse(c, http.StatusOK, "Project panel retrieved successfully", result.Panel)
}

func (h *ProjectHandler) ListProjectCycles(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listProjectCyclesUC.Execute(c.Request.Context(), rosterusecases.ListProjectCyclesCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cycles retrieved successfully", result)
}
