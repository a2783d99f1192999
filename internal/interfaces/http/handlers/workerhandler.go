package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/application/workforce/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type WorkerHandler struct {
	createWorkerUC     *usecases.CreateWorkerUseCase
	listWorkersUC      *usecases.ListWorkersUseCase
	deactivateWorkerUC *usecases.DeactivateWorkerUseCase
	logger             logger.Interface
}

func NewWorkerHandler(
	createWorkerUC *usecases.CreateWorkerUseCase,
	listWorkersUC *usecases.ListWorkersUseCase,
	deactivateWorkerUC *usecases.DeactivateWorkerUseCase,
) *WorkerHandler {
	return &WorkerHandler{
		createWorkerUC:     createWorkerUC,
		listWorkersUC:      listWorkersUC,
		deactivateWorkerUC: deactivateWorkerUC,
		logger:             logger.NewLogger(),
	}
}

type CreateWorkerRequest struct {
	NationalID string `json:"national_id" binding:"required"`
	FirstNames string `json:"first_names" binding:"required"`
	LastNames  string `json:"last_names" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	CompanyID  uint   `json:"company_id" binding:"required"`
	ProjectID  *uint  `json:"project_id"`
	JobTitleID *uint  `json:"job_title_id"`
}

func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create worker", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateWorkerCommand{
		NationalID: req.NationalID,
		FirstNames: req.FirstNames,
		LastNames:  req.LastNames,
		Email:      req.Email,
		Phone:      req.Phone,
		CompanyID:  req.CompanyID,
		ProjectID:  req.ProjectID,
		JobTitleID: req.JobTitleID,
	}

	result, err := h.createWorkerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Worker created successfully")
}

// CreateProjectWorker creates a worker under the project named in the path;
// the path wins over any project_id in the body.
func (h *WorkerHandler) CreateProjectWorker(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project worker",
			"project_id", projectID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateWorkerCommand{
		NationalID: req.NationalID,
		FirstNames: req.FirstNames,
		LastNames:  req.LastNames,
		Email:      req.Email,
		Phone:      req.Phone,
		CompanyID:  req.CompanyID,
		ProjectID:  &projectID,
		JobTitleID: req.JobTitleID,
	}

	result, err := h.createWorkerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Worker created successfully")
}

func (h *WorkerHandler) ListProjectWorkers(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	activeOnly, err := utils.ParseBoolQuery(c, "active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListWorkersCommand{
		ProjectID:  projectID,
		ActiveOnly: activeOnly,
	}

	result, err := h.listWorkersUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workers retrieved successfully", result)
}

func (h *WorkerHandler) DeactivateWorker(c *gin.Context) {
	workerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateWorkerUC.Execute(c.Request.Context(), usecases.DeactivateWorkerCommand{WorkerID: workerID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
