package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/application/workforce/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type JobTitleHandler struct {
	createJobTitleUC  *usecases.CreateJobTitleUseCase
	setParentUC       *usecases.SetJobTitleParentUseCase
	listJobTitlesUC   *usecases.ListJobTitlesUseCase
	getJobTitleTreeUC *usecases.GetJobTitleTreeUseCase
	logger            logger.Interface
}

func NewJobTitleHandler(
	createJobTitleUC *usecases.CreateJobTitleUseCase,
	setParentUC *usecases.SetJobTitleParentUseCase,
	listJobTitlesUC *usecases.ListJobTitlesUseCase,
	getJobTitleTreeUC *usecases.GetJobTitleTreeUseCase,
) *JobTitleHandler {
	return &JobTitleHandler{
		createJobTitleUC:  createJobTitleUC,
		setParentUC:       setParentUC,
		listJobTitlesUC:   listJobTitlesUC,
		getJobTitleTreeUC: getJobTitleTreeUC,
		logger:            logger.NewLogger(),
	}
}

type CreateJobTitleRequest struct {
	Name      string `json:"name" binding:"required"`
	ProjectID uint   `json:"project_id" binding:"required"`
	CompanyID uint   `json:"company_id" binding:"required"`
	Level     string `json:"level"`
	ParentID  *uint  `json:"parent_id"`
}

type SetJobTitleParentRequest struct {
	// ParentID null promotes the title to a root of the organigram.
	ParentID *uint `json:"parent_id"`
}

func (h *JobTitleHandler) CreateJobTitle(c *gin.Context) {
	var req CreateJobTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create job title", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateJobTitleCommand{
		Name:      req.Name,
		ProjectID: req.ProjectID,
		CompanyID: req.CompanyID,
		Level:     req.Level,
		ParentID:  req.ParentID,
	}

	result, err := h.createJobTitleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Job title created successfully")
}

func (h *JobTitleHandler) SetParent(c *gin.Context) {
	jobTitleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetJobTitleParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set job title parent",
			"job_title_id", jobTitleID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SetJobTitleParentCommand{
		JobTitleID: jobTitleID,
		ParentID:   req.ParentID,
	}

	result, err := h.setParentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job title parent updated successfully", result)
}

func (h *JobTitleHandler) ListProjectJobTitles(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listJobTitlesUC.Execute(c.Request.Context(), usecases.ListJobTitlesCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job titles retrieved successfully", result)
}

func (h *JobTitleHandler) GetProjectTree(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getJobTitleTreeUC.Execute(c.Request.Context(), usecases.GetJobTitleTreeCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job title tree retrieved successfully", result)
}
