package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/application/roster/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type CycleHandler struct {
	createCycleUC       *usecases.CreateCycleUseCase
	getCycleUC          *usecases.GetCycleUseCase
	computeCoverageUC   *usecases.ComputeCoverageUseCase
	upsertRequirementUC *usecases.UpsertRequirementUseCase
	assignWorkerUC      *usecases.AssignWorkerUseCase
	unassignWorkerUC    *usecases.UnassignWorkerUseCase
	logger              logger.Interface
}

func NewCycleHandler(
	createCycleUC *usecases.CreateCycleUseCase,
	getCycleUC *usecases.GetCycleUseCase,
	computeCoverageUC *usecases.ComputeCoverageUseCase,
	upsertRequirementUC *usecases.UpsertRequirementUseCase,
	assignWorkerUC *usecases.AssignWorkerUseCase,
	unassignWorkerUC *usecases.UnassignWorkerUseCase,
) *CycleHandler {
	return &CycleHandler{
		createCycleUC:       createCycleUC,
		getCycleUC:          getCycleUC,
		computeCoverageUC:   computeCoverageUC,
		upsertRequirementUC: upsertRequirementUC,
		assignWorkerUC:      assignWorkerUC,
		unassignWorkerUC:    unassignWorkerUC,
		logger:              logger.NewLogger(),
	}
}

type CreateCycleRequest struct {
	ContractID uint   `json:"contract_id" binding:"required"`
	Letter     string `json:"letter" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Shift      string `json:"shift" binding:"omitempty,oneof=DIA NOCHE"`
}

type UpsertRequirementRequest struct {
	RequiredCount int `json:"required_count" binding:"gte=0"`
}

type AssignWorkerRequest struct {
	WorkerID   uint   `json:"worker_id" binding:"required"`
	OnConflict string `json:"on_conflict" binding:"omitempty,oneof=error ignore"`
}

func (h *CycleHandler) CreateCycle(c *gin.Context) {
	var req CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create cycle", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCycleCommand{
		ContractID: req.ContractID,
		Letter:     req.Letter,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Shift:      req.Shift,
	}

	result, err := h.createCycleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Cycle created successfully")
}

func (h *CycleHandler) GetCycle(c *gin.Context) {
	cycleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCycleUC.Execute(c.Request.Context(), usecases.GetCycleCommand{CycleID: cycleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cycle retrieved successfully", result)
}

func (h *CycleHandler) ListRequirements(c *gin.Context) {
	cycleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCycleUC.Execute(c.Request.Context(), usecases.GetCycleCommand{CycleID: cycleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Requirements retrieved successfully", result.Requirements)
}

func (h *CycleHandler) ListAssignments(c *gin.Context) {
	cycleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCycleUC.Execute(c.Request.Context(), usecases.GetCycleCommand{CycleID: cycleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignments retrieved successfully", result.Assignments)
}

func (h *CycleHandler) GetCoverage(c *gin.Context) {
	cycleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.computeCoverageUC.Execute(c.Request.Context(), usecases.ComputeCoverageCommand{CycleID: cycleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Coverage computed successfully", result.Coverage)
}

func (h *CycleHandler) UpsertRequirement(c *gin.Context) {
	cycleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	jobTitleID, err := utils.ParseUintParam(c, "jobTitleID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpsertRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert requirement",
			"cycle_id", cycleID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpsertRequirementCommand{
		CycleID:       cycleID,
		JobTitleID:    jobTitleID,
		RequiredCount: req.RequiredCount,
	}

	result, err := h.upsertRequirementUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Created {
		utils.CreatedResponse(c, result, "Requirement created successfully")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Requirement updated successfully", result)
}

func (h *CycleHandler) AssignWorker(c *gin.Context) {
	cycleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign worker",
			"cycle_id", cycleID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	policy := usecases.OnConflictError
	if req.OnConflict != "" {
		policy = usecases.ConflictPolicy(req.OnConflict)
	}

	cmd := usecases.AssignWorkerCommand{
		CycleID:    cycleID,
		WorkerID:   req.WorkerID,
		OnConflict: policy,
	}

	result, err := h.assignWorkerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.AlreadyAssigned {
		utils.SuccessResponse(c, http.StatusOK, "Worker already assigned", result)
		return
	}

	utils.CreatedResponse(c, result, "Worker assigned successfully")
}

func (h *CycleHandler) UnassignWorker(c *gin.Context) {
	cycleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	workerID, err := utils.ParseUintParam(c, "workerID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UnassignWorkerCommand{
		CycleID:  cycleID,
		WorkerID: workerID,
	}

	result, err := h.unassignWorkerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Worker unassigned successfully", result)
}
