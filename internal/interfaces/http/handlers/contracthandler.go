package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/application/organization/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type ContractHandler struct {
	createContractUC   *usecases.CreateContractUseCase
	listServiceTypesUC *usecases.ListServiceTypesUseCase
	logger             logger.Interface
}

func NewContractHandler(
	createContractUC *usecases.CreateContractUseCase,
	listServiceTypesUC *usecases.ListServiceTypesUseCase,
) *ContractHandler {
	return &ContractHandler{
		createContractUC:   createContractUC,
		listServiceTypesUC: listServiceTypesUC,
		logger:             logger.NewLogger(),
	}
}

type CreateContractRequest struct {
	ProjectID     uint   `json:"project_id" binding:"required"`
	ServiceTypeID uint   `json:"service_type_id" binding:"required"`
	CompanyID     uint   `json:"company_id" binding:"required"`
	ShiftPattern  string `json:"shift_pattern" binding:"required,oneof=AB ABCD"`
	RotationTag   string `json:"rotation_tag"`
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create contract", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateContractCommand{
		ProjectID:     req.ProjectID,
		ServiceTypeID: req.ServiceTypeID,
		CompanyID:     req.CompanyID,
		ShiftPattern:  req.ShiftPattern,
		RotationTag:   req.RotationTag,
	}

	result, err := h.createContractUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contract created successfully")
}

func (h *ContractHandler) ListServiceTypes(c *gin.Context) {
	result, err := h.listServiceTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service types retrieved successfully", result)
}
