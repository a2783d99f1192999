package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/application/organization/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type CompanyHandler struct {
	createCompanyUC     *usecases.CreateCompanyUseCase
	listCompaniesUC     *usecases.ListCompaniesUseCase
	deactivateCompanyUC *usecases.DeactivateCompanyUseCase
	logger              logger.Interface
}

func NewCompanyHandler(
	createCompanyUC *usecases.CreateCompanyUseCase,
	listCompaniesUC *usecases.ListCompaniesUseCase,
	deactivateCompanyUC *usecases.DeactivateCompanyUseCase,
) *CompanyHandler {
	return &CompanyHandler{
		createCompanyUC:     createCompanyUC,
		listCompaniesUC:     listCompaniesUC,
		deactivateCompanyUC: deactivateCompanyUC,
		logger:              logger.NewLogger(),
	}
}

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	TaxID       string `json:"tax_id" binding:"required"`
	IsPrincipal bool   `json:"is_principal"`
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create company", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCompanyCommand{
		Name:        req.Name,
		TaxID:       req.TaxID,
		IsPrincipal: req.IsPrincipal,
	}

	result, err := h.createCompanyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Company created successfully")
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	activeOnly, err := utils.ParseBoolQuery(c, "active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCompaniesUC.Execute(c.Request.Context(), usecases.ListCompaniesCommand{ActiveOnly: activeOnly})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Companies retrieved successfully", result)
}

func (h *CompanyHandler) DeactivateCompany(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateCompanyUC.Execute(c.Request.Context(), usecases.DeactivateCompanyCommand{CompanyID: companyID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
