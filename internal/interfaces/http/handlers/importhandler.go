package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/application/roster/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type ImportHandler struct {
	deriveRequirementsUC *usecases.DeriveRequirementsUseCase
	logger               logger.Interface
}

func NewImportHandler(deriveRequirementsUC *usecases.DeriveRequirementsUseCase) *ImportHandler {
	return &ImportHandler{
		deriveRequirementsUC: deriveRequirementsUC,
		logger:               logger.NewLogger(),
	}
}

type ImportRosterRequest struct {
	Rows []dto.RosterRow `json:"rows" binding:"required,min=1"`
}

// ImportRoster ingests a denormalized roster export. Rows that resolve to
// no stored project, company or contract are skipped and reported in the
// summary rather than failing the whole import.
func (h *ImportHandler) ImportRoster(c *gin.Context) {
	var req ImportRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for roster import", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deriveRequirementsUC.Execute(c.Request.Context(), usecases.DeriveRequirementsCommand{Rows: req.Rows})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Roster import completed", result.Summary)
}
