package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "titansync/internal/adapter/http/dto/response"
	"titansync/internal/usecase"
	"titansync/pkg"
)

// MaintenanceHandler fronts destructive operator actions.
type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

// ClearTestData truncates ingested-data tables. Configuration tables are
// preserved; the scope is fixed server-side and not client-selectable.
func (h *MaintenanceHandler) ClearTestData(c *gin.Context) {
	deleted, err := h.usecase.ClearTestData(c.Request.Context())
	if err != nil {
		log.Printf("[maintenance][handler] clear-test-data failed: %v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClearTestDataResponse{Deleted: deleted})
}
