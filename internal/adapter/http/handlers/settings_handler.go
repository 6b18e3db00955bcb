package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "titansync/internal/adapter/http/dto/request"
	response "titansync/internal/adapter/http/dto/response"
	"titansync/internal/usecase"
	"titansync/pkg"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// SettingsHandler serves the runtime settings and the polling toggle.
type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.Load(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

func (h *SettingsHandler) PatchSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.Update(c.Request.Context(), patch)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settings][handler] updated marker=%q threshold=%s interval=%ds enabled=%t",
		settings.TGLMarker, settings.BigSaleThreshold, settings.PollIntervalSeconds, settings.PollingEnabled)
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

// GetPollingStatus returns the toggle, interval, and recent run summaries.
func (h *SettingsHandler) GetPollingStatus(c *gin.Context) {
	settings, err := h.usecase.Load(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	runs, err := h.usecase.RecentRuns(c.Request.Context(), 0)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PollingStatusResponse{
		Enabled:         settings.PollingEnabled,
		IntervalSeconds: settings.PollIntervalSeconds,
		RecentRuns:      response.FromPollLogs(runs),
	})
}

func (h *SettingsHandler) PatchPolling(c *gin.Context) {
	var payload request.PollingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.Update(c.Request.Context(), payload.ToPatch())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PollingStatusResponse{
		Enabled:         settings.PollingEnabled,
		IntervalSeconds: settings.PollIntervalSeconds,
	})
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyTGLMarker):
		return pkg.NewDomainErrorSimple("EMPTY_TGL_MARKER", "TGL marker must not be empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidThreshold):
		return pkg.NewDomainErrorSimple("INVALID_THRESHOLD", "Big sale threshold must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPollInterval):
		return pkg.NewDomainErrorSimple("INVALID_POLL_INTERVAL", "Poll interval must be at least 1 second", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
