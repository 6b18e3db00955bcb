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

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid webhook payload", http.StatusBadRequest)

// WebhookHandler administers chat-webhook destinations and the gif pool.
type WebhookHandler struct {
	usecase usecase.IWebhookAdminUseCase
}

func NewWebhookHandler(uc usecase.IWebhookAdminUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	hooks, err := h.usecase.ListWebhooks(c.Request.Context())
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebhooks(hooks))
}

func (h *WebhookHandler) CreateWebhook(c *gin.Context) {
	var payload request.CreateWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	hook, err := h.usecase.CreateWebhook(c.Request.Context(), payload.ResolveName(), payload.ResolveURL())
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWebhook(hook))
}

func (h *WebhookHandler) PatchWebhook(c *gin.Context) {
	var payload request.PatchWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	hook, err := h.usecase.UpdateWebhook(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebhook(hook))
}

func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	if err := h.usecase.DeleteWebhook(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// TestWebhook lets an operator manually re-verify delivery. A delivery
// failure is reported as a structured error, not retried.
func (h *WebhookHandler) TestWebhook(c *gin.Context) {
	status, err := h.usecase.TestWebhook(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrWebhookNotFound) {
			appErr := mapWebhookError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[webhook][handler] test delivery failed status=%d err=%v", status, err)
		c.JSON(http.StatusBadGateway, response.WebhookTestResponse{StatusCode: status, Delivered: false})
		return
	}
	c.JSON(http.StatusOK, response.WebhookTestResponse{StatusCode: status, Delivered: true})
}

func (h *WebhookHandler) ListGifs(c *gin.Context) {
	gifs, err := h.usecase.ListGifs(c.Request.Context())
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGifs(gifs))
}

func (h *WebhookHandler) CreateGif(c *gin.Context) {
	var payload request.CreateGifRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	gif, err := h.usecase.AddGif(c.Request.Context(), payload.ResolveURL())
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromGif(gif))
}

func (h *WebhookHandler) DeleteGif(c *gin.Context) {
	if err := h.usecase.DeleteGif(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookName), errors.Is(err, usecase.ErrInvalidWebhookURL), errors.Is(err, usecase.ErrInvalidGifURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookNotFound):
		return pkg.NewDomainErrorSimple("WEBHOOK_NOT_FOUND", "Webhook not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGifNotFound):
		return pkg.NewDomainErrorSimple("GIF_NOT_FOUND", "Gif not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLastEnabledWebhook):
		return pkg.NewDomainErrorSimple("LAST_ENABLED_WEBHOOK", "Cannot remove the last enabled webhook", http.StatusConflict)
	case errors.Is(err, usecase.ErrMinGifCount):
		return pkg.NewDomainErrorSimple("MIN_GIF_COUNT", "Cannot delete below the minimum gif count", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
