package routes

import (
	"titansync/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSettings    = "/settings"
	PathPolling     = "/polling"
	PathWebhooks    = "/webhooks"
	PathGifs        = "/gifs"
	PathMaintenance = "/maintenance"
)

func addAdminRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler, webhookHandler *handlers.WebhookHandler, maintenanceHandler *handlers.MaintenanceHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PATCH("", settingsHandler.PatchSettings)
	}

	polling := rg.Group(PathPolling)
	{
		polling.GET("", settingsHandler.GetPollingStatus)
		polling.PATCH("", settingsHandler.PatchPolling)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.GET("", webhookHandler.ListWebhooks)
		webhooks.POST("", webhookHandler.CreateWebhook)
		webhooks.PATCH("/:id", webhookHandler.PatchWebhook)
		webhooks.DELETE("/:id", webhookHandler.DeleteWebhook)
		webhooks.POST("/:id/test", webhookHandler.TestWebhook)
	}

	gifs := rg.Group(PathGifs)
	{
		gifs.GET("", webhookHandler.ListGifs)
		gifs.POST("", webhookHandler.CreateGif)
		gifs.DELETE("/:id", webhookHandler.DeleteGif)
	}

	maintenance := rg.Group(PathMaintenance)
	{
		maintenance.POST("/clear-test-data", maintenanceHandler.ClearTestData)
	}
}
