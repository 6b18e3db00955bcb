package routes

import (
	"context"
	"log"
	"strconv"

	_ "titansync/docs" // This will be auto-generated
	"titansync/internal/adapter/http/handlers"
	repository2 "titansync/internal/adapter/persistence/repository"
	"titansync/internal/infrastructure/chat"
	"titansync/internal/infrastructure/database"
	"titansync/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	pool := database.ConnectPostgres(context.Background())

	stateRepo := repository2.NewAppStatePgRepository(pool)
	pollLogRepo := repository2.NewPollLogPgRepository(pool)
	webhookRepo := repository2.NewWebhookPgRepository(pool)
	gifRepo := repository2.NewGifPgRepository(pool)
	webhookLogRepo := repository2.NewWebhookLogPgRepository(pool)
	maintenanceRepo := repository2.NewMaintenancePgRepository(pool)

	notifier := chat.NewGoogleChatNotifier()

	settingsUseCase := usecase.NewSettingsUseCase(stateRepo, pollLogRepo)
	webhookUseCase := usecase.NewWebhookAdminUseCase(webhookRepo, gifRepo, notifier, webhookLogRepo)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(maintenanceRepo)

	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAdminRoutes(v1, settingsHandler, webhookHandler, maintenanceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
