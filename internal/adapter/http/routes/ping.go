package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addPingRoutes exposes a liveness endpoint for load balancers.
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
