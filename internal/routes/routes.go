package routes

import (
	"net/http"
	"time"

	"navigator_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full REST surface under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		api.GET("/health", healthCheck)

		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ModuleHandler.RegisterRoutes(api)
		appHandlers.ArticleHandler.RegisterRoutes(api)
		appHandlers.FormHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
