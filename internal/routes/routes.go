package routes

import (
	"campushire_backend/internal/auth"
	"campushire_backend/internal/handlers"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenService,
) {
	authMW := middleware.AuthMiddleware(tokens)

	// Служебные маршруты вне /api/v1
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
	ginRouter.GET("/metrics", middleware.MetricsHandler())

	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authMW)
		appHandlers.JobHandler.RegisterRoutes(api, authMW)
		appHandlers.QuestionHandler.RegisterRoutes(api, authMW)
		appHandlers.ReviewHandler.RegisterRoutes(api, authMW)
		appHandlers.AdminHandler.RegisterRoutes(api, authMW)
		appHandlers.FileHandler.RegisterRoutes(api)
		appHandlers.HealthHandler.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered", "count", len(ginRouter.Routes()))
}
