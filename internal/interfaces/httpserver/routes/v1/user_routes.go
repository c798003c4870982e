package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/handlers"
)

func registerUserRoutes(router gin.IRoutes, handler *handlers.UserHandler) {
	router.POST("/user/activate", handler.Activate)
	router.GET("/user/status", handler.Status)
	router.POST("/user/status", handler.SetStatus)
}

func registerDiagnosticsRoutes(router gin.IRoutes, handler *handlers.DiagnosticsHandler) {
	router.GET("/diagnostics/webhook", handler.Webhook)
	router.GET("/diagnostics/profile-key", handler.ProfileKey)
	router.GET("/diagnostics/clips", handler.Clips)
}
