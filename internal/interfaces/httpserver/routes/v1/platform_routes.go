package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/handlers"
)

func registerPlatformRoutes(router gin.IRoutes, handler *handlers.PlatformHandler) {
	router.GET("/platforms", handler.List)
	router.GET("/platforms/limit", handler.Limit)
}
