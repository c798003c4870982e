package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/handlers"
)

func registerAccountRoutes(router gin.IRoutes, handler *handlers.AccountHandler) {
	router.GET("/accounts", handler.List)
}

func registerClipRoutes(router gin.IRoutes, handler *handlers.ClipHandler) {
	router.GET("/clips", handler.List)
}
