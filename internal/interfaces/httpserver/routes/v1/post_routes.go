package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/handlers"
)

func registerPostRoutes(router gin.IRoutes, handler *handlers.PostHandler) {
	router.POST("/posts/validate", handler.Validate)
	router.POST("/posts", handler.Publish)
}
