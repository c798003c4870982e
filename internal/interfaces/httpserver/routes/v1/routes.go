package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	registerPostRoutes(group, r.handlers.Post)
	registerAccountRoutes(group, r.handlers.Account)
	registerClipRoutes(group, r.handlers.Clip)
	registerPlatformRoutes(group, r.handlers.Platform)
	registerUserRoutes(group, r.handlers.User)

	// Diagnostics routes (optional - only if handler is provided)
	if r.handlers.Diagnostics != nil {
		registerDiagnosticsRoutes(group, r.handlers.Diagnostics)
	}
}
