package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/account"
	"github.com/homehandshake/publish-api/internal/domain/clip"
	"github.com/homehandshake/publish-api/internal/domain/diagnostics"
	"github.com/homehandshake/publish-api/internal/domain/post"
	"github.com/homehandshake/publish-api/internal/domain/user"
	"github.com/homehandshake/publish-api/internal/infrastructure/auth"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/responses"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// Provider bundles every HTTP handler for route registration.
type Provider struct {
	Post        *PostHandler
	Account     *AccountHandler
	Clip        *ClipHandler
	Platform    *PlatformHandler
	User        *UserHandler
	Diagnostics *DiagnosticsHandler
}

// NewProvider constructs all handlers.
func NewProvider(
	posts post.Service,
	accounts account.Service,
	clips clip.Service,
	users user.Service,
	diag diagnostics.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Post:        NewPostHandler(posts, log),
		Account:     NewAccountHandler(accounts, log),
		Clip:        NewClipHandler(clips, log),
		Platform:    NewPlatformHandler(),
		User:        NewUserHandler(users, log),
		Diagnostics: NewDiagnosticsHandler(diag, clips, log),
	}
}

// requireUser resolves the authenticated user id or aborts with 401.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		responses.HandleError(c,
			apierrors.New(apierrors.KindUnauthenticated, "authentication required"),
			"missing identity")
		return "", false
	}
	return userID, true
}
