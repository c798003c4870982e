package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/clip"
	"github.com/homehandshake/publish-api/internal/domain/diagnostics"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/responses"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// DiagnosticsHandler exposes the operator-facing probe endpoints.
type DiagnosticsHandler struct {
	service diagnostics.Service
	clips   clip.Service
	log     zerolog.Logger
}

// NewDiagnosticsHandler constructs the handler.
func NewDiagnosticsHandler(service diagnostics.Service, clips clip.Service, log zerolog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		service: service,
		clips:   clips,
		log:     log.With().Str("handler", "diagnostics").Logger(),
	}
}

// Webhook handles GET /v1/diagnostics/webhook
// @Summary Probe the clips webhook with every known auth scheme
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} diagnostics.ProbeReport
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/diagnostics/webhook [get]
func (h *DiagnosticsHandler) Webhook(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	report, err := h.service.Probes(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, err, "failed to probe webhook")
		return
	}

	c.JSON(http.StatusOK, report)
}

// ProfileKey handles GET /v1/diagnostics/profile-key
// @Summary Verify the user's profile key against the webhook
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} diagnostics.KeyCheck
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/diagnostics/profile-key [get]
func (h *DiagnosticsHandler) ProfileKey(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	check, err := h.service.ProfileKeyCheck(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, err, "failed to verify profile key")
		return
	}

	c.JSON(http.StatusOK, check)
}

// Clips handles GET /v1/diagnostics/clips
// @Summary Fetch clips verbosely for debugging
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} responses.ClipDebugResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 504 {object} responses.ErrorResponse
// @Router /v1/diagnostics/clips [get]
func (h *DiagnosticsHandler) Clips(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	clips, err := h.clips.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Warn().Err(err).Str("user_id", userID).Msg("clip debug fetch failed")
		if apierrors.KindOf(err) == apierrors.KindUpstreamTimeout {
			responses.HandleError(c, err, "clips webhook timed out")
			return
		}
		responses.HandleError(c, err, "failed to fetch clips")
		return
	}

	out := responses.ClipDebugResponse{
		Success:   true,
		ClipCount: len(clips),
		AllClips:  clips,
	}
	if len(clips) > 0 {
		out.SampleClip = &clips[0]
	}
	c.JSON(http.StatusOK, out)
}
