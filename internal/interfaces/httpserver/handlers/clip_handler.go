package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/clip"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/responses"
)

// ClipHandler exposes the rendered video clip directory.
type ClipHandler struct {
	service clip.Service
	log     zerolog.Logger
}

// NewClipHandler constructs the handler.
func NewClipHandler(service clip.Service, log zerolog.Logger) *ClipHandler {
	return &ClipHandler{
		service: service,
		log:     log.With().Str("handler", "clip").Logger(),
	}
}

// List handles GET /v1/clips
// @Summary List video clips
// @Description Returns the user's rendered video clips from the clips webhook
// @Tags Clips
// @Produce json
// @Success 200 {object} responses.ClipListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 504 {object} responses.ErrorResponse
// @Router /v1/clips [get]
func (h *ClipHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	clips, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, err, "failed to fetch video clips")
		return
	}

	c.JSON(http.StatusOK, responses.ClipListResponse{
		Data:  clips,
		Total: len(clips),
	})
}
