package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/homehandshake/publish-api/internal/domain/platform"
	"github.com/homehandshake/publish-api/internal/domain/post"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/responses"
)

// PlatformHandler serves the static capability table and the derived
// aggregate projections the compose UI needs for live feedback.
type PlatformHandler struct{}

// NewPlatformHandler constructs the handler.
func NewPlatformHandler() *PlatformHandler {
	return &PlatformHandler{}
}

// List handles GET /v1/platforms
// @Summary List platform capabilities
// @Tags Platforms
// @Produce json
// @Success 200 {object} responses.PlatformListResponse
// @Router /v1/platforms [get]
func (h *PlatformHandler) List(c *gin.Context) {
	ids := platform.Known()
	entries := make([]responses.PlatformCapability, 0, len(ids))
	for _, id := range ids {
		entry, _ := platform.Lookup(id)
		entries = append(entries, responses.MapCapability(id, entry))
	}
	c.JSON(http.StatusOK, responses.PlatformListResponse{Data: entries})
}

// Limit handles GET /v1/platforms/limit
// @Summary Aggregate character limit for a platform selection
// @Description Minimum character limit across the selected platforms, with an over-limit check for the given text
// @Tags Platforms
// @Produce json
// @Param platforms query string true "Comma separated platform ids"
// @Param text query string false "Draft text to check against the limit"
// @Success 200 {object} responses.LimitResponse
// @Router /v1/platforms/limit [get]
func (h *PlatformHandler) Limit(c *gin.Context) {
	var platforms []string
	for _, p := range strings.Split(c.Query("platforms"), ",") {
		if p = strings.TrimSpace(strings.ToLower(p)); p != "" {
			platforms = append(platforms, p)
		}
	}
	text := c.Query("text")

	limit := post.AggregateCharacterLimit(platforms)
	c.JSON(http.StatusOK, responses.LimitResponse{
		Limit:     limit,
		Unlimited: limit == post.NoCharacterLimit,
		OverLimit: post.OverLimit(text, platforms),
	})
}
