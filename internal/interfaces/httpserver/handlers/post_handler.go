package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/post"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/responses"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// PostHandler exposes the validate and publish entrypoints.
type PostHandler struct {
	service post.Service
	log     zerolog.Logger
}

// NewPostHandler constructs the handler.
func NewPostHandler(service post.Service, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		log:     log.With().Str("handler", "post").Logger(),
	}
}

// Validate handles POST /v1/posts/validate
// @Summary Validate a post draft
// @Description Checks the draft against every selected platform's publishing rules
// @Tags Posts
// @Accept json
// @Produce json
// @Success 200 {object} post.ValidationResult
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 504 {object} responses.ErrorResponse
// @Router /v1/posts/validate [post]
func (h *PostHandler) Validate(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var draft post.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		responses.HandleError(c,
			apierrors.Wrap(apierrors.KindValidation, "invalid request body", err),
			"failed to parse draft")
		return
	}

	result, err := h.service.Validate(c.Request.Context(), userID, draft)
	if err != nil {
		responses.HandleError(c, err, "failed to validate post")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Publish handles POST /v1/posts
// @Summary Publish a post
// @Description Publishes the draft to every selected platform in one call
// @Tags Posts
// @Accept json
// @Produce json
// @Success 201 {object} post.PublishResult
// @Success 200 {object} post.PublishResult "partial or full per-platform failure"
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 504 {object} responses.ErrorResponse
// @Router /v1/posts [post]
func (h *PostHandler) Publish(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var draft post.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		responses.HandleError(c,
			apierrors.Wrap(apierrors.KindValidation, "invalid request body", err),
			"failed to parse draft")
		return
	}

	result, err := h.service.Publish(c.Request.Context(), userID, draft)
	if err != nil {
		responses.HandleError(c, err, "failed to publish post")
		return
	}

	// Per-platform failures are a result, not a transport error: the
	// caller renders the itemized breakdown.
	status := http.StatusOK
	if result.Published {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}
