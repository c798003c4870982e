package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/user"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/responses"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// UserHandler exposes the identity metadata operations.
type UserHandler struct {
	service user.Service
	log     zerolog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(service user.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With().Str("handler", "user").Logger(),
	}
}

// Activate handles POST /v1/user/activate
// @Summary Activate the user's account
// @Tags User
// @Produce json
// @Success 200 {object} responses.MessageResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/user/activate [post]
func (h *UserHandler) Activate(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.service.Activate(c.Request.Context(), userID); err != nil {
		responses.HandleError(c, err, "failed to activate account")
		return
	}

	c.JSON(http.StatusOK, responses.MessageResponse{
		Success: true,
		Message: "account activated successfully",
	})
}

// Status handles GET /v1/user/status
// @Summary Account status from identity metadata
// @Tags User
// @Produce json
// @Success 200 {object} user.Status
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/user/status [get]
func (h *UserHandler) Status(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	status, err := h.service.Status(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, err, "failed to check account status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// SetStatus handles POST /v1/user/status
// @Summary Set the account activation flag
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/user/status [post]
func (h *UserHandler) SetStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var body struct {
		ActiveAccount *bool `json:"activeAccount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ActiveAccount == nil {
		responses.HandleError(c,
			apierrors.New(apierrors.KindValidation, "activeAccount is required"),
			"failed to parse request")
		return
	}

	if err := h.service.SetActive(c.Request.Context(), userID, *body.ActiveAccount); err != nil {
		responses.HandleError(c, err, "failed to set account status")
		return
	}

	c.JSON(http.StatusOK, responses.MessageResponse{
		Success: true,
		Message: "account status updated",
	})
}
