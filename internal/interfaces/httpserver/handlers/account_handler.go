package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/account"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/responses"
)

// AccountHandler exposes the connected-accounts directory.
type AccountHandler struct {
	service account.Service
	log     zerolog.Logger
}

// NewAccountHandler constructs the handler.
func NewAccountHandler(service account.Service, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		log:     log.With().Str("handler", "account").Logger(),
	}
}

// List handles GET /v1/accounts
// @Summary List connected social accounts
// @Description Returns the user's connected accounts; degrades to an empty list on upstream failure
// @Tags Accounts
// @Produce json
// @Success 200 {object} responses.AccountListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	accounts := h.service.List(c.Request.Context(), userID)
	c.JSON(http.StatusOK, responses.AccountListResponse{
		Data:  accounts,
		Total: len(accounts),
	})
}
