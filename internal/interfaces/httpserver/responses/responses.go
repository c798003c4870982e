package responses

import (
	"github.com/gin-gonic/gin"

	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HandleError maps a typed failure to its HTTP status and aborts the
// request. Untyped errors surface as 500 with the given message and the
// original error text preserved for diagnostics.
func HandleError(c *gin.Context, err error, message string) {
	kind := apierrors.KindOf(err)
	c.AbortWithStatusJSON(apierrors.HTTPStatus(kind), ErrorResponse{
		Code:    string(kind),
		Error:   apierrors.MessageOf(err),
		Details: message,
	})
}
