package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes a failure for HTTP status mapping and logging.
type Kind string

const (
	KindUnauthenticated     Kind = "UNAUTHENTICATED"
	KindMissingCredential   Kind = "MISSING_CREDENTIAL"
	KindValidation          Kind = "VALIDATION"
	KindUpstreamTimeout     Kind = "UPSTREAM_TIMEOUT"
	KindUpstreamRejected    Kind = "UPSTREAM_REJECTED"
	KindUpstreamUnreachable Kind = "UPSTREAM_UNREACHABLE"
	KindInternal            Kind = "INTERNAL"
)

// Error carries a failure kind alongside a user-facing message. The
// wrapped error preserves upstream detail for diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or KindInternal when err is not an
// *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// MessageOf extracts the user-facing message from err, falling back to
// err.Error() for untyped errors.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// HTTPStatus maps a failure kind to the status code the API surfaces.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindMissingCredential, KindValidation:
		return http.StatusBadRequest
	case KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	case KindUpstreamRejected, KindUpstreamUnreachable:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
