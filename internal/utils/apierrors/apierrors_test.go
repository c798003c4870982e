package apierrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected apierrors.Kind
	}{
		{"typed error", apierrors.New(apierrors.KindValidation, "bad draft"), apierrors.KindValidation},
		{"wrapped typed error", fmt.Errorf("outer: %w", apierrors.New(apierrors.KindUpstreamTimeout, "slow")), apierrors.KindUpstreamTimeout},
		{"plain error", errors.New("boom"), apierrors.KindInternal},
		{"nil error", nil, apierrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apierrors.KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind     apierrors.Kind
		expected int
	}{
		{apierrors.KindUnauthenticated, http.StatusUnauthorized},
		{apierrors.KindMissingCredential, http.StatusBadRequest},
		{apierrors.KindValidation, http.StatusBadRequest},
		{apierrors.KindUpstreamTimeout, http.StatusGatewayTimeout},
		{apierrors.KindUpstreamRejected, http.StatusInternalServerError},
		{apierrors.KindUpstreamUnreachable, http.StatusInternalServerError},
		{apierrors.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := apierrors.HTTPStatus(tt.kind); got != tt.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apierrors.Wrap(apierrors.KindUpstreamUnreachable, "the publish call failed", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if apierrors.MessageOf(err) != "the publish call failed" {
		t.Errorf("MessageOf() = %q, want the wrapper message", apierrors.MessageOf(err))
	}
}
