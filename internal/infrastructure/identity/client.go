// Package identity is the HTTP client for the identity provider's
// backend API. Only the user-metadata surface this service consumes is
// wrapped: reading public metadata and patching it.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/user"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// Config carries the explicit client configuration.
type Config struct {
	APIURL    string
	SecretKey string
	Timeout   time.Duration
}

// Client reads and writes identity provider user metadata.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

var _ user.MetadataStore = (*Client)(nil)

// NewClient constructs the identity client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.APIURL).
		SetAuthToken(cfg.SecretKey).
		SetTimeout(cfg.Timeout)

	return &Client{
		http: httpClient,
		log:  log.With().Str("client", "identity").Logger(),
	}
}

type userPayload struct {
	PublicMetadata map[string]any `json:"public_metadata"`
}

// PublicMetadata fetches the user's public metadata map.
func (c *Client) PublicMetadata(ctx context.Context, userID string) (map[string]any, error) {
	var result userPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetPathParam("userID", userID).
		Get("/users/{userID}")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	if result.PublicMetadata == nil {
		return map[string]any{}, nil
	}
	return result.PublicMetadata, nil
}

// UpdatePublicMetadata merges the patch into the user's public
// metadata. The provider merges top-level keys, so only the keys in
// patch are touched.
func (c *Client) UpdatePublicMetadata(ctx context.Context, userID string, patch map[string]any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(userPayload{PublicMetadata: patch}).
		SetPathParam("userID", userID).
		Patch("/users/{userID}/metadata")
	return classify(resp, err)
}

func classify(resp *resty.Response, err error) error {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apierrors.Wrap(apierrors.KindUpstreamTimeout, "the identity provider took too long to respond", err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return apierrors.Wrap(apierrors.KindUpstreamTimeout, "the identity provider took too long to respond", err)
		}
		return apierrors.Wrap(apierrors.KindUpstreamUnreachable, "the identity provider call failed", err)
	}
	if resp.IsError() {
		return apierrors.New(apierrors.KindUpstreamRejected,
			fmt.Sprintf("identity provider error: %d %s", resp.StatusCode(), http.StatusText(resp.StatusCode())))
	}
	return nil
}
