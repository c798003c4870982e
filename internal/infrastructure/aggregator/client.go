// Package aggregator is the HTTP client for the external social-media
// aggregation API and the clips webhook. Every call carries the
// per-user profile key and is bounded by one uniform timeout.
package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/account"
	"github.com/homehandshake/publish-api/internal/domain/clip"
	"github.com/homehandshake/publish-api/internal/domain/diagnostics"
	"github.com/homehandshake/publish-api/internal/domain/post"
	"github.com/homehandshake/publish-api/internal/infrastructure/metrics"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

const (
	profileKeyHeader = "Profile-Key"
	userAgent        = "HomeHandshake/1.0"
)

// Config carries the explicit client configuration; there is no
// package-level instance.
type Config struct {
	APIURL     string
	WebhookURL string
	Timeout    time.Duration
}

// Client talks to the aggregation API and the clips webhook.
type Client struct {
	api        *resty.Client
	webhook    *resty.Client
	webhookURL string
	log        zerolog.Logger
}

var (
	_ post.Gateway       = (*Client)(nil)
	_ account.Directory  = (*Client)(nil)
	_ clip.Fetcher       = (*Client)(nil)
	_ diagnostics.Prober = (*Client)(nil)
)

// NewClient constructs the aggregation client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	api := resty.New().
		SetBaseURL(cfg.APIURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(cfg.Timeout)
	webhook := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(cfg.Timeout)

	return &Client{
		api:        api,
		webhook:    webhook,
		webhookURL: cfg.WebhookURL,
		log:        log.With().Str("client", "aggregator").Logger(),
	}
}

// ValidatePost asks the aggregation API to validate an assembled
// payload against every selected platform's rules. Platform-rule
// rejections arrive as an error HTTP status whose body still carries
// the status/message shape; those are results, not transport errors.
func (c *Client) ValidatePost(ctx context.Context, profileKey string, payload map[string]any) (*post.ValidateResponse, error) {
	var result post.ValidateResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(profileKeyHeader, profileKey).
		SetBody(payload).
		SetResult(&result).
		Post("/validate-post")
	if err == nil && resp.IsError() {
		var rejection post.ValidateResponse
		if jsonErr := json.Unmarshal(resp.Body(), &rejection); jsonErr == nil &&
			(rejection.Status != "" || rejection.Message != "") {
			metrics.RecordUpstream("validate", "rejected")
			return &rejection, nil
		}
	}
	if err := c.classify("validate", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// PublishPost submits the payload for publishing. The upstream reports
// per-platform failures in the body; when an error status still carries
// a parseable failure payload, that payload is returned so the caller
// can flatten it instead of losing the per-platform detail.
func (c *Client) PublishPost(ctx context.Context, profileKey string, payload map[string]any) (*post.PublishResponse, error) {
	var result post.PublishResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(profileKeyHeader, profileKey).
		SetBody(payload).
		SetResult(&result).
		Post("/post")
	if err == nil && resp.IsError() {
		var failure post.PublishResponse
		if jsonErr := json.Unmarshal(resp.Body(), &failure); jsonErr == nil &&
			(len(failure.Posts) > 0 || len(failure.Errors) > 0) {
			metrics.RecordUpstream("publish", "rejected")
			return &failure, nil
		}
	}
	if err := c.classify("publish", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// UserProfile fetches the connected-accounts directory for a profile.
func (c *Client) UserProfile(ctx context.Context, profileKey string) (*account.DirectoryResponse, error) {
	var result account.DirectoryResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader(profileKeyHeader, profileKey).
		SetQueryParam("instagramDetails", "true").
		SetResult(&result).
		Get("/user")
	if err := c.classify("user", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchClips fetches video clips from the webhook. Bodies that are not
// a JSON array normalize to an empty list.
func (c *Client) FetchClips(ctx context.Context, profileKey string) ([]clip.Clip, error) {
	resp, err := c.webhook.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("profile-key", profileKey).
		Get(c.webhookURL)
	if err := c.classify("clips", resp, err); err != nil {
		return nil, err
	}

	var clips []clip.Clip
	if err := json.Unmarshal(resp.Body(), &clips); err != nil {
		c.log.Debug().Msg("webhook returned a non-array body, treating as empty")
		return []clip.Clip{}, nil
	}
	return clips, nil
}

// CheckProfileKey makes one authenticated webhook call to verify the
// credential is accepted.
func (c *Client) CheckProfileKey(ctx context.Context, profileKey string) (*diagnostics.KeyCheck, error) {
	resp, err := c.webhook.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("profile-key", profileKey).
		Get(c.webhookURL)
	if err != nil {
		return nil, c.classify("keycheck", resp, err)
	}

	var body any
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr != nil {
		body = resp.String()
	}
	metrics.RecordUpstream("keycheck", outcomeOf(resp))
	return &diagnostics.KeyCheck{
		WebhookStatus: resp.StatusCode(),
		Response:      body,
		Success:       resp.IsSuccess(),
	}, nil
}

// ProbeAuthSchemes issues one webhook probe per authentication scheme.
// The probes are independent GETs with no shared state; they run
// concurrently and each reports its own outcome, so one slow or failing
// scheme never hides the others.
func (c *Client) ProbeAuthSchemes(ctx context.Context, profileKey string) []diagnostics.ProbeResult {
	probes := []struct {
		method  string
		request func() *resty.Request
	}{
		{"profile-key header", func() *resty.Request {
			return c.webhook.R().SetHeader("profile-key", profileKey)
		}},
		{"Authorization Bearer", func() *resty.Request {
			return c.webhook.R().SetHeader("Authorization", "Bearer "+profileKey)
		}},
		{"X-API-Key header", func() *resty.Request {
			return c.webhook.R().SetHeader("X-API-Key", profileKey)
		}},
		{"query parameter", func() *resty.Request {
			return c.webhook.R().SetQueryParam("key", profileKey)
		}},
	}

	results := make([]diagnostics.ProbeResult, len(probes))
	var wg sync.WaitGroup
	for i, p := range probes {
		wg.Add(1)
		go func(i int, method string, build func() *resty.Request) {
			defer wg.Done()
			resp, err := build().
				SetContext(ctx).
				SetHeader("Content-Type", "application/json").
				Get(c.webhookURL)
			if err != nil {
				results[i] = diagnostics.ProbeResult{Method: method, Error: err.Error()}
				return
			}
			results[i] = diagnostics.ProbeResult{
				Method:     method,
				Status:     resp.StatusCode(),
				StatusText: http.StatusText(resp.StatusCode()),
				Body:       truncate(resp.String(), 512),
			}
		}(i, p.method, p.request)
	}
	wg.Wait()
	return results
}

// classify converts transport and status failures into the typed
// taxonomy the handlers map to HTTP statuses. nil on success.
func (c *Client) classify(endpoint string, resp *resty.Response, err error) error {
	if err != nil {
		if isTimeout(err) {
			metrics.RecordUpstream(endpoint, "timeout")
			return apierrors.Wrap(apierrors.KindUpstreamTimeout,
				fmt.Sprintf("the %s call took too long to respond", endpoint), err)
		}
		metrics.RecordUpstream(endpoint, "unreachable")
		return apierrors.Wrap(apierrors.KindUpstreamUnreachable,
			fmt.Sprintf("the %s call failed", endpoint), err)
	}
	if resp.IsError() {
		metrics.RecordUpstream(endpoint, "rejected")
		return apierrors.New(apierrors.KindUpstreamRejected, upstreamMessage(endpoint, resp))
	}
	metrics.RecordUpstream(endpoint, "success")
	return nil
}

// upstreamMessage prefers the upstream's own error message, falling
// back to a status-derived one.
func upstreamMessage(endpoint string, resp *resty.Response) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("%s error: %d %s", endpoint, resp.StatusCode(), http.StatusText(resp.StatusCode()))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func outcomeOf(resp *resty.Response) string {
	if resp.IsError() {
		return "rejected"
	}
	return "success"
}
