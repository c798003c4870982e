// Package diagnostics exercises the webhook and credential plumbing so
// operators can tell which authentication scheme the upstream expects
// and whether a user's profile key is accepted at all.
package diagnostics

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/post"
)

// ProbeResult is the outcome of one authentication-scheme probe. A
// failed probe is itself a result, never an error of the whole run.
type ProbeResult struct {
	Method     string `json:"method"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
	Body       string `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ProbeReport aggregates all scheme probes for one credential.
type ProbeReport struct {
	WebhookURL       string        `json:"webhookUrl"`
	ProfileKeyLength int           `json:"profileKeyLength"`
	ProfileKeyPrefix string        `json:"profileKeyPrefix"`
	Results          []ProbeResult `json:"testResults"`
}

// KeyCheck is the outcome of a single authenticated smoke call.
type KeyCheck struct {
	ProfileKeyPrefix string `json:"profileKey"`
	WebhookStatus    int    `json:"webhookStatus"`
	Response         any    `json:"webhookResponse"`
	Success          bool   `json:"success"`
}

// Prober runs the upstream-facing probe calls.
type Prober interface {
	ProbeAuthSchemes(ctx context.Context, profileKey string) []ProbeResult
	CheckProfileKey(ctx context.Context, profileKey string) (*KeyCheck, error)
}

// Service exposes the diagnostic workflows.
type Service interface {
	Probes(ctx context.Context, userID string) (*ProbeReport, error)
	ProfileKeyCheck(ctx context.Context, userID string) (*KeyCheck, error)
}

type service struct {
	prober      Prober
	credentials post.Credentials
	webhookURL  string
	log         zerolog.Logger
}

// NewService constructs the diagnostics service.
func NewService(prober Prober, credentials post.Credentials, webhookURL string, log zerolog.Logger) Service {
	return &service{
		prober:      prober,
		credentials: credentials,
		webhookURL:  webhookURL,
		log:         log.With().Str("domain", "diagnostics").Logger(),
	}
}

// Probes runs every authentication-scheme probe against the webhook and
// reports each outcome independently.
func (s *service) Probes(ctx context.Context, userID string) (*ProbeReport, error) {
	profileKey, err := s.credentials.ProfileKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("profile_key", MaskKey(profileKey)).Msg("probing webhook auth schemes")
	results := s.prober.ProbeAuthSchemes(ctx, profileKey)

	return &ProbeReport{
		WebhookURL:       s.webhookURL,
		ProfileKeyLength: len(profileKey),
		ProfileKeyPrefix: MaskKey(profileKey),
		Results:          results,
	}, nil
}

// ProfileKeyCheck makes one authenticated call with the user's key and
// reports whether the upstream accepted it.
func (s *service) ProfileKeyCheck(ctx context.Context, userID string) (*KeyCheck, error) {
	profileKey, err := s.credentials.ProfileKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	check, err := s.prober.CheckProfileKey(ctx, profileKey)
	if err != nil {
		return nil, err
	}
	check.ProfileKeyPrefix = MaskKey(profileKey)
	return check, nil
}

// MaskKey truncates a credential for logs and diagnostic bodies.
func MaskKey(key string) string {
	const visible = 8
	if len(key) <= visible {
		return key
	}
	return key[:visible] + "..."
}
