package post

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/infrastructure/metrics"
)

// Gateway is the aggregation API surface the compose workflow consumes.
type Gateway interface {
	ValidatePost(ctx context.Context, profileKey string, payload map[string]any) (*ValidateResponse, error)
	PublishPost(ctx context.Context, profileKey string, payload map[string]any) (*PublishResponse, error)
}

// Credentials resolves the per-user aggregation credential.
type Credentials interface {
	ProfileKey(ctx context.Context, userID string) (string, error)
}

// Service drives the validate-then-publish workflow.
type Service interface {
	Validate(ctx context.Context, userID string, draft Draft) (*ValidationResult, error)
	Publish(ctx context.Context, userID string, draft Draft) (*PublishResult, error)
}

type service struct {
	gateway     Gateway
	credentials Credentials
	log         zerolog.Logger
}

// NewService constructs the post service.
func NewService(gateway Gateway, credentials Credentials, log zerolog.Logger) Service {
	return &service{
		gateway:     gateway,
		credentials: credentials,
		log:         log.With().Str("domain", "post").Logger(),
	}
}

// Validate normalizes and locally checks the draft, then asks the
// aggregation API to validate it. The credential is resolved before any
// network call; a missing credential never reaches the wire.
func (s *service) Validate(ctx context.Context, userID string, draft Draft) (*ValidationResult, error) {
	profileKey, err := s.credentials.ProfileKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft.Normalize()
	if err := draft.CheckLocal(); err != nil {
		return nil, err
	}

	resp, err := s.gateway.ValidatePost(ctx, profileKey, BuildPayload(draft))
	if err != nil {
		return nil, err
	}

	result := resp.Result()
	result.Stage = StageSetup
	if result.Accepted {
		result.Stage, _ = StageSetup.TransitionTo(StageReview)
	}
	s.log.Debug().
		Bool("accepted", result.Accepted).
		Int("warnings", len(result.Warnings)).
		Str("stage", result.Stage.String()).
		Strs("platforms", draft.Platforms).
		Msg("draft validated")
	return &result, nil
}

// Publish sends the draft to the publish endpoint and interprets the
// per-platform outcome. Publishing is not idempotent: a retry after a
// partial failure re-posts to platforms that already succeeded.
func (s *service) Publish(ctx context.Context, userID string, draft Draft) (*PublishResult, error) {
	profileKey, err := s.credentials.ProfileKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft.Normalize()
	if err := draft.CheckLocal(); err != nil {
		return nil, err
	}

	resp, err := s.gateway.PublishPost(ctx, profileKey, BuildPayload(draft))
	if err != nil {
		return nil, err
	}

	result := resp.Result()
	// Publishing happens from review; a failed attempt stays there so
	// the draft can be edited and retried.
	result.Stage = StageReview
	if result.Published {
		result.Stage, _ = StageReview.TransitionTo(StagePublished)
	}
	for _, id := range result.PostIDs {
		metrics.RecordPublish(id.Platform, "success")
	}
	for _, perr := range result.Errors {
		metrics.RecordPublish(perr.Platform, "error")
	}

	if result.Published {
		s.log.Info().
			Int("posts", len(result.PostIDs)).
			Strs("platforms", draft.Platforms).
			Msg("draft published")
	} else {
		s.log.Warn().
			Int("errors", len(result.Errors)).
			Strs("platforms", draft.Platforms).
			Msg("publish reported failures")
	}
	return &result, nil
}
