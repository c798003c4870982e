// Package clip lists the user's rendered video clips from the clips
// webhook, so they can be attached to a post by URL.
package clip

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/post"
)

// Clip is one rendered video, as stored by the rendering pipeline. The
// webhook returns storage-object metadata; only the fields the compose
// flow needs are kept.
type Clip struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MediaURL    string `json:"mediaLink"`
	ContentType string `json:"contentType"`
	Bucket      string `json:"bucket"`
	Size        string `json:"size"`
	TimeCreated string `json:"timeCreated"`
}

// Fetcher is the webhook surface that returns clips.
type Fetcher interface {
	FetchClips(ctx context.Context, profileKey string) ([]Clip, error)
}

// Service lists video clips for a user.
type Service interface {
	List(ctx context.Context, userID string) ([]Clip, error)
}

type service struct {
	fetcher     Fetcher
	credentials post.Credentials
	log         zerolog.Logger
}

// NewService constructs the clip service.
func NewService(fetcher Fetcher, credentials post.Credentials, log zerolog.Logger) Service {
	return &service{
		fetcher:     fetcher,
		credentials: credentials,
		log:         log.With().Str("domain", "clip").Logger(),
	}
}

// List returns the user's clips. Unlike account listing this is a
// primary operation: failures propagate typed so the handler can map
// timeouts and upstream errors to distinct statuses.
func (s *service) List(ctx context.Context, userID string) ([]Clip, error) {
	profileKey, err := s.credentials.ProfileKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	clips, err := s.fetcher.FetchClips(ctx, profileKey)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("count", len(clips)).Msg("clips fetched")
	return clips, nil
}
