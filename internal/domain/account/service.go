package account

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/post"
)

// Directory is the upstream surface that reports connected accounts.
type Directory interface {
	UserProfile(ctx context.Context, profileKey string) (*DirectoryResponse, error)
}

// Service lists the connected accounts of a user.
type Service interface {
	List(ctx context.Context, userID string) []ConnectedAccount
}

type service struct {
	directory   Directory
	credentials post.Credentials
	log         zerolog.Logger
}

// NewService constructs the account service.
func NewService(directory Directory, credentials post.Credentials, log zerolog.Logger) Service {
	return &service{
		directory:   directory,
		credentials: credentials,
		log:         log.With().Str("domain", "account").Logger(),
	}
}

// List returns the connected accounts for the user. The listing is
// advisory UI information: any failure, including a missing credential,
// degrades to an empty list rather than an error.
func (s *service) List(ctx context.Context, userID string) []ConnectedAccount {
	profileKey, err := s.credentials.ProfileKey(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Msg("account listing skipped: no credential")
		return []ConnectedAccount{}
	}

	resp, err := s.directory.UserProfile(ctx, profileKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("account listing failed")
		return []ConnectedAccount{}
	}

	return resp.Normalize()
}
