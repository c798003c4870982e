// Package user reads and updates the identity provider metadata this
// service depends on: the per-user aggregation credential and the
// account activation flag.
package user

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// Metadata keys in the identity provider's public metadata store. The
// hyphenated spellings are load-bearing: they are what the provider
// actually stores.
const (
	MetaProfileKey    = "Profile-Key"
	MetaAccountActive = "account-active"
)

// MetadataStore is the identity provider surface this service consumes.
type MetadataStore interface {
	PublicMetadata(ctx context.Context, userID string) (map[string]any, error)
	UpdatePublicMetadata(ctx context.Context, userID string, patch map[string]any) error
}

// Status summarizes the account state stored in identity metadata.
type Status struct {
	UserID        string `json:"userId"`
	ProfileKeySet bool   `json:"profileKeySet"`
	AccountActive bool   `json:"accountActive"`
}

// Service exposes the identity metadata operations.
type Service interface {
	ProfileKey(ctx context.Context, userID string) (string, error)
	Activate(ctx context.Context, userID string) error
	SetActive(ctx context.Context, userID string, active bool) error
	Status(ctx context.Context, userID string) (*Status, error)
}

type service struct {
	store MetadataStore
	log   zerolog.Logger
}

// NewService constructs the user service.
func NewService(store MetadataStore, log zerolog.Logger) Service {
	return &service{
		store: store,
		log:   log.With().Str("domain", "user").Logger(),
	}
}

// ProfileKey resolves the per-user aggregation credential. Absence is a
// MissingCredential failure distinct from any transport error, and
// callers must not attempt upstream calls without it.
func (s *service) ProfileKey(ctx context.Context, userID string) (string, error) {
	meta, err := s.store.PublicMetadata(ctx, userID)
	if err != nil {
		return "", err
	}
	key, _ := meta[MetaProfileKey].(string)
	if key == "" {
		return "", apierrors.New(apierrors.KindMissingCredential, "profile key not found in user metadata")
	}
	return key, nil
}

// Activate marks the account active in identity metadata.
func (s *service) Activate(ctx context.Context, userID string) error {
	return s.SetActive(ctx, userID, true)
}

// SetActive writes the account activation flag.
func (s *service) SetActive(ctx context.Context, userID string, active bool) error {
	err := s.store.UpdatePublicMetadata(ctx, userID, map[string]any{
		MetaAccountActive: active,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Bool("active", active).Msg("account activation updated")
	return nil
}

// Status reports whether the credential is set and the account active.
// The activation flag has historically been stored as both bool and
// string; both spellings count.
func (s *service) Status(ctx context.Context, userID string) (*Status, error) {
	meta, err := s.store.PublicMetadata(ctx, userID)
	if err != nil {
		return nil, err
	}
	key, _ := meta[MetaProfileKey].(string)
	return &Status{
		UserID:        userID,
		ProfileKeySet: key != "",
		AccountActive: isActive(meta[MetaAccountActive]),
	}, nil
}

func isActive(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
