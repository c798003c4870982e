// Package post implements the compose workflow: draft normalization,
// payload assembly, validation and publishing against the aggregation
// API, and interpretation of its per-platform results.
package post

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/homehandshake/publish-api/internal/domain/platform"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

// NoCharacterLimit is returned by AggregateCharacterLimit when no
// selected platform contributes a limit. It is deliberately not zero:
// a zero limit would block all text.
const NoCharacterLimit = -1

// Draft is the in-memory, never-persisted representation of a post
// being composed. It is rebuilt fresh for every compose session.
type Draft struct {
	Text      string                    `json:"post"`
	Platforms []string                  `json:"platforms"`
	MediaURLs []string                  `json:"mediaUrls,omitempty"`
	Options   map[string]map[string]any `json:"platformOptions,omitempty"`
}

// Normalize trims the text, lowercases and dedupes target platforms,
// and drops blank media URLs. Order is preserved; the first media item
// is significant for single-media platforms.
func (d *Draft) Normalize() {
	d.Text = strings.TrimSpace(d.Text)

	seen := make(map[string]struct{}, len(d.Platforms))
	targets := d.Platforms[:0]
	for _, p := range d.Platforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		targets = append(targets, p)
	}
	d.Platforms = targets

	urls := d.MediaURLs[:0]
	for _, u := range d.MediaURLs {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		urls = append(urls, u)
	}
	d.MediaURLs = urls
}

// CheckLocal enforces the invariants that must hold before any network
// call: at least one target platform, non-empty text, and well-formed
// absolute media URLs. Callers normalize first.
func (d *Draft) CheckLocal() error {
	if len(d.Platforms) == 0 {
		return apierrors.New(apierrors.KindValidation, "select at least one platform")
	}
	if d.Text == "" {
		return apierrors.New(apierrors.KindValidation, "post text is required")
	}
	for _, raw := range d.MediaURLs {
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return apierrors.New(apierrors.KindValidation, fmt.Sprintf("media URL %q is not a valid absolute URL", raw))
		}
	}
	return nil
}

// AggregateCharacterLimit computes the strictest character limit across
// the given platforms. Platforms without a capability entry do not
// participate; an artificial low limit from a missing entry would be
// worse than deferring to the upstream validator.
func AggregateCharacterLimit(platforms []string) int {
	limit := NoCharacterLimit
	for _, p := range platforms {
		entry, ok := platform.Lookup(p)
		if !ok {
			continue
		}
		if limit == NoCharacterLimit || entry.CharacterLimit < limit {
			limit = entry.CharacterLimit
		}
	}
	return limit
}

// OverLimit reports whether text exceeds the aggregate limit for the
// selected platforms. Always false when no platform contributes a limit.
func OverLimit(text string, platforms []string) bool {
	limit := AggregateCharacterLimit(platforms)
	if limit == NoCharacterLimit {
		return false
	}
	return len([]rune(text)) > limit
}

// BuildPayload assembles the wire payload for the validation and publish
// endpoints. mediaUrls is omitted entirely when empty, and one
// "<platform>Options" field is added per target platform carrying a
// non-empty option block.
func BuildPayload(d Draft) map[string]any {
	payload := map[string]any{
		"post":      d.Text,
		"platforms": d.Platforms,
	}

	if len(d.MediaURLs) > 0 {
		payload["mediaUrls"] = d.MediaURLs
	}

	for _, p := range d.Platforms {
		opts := d.Options[p]
		if len(opts) == 0 {
			continue
		}
		payload[platform.OptionsKey(p)] = opts
	}

	return payload
}
