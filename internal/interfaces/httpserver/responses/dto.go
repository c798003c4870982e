package responses

import (
	"github.com/homehandshake/publish-api/internal/domain/account"
	"github.com/homehandshake/publish-api/internal/domain/clip"
	"github.com/homehandshake/publish-api/internal/domain/platform"
)

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AccountListResponse wraps the connected-accounts directory.
type AccountListResponse struct {
	Data  []account.ConnectedAccount `json:"data"`
	Total int                        `json:"total"`
}

// ClipListResponse wraps the video clip listing.
type ClipListResponse struct {
	Data  []clip.Clip `json:"data"`
	Total int         `json:"total"`
}

// ClipDebugResponse is the verbose diagnostics view of the clip fetch.
type ClipDebugResponse struct {
	Success    bool        `json:"success"`
	ClipCount  int         `json:"clipCount"`
	SampleClip *clip.Clip  `json:"sampleClip,omitempty"`
	AllClips   []clip.Clip `json:"allClips"`
}

// PlatformCapability is the wire form of one capability table entry.
type PlatformCapability struct {
	ID             string   `json:"id"`
	RequiredFields []string `json:"requiredFields"`
	OptionalFields []string `json:"optionalFields"`
	CharacterLimit int      `json:"characterLimit"`
	MediaTypes     []string `json:"mediaTypes"`
	MaxMediaCount  int      `json:"maxMediaCount"`
}

// PlatformListResponse wraps the capability table.
type PlatformListResponse struct {
	Data []PlatformCapability `json:"data"`
}

// LimitResponse reports the aggregate character limit for a selection.
type LimitResponse struct {
	Limit     int  `json:"limit"`
	Unlimited bool `json:"unlimited"`
	OverLimit bool `json:"overLimit"`
}

// MapCapability converts a capability table entry to its wire form.
func MapCapability(id string, c platform.Capability) PlatformCapability {
	media := make([]string, 0, len(c.MediaTypes))
	for _, m := range c.MediaTypes {
		media = append(media, string(m))
	}
	return PlatformCapability{
		ID:             id,
		RequiredFields: c.RequiredFields,
		OptionalFields: c.OptionalFields,
		CharacterLimit: c.CharacterLimit,
		MediaTypes:     media,
		MaxMediaCount:  c.MaxMediaCount,
	}
}
