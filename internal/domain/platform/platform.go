// Package platform holds the static publishing constraints for every
// social network the aggregation API can post to.
package platform

import "sort"

// MediaType is a kind of attachable media.
type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// Capability describes what a platform accepts in a post payload.
type Capability struct {
	RequiredFields []string
	OptionalFields []string
	CharacterLimit int
	MediaTypes     []MediaType
	MaxMediaCount  int
}

// SupportsMedia reports whether the platform accepts the given media kind.
func (c Capability) SupportsMedia(kind MediaType) bool {
	for _, m := range c.MediaTypes {
		if m == kind {
			return true
		}
	}
	return false
}

var capabilities = map[string]Capability{
	"instagram": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "instagramOptions"},
		CharacterLimit: 2200,
		MediaTypes:     []MediaType{MediaImage, MediaVideo},
		MaxMediaCount:  10,
	},
	"linkedin": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "linkedinOptions"},
		CharacterLimit: 3000,
		MediaTypes:     []MediaType{MediaImage, MediaVideo, MediaDocument},
		MaxMediaCount:  9,
	},
	"twitter": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "twitterOptions"},
		CharacterLimit: 280,
		MediaTypes:     []MediaType{MediaImage, MediaVideo},
		MaxMediaCount:  4,
	},
	"facebook": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "facebookOptions"},
		CharacterLimit: 63206,
		MediaTypes:     []MediaType{MediaImage, MediaVideo},
		MaxMediaCount:  10,
	},
	"youtube": {
		RequiredFields: []string{"post", "youtubeOptions.title"},
		OptionalFields: []string{"youtubeOptions.visibility", "youtubeOptions.tags"},
		CharacterLimit: 5000,
		MediaTypes:     []MediaType{MediaVideo},
		MaxMediaCount:  1,
	},
	"threads": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "threadsOptions"},
		CharacterLimit: 500,
		MediaTypes:     []MediaType{MediaImage, MediaVideo},
		MaxMediaCount:  20,
	},
	"tiktok": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "tiktokOptions"},
		CharacterLimit: 2200,
		MediaTypes:     []MediaType{MediaVideo},
		MaxMediaCount:  1,
	},
	"pinterest": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "pinterestOptions"},
		CharacterLimit: 500,
		MediaTypes:     []MediaType{MediaImage},
		MaxMediaCount:  1,
	},
	"reddit": {
		RequiredFields: []string{"post", "redditOptions.title", "redditOptions.subreddit"},
		OptionalFields: []string{"mediaUrls", "redditOptions.link"},
		CharacterLimit: 40000,
		MediaTypes:     []MediaType{MediaImage},
		MaxMediaCount:  1,
	},
	"snapchat": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "snapchatOptions"},
		CharacterLimit: 250,
		MediaTypes:     []MediaType{MediaImage, MediaVideo},
		MaxMediaCount:  1,
	},
	"telegram": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "telegramOptions"},
		CharacterLimit: 4096,
		MediaTypes:     []MediaType{MediaImage, MediaVideo, MediaDocument},
		MaxMediaCount:  10,
	},
	"bluesky": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "blueskyOptions"},
		CharacterLimit: 300,
		MediaTypes:     []MediaType{MediaImage},
		MaxMediaCount:  4,
	},
	"gmb": {
		RequiredFields: []string{"post"},
		OptionalFields: []string{"mediaUrls", "gmbOptions"},
		CharacterLimit: 1500,
		MediaTypes:     []MediaType{MediaImage, MediaVideo},
		MaxMediaCount:  10,
	},
}

// Lookup returns the capability entry for a platform identifier. The
// second return is false for identifiers the table does not know;
// callers must treat that as "unsupported here" rather than an error,
// since the aggregation API is the final authority on platform support.
func Lookup(id string) (Capability, bool) {
	c, ok := capabilities[id]
	return c, ok
}

// Known returns the sorted list of platform identifiers in the table.
func Known() []string {
	ids := make([]string, 0, len(capabilities))
	for id := range capabilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OptionsKey returns the payload field name carrying platform specific
// options, e.g. "twitterOptions".
func OptionsKey(id string) string {
	return id + "Options"
}
