package domain

import (
	"errors"
	"time"
)

// Kind identifies a content namespace. The three kinds are structurally
// identical but live in separate tables, matching the published schema.
type Kind string

const (
	KindVideo   Kind = "video"
	KindPodcast Kind = "podcast"
	KindSummit  Kind = "summit"
)

// Kinds lists every known content kind.
var Kinds = []Kind{KindVideo, KindPodcast, KindSummit}

// Valid reports whether k is a known content kind.
func (k Kind) Valid() bool {
	switch k {
	case KindVideo, KindPodcast, KindSummit:
		return true
	}
	return false
}

var (
	ErrItemNotFound = errors.New("content item not found")
	ErrUnknownKind  = errors.New("unknown content kind")
)

// ContentItem is a catalog entry pointing at externally hosted media. The URL
// is opaque to the platform; playback happens on the hosting service.
type ContentItem struct {
	ID          uint      `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
