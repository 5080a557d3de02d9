package tmdb

import (
	"encoding/json"
	"strings"

	"github.com/samber/mo"
)

// Title is a single catalog entry. The API may omit any of its fields.
type Title struct {
	ID         mo.Option[int]
	Name       mo.Option[string]
	PosterPath mo.Option[string]
}

// titleWire is the JSON shape of a Title
type titleWire struct {
	ID         *int    `json:"id"`
	Title      *string `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// UnmarshalJSON decodes a Title, leaving absent or null fields empty
func (t *Title) UnmarshalJSON(b []byte) error {
	var w titleWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	t.ID = option(w.ID)
	t.Name = option(w.Title)
	t.PosterPath = option(w.PosterPath)
	return nil
}

// MarshalJSON encodes a Title in the wire shape, omitting absent fields
func (t Title) MarshalJSON() ([]byte, error) {
	w := struct {
		ID         *int    `json:"id,omitempty"`
		Title      *string `json:"title,omitempty"`
		PosterPath *string `json:"poster_path,omitempty"`
	}{
		ID:         pointer(t.ID),
		Title:      pointer(t.Name),
		PosterPath: pointer(t.PosterPath),
	}
	return json.Marshal(w)
}

// SameEntry reports whether both titles carry the same id. Titles without an
// id are never the same entry.
func (t Title) SameEntry(other Title) bool {
	id, ok := t.ID.Get()
	if !ok {
		return false
	}
	otherID, ok := other.ID.Get()
	return ok && id == otherID
}

// DisplayName returns the title name, or fallback when the API omitted it
func (t Title) DisplayName(fallback string) string {
	return t.Name.OrElse(fallback)
}

// PosterURL builds the image URL for the poster at the given size
// (e.g. "w500"), if the title has a poster
func (t Title) PosterURL(imageBase, size string) mo.Option[string] {
	path, ok := t.PosterPath.Get()
	if !ok || path == "" {
		return mo.None[string]()
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return mo.Some(strings.TrimRight(imageBase, "/") + "/" + size + path)
}

// TitleListing is the response of the movie list endpoints
type TitleListing struct {
	Results []Title `json:"results"`
}

// VideoClip is a video metadata record attached to a title
type VideoClip struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Clip types and sites used for trailer selection
const (
	ClipTypeTrailer = "Trailer"
	SiteYouTube     = "YouTube"
)

// IsYouTubeTrailer reports whether the clip is a trailer hosted on YouTube
func (c VideoClip) IsYouTubeTrailer() bool {
	return c.Type == ClipTypeTrailer && c.Site == SiteYouTube
}

// VideoListing is the response of the movie videos endpoint
type VideoListing struct {
	Results []VideoClip `json:"results"`
}

func option[T any](p *T) mo.Option[T] {
	if p == nil {
		return mo.None[T]()
	}
	return mo.Some(*p)
}

func pointer[T any](o mo.Option[T]) *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}
