// Package trailer resolves a catalog title to a playable YouTube trailer.
package trailer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/s0up4200/marquee/tmdb"
)

const (
	youTubeWatchURL = "https://www.youtube.com/watch"
	youTubeEmbedURL = "https://www.youtube.com/embed/"
)

// Trailer is a resolved trailer clip
type Trailer struct {
	Clip tmdb.VideoClip
}

// Key returns the YouTube video id
func (t Trailer) Key() string {
	return t.Clip.Key
}

// WatchURL returns the YouTube watch page URL for the trailer
func (t Trailer) WatchURL() string {
	return youTubeWatchURL + "?" + url.Values{"v": {t.Clip.Key}}.Encode()
}

// EmbedURL returns the URL an embedded player loads
func (t Trailer) EmbedURL() string {
	return youTubeEmbedURL + url.PathEscape(t.Clip.Key)
}

// Select returns the first YouTube trailer in API order
func Select(clips []tmdb.VideoClip) (tmdb.VideoClip, bool) {
	return lo.Find(clips, func(c tmdb.VideoClip) bool {
		return c.IsYouTubeTrailer()
	})
}

// Resolver looks up trailers. Every call issues exactly one request; nothing
// is cached between calls.
type Resolver struct {
	api       tmdb.Getter
	endpoints *tmdb.Endpoints
	logger    zerolog.Logger
}

// NewResolver creates a new trailer resolver
func NewResolver(api tmdb.Getter, endpoints *tmdb.Endpoints, logger zerolog.Logger) *Resolver {
	return &Resolver{
		api:       api,
		endpoints: endpoints,
		logger:    logger,
	}
}

// Resolve fetches the videos of title and selects its trailer. A title
// without an id fails with ErrMissingIdentifier before any request is made.
func (r *Resolver) Resolve(ctx context.Context, title tmdb.Title) (Trailer, error) {
	id, ok := title.ID.Get()
	if !ok {
		return Trailer{}, fmt.Errorf("resolve trailer for %q: %w", title.DisplayName(""), tmdb.ErrMissingIdentifier)
	}

	videos, err := tmdb.Fetch[tmdb.VideoListing](ctx, r.api, r.endpoints.MovieVideos(id))
	if err != nil {
		return Trailer{}, fmt.Errorf("resolve trailer for movie %d: %w", id, err)
	}

	clip, found := Select(videos.Results)
	if !found {
		r.logger.Debug().
			Int("movie_id", id).
			Int("clips", len(videos.Results)).
			Msg("No YouTube trailer listed")
		return Trailer{}, fmt.Errorf("movie %d: %w", id, tmdb.ErrNoTrailerFound)
	}

	r.logger.Debug().
		Int("movie_id", id).
		Str("key", clip.Key).
		Msg("Resolved trailer")

	return Trailer{Clip: clip}, nil
}

// ResolveKey resolves title and returns the trailer's video id
func (r *Resolver) ResolveKey(ctx context.Context, title tmdb.Title) (string, error) {
	t, err := r.Resolve(ctx, title)
	if err != nil {
		return "", err
	}
	return t.Key(), nil
}

// ResolveURL resolves title and returns the trailer's watch page URL
func (r *Resolver) ResolveURL(ctx context.Context, title tmdb.Title) (string, error) {
	t, err := r.Resolve(ctx, title)
	if err != nil {
		return "", err
	}
	return t.WatchURL(), nil
}
