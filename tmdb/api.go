package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Getter is the network-facing primitive shared by the catalog source and
// the trailer resolver. *Client implements it; tests substitute fakes.
type Getter interface {
	// Get performs one GET and returns the body of a 2xx response
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

const apiKeyParam = "api_key"

// DefaultBaseURL is the public v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Endpoints builds request URLs for a base URL and API key
type Endpoints struct {
	base   *url.URL
	apiKey string
}

// NewEndpoints validates baseURL and returns a URL builder. The API key is
// passed through untouched.
func NewEndpoints(baseURL, apiKey string) (*Endpoints, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidURL, baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidURL, baseURL)
	}
	u.RawQuery = ""
	u.Fragment = ""

	return &Endpoints{base: u, apiKey: apiKey}, nil
}

// MovieList returns {base}/movie/{segment}?api_key={key}
func (e *Endpoints) MovieList(segment string) string {
	return e.build("movie", segment)
}

// MovieVideos returns {base}/movie/{id}/videos?api_key={key}
func (e *Endpoints) MovieVideos(id int) string {
	return e.build("movie", strconv.Itoa(id), "videos")
}

func (e *Endpoints) build(segments ...string) string {
	u := *e.base
	u.Path = u.Path + "/" + strings.Join(segments, "/")
	u.RawPath = ""
	u.RawQuery = url.Values{apiKeyParam: {e.apiKey}}.Encode()
	return u.String()
}
