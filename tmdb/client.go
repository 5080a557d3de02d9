package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Client performs GET requests against the catalog API
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new catalog API client
func NewClient(logger zerolog.Logger, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs one HTTP GET and returns the body of a 2xx response.
// Every failure is a *FetchError.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &FetchError{Kind: ErrInvalidURL, URL: redact(rawURL), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrInvalidURL, URL: redact(rawURL), Err: err}
	}

	c.logger.Debug().
		Str("url", redact(rawURL)).
		Msg("Making catalog API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: ErrTransport, URL: redact(rawURL), Err: scrub(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: ErrTransport, URL: redact(rawURL), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("url", redact(rawURL)).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Catalog API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Kind: ErrTransport,
			URL:  redact(rawURL),
			Err: &APIError{
				StatusCode: resp.StatusCode,
				Message:    http.StatusText(resp.StatusCode),
				Body:       string(body),
			},
		}
	}

	return body, nil
}

// Fetch performs one GET through g and decodes the JSON body into T
func Fetch[T any](ctx context.Context, g Getter, rawURL string) (T, error) {
	var out T

	body, err := g.Get(ctx, rawURL)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, &FetchError{Kind: ErrDecode, URL: redact(rawURL), Err: err}
	}

	return out, nil
}

// redact hides the api_key query parameter so URLs can be logged
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable>"
	}
	q := u.Query()
	if q.Has(apiKeyParam) {
		q.Set(apiKeyParam, "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// scrub replaces the URL inside a *url.Error, which net/http reports verbatim
func scrub(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return &url.Error{Op: uerr.Op, URL: redact(uerr.URL), Err: uerr.Err}
	}
	return err
}
