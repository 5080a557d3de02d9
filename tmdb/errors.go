package tmdb

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by this package and by the catalog and
// trailer packages matches exactly one of these with errors.Is.
var (
	// ErrInvalidURL indicates a request URL could not be built or parsed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrTransport indicates a network, IO or non-2xx HTTP failure
	ErrTransport = errors.New("transport failure")
	// ErrDecode indicates the response body did not match the expected shape
	ErrDecode = errors.New("decode failure")
	// ErrMissingIdentifier indicates a title without an id was asked for videos
	ErrMissingIdentifier = errors.New("title has no identifier")
	// ErrNoTrailerFound indicates no YouTube trailer was listed for a title
	ErrNoTrailerFound = errors.New("no trailer found")
)

// Kind classifies a failure for presentation code
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidURL
	KindTransport
	KindDecode
	KindMissingIdentifier
	KindNoTrailerFound
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "INVALID_URL"
	case KindTransport:
		return "TRANSPORT_FAILURE"
	case KindDecode:
		return "DECODE_FAILURE"
	case KindMissingIdentifier:
		return "MISSING_IDENTIFIER"
	case KindNoTrailerFound:
		return "NO_TRAILER_FOUND"
	default:
		return "UNKNOWN"
	}
}

// KindOf maps err to its failure kind
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidURL):
		return KindInvalidURL
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrMissingIdentifier):
		return KindMissingIdentifier
	case errors.Is(err, ErrNoTrailerFound):
		return KindNoTrailerFound
	default:
		return KindUnknown
	}
}

// FetchError is returned by Get and Fetch. Kind is one of the sentinel errors
// above; Err is the underlying cause.
type FetchError struct {
	Kind error
	URL  string
	Err  error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("tmdb: %v: %s", e.Kind, e.URL)
	}
	return fmt.Sprintf("tmdb: %v: %s: %v", e.Kind, e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the failure kind of this error
func (e *FetchError) Is(target error) bool {
	return e.Kind == target
}

// APIError represents a non-2xx response from the catalog API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
