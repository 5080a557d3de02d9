// Package tmdb provides the transport and wire models for the movie catalog API.
//
// The package is organized into several components:
//
//   - Client: performs a single HTTP GET and returns the body of a 2xx response
//   - Fetch: decodes a response body into a caller-specified type
//   - Endpoints: builds list and video URLs for a base URL and API key
//   - Types: Title, TitleListing, VideoClip and VideoListing
//   - Errors: failure kinds matched with errors.Is
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := tmdb.NewClient(logger, tmdb.WithTimeout(10*time.Second))
//	endpoints, err := tmdb.NewEndpoints(tmdb.DefaultBaseURL, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	listing, err := tmdb.Fetch[tmdb.TitleListing](ctx, client, endpoints.MovieList("popular"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Calls are independent: there is no retry, no caching and no coalescing of
// identical in-flight requests.
//
// # Error Handling
//
// Every failure matches exactly one kind:
//
//   - ErrInvalidURL: the request URL could not be built or parsed
//   - ErrTransport: network or IO failure, or a non-2xx status (cause is *APIError)
//   - ErrDecode: the body did not decode into the requested type
//   - ErrMissingIdentifier, ErrNoTrailerFound: raised by trailer resolution
//
// KindOf maps an error to a Kind for display.
package tmdb
