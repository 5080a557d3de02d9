package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		wantBody string
	}{
		{
			name:     "ok",
			status:   http.StatusOK,
			body:     `{"results":[]}`,
			wantBody: `{"results":[]}`,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"status_message":"boom"}`,
			wantErr: ErrTransport,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"status_message":"Invalid API key"}`,
			wantErr: ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(logger)
			body, err := client.Get(context.Background(), server.URL+"/movie/popular?api_key=k")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.status, apiErr.StatusCode)
				assert.Equal(t, tt.body, apiErr.Body)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestClientGetSendsOnlyDefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		assert.Equal(t, "k", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := NewClient(zerolog.Nop()).Get(context.Background(), server.URL+"/movie/popular?api_key=k")
	require.NoError(t, err)
}

func TestClientGetInvalidURL(t *testing.T) {
	client := NewClient(zerolog.Nop())

	for _, raw := range []string{"", "not a url", "://missing-scheme", "/movie/popular"} {
		_, err := client.Get(context.Background(), raw)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
		assert.Equal(t, KindInvalidURL, KindOf(err))
	}
}

func TestClientGetNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(zerolog.Nop())
	_, err := client.Get(context.Background(), url+"/movie/popular?api_key=secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotContains(t, err.Error(), "secret")
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/popular":
			w.Write([]byte(`{"results":[{"id":1,"title":"Heat","poster_path":"/heat.jpg"},{"id":2}]}`))
		case "/movie/broken":
			w.Write([]byte(`{"results":"nope"}`))
		case "/movie/garbage":
			w.Write([]byte(`<html>`))
		}
	}))
	defer server.Close()

	client := NewClient(zerolog.Nop())
	ctx := context.Background()

	t.Run("decodes listing", func(t *testing.T) {
		listing, err := Fetch[TitleListing](ctx, client, server.URL+"/movie/popular")
		require.NoError(t, err)
		require.Len(t, listing.Results, 2)
		assert.Equal(t, "Heat", listing.Results[0].Name.MustGet())
		assert.True(t, listing.Results[1].Name.IsAbsent())
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := Fetch[TitleListing](ctx, client, server.URL+"/movie/broken")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)
		assert.Equal(t, KindDecode, KindOf(err))
	})

	t.Run("not json", func(t *testing.T) {
		_, err := Fetch[VideoListing](ctx, client, server.URL+"/movie/garbage")
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client := NewClient(zerolog.Nop(), WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client := NewClient(zerolog.Nop(), WithHTTPClient(customClient))
		assert.Equal(t, customClient, client.httpClient)
	})
}

func TestEndpoints(t *testing.T) {
	e, err := NewEndpoints("https://api.themoviedb.org/3/", "abc 123")
	require.NoError(t, err)

	assert.Equal(t, "https://api.themoviedb.org/3/movie/top_rated?api_key=abc+123", e.MovieList("top_rated"))
	assert.Equal(t, "https://api.themoviedb.org/3/movie/550/videos?api_key=abc+123", e.MovieVideos(550))

	for _, bad := range []string{"", "api.themoviedb.org/3", "ftp://example.com", "http://"} {
		_, err := NewEndpoints(bad, "k")
		assert.ErrorIs(t, err, ErrInvalidURL, bad)
	}
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "https://x.test/movie/popular?api_key=REDACTED", redact("https://x.test/movie/popular?api_key=secret"))
	assert.Equal(t, "https://x.test/movie/popular", redact("https://x.test/movie/popular"))
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not Found"}
	assert.Equal(t, "tmdb API error: status 404: Not Found", err.Error())
	assert.True(t, err.IsNotFound())
	assert.False(t, err.IsUnauthorized())

	err.StatusCode = 401
	assert.True(t, err.IsUnauthorized())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, KindUnknown},
		{errors.New("other"), KindUnknown},
		{&FetchError{Kind: ErrTransport}, KindTransport},
		{ErrMissingIdentifier, KindMissingIdentifier},
		{ErrNoTrailerFound, KindNoTrailerFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err))
	}
	assert.Equal(t, "TRANSPORT_FAILURE", KindTransport.String())
	assert.Equal(t, "UNKNOWN", Kind(99).String())
}
