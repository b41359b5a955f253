package sanctum

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// recordedRequest is what the mock server saw for one request
type recordedRequest struct {
	Method     string
	Path       string
	RawQuery   string
	Header     http.Header
	Body       []byte
	RequestURI string
}

// mockServer records every request and answers with the response returned by
// respond.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newMockServer(t *testing.T, respond func(r *http.Request) (int, string)) *mockServer {
	t.Helper()

	ms := &mockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read body: %v", err)
		}

		ms.mu.Lock()
		ms.requests = append(ms.requests, recordedRequest{
			Method:     r.Method,
			Path:       r.URL.Path,
			RawQuery:   r.URL.RawQuery,
			Header:     r.Header.Clone(),
			Body:       body,
			RequestURI: r.RequestURI,
		})
		ms.mu.Unlock()

		status, payload := respond(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, payload)
	}))
	t.Cleanup(ms.Close)

	return ms
}

func staticResponse(status int, body string) func(*http.Request) (int, string) {
	return func(*http.Request) (int, string) {
		return status, body
	}
}

func (ms *mockServer) last(t *testing.T) recordedRequest {
	t.Helper()

	ms.mu.Lock()
	defer ms.mu.Unlock()
	require.NotEmpty(t, ms.requests, "server received no requests")
	return ms.requests[len(ms.requests)-1]
}

func (ms *mockServer) count() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

func newTestClient(t *testing.T, apiURL string, opts ...Option) *Client {
	t.Helper()

	client, err := NewClient(apiURL, testToken, zerolog.Nop(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		apiURL  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			apiURL:  "http://localhost:8080/api",
			wantErr: false,
		},
		{
			name:    "trailing slash kept",
			apiURL:  "https://sanctum.example.com/",
			wantErr: false,
		},
		{
			name:    "missing URL",
			apiURL:  "",
			wantErr: true,
			errMsg:  "API URL is required",
		},
		{
			name:    "relative URL",
			apiURL:  "sanctum.example.com/api",
			wantErr: true,
			errMsg:  "must be absolute",
		},
		{
			name:    "unparsable URL",
			apiURL:  "http://[::1",
			wantErr: true,
			errMsg:  "invalid API URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiURL, testToken, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.apiURL, client.APIURL())
			assert.Equal(t, "Bearer "+testToken, client.header.Get("Authorization"))
			assert.Equal(t, DefaultUserAgent, client.header.Get("User-Agent"))
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost", testToken, logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("default timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost", testToken, logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost", testToken, logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Same(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("http://localhost", testToken, logger, WithUserAgent("lightning/4.0"))
		require.NoError(t, err)
		assert.Equal(t, "lightning/4.0", client.header.Get("User-Agent"))
	})

	t.Run("with concurrency", func(t *testing.T) {
		client, err := NewClient("http://localhost", testToken, logger, WithConcurrency(3))
		require.NoError(t, err)
		assert.Equal(t, 3, client.concurrency)

		client, err = NewClient("http://localhost", testToken, logger, WithConcurrency(0))
		require.NoError(t, err)
		assert.Equal(t, DefaultConcurrency, client.concurrency)
	})
}

func TestRequestHeaders(t *testing.T) {
	server := newMockServer(t, staticResponse(http.StatusOK, `{}`))
	client := newTestClient(t, server.URL)

	t.Run("without body", func(t *testing.T) {
		_, err := client.Request(context.Background(), http.MethodGet, "/guilds/1", nil, nil)
		require.NoError(t, err)

		req := server.last(t)
		assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
		assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
		assert.Empty(t, req.Header.Get("Content-Type"))
		assert.Empty(t, req.Body)
	})

	t.Run("typed nil body is omitted", func(t *testing.T) {
		var payload Payload
		_, err := client.Request(context.Background(), http.MethodPut, "/timers", nil, payload)
		require.NoError(t, err)

		req := server.last(t)
		assert.Empty(t, req.Header.Get("Content-Type"))
		assert.Empty(t, req.Body)
	})

	t.Run("with body", func(t *testing.T) {
		payload := Payload{"event": "reminder", "expiry": "2026-10-18T12:00:00Z"}
		_, err := client.Request(context.Background(), http.MethodPut, "/timers", nil, payload)
		require.NoError(t, err)

		expected, err := client.codec.Marshal(payload)
		require.NoError(t, err)

		req := server.last(t)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, string(expected), string(req.Body))
		assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
	})
}

func TestRequestURLIsNotNormalized(t *testing.T) {
	server := newMockServer(t, staticResponse(http.StatusOK, `{}`))

	tests := []struct {
		name     string
		apiURL   string
		path     string
		expected string
	}{
		{"plain", server.URL, "/guilds/1", "/guilds/1"},
		{"base path", server.URL + "/api/v1", "/timers", "/api/v1/timers"},
		{"trailing slash", server.URL + "/api/", "/timers/5", "/api//timers/5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.apiURL)
			_, err := client.Request(context.Background(), http.MethodGet, tt.path, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, server.last(t).RequestURI)
		})
	}
}

func TestRequestStatusHandling(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantResult any
		wantStatus int
		notFound   bool
	}{
		{
			name:       "200 returns body",
			status:     http.StatusOK,
			body:       `{"id": 42, "name": "demo"}`,
			wantResult: map[string]any{"id": json.Number("42"), "name": "demo"},
		},
		{
			name:       "201 returns body",
			status:     http.StatusCreated,
			body:       `["!", "?"]`,
			wantResult: []any{"!", "?"},
		},
		{
			name:       "204 without body",
			status:     http.StatusNoContent,
			body:       ``,
			wantResult: nil,
		},
		{
			name:       "299 returns body",
			status:     299,
			body:       `{"ok": true}`,
			wantResult: map[string]any{"ok": true},
		},
		{
			name:       "404 is not found",
			status:     http.StatusNotFound,
			body:       `{"error": "no such guild"}`,
			wantStatus: http.StatusNotFound,
			notFound:   true,
		},
		{
			name:       "400 is generic",
			status:     http.StatusBadRequest,
			body:       `{"error": "bad payload"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "401 is generic",
			status:     http.StatusUnauthorized,
			body:       `{"error": "unauthorized"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "500 is generic",
			status:     http.StatusInternalServerError,
			body:       `{"error": "internal"}`,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newMockServer(t, staticResponse(tt.status, tt.body))
			client := newTestClient(t, server.URL)

			result, err := client.Request(context.Background(), http.MethodGet, "/guilds/1", nil, nil)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.wantResult, result)
				return
			}

			require.Error(t, err)
			assert.Nil(t, result)

			httpErr, ok := AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)

			var expected any
			require.NoError(t, json.Unmarshal([]byte(tt.body), &expected))
			assert.Equal(t, expected, httpErr.Data)

			assert.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

func TestRequestUndecodableBody(t *testing.T) {
	t.Run("error status keeps raw body", func(t *testing.T) {
		server := newMockServer(t, staticResponse(http.StatusBadGateway, "bad gateway"))
		client := newTestClient(t, server.URL)

		_, err := client.Request(context.Background(), http.MethodGet, "/timers", nil, nil)
		httpErr, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
		assert.Equal(t, "bad gateway", httpErr.Data)
	})

	t.Run("success status fails", func(t *testing.T) {
		server := newMockServer(t, staticResponse(http.StatusOK, "<html>"))
		client := newTestClient(t, server.URL)

		_, err := client.Request(context.Background(), http.MethodGet, "/timers", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("trailing data fails", func(t *testing.T) {
		server := newMockServer(t, staticResponse(http.StatusOK, `{"a": 1} {"b": 2}`))
		client := newTestClient(t, server.URL)

		_, err := client.Request(context.Background(), http.MethodGet, "/timers", nil, nil)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestRequestKeepsSnowflakePrecision(t *testing.T) {
	server := newMockServer(t, staticResponse(http.StatusOK, `{"guild_id": 1234567890123456789}`))
	client := newTestClient(t, server.URL)

	result, err := client.Request(context.Background(), http.MethodGet, "/guilds/1234567890123456789", nil, nil)
	require.NoError(t, err)

	doc, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1234567890123456789"), doc["guild_id"])
}

func TestRequestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	apiURL := server.URL
	server.Close()

	client := newTestClient(t, apiURL)
	_, err := client.Request(context.Background(), http.MethodGet, "/guilds/1", nil, nil)
	require.Error(t, err)

	_, isHTTPErr := AsHTTPError(err)
	assert.False(t, isHTTPErr)
	assert.False(t, IsNotFound(err))
}

func TestRequestContextCanceled(t *testing.T) {
	server := newMockServer(t, staticResponse(http.StatusOK, `{}`))
	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Request(ctx, http.MethodGet, "/guilds/1", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClose(t *testing.T) {
	server := newMockServer(t, staticResponse(http.StatusOK, `{}`))

	client, err := NewClient(server.URL, testToken, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.GetGuild(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, client.Close())
	assert.ErrorIs(t, client.Close(), ErrClientClosed)

	_, err = client.GetGuild(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Equal(t, 1, server.count())
}

func TestIsNil(t *testing.T) {
	var payload Payload
	var prefixes []string
	var ptr *Payload

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil map", payload, true},
		{"nil slice", prefixes, true},
		{"nil pointer", ptr, true},
		{"empty map", Payload{}, false},
		{"empty slice", []string{}, false},
		{"string", "", false},
		{"number", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNil(tt.v))
		})
	}
}
