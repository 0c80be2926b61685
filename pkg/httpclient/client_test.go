package httpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/egeria-client-go/pkg/httpclient"
)

// newTestServer creates a new test server with keep-alives disabled.
// This prevents flaky tests when running in parallel, as closing a server
// with keep-alives enabled can affect other tests sharing the HTTP transport.
func newTestServer(handler http.Handler) *httptest.Server {
	server := httptest.NewServer(handler)
	server.Config.SetKeepAlivesEnabled(false)
	return server
}

func TestNewDefaultClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
	}{
		{
			name:    "create client with custom timeout",
			timeout: 5 * time.Second,
		},
		{
			name:    "create client with zero timeout uses default",
			timeout: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := httpclient.NewDefaultClient(tt.timeout)

			require.NotNil(t, client, "client should not be nil")
		})
	}
}

func TestDefaultClient_Do_SendsSlimBodyAndHeaders(t *testing.T) {
	t.Parallel()

	var (
		gotBody    map[string]any
		gotHeaders http.Header
		gotMethod  string
	)
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeaders = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		_, _ = w.Write([]byte(`{"class":"GUIDResponse","relatedHTTPCode":200,"guid":"abc-123"}`))
	}))
	defer server.Close()

	client := httpclient.NewDefaultClient(0, httpclient.WithToken("tok"))

	body := map[string]any{
		"class":      "NewElementRequestBody",
		"anchorGUID": nil,
		"properties": map[string]any{
			"class":       "CollectionProperties",
			"description": nil,
			"displayName": "c",
		},
	}
	data, err := client.Do(context.Background(), http.MethodPost, server.URL, body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"class":"GUIDResponse","relatedHTTPCode":200,"guid":"abc-123"}`, string(data))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, map[string]any{
		"class": "NewElementRequestBody",
		"properties": map[string]any{
			"class":       "CollectionProperties",
			"displayName": "c",
		},
	}, gotBody)
	assert.Equal(t, httpclient.UserAgent, gotHeaders.Get("User-Agent"))
	assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "Bearer tok", gotHeaders.Get("Authorization"))
	_, err = uuid.Parse(gotHeaders.Get(httpclient.RequestIDHeader))
	assert.NoError(t, err, "request id should be a uuid")
}

func TestDefaultClient_Do_NilBodySendsNoPayload(t *testing.T) {
	t.Parallel()

	var contentLength int64 = -2
	var contentType string
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentLength = r.ContentLength
		contentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"relatedHTTPCode":200}`))
	}))
	defer server.Close()

	client := httpclient.NewDefaultClient(0)
	_, err := client.Do(context.Background(), http.MethodPost, server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), contentLength)
	assert.Empty(t, contentType)
}

func TestDefaultClient_Do_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name:        "non-2xx with exception envelope",
			statusCode:  http.StatusBadRequest,
			body:        `{"relatedHTTPCode":400,"exceptionErrorMessage":"OMAG-COMMON-400-001 The guid is invalid","exceptionErrorMessageId":"OMAG-COMMON-400-001","exceptionSystemAction":"rejected","exceptionUserAction":"fix it"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "OMAG-COMMON-400-001 The guid is invalid",
			wantCode:    "OMAG-COMMON-400-001",
		},
		{
			name:        "2xx whose envelope reports a failure",
			statusCode:  http.StatusOK,
			body:        `{"relatedHTTPCode":404,"exceptionErrorMessage":"element not known"}`,
			wantStatus:  http.StatusNotFound,
			wantMessage: "element not known",
		},
		{
			name:        "non-JSON error body",
			statusCode:  http.StatusInternalServerError,
			body:        "boom",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "boom",
		},
		{
			name:        "invalid JSON on success",
			statusCode:  http.StatusOK,
			body:        "<html>not json</html>",
			wantStatus:  http.StatusOK,
			wantMessage: "invalid JSON in response body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := httpclient.NewDefaultClient(0)
			_, err := client.Do(context.Background(), http.MethodPost, server.URL, map[string]any{"class": "x"})

			var apiErr *httpclient.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.ErrorMessage)
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestDefaultClient_Do_ConnectionError(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := httpclient.NewDefaultClient(0)
	_, err := client.Do(context.Background(), http.MethodGet, url, nil)

	var connErr *httpclient.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, url, connErr.URL)
	assert.Contains(t, err.Error(), "failed to execute request")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestDefaultClient_Do_PerCallTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()
	defer close(release)

	client := httpclient.NewDefaultClient(30 * time.Second)
	_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, httpclient.WithTimeout(50*time.Millisecond))

	var connErr *httpclient.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDefaultClient_Do_PerCallTimeoutExtendsDefault(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"relatedHTTPCode":200}`))
	}))
	defer server.Close()

	client := httpclient.NewDefaultClient(100 * time.Millisecond)

	_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil)
	require.Error(t, err, "the client timeout applies when no per-call timeout is given")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	data, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, httpclient.WithTimeout(2*time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `{"relatedHTTPCode":200}`, string(data))
}

func TestDefaultClient_Get_AppliesClientTimeout(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte("Egeria OMAG Server Platform"))
	}))
	defer server.Close()

	_, err := httpclient.NewDefaultClient(50*time.Millisecond).Get(context.Background(), server.URL)
	var connErr *httpclient.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type recordingTransport struct {
	calls int
	base  http.RoundTripper
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.calls++
	return r.base.RoundTrip(req)
}

func TestDefaultClient_WithTransport(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"relatedHTTPCode":200}`))
	}))
	defer server.Close()

	rt := &recordingTransport{base: http.DefaultTransport}
	client := httpclient.NewDefaultClient(0, httpclient.WithTransport(rt))

	_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, rt.calls)
}

func TestDefaultClient_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		statusCode    int
		responseBody  string
		errorContains string
	}{
		{
			name:         "plain text origin",
			statusCode:   http.StatusOK,
			responseBody: "Egeria OMAG Server Platform (version 5.4)",
		},
		{
			name:          "404 Not Found",
			statusCode:    http.StatusNotFound,
			responseBody:  "Not Found",
			errorContains: "HTTP 404",
		},
		{
			name:          "503 Service Unavailable",
			statusCode:    http.StatusServiceUnavailable,
			responseBody:  "Service Unavailable",
			errorContains: "HTTP 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := httpclient.NewDefaultClient(30 * time.Second)
			data, err := client.Get(context.Background(), server.URL)

			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.responseBody, string(data))
		})
	}
}

func TestDefaultClient_Get_SizeLimitExceeded(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", 101*1024*1024))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.NewDefaultClient(30 * time.Second)
	_, err := client.Get(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum allowed size")
	assert.Contains(t, err.Error(), "100.00 MB")
}
