package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpClient "github.com/haloiq/tax-api/internal/client/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCollector struct {
	requests int32
	errors   int32
	lastCode int32
}

func (c *countingCollector) RecordRequestDuration(string, string, int, time.Duration) {}

func (c *countingCollector) RecordRequestCount(_, _ string, statusCode int) {
	atomic.AddInt32(&c.requests, 1)
	atomic.StoreInt32(&c.lastCode, int32(statusCode))
}

func (c *countingCollector) RecordRequestError(string, string) {
	atomic.AddInt32(&c.errors, 1)
}

func fastRetries(maxRetries int) *httpClient.RetryConfig {
	return &httpClient.RetryConfig{
		MaxRetries:           maxRetries,
		InitialInterval:      time.Millisecond,
		MaxInterval:          5 * time.Millisecond,
		Multiplier:           2,
		MaxElapsedTime:       time.Second,
		RetryableStatusCodes: []int{http.StatusServiceUnavailable},
	}
}

func TestHTTPClient_GetWithOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/items", r.URL.Path)
		assert.Equal(t, "a", r.URL.Query().Get("q"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "yes", r.Header.Get("X-Default"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	collector := &countingCollector{}
	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(server.URL+"/"),
		httpClient.WithDefaultHeader("X-Default", "yes"),
		httpClient.WithMetricsCollector(collector),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
	)

	resp, err := client.Get(context.Background(), "v1/items",
		httpClient.WithQueryParam("q", "a"),
		httpClient.WithBearerToken("tok"))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&collector.requests))
	assert.Equal(t, int32(0), atomic.LoadInt32(&collector.errors))
}

func TestHTTPClient_PostMarshalsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "FIT", payload["code"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(httpClient.WithBaseURL(server.URL))
	resp, err := client.Post(context.Background(), "/items", map[string]string{"code": "FIT"})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHTTPClient_ErrorStatusReturnsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad earnings"))
	}))
	defer server.Close()

	collector := &countingCollector{}
	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(server.URL),
		httpClient.WithMetricsCollector(collector),
	)

	resp, err := client.Get(context.Background(), "/api/tax/FIT")
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()

	var httpErr *httpClient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "bad earnings", httpErr.Body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&collector.errors))
	assert.Equal(t, int32(http.StatusBadRequest), atomic.LoadInt32(&collector.lastCode))
}

func TestHTTPClient_Retries(t *testing.T) {
	t.Run("retries retryable status until success", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&hits, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := httpClient.NewHTTPClient(
			httpClient.WithBaseURL(server.URL),
			httpClient.WithRetryConfig(fastRetries(3)),
		)
		resp, err := client.Get(context.Background(), "/")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	})

	t.Run("surfaces last retryable status", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := httpClient.NewHTTPClient(
			httpClient.WithBaseURL(server.URL),
			httpClient.WithRetryConfig(fastRetries(2)),
		)
		resp, err := client.Get(context.Background(), "/")
		require.NotNil(t, resp)
		resp.Body.Close()

		var httpErr *httpClient.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	})

	t.Run("nil retry config makes a single attempt", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := httpClient.NewHTTPClient(
			httpClient.WithBaseURL(server.URL),
			httpClient.WithRetryConfig(nil),
		)
		resp, err := client.Get(context.Background(), "/")
		require.Error(t, err)
		resp.Body.Close()
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	})
}

func TestHTTPClient_InvalidPathWithoutBaseURL(t *testing.T) {
	client := httpClient.NewHTTPClient()
	_, err := client.Get(context.Background(), "not a url")
	assert.Error(t, err)
}
