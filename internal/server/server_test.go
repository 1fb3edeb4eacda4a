package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/haloiq/tax-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Stage:          "local",
		Port:           "8000",
		DefaultTaxYear: 2025,
		Provider: config.ProviderConfig{
			Mode:    "placeholder",
			Timeout: config.DefaultProviderTimeout,
		},
		CORS: config.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, testConfig())

	t.Run("health", func(t *testing.T) {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Len(t, w.Header().Get("X-Correlation-ID"), 36)
	})

	t.Run("calculate taxes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate-taxes",
			bytes.NewBufferString(`{"gross_amount":2000,"filing_status":"single","pay_period":"biweekly","tax_year":2025}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(s, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"federal_income_tax":158.13`)
	})

	t.Run("unsupported year", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate-taxes",
			bytes.NewBufferString(`{"gross_amount":2000,"filing_status":"single","pay_period":"biweekly","tax_year":1999}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(s, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"unsupported tax year"}`, w.Body.String())
	})

	t.Run("tax years", func(t *testing.T) {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/api/v1/tax-years", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"tax_years":[2024,2025,2026],"default_tax_year":2025}`, w.Body.String())
	})

	t.Run("placeholder mode uses fallback", func(t *testing.T) {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/api/tax/ss?earnings=1000", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fallback", w.Header().Get("X-Tax-Provider"))
		assert.Contains(t, w.Body.String(), `"tax":62`)
	})

	t.Run("metrics", func(t *testing.T) {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `tax_api_tax_provider_resolutions_total{code="SS",provider="fallback"} 1`)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/calculate-taxes", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := serve(s, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestExternalProviderRoute(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tax/FIT", r.URL.Path)
		_, _ = w.Write([]byte(`{"source":"upstream"}`))
	}))
	defer provider.Close()

	cfg := testConfig()
	cfg.Provider = config.ProviderConfig{Mode: "taxupdate", BaseURL: provider.URL, Timeout: config.DefaultProviderTimeout}
	s := newTestServer(t, cfg)

	w := serve(s, httptest.NewRequest(http.MethodGet, "/api/tax/fit?earnings=1000", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "external", w.Header().Get("X-Tax-Provider"))
	assert.Equal(t, `{"source":"upstream"}`, w.Body.String())
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{}
	s := newTestServer(t, cfg)

	for i := 0; i < 50; i++ {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/api/v1/tax-years", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestResolutionMetricsStayBounded(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{}
	s := newTestServer(t, cfg)

	for i := 0; i < 500; i++ {
		w := serve(s, httptest.NewRequest(http.MethodGet, "/api/tax/"+uuid.NewString()+"?earnings=1000", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var series []string
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if strings.HasPrefix(line, "tax_api_tax_provider_resolutions_total{") {
			series = append(series, line)
		}
	}
	assert.Equal(t, []string{`tax_api_tax_provider_resolutions_total{code="OTHER",provider="fallback"} 500`}, series)
}

func TestChunkedOversizeBody(t *testing.T) {
	s := newTestServer(t, testConfig())

	body := `{"gross_amount":2000,"filing_status":"single","pay_period":"biweekly","memo":"` +
		strings.Repeat("x", 70<<10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate-taxes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	w := serve(s, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Request body too large. Maximum size: 65536 bytes"}`, w.Body.String())
}
