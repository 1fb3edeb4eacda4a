package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/haloiq/tax-api/internal/config"
	"github.com/haloiq/tax-api/internal/interfaces"
	"github.com/haloiq/tax-api/internal/mocks"
	"github.com/haloiq/tax-api/internal/services"
	"github.com/haloiq/tax-api/internal/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedResolution struct {
	provider string
	code     string
}

type stubRecorder struct {
	mu          sync.Mutex
	resolutions []recordedResolution
	failures    []string
}

func (r *stubRecorder) RecordResolution(provider, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolutions = append(r.resolutions, recordedResolution{provider: provider, code: code})
}

func (r *stubRecorder) RecordProviderFailure(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, code)
}

func sampleQuery() business.ProviderQuery {
	return business.ProviderQuery{
		PayDate:      "2025-06-30",
		PayPeriods:   26,
		FilingStatus: "S",
		Earnings:     decimal.NewFromInt(1000),
		Exemptions:   1,
		Zip:          "94105",
	}
}

func newProviderServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func taxUpdateConfig(baseURL, key string) config.ProviderConfig {
	return config.ProviderConfig{
		Mode:    "taxupdate",
		BaseURL: baseURL,
		APIKey:  key,
		Timeout: 2 * time.Second,
	}
}

func TestProviderGateway_PassesThroughProviderBody(t *testing.T) {
	const body = `{"tax":123.45,"vendor_field":"kept"}`
	var gotPath, gotQuery, gotAuth string
	server, hits := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	recorder := &stubRecorder{}
	gateway := services.NewProviderGateway(taxUpdateConfig(server.URL, "secret-key"), recorder)

	result := gateway.ResolveTax(context.Background(), "fit", sampleQuery())

	require.NotNil(t, result)
	assert.Equal(t, "external", result.Provider)
	assert.Equal(t, "FIT", result.TaxType)
	assert.Equal(t, body, string(result.Body))
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	assert.Equal(t, "/api/tax/FIT", gotPath)
	assert.Contains(t, gotQuery, "earnings=1000")
	assert.Contains(t, gotQuery, "payperiods=26")
	assert.Contains(t, gotQuery, "zip=94105")
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, []recordedResolution{{provider: "external", code: "FIT"}}, recorder.resolutions)
	assert.Empty(t, recorder.failures)
}

func TestProviderGateway_OmitsAuthAndZipWhenUnset(t *testing.T) {
	var gotAuth, gotQuery string
	server, _ := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	})

	query := sampleQuery()
	query.Zip = ""
	gateway := services.NewProviderGateway(taxUpdateConfig(server.URL, ""), nil)
	result := gateway.ResolveTax(context.Background(), "SS", query)

	assert.Equal(t, "external", result.Provider)
	assert.Empty(t, gotAuth)
	assert.NotContains(t, gotQuery, "zip=")
	assert.Contains(t, gotQuery, "stateexemptions=0")
}

func TestProviderGateway_FallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "service unavailable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "non-JSON body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, hits := newProviderServer(t, tt.handler)
			recorder := &stubRecorder{}
			gateway := services.NewProviderGateway(taxUpdateConfig(server.URL, "k"), recorder)

			result := gateway.ResolveTax(context.Background(), "fit", sampleQuery())

			require.NotNil(t, result)
			assert.Equal(t, "fallback", result.Provider)
			assert.Equal(t, "FIT", result.TaxType)
			assert.True(t, decimal.NewFromInt(100).Equal(result.Tax))
			assert.True(t, decimal.NewFromInt(900).Equal(result.Net))
			assert.Nil(t, result.Body)
			assert.Equal(t, int32(1), atomic.LoadInt32(hits), "provider must be called exactly once")
			assert.Equal(t, []string{"FIT"}, recorder.failures)
			assert.Equal(t, []recordedResolution{{provider: "fallback", code: "FIT"}}, recorder.resolutions)
		})
	}
}

func TestProviderGateway_FallsBackOnTimeout(t *testing.T) {
	release := make(chan struct{})
	server, _ := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	cfg := taxUpdateConfig(server.URL, "")
	cfg.Timeout = 50 * time.Millisecond
	gateway := services.NewProviderGateway(cfg, nil)

	start := time.Now()
	result := gateway.ResolveTax(context.Background(), "SS", sampleQuery())

	assert.Equal(t, "fallback", result.Provider)
	assert.True(t, decimal.NewFromInt(62).Equal(result.Tax))
	assert.Less(t, time.Since(start), time.Second)
}

func TestProviderGateway_FallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	gateway := services.NewProviderGateway(taxUpdateConfig(baseURL, ""), nil)
	result := gateway.ResolveTax(context.Background(), "MED", sampleQuery())

	assert.Equal(t, "fallback", result.Provider)
	assert.True(t, decimal.RequireFromString("14.50").Equal(result.Tax))
}

func TestProviderGateway_FallsBackOnCancelledContext(t *testing.T) {
	server, _ := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	gateway := services.NewProviderGateway(taxUpdateConfig(server.URL, ""), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := gateway.ResolveTax(ctx, "FIT", sampleQuery())

	assert.Equal(t, "fallback", result.Provider)
}

func TestProviderGateway_ExternalDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(baseURL string) config.ProviderConfig
	}{
		{
			name: "placeholder mode",
			cfg: func(baseURL string) config.ProviderConfig {
				return config.ProviderConfig{Mode: "placeholder", BaseURL: baseURL}
			},
		},
		{
			name: "taxupdate without base URL",
			cfg: func(string) config.ProviderConfig {
				return config.ProviderConfig{Mode: "taxupdate"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, hits := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			})
			recorder := &stubRecorder{}
			gateway := services.NewProviderGateway(tt.cfg(server.URL), recorder)

			result := gateway.ResolveTax(context.Background(), "zz", sampleQuery())

			assert.Equal(t, "fallback", result.Provider)
			assert.True(t, decimal.NewFromInt(40).Equal(result.Tax))
			assert.Equal(t, int32(0), atomic.LoadInt32(hits))
			assert.Empty(t, recorder.failures)
		})
	}
}

func TestProviderGateway_WithMockProviders(t *testing.T) {
	remote := mocks.NewMockTaxProviderForTest(t)
	gateway := services.NewProviderGatewayWithProviders(remote, services.NewLocalFallbackProvider(), time.Second, nil)

	remote.EXPECT().
		Resolve(gomock.Any(), "FIT", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ business.ProviderQuery) (*business.ProviderResult, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil, errors.New("boom")
		}).
		Times(1)

	result := gateway.ResolveTax(context.Background(), " fit ", sampleQuery())
	assert.Equal(t, "fallback", result.Provider)
	assert.Equal(t, "FIT", result.TaxType)
}

func TestMetricCodeLabel(t *testing.T) {
	tests := map[string]string{
		"FIT":      "FIT",
		" ss ":     "SS",
		"medicare": "MEDICARE",
		"CA":       services.OtherCodeLabel,
		"":         services.OtherCodeLabel,
		"x9-<>":    services.OtherCodeLabel,
	}
	for in, want := range tests {
		assert.Equal(t, want, services.MetricCodeLabel(in), in)
	}
}

func TestProviderGateway_ArbitraryCodesShareOneMetricLabel(t *testing.T) {
	remote := mocks.NewMockTaxProviderForTest(t)
	remote.EXPECT().Name().Return("external").AnyTimes()
	remote.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("unavailable")).
		AnyTimes()

	recorder := &stubRecorder{}
	gateway := services.NewProviderGatewayWithProviders(remote, services.NewLocalFallbackProvider(), time.Second, recorder)

	for i := 0; i < 500; i++ {
		result := gateway.ResolveTax(context.Background(), uuid.NewString(), sampleQuery())
		require.NotNil(t, result)
	}

	codes := map[string]struct{}{}
	for _, r := range recorder.resolutions {
		codes[r.code] = struct{}{}
	}
	for _, code := range recorder.failures {
		codes[code] = struct{}{}
	}
	assert.Equal(t, map[string]struct{}{services.OtherCodeLabel: {}}, codes)
	assert.Len(t, recorder.resolutions, 500)
	assert.Len(t, recorder.failures, 500)
}

func TestProviderGateway_BrokenFallbackStillResolves(t *testing.T) {
	tests := []struct {
		name     string
		fallback func(t *testing.T) interfaces.TaxProvider
	}{
		{
			name: "fallback error",
			fallback: func(t *testing.T) interfaces.TaxProvider {
				fallback := mocks.NewMockTaxProviderForTest(t)
				fallback.EXPECT().Name().Return("custom").AnyTimes()
				fallback.EXPECT().Resolve(gomock.Any(), "FIT", gomock.Any()).Return(nil, errors.New("boom"))
				return fallback
			},
		},
		{
			name: "fallback nil result",
			fallback: func(t *testing.T) interfaces.TaxProvider {
				fallback := mocks.NewMockTaxProviderForTest(t)
				fallback.EXPECT().Name().Return("custom").AnyTimes()
				fallback.EXPECT().Resolve(gomock.Any(), "FIT", gomock.Any()).Return(nil, nil)
				return fallback
			},
		},
		{
			name:     "no fallback",
			fallback: func(*testing.T) interfaces.TaxProvider { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := services.NewProviderGatewayWithProviders(nil, tt.fallback(t), time.Second, nil)

			result := gateway.ResolveTax(context.Background(), "fit", sampleQuery())

			require.NotNil(t, result)
			assert.Equal(t, "fallback", result.Provider)
			assert.Equal(t, "FIT", result.TaxType)
			assert.True(t, decimal.NewFromInt(100).Equal(result.Tax))
			assert.True(t, decimal.NewFromInt(900).Equal(result.Net))
		})
	}
}

func TestProviderGateway_RemoteNilResultFallsBack(t *testing.T) {
	remote := mocks.NewMockTaxProviderForTest(t)
	remote.EXPECT().Resolve(gomock.Any(), "SS", gomock.Any()).Return(nil, nil)

	recorder := &stubRecorder{}
	gateway := services.NewProviderGatewayWithProviders(remote, services.NewLocalFallbackProvider(), time.Second, recorder)

	result := gateway.ResolveTax(context.Background(), "ss", sampleQuery())

	require.NotNil(t, result)
	assert.Equal(t, "fallback", result.Provider)
	assert.Equal(t, []string{"SS"}, recorder.failures)
}
