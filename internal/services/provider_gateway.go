package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/haloiq/tax-api/internal/client/taxupdate"
	"github.com/haloiq/tax-api/internal/config"
	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/interfaces"
	"github.com/haloiq/tax-api/internal/logger"
	"github.com/haloiq/tax-api/internal/types/business"

	httpClient "github.com/haloiq/tax-api/internal/client/http"
	"go.uber.org/zap"
)

// ResolutionRecorder observes how each tax-type request was resolved
type ResolutionRecorder interface {
	RecordResolution(provider, code string)
	RecordProviderFailure(code string)
}

// NoopResolutionRecorder records nothing
type NoopResolutionRecorder struct{}

func (NoopResolutionRecorder) RecordResolution(provider, code string) {}
func (NoopResolutionRecorder) RecordProviderFailure(code string)      {}

// ProviderGateway calls the external provider when configured and falls back to
// the local flat-rate provider on any failure. There is one attempt per request.
type ProviderGateway struct {
	remote   interfaces.TaxProvider
	fallback interfaces.TaxProvider
	timeout  time.Duration
	recorder ResolutionRecorder
	logger   *zap.Logger
}

// NewProviderGateway builds the gateway from cfg. The remote provider is only
// wired when the mode is taxupdate and a base URL is set.
func NewProviderGateway(cfg config.ProviderConfig, recorder ResolutionRecorder, clientOptions ...httpClient.ClientOption) *ProviderGateway {
	var remote interfaces.TaxProvider
	if cfg.ExternalEnabled() {
		remote = NewRemoteProvider(taxupdate.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout, clientOptions...))
	}
	return NewProviderGatewayWithProviders(remote, NewLocalFallbackProvider(), cfg.Timeout, recorder)
}

// NewProviderGatewayWithProviders builds a gateway from explicit strategies.
// A nil remote sends every request to the fallback.
func NewProviderGatewayWithProviders(remote, fallback interfaces.TaxProvider, timeout time.Duration, recorder ResolutionRecorder) *ProviderGateway {
	if recorder == nil {
		recorder = NoopResolutionRecorder{}
	}
	if timeout <= 0 {
		timeout = config.DefaultProviderTimeout
	}
	return &ProviderGateway{
		remote:   remote,
		fallback: fallback,
		timeout:  timeout,
		recorder: recorder,
		logger:   logger.L(),
	}
}

// OtherCodeLabel is the metric label for codes outside the fallback rate table
const OtherCodeLabel = "OTHER"

// MetricCodeLabel bounds the code label on resolution metrics. Codes without a
// dedicated fallback rate, including every state code, share OtherCodeLabel.
func MetricCodeLabel(code string) string {
	code = NormalizeTaxCode(code)
	if _, ok := fallbackRates[code]; ok {
		return code
	}
	return OtherCodeLabel
}

// NormalizeTaxCode upper-cases a tax-type code for lookup and echo
func NormalizeTaxCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ResolveTax returns the provider's result or the fallback computation.
func (g *ProviderGateway) ResolveTax(ctx context.Context, code string, query business.ProviderQuery) *business.ProviderResult {
	code = NormalizeTaxCode(code)
	label := MetricCodeLabel(code)

	if g.remote != nil {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		result, err := g.remote.Resolve(callCtx, code, query)
		cancel()
		if err == nil && result == nil {
			err = errors.New("provider returned no result")
		}
		if err == nil {
			g.recorder.RecordResolution(g.remote.Name(), label)
			return result
		}

		g.recorder.RecordProviderFailure(label)
		g.logger.Warn("Tax provider unavailable, using fallback",
			zap.String("code", code),
			zap.Bool("request_cancelled", ctx.Err() != nil),
			zap.Error(err))
	}

	g.recorder.RecordResolution(constants.ProviderFallback, label)
	return g.resolveFallback(ctx, code, query)
}

// resolveFallback always returns a result. A configured fallback that fails or
// returns nothing is replaced by the flat-rate computation.
func (g *ProviderGateway) resolveFallback(ctx context.Context, code string, query business.ProviderQuery) *business.ProviderResult {
	if g.fallback != nil {
		result, err := g.fallback.Resolve(ctx, code, query)
		if err == nil && result != nil {
			return result
		}
		g.logger.Error("Fallback provider failed, using flat rate",
			zap.String("code", code),
			zap.String("fallback", g.fallback.Name()),
			zap.Error(err))
	}

	result, _ := NewLocalFallbackProvider().Resolve(ctx, code, query)
	return result
}
