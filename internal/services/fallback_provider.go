package services

import (
	"context"

	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// fallbackRates are flat approximations keyed by upper-cased tax-type code.
// State codes fall through to defaultFallbackRate.
var fallbackRates = map[string]decimal.Decimal{
	"FIT":            decimal.RequireFromString("0.10"),
	"FED":            decimal.RequireFromString("0.10"),
	"FEDERAL":        decimal.RequireFromString("0.10"),
	"SOCIALSECURITY": decimal.RequireFromString("0.062"),
	"SS":             decimal.RequireFromString("0.062"),
	"MEDICARE":       decimal.RequireFromString("0.0145"),
	"MED":            decimal.RequireFromString("0.0145"),
}

var defaultFallbackRate = decimal.RequireFromString("0.04")

// FallbackRate returns the flat rate used for code
func FallbackRate(code string) decimal.Decimal {
	if rate, ok := fallbackRates[NormalizeTaxCode(code)]; ok {
		return rate
	}
	return defaultFallbackRate
}

// LocalFallbackProvider computes a flat-rate tax locally. It never fails.
type LocalFallbackProvider struct{}

// NewLocalFallbackProvider creates a new fallback provider
func NewLocalFallbackProvider() *LocalFallbackProvider {
	return &LocalFallbackProvider{}
}

// Name identifies the provider source
func (p *LocalFallbackProvider) Name() string {
	return constants.ProviderFallback
}

// Resolve computes tax = round(earnings * rate, 2) and net = round(earnings - tax, 2)
func (p *LocalFallbackProvider) Resolve(_ context.Context, code string, query business.ProviderQuery) (*business.ProviderResult, error) {
	code = NormalizeTaxCode(code)
	rate := FallbackRate(code)
	tax := RoundCurrency(query.Earnings.Mul(rate))

	return &business.ProviderResult{
		Provider: constants.ProviderFallback,
		TaxType:  code,
		Query:    query,
		Rate:     rate,
		Gross:    query.Earnings,
		Tax:      tax,
		Net:      RoundCurrency(query.Earnings.Sub(tax)),
	}, nil
}
