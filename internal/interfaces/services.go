package interfaces

import (
	"context"

	"github.com/haloiq/tax-api/internal/types/api/responses"
	"github.com/haloiq/tax-api/internal/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

// TaxEngine computes annual liabilities for a single wage record
type TaxEngine interface {
	ComputeAnnualTax(ctx context.Context, input business.EngineInput) (business.AnnualTaxComponents, error)
}

// TaxProvider resolves a tax-type code into a tax/net breakdown
type TaxProvider interface {
	Name() string
	Resolve(ctx context.Context, code string, query business.ProviderQuery) (*business.ProviderResult, error)
}

// PayrollTaxService computes per-period payroll tax estimates
type PayrollTaxService interface {
	CalculateTaxes(ctx context.Context, input business.PayrollTaxInput) (*responses.TaxResponse, error)
	SupportedTaxYears() []int
	DefaultTaxYear() int
}

// ProviderGateway selects between the external provider and the local fallback.
// It never returns an error; provider failures resolve to the fallback.
type ProviderGateway interface {
	ResolveTax(ctx context.Context, code string, query business.ProviderQuery) *business.ProviderResult
}
