package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/haloiq/tax-api/internal/interfaces"
	"github.com/haloiq/tax-api/internal/logger"
	"github.com/haloiq/tax-api/internal/taxengine"
	"github.com/haloiq/tax-api/internal/types/api/responses"
	"github.com/haloiq/tax-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultEngineExemptions is the exemption count sent to the engine for every
// record. Household size is not collected yet.
const DefaultEngineExemptions = 1

var (
	// ErrUnsupportedTaxYear is returned when the engine has no data for the year
	ErrUnsupportedTaxYear = taxengine.ErrUnsupportedTaxYear
	// ErrEngineFailure wraps any other engine error
	ErrEngineFailure = errors.New("tax engine failure")
)

// TaxService computes per-period payroll tax estimates through the tax engine
type TaxService struct {
	engine         interfaces.TaxEngine
	defaultTaxYear int
	logger         *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(engine interfaces.TaxEngine, defaultTaxYear int) *TaxService {
	return &TaxService{
		engine:         engine,
		defaultTaxYear: defaultTaxYear,
		logger:         logger.L(),
	}
}

// DefaultTaxYear returns the year used when a request omits one
func (s *TaxService) DefaultTaxYear() int {
	return s.defaultTaxYear
}

// SupportedTaxYears lists the years the reference engine has policy data for
func (s *TaxService) SupportedTaxYears() []int {
	return taxengine.SupportedYears()
}

// CalculateTaxes validates and normalizes the input, computes annual liabilities
// and de-annualizes them back to the requested pay period.
func (s *TaxService) CalculateTaxes(ctx context.Context, input business.PayrollTaxInput) (*responses.TaxResponse, error) {
	if input.GrossAmount.IsNegative() {
		return nil, fmt.Errorf("%w: gross_amount must not be negative", ErrInvalidInput)
	}

	normalized, err := Normalize(input.PayPeriod, input.FilingStatus)
	if err != nil {
		return nil, err
	}

	if input.TaxYear == 0 {
		input.TaxYear = s.defaultTaxYear
	}

	annual, err := s.ComputeLocalTax(ctx, input, normalized)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Calculated payroll taxes",
		zap.Int("tax_year", input.TaxYear),
		zap.String("pay_period", string(input.PayPeriod)),
		zap.String("filing_status", string(input.FilingStatus)))

	return Compose(annual, normalized.Divisor, input, ComposeOptions{IncludeNet: input.IncludeNet}), nil
}

// ComputeLocalTax annualizes the gross amount and reads the three annual
// components back from the engine. Income tax is passed through unclamped.
func (s *TaxService) ComputeLocalTax(ctx context.Context, input business.PayrollTaxInput, normalized business.NormalizedInput) (business.AnnualTaxComponents, error) {
	engineInput := business.EngineInput{
		Wages:            input.GrossAmount.Mul(decimal.NewFromInt(int64(normalized.Divisor))),
		FilingStatusCode: normalized.FilingStatusCode,
		Exemptions:       DefaultEngineExemptions,
		TaxYear:          input.TaxYear,
	}

	components, err := s.engine.ComputeAnnualTax(ctx, engineInput)
	if err != nil {
		if errors.Is(err, ErrUnsupportedTaxYear) {
			return business.AnnualTaxComponents{}, err
		}
		s.logger.Error("Tax engine failed",
			zap.Int("tax_year", input.TaxYear),
			zap.Int("filing_status_code", normalized.FilingStatusCode),
			zap.Error(err))
		return business.AnnualTaxComponents{}, fmt.Errorf("%w: %v", ErrEngineFailure, err)
	}

	return components, nil
}
