// Package taxengine computes annual federal income tax and employee FICA
// liabilities for a single wage earner from per-year policy tables.
package taxengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/haloiq/tax-api/internal/types/business"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnsupportedTaxYear is returned when no policy exists for the requested year
	ErrUnsupportedTaxYear = errors.New("unsupported tax year")
	// ErrUnknownStatusCode is returned for filing status codes outside 1-4
	ErrUnknownStatusCode = errors.New("unknown filing status code")
	// ErrNegativeWages is returned when the wage input is below zero
	ErrNegativeWages = errors.New("wages must not be negative")
)

// Engine is the reference federal policy engine
type Engine struct{}

// NewEngine creates a new tax engine
func NewEngine() *Engine {
	return &Engine{}
}

// ComputeAnnualTax configures the engine for input.TaxYear and computes the
// annual components for the single record.
func (e *Engine) ComputeAnnualTax(ctx context.Context, input business.EngineInput) (business.AnnualTaxComponents, error) {
	if err := ctx.Err(); err != nil {
		return business.AnnualTaxComponents{}, err
	}

	policy, ok := PolicyForYear(input.TaxYear)
	if !ok {
		return business.AnnualTaxComponents{}, fmt.Errorf("%w: %d", ErrUnsupportedTaxYear, input.TaxYear)
	}
	if input.Wages.IsNegative() {
		return business.AnnualTaxComponents{}, ErrNegativeWages
	}

	deduction, ok := policy.StandardDeduction[input.FilingStatusCode]
	if !ok {
		return business.AnnualTaxComponents{}, fmt.Errorf("%w: %d", ErrUnknownStatusCode, input.FilingStatusCode)
	}

	exemptions := policy.PersonalExemption.Mul(decimal.NewFromInt(int64(input.Exemptions)))
	taxable := decimal.Max(decimal.Zero, input.Wages.Sub(deduction).Sub(exemptions))

	return business.AnnualTaxComponents{
		IncomeTax:         bracketTax(taxable, policy.Brackets[input.FilingStatusCode]),
		SocialSecurityTax: decimal.Min(input.Wages, policy.SocialSecurityBase).Mul(policy.SocialSecurityRate),
		MedicareTax:       input.Wages.Mul(policy.MedicareRate),
	}, nil
}

// bracketTax applies the marginal bands to taxable income
func bracketTax(taxable decimal.Decimal, bands []Bracket) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, band := range bands {
		if !taxable.GreaterThan(lower) {
			break
		}
		upper := taxable
		if !band.UpTo.IsZero() && band.UpTo.LessThan(taxable) {
			upper = band.UpTo
		}
		tax = tax.Add(upper.Sub(lower).Mul(band.Rate))
		if band.UpTo.IsZero() {
			break
		}
		lower = band.UpTo
	}
	return tax
}
