package services

import (
	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/types/api/responses"
	"github.com/haloiq/tax-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// RoundCurrency rounds half away from zero to cents
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(constants.CurrencyPlaces)
}

// DeAnnualize converts an annual amount to a rounded per-period amount
func DeAnnualize(annual decimal.Decimal, divisor int) decimal.Decimal {
	return RoundCurrency(annual.Div(decimal.NewFromInt(int64(divisor))))
}

// ComposePerPeriod de-annualizes the engine components. Additional Medicare is
// not surfaced by the engine and is always zero.
func ComposePerPeriod(annual business.AnnualTaxComponents, divisor int) business.PerPeriodTax {
	return business.PerPeriodTax{
		FederalIncomeTax:   DeAnnualize(annual.IncomeTax, divisor),
		FICASocialSecurity: DeAnnualize(annual.SocialSecurityTax, divisor),
		FICAMedicare:       DeAnnualize(annual.MedicareTax, divisor),
		AdditionalMedicare: decimal.Zero,
	}
}

// ComposeOptions controls optional parts of the response envelope
type ComposeOptions struct {
	// IncludeNet adds gross minus per-period federal income tax. FICA is not subtracted.
	IncludeNet bool
}

// Compose builds the response envelope from annual components
func Compose(annual business.AnnualTaxComponents, divisor int, input business.PayrollTaxInput, opts ComposeOptions) *responses.TaxResponse {
	perPeriod := ComposePerPeriod(annual, divisor)

	response := &responses.TaxResponse{
		Success:     true,
		TaxYear:     input.TaxYear,
		PayPeriod:   string(input.PayPeriod),
		GrossAmount: input.GrossAmount.InexactFloat64(),
		Taxes: responses.PerPeriodTaxes{
			FederalIncomeTax:   perPeriod.FederalIncomeTax.InexactFloat64(),
			FICASocialSecurity: perPeriod.FICASocialSecurity.InexactFloat64(),
			FICAMedicare:       perPeriod.FICAMedicare.InexactFloat64(),
			AdditionalMedicare: perPeriod.AdditionalMedicare.InexactFloat64(),
		},
		Notes: []string{constants.AdditionalMedicareNote},
	}

	if opts.IncludeNet {
		net := RoundCurrency(input.GrossAmount.Sub(perPeriod.FederalIncomeTax)).InexactFloat64()
		response.Net = &net
	}

	return response
}
