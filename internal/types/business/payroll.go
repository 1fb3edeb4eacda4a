package business

import "github.com/shopspring/decimal"

// PayPeriod is a payroll frequency label
type PayPeriod string

const (
	PayPeriodWeekly      PayPeriod = "weekly"
	PayPeriodBiweekly    PayPeriod = "biweekly"
	PayPeriodSemimonthly PayPeriod = "semimonthly"
	PayPeriodMonthly     PayPeriod = "monthly"
	PayPeriodAnnual      PayPeriod = "annual"
)

// FilingStatus is a tax filing category label
type FilingStatus string

const (
	FilingStatusSingle          FilingStatus = "single"
	FilingStatusMarriedJoint    FilingStatus = "married_joint"
	FilingStatusMarriedSeparate FilingStatus = "married_separate"
	FilingStatusHead            FilingStatus = "head"
)

// PayrollTaxInput is a validated per-period tax request
type PayrollTaxInput struct {
	GrossAmount  decimal.Decimal
	FilingStatus FilingStatus
	PayPeriod    PayPeriod
	TaxYear      int
	// IncludeNet requests gross minus federal income tax in the response
	IncludeNet bool
}

// NormalizedInput carries the lookups shared by the engine and provider paths
type NormalizedInput struct {
	Divisor          int
	FilingStatusCode int
}

// EngineInput is the single record handed to the tax engine
type EngineInput struct {
	Wages            decimal.Decimal // annual
	FilingStatusCode int
	Exemptions       int
	TaxYear          int
}

// AnnualTaxComponents holds annual liabilities read back from the engine.
// IncomeTax may be negative when credits exceed liability.
type AnnualTaxComponents struct {
	IncomeTax         decimal.Decimal
	SocialSecurityTax decimal.Decimal
	MedicareTax       decimal.Decimal
}

// PerPeriodTax holds de-annualized amounts rounded to cents
type PerPeriodTax struct {
	FederalIncomeTax   decimal.Decimal
	FICASocialSecurity decimal.Decimal
	FICAMedicare       decimal.Decimal
	AdditionalMedicare decimal.Decimal
}

// ProviderQuery is passed through to the external rate provider
type ProviderQuery struct {
	PayDate         string
	PayPeriods      int
	FilingStatus    string
	Earnings        decimal.Decimal
	Exemptions      int
	StateExemptions int
	Zip             string
}

// ProviderResult is the outcome of resolving a tax-type code.
// Body holds the external provider's JSON verbatim when Provider is external.
type ProviderResult struct {
	Provider string
	TaxType  string
	Query    ProviderQuery
	Rate     decimal.Decimal
	Gross    decimal.Decimal
	Tax      decimal.Decimal
	Net      decimal.Decimal
	Body     []byte
}
