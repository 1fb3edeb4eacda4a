package responses

// HealthResponse is returned by GET /health
type HealthResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the structured failure envelope
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// PerPeriodTaxes holds per-period amounts rounded to cents
type PerPeriodTaxes struct {
	FederalIncomeTax   float64 `json:"federal_income_tax"`
	FICASocialSecurity float64 `json:"fica_social_security"`
	FICAMedicare       float64 `json:"fica_medicare"`
	AdditionalMedicare float64 `json:"additional_medicare"`
}

// TaxResponse is returned by POST /api/v1/calculate-taxes
type TaxResponse struct {
	Success     bool           `json:"success"`
	TaxYear     int            `json:"tax_year"`
	PayPeriod   string         `json:"period"`
	GrossAmount float64        `json:"gross_amount"`
	Taxes       PerPeriodTaxes `json:"taxes"`
	// Net is gross minus federal income tax only; it is not take-home pay.
	Net   *float64 `json:"net,omitempty"`
	Notes []string `json:"notes,omitempty"`
}

// ProviderInputs echoes the query a fallback result was computed from
type ProviderInputs struct {
	PayDate         string  `json:"paydate"`
	PayPeriods      int     `json:"payperiods"`
	FilingStatus    string  `json:"filingstatus"`
	Earnings        float64 `json:"earnings"`
	Exemptions      int     `json:"exemptions"`
	StateExemptions int     `json:"stateexemptions"`
	Zip             string  `json:"zip,omitempty"`
}

// ProviderResult is the fallback-shaped body of GET /api/tax/:code
type ProviderResult struct {
	Provider string         `json:"provider"`
	TaxType  string         `json:"tax_type"`
	Rate     float64        `json:"rate"`
	Inputs   ProviderInputs `json:"inputs"`
	Gross    float64        `json:"gross"`
	Tax      float64        `json:"tax"`
	Net      float64        `json:"net"`
}

// TaxYearsResponse is returned by GET /api/v1/tax-years
type TaxYearsResponse struct {
	OK             bool  `json:"ok"`
	TaxYears       []int `json:"tax_years"`
	DefaultTaxYear int   `json:"default_tax_year"`
}
