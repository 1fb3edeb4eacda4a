package requests

import "github.com/shopspring/decimal"

// CalculateTaxesRequest is the body of POST /api/v1/calculate-taxes
type CalculateTaxesRequest struct {
	GrossAmount  *decimal.Decimal `json:"gross_amount" binding:"required"`
	FilingStatus string           `json:"filing_status" binding:"required,filing_status"`
	PayPeriod    string           `json:"pay_period" binding:"required,pay_period"`
	TaxYear      *int             `json:"tax_year,omitempty" binding:"omitempty,gt=0"`
	IncludeNet   bool             `json:"include_net,omitempty"`
}

// TaxByCodeQuery holds the query parameters of GET /api/tax/:code.
// Numeric fields are parsed by the handler so that defaults and errors stay explicit.
type TaxByCodeQuery struct {
	PayDate         string `form:"paydate"`
	PayPeriods      string `form:"payperiods"`
	FilingStatus    string `form:"filingstatus"`
	Earnings        string `form:"earnings"`
	Exemptions      string `form:"exemptions"`
	StateExemptions string `form:"stateexemptions"`
	Zip             string `form:"zip"`
}
