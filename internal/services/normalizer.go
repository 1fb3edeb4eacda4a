package services

import (
	"errors"
	"fmt"

	"github.com/haloiq/tax-api/internal/types/business"
)

var (
	// ErrInvalidInput marks caller errors that never reach the engine or provider
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownEnumValue is returned when a pay period or filing status is not in its table
	ErrUnknownEnumValue = fmt.Errorf("%w: unknown enum value", ErrInvalidInput)
)

// periodDivisors maps a pay frequency to its annualization factor
var periodDivisors = map[business.PayPeriod]int{
	business.PayPeriodWeekly:      52,
	business.PayPeriodBiweekly:    26,
	business.PayPeriodSemimonthly: 24,
	business.PayPeriodMonthly:     12,
	business.PayPeriodAnnual:      1,
}

// filingStatusCodes maps a filing status label to the engine's status code
var filingStatusCodes = map[business.FilingStatus]int{
	business.FilingStatusSingle:          1,
	business.FilingStatusMarriedJoint:    2,
	business.FilingStatusMarriedSeparate: 3,
	business.FilingStatusHead:            4,
}

// Normalize resolves the annualization divisor and engine status code.
func Normalize(payPeriod business.PayPeriod, filingStatus business.FilingStatus) (business.NormalizedInput, error) {
	divisor, ok := PeriodDivisor(payPeriod)
	if !ok {
		return business.NormalizedInput{}, fmt.Errorf("%w: pay_period %q", ErrUnknownEnumValue, payPeriod)
	}
	code, ok := FilingStatusCode(filingStatus)
	if !ok {
		return business.NormalizedInput{}, fmt.Errorf("%w: filing_status %q", ErrUnknownEnumValue, filingStatus)
	}
	return business.NormalizedInput{Divisor: divisor, FilingStatusCode: code}, nil
}

// PeriodDivisor returns the number of pay periods per year
func PeriodDivisor(payPeriod business.PayPeriod) (int, bool) {
	divisor, ok := periodDivisors[payPeriod]
	return divisor, ok
}

// FilingStatusCode returns the engine code for a filing status
func FilingStatusCode(filingStatus business.FilingStatus) (int, bool) {
	code, ok := filingStatusCodes[filingStatus]
	return code, ok
}

// IsValidPayPeriod reports whether value is a known pay period label
func IsValidPayPeriod(value string) bool {
	_, ok := periodDivisors[business.PayPeriod(value)]
	return ok
}

// IsValidFilingStatus reports whether value is a known filing status label
func IsValidFilingStatus(value string) bool {
	_, ok := filingStatusCodes[business.FilingStatus(value)]
	return ok
}
