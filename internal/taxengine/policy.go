package taxengine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Filing status codes understood by the engine
const (
	StatusSingle          = 1
	StatusMarriedJoint    = 2
	StatusMarriedSeparate = 3
	StatusHead            = 4
)

// Bracket is one marginal band; UpTo is zero for the top band.
type Bracket struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// Policy holds the federal parameters for one tax year
type Policy struct {
	TaxYear            int
	StandardDeduction  map[int]decimal.Decimal
	Brackets           map[int][]Bracket
	PersonalExemption  decimal.Decimal
	SocialSecurityRate decimal.Decimal
	SocialSecurityBase decimal.Decimal
	MedicareRate       decimal.Decimal
}

var ordinaryRates = []string{"0.10", "0.12", "0.22", "0.24", "0.32", "0.35", "0.37"}

var policies = map[int]*Policy{
	2024: {
		TaxYear: 2024,
		StandardDeduction: map[int]decimal.Decimal{
			StatusSingle:          decimal.NewFromInt(14600),
			StatusMarriedJoint:    decimal.NewFromInt(29200),
			StatusMarriedSeparate: decimal.NewFromInt(14600),
			StatusHead:            decimal.NewFromInt(21900),
		},
		Brackets: map[int][]Bracket{
			StatusSingle:          brackets(11600, 47150, 100525, 191950, 243725, 609350),
			StatusMarriedJoint:    brackets(23200, 94300, 201050, 383900, 487450, 731200),
			StatusMarriedSeparate: brackets(11600, 47150, 100525, 191950, 243725, 365600),
			StatusHead:            brackets(16550, 63100, 100500, 191950, 243700, 609350),
		},
		PersonalExemption:  decimal.Zero,
		SocialSecurityRate: decimal.RequireFromString("0.062"),
		SocialSecurityBase: decimal.NewFromInt(168600),
		MedicareRate:       decimal.RequireFromString("0.0145"),
	},
	2025: {
		TaxYear: 2025,
		StandardDeduction: map[int]decimal.Decimal{
			StatusSingle:          decimal.NewFromInt(15750),
			StatusMarriedJoint:    decimal.NewFromInt(31500),
			StatusMarriedSeparate: decimal.NewFromInt(15750),
			StatusHead:            decimal.NewFromInt(23625),
		},
		Brackets: map[int][]Bracket{
			StatusSingle:          brackets(11925, 48475, 103350, 197300, 250525, 626350),
			StatusMarriedJoint:    brackets(23850, 96950, 206700, 394600, 501050, 751600),
			StatusMarriedSeparate: brackets(11925, 48475, 103350, 197300, 250525, 375800),
			StatusHead:            brackets(17000, 64850, 103350, 197300, 250500, 626350),
		},
		PersonalExemption:  decimal.Zero,
		SocialSecurityRate: decimal.RequireFromString("0.062"),
		SocialSecurityBase: decimal.NewFromInt(176100),
		MedicareRate:       decimal.RequireFromString("0.0145"),
	},
	2026: {
		TaxYear: 2026,
		StandardDeduction: map[int]decimal.Decimal{
			StatusSingle:          decimal.NewFromInt(16100),
			StatusMarriedJoint:    decimal.NewFromInt(32200),
			StatusMarriedSeparate: decimal.NewFromInt(16100),
			StatusHead:            decimal.NewFromInt(24150),
		},
		Brackets: map[int][]Bracket{
			StatusSingle:          brackets(12400, 50400, 105700, 201775, 256225, 640600),
			StatusMarriedJoint:    brackets(24800, 100800, 211400, 403550, 512450, 768700),
			StatusMarriedSeparate: brackets(12400, 50400, 105700, 201775, 256225, 384350),
			StatusHead:            brackets(17700, 67450, 105700, 201750, 256200, 640600),
		},
		PersonalExemption:  decimal.Zero,
		SocialSecurityRate: decimal.RequireFromString("0.062"),
		SocialSecurityBase: decimal.NewFromInt(184500),
		MedicareRate:       decimal.RequireFromString("0.0145"),
	},
}

// brackets pairs the six upper thresholds with the seven ordinary rates
func brackets(thresholds ...int64) []Bracket {
	out := make([]Bracket, 0, len(ordinaryRates))
	for i, rate := range ordinaryRates {
		b := Bracket{Rate: decimal.RequireFromString(rate)}
		if i < len(thresholds) {
			b.UpTo = decimal.NewFromInt(thresholds[i])
		}
		out = append(out, b)
	}
	return out
}

// PolicyForYear returns the policy for year and whether the engine has data for it.
func PolicyForYear(year int) (*Policy, bool) {
	p, ok := policies[year]
	return p, ok
}

// SupportedYears lists the tax years with policy data, ascending.
func SupportedYears() []int {
	years := make([]int, 0, len(policies))
	for year := range policies {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
