package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// balanceEpsilon is the threshold below which a loan balance is snapped to
// exactly zero, absorbing decimal residue from the final payment.
var balanceEpsilon = decimal.NewFromFloat(0.01)

var (
	hundred       = decimal.NewFromInt(100)
	twelve        = decimal.NewFromInt(12)
	monthsPerYear = 12
)

// fraction converts an annual percentage (7 means 7%) to a fraction (0.07).
func fraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// monthlyGrowthFactor derives the fixed monthly compounding multiplier from
// an annual percentage rate via the 12th root: (1 + r)^(1/12). The factor is
// applied uniformly every simulated month regardless of calendar position.
func monthlyGrowthFactor(annualPercent decimal.Decimal) decimal.Decimal {
	r, _ := fraction(annualPercent).Float64()
	return decimal.NewFromFloat(math.Pow(1+r, 1.0/12.0))
}

// monthlyLoanRate is the nominal monthly rate used by the amortization
// formula: annual rate divided by twelve.
func monthlyLoanRate(annualPercent decimal.Decimal) decimal.Decimal {
	return fraction(annualPercent).Div(twelve)
}
