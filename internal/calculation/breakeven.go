package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// BreakEvenResult describes the first point where the buy-side net worth
// overtakes the rent-side net worth.
type BreakEvenResult struct {
	YearIndex int             `json:"year_index"` // 1-based year of the crossover
	Fraction  decimal.Decimal `json:"fraction"`   // intra-year position, 0..1
	NetWorth  decimal.Decimal `json:"net_worth"`  // interpolated net worth at crossover
}

// CalculateNetWorthBreakEven scans the yearly series for the first sign
// change in (buy - rent) net worth and interpolates linearly inside the
// crossing year. Returns (nil, nil) when buying never catches up within the
// horizon; buying already ahead at the first snapshot reports year one with
// fraction zero.
func CalculateNetWorthBreakEven(yearly []domain.YearlyRecord) (*BreakEvenResult, error) {
	if len(yearly) == 0 {
		return nil, fmt.Errorf("yearly projection is empty")
	}

	first := yearly[0]
	if first.NetWorthGap().GreaterThanOrEqual(decimal.Zero) {
		return &BreakEvenResult{
			YearIndex: first.Year,
			Fraction:  decimal.Zero,
			NetWorth:  first.NetWorthBuy,
		}, nil
	}

	for i := 1; i < len(yearly); i++ {
		prevGap := yearly[i-1].NetWorthGap()
		currGap := yearly[i].NetWorthGap()
		if currGap.LessThan(decimal.Zero) {
			continue
		}

		// prevGap < 0 <= currGap: linear interpolation inside year i.
		span := currGap.Sub(prevGap)
		fraction := decimal.NewFromInt(1)
		if span.GreaterThan(decimal.Zero) {
			fraction = prevGap.Neg().Div(span)
		}
		netWorth := yearly[i-1].NetWorthBuy.Add(
			yearly[i].NetWorthBuy.Sub(yearly[i-1].NetWorthBuy).Mul(fraction))
		return &BreakEvenResult{
			YearIndex: yearly[i].Year,
			Fraction:  fraction,
			NetWorth:  netWorth,
		}, nil
	}

	return nil, nil
}
