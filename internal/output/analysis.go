package output

import (
	"github.com/shopspring/decimal"

	calc "github.com/bvrgo/buyrent-calculator/internal/calculation"
	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// Recommendation encapsulates the verdict derived from a finished run.
type Recommendation struct {
	Verdict          string // "buy" or "rent"
	FinalAdvantage   decimal.Decimal
	PercentageChange decimal.Decimal
	BreakEven        *calc.BreakEvenResult
}

// AnalyzeResult determines which scenario ends ahead and by how much.
// Extracted from embedded console logic for testability.
func AnalyzeResult(result *domain.SimulationResult) Recommendation {
	rec := Recommendation{Verdict: "rent"}
	if result == nil || len(result.YearlyData) == 0 {
		return rec
	}

	buy := result.Summary.FinalNetWorthBuy
	rent := result.Summary.FinalNetWorthRent
	rec.FinalAdvantage = buy.Sub(rent)
	if result.BuyWins() {
		rec.Verdict = "buy"
	}

	base := rent
	if rec.Verdict == "rent" {
		base = buy
		rec.FinalAdvantage = rec.FinalAdvantage.Neg()
	}
	if !base.IsZero() {
		rec.PercentageChange = rec.FinalAdvantage.Div(base).Mul(decimal.NewFromInt(100))
	}

	if be, err := calc.CalculateNetWorthBreakEven(result.YearlyData); err == nil && be != nil {
		rec.BreakEven = be
	}
	return rec
}
