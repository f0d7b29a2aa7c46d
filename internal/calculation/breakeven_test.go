package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

func yearlySnapshots(gaps ...int64) []domain.YearlyRecord {
	records := make([]domain.YearlyRecord, len(gaps))
	for i, gap := range gaps {
		rent := decimal.NewFromInt(100000)
		records[i] = domain.YearlyRecord{
			Year:         i + 1,
			NetWorthBuy:  rent.Add(decimal.NewFromInt(gap)),
			NetWorthRent: rent,
		}
	}
	return records
}

func TestBreakEvenInterpolatesInsideCrossingYear(t *testing.T) {
	// gap goes -16000, -2000, +16000: the sign flips during year 3
	result, err := CalculateNetWorthBreakEven(yearlySnapshots(-16000, -2000, 16000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a break-even point")
	}
	if result.YearIndex != 3 {
		t.Errorf("YearIndex = %d, want 3", result.YearIndex)
	}
	// 2000 of an 18000 span into year 3
	wantFraction := decimal.NewFromInt(2000).Div(decimal.NewFromInt(18000))
	if !result.Fraction.Sub(wantFraction).Abs().LessThan(decimal.NewFromFloat(0.0001)) {
		t.Errorf("Fraction = %s, want ~%s", result.Fraction, wantFraction)
	}
	// net worth interpolated between 98000 and 116000
	wantNetWorth := decimal.NewFromInt(100000)
	if !result.NetWorth.Sub(wantNetWorth).Abs().LessThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("NetWorth = %s, want ~%s", result.NetWorth, wantNetWorth)
	}
}

func TestBreakEvenAheadFromTheStart(t *testing.T) {
	result, err := CalculateNetWorthBreakEven(yearlySnapshots(5000, 8000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a break-even point")
	}
	if result.YearIndex != 1 {
		t.Errorf("YearIndex = %d, want 1", result.YearIndex)
	}
	if !result.Fraction.IsZero() {
		t.Errorf("Fraction = %s, want 0", result.Fraction)
	}
	if !result.NetWorth.Equal(decimal.NewFromInt(105000)) {
		t.Errorf("NetWorth = %s, want 105000", result.NetWorth)
	}
}

func TestBreakEvenExactTouchAtSnapshot(t *testing.T) {
	result, err := CalculateNetWorthBreakEven(yearlySnapshots(-1000, 0, 2000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a break-even point")
	}
	if result.YearIndex != 2 {
		t.Errorf("YearIndex = %d, want 2", result.YearIndex)
	}
	if !result.Fraction.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Fraction = %s, want 1", result.Fraction)
	}
}

func TestBreakEvenNeverReached(t *testing.T) {
	result, err := CalculateNetWorthBreakEven(yearlySnapshots(-5000, -4000, -3000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected no break-even, got year %d", result.YearIndex)
	}
}

func TestBreakEvenEmptyProjection(t *testing.T) {
	if _, err := CalculateNetWorthBreakEven(nil); err == nil {
		t.Error("expected an error for an empty projection")
	}
}
