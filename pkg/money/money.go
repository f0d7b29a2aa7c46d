package money

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a new Money instance from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal creates a new Money instance from a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString creates a new Money instance from a string.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Min returns the minimum of two Money amounts.
func Min(a, b Money) Money {
	if a.Decimal.LessThan(b.Decimal) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts.
func Max(a, b Money) Money {
	if a.Decimal.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount fixed to two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount with a currency symbol.
func (m Money) Format() string {
	return "€" + m.String()
}
