package calculation

import (
	"github.com/shopspring/decimal"
)

// Portfolio tracks one investment account: market value plus the running
// principal contributed, which anchors the unrealized gain for the yearly
// notional capital-gains liquidation.
type Portfolio struct {
	Value       decimal.Decimal
	Contributed decimal.Decimal
}

// advance compounds the portfolio by one month and then applies the signed
// contribution (negative = debt-funded shortfall drawn against the account).
func (p *Portfolio) advance(monthlyFactor, contribution decimal.Decimal) {
	p.Value = p.Value.Mul(monthlyFactor).Add(contribution)
	p.Contributed = p.Contributed.Add(contribution)
}

// TaxedValue returns the value after notionally liquidating and taxing the
// unrealized gain at the given annual capital-gains percentage. Losses are
// never offset: when value sits below contributed principal no tax applies.
func (p *Portfolio) TaxedValue(capitalGainsPercent decimal.Decimal) decimal.Decimal {
	gain := p.Value.Sub(p.Contributed)
	if gain.LessThanOrEqual(decimal.Zero) {
		return p.Value
	}
	return p.Value.Sub(gain.Mul(fraction(capitalGainsPercent)))
}
