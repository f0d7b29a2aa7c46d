package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyRecord captures the debt-service side of a single simulated month.
type MonthlyRecord struct {
	Month         int             `json:"month"` // 1-based
	InterestPaid  decimal.Decimal `json:"interest_paid"`
	PrincipalPaid decimal.Decimal `json:"principal_paid"` // mandatory + accelerated
	LoanBalance   decimal.Decimal `json:"loan_balance"`   // aggregate across instruments
}

// YearlyRecord is the end-of-year snapshot of both wealth trajectories.
type YearlyRecord struct {
	Year int `json:"year"` // 1-based

	HomeValue       decimal.Decimal `json:"home_value"`
	MortgageBalance decimal.Decimal `json:"mortgage_balance"` // aggregate outstanding debt
	Equity          decimal.Decimal `json:"equity"`           // home value - debt

	BuyCashOutflow decimal.Decimal `json:"buy_cash_outflow"` // sum of net buy cost over the year

	// Portfolio values after notional capital-gains liquidation.
	InvestmentValueBuy  decimal.Decimal `json:"investment_value_buy"`
	InvestmentValueRent decimal.Decimal `json:"investment_value_rent"`

	NetWorthBuy  decimal.Decimal `json:"net_worth_buy"`
	NetWorthRent decimal.Decimal `json:"net_worth_rent"`

	YearInterest  decimal.Decimal `json:"year_interest"`
	YearPrincipal decimal.Decimal `json:"year_principal"`
	YearRentCost  decimal.Decimal `json:"year_rent_cost"`
}

// NetWorthGap returns the buy-minus-rent net worth difference for the year.
func (yr YearlyRecord) NetWorthGap() decimal.Decimal {
	return yr.NetWorthBuy.Sub(yr.NetWorthRent)
}

// Summary holds run totals and final figures.
type Summary struct {
	FinalNetWorthBuy   decimal.Decimal `json:"final_net_worth_buy"`
	FinalNetWorthRent  decimal.Decimal `json:"final_net_worth_rent"`
	TotalInterestPaid  decimal.Decimal `json:"total_interest_paid"`
	TotalRentPaid      decimal.Decimal `json:"total_rent_paid"`
	TotalPrincipalPaid decimal.Decimal `json:"total_principal_paid"`
	InitialOutlay      decimal.Decimal `json:"initial_outlay"`
}

// SimulationResult is the complete output record of one engine run. Params is
// a copy of the input so exporters and the narrative generator can describe
// the configuration without a second handle.
type SimulationResult struct {
	Params      SimulationParams `json:"params"`
	MonthlyData []MonthlyRecord  `json:"monthly_data"`
	YearlyData  []YearlyRecord   `json:"yearly_data"`
	Summary     Summary          `json:"summary"`
}

// BuyWins reports whether the buy scenario ends ahead of renting.
func (r *SimulationResult) BuyWins() bool {
	return r.Summary.FinalNetWorthBuy.GreaterThan(r.Summary.FinalNetWorthRent)
}

// FinalYear returns the last yearly record, or nil for a zero-length horizon.
func (r *SimulationResult) FinalYear() *YearlyRecord {
	if len(r.YearlyData) == 0 {
		return nil
	}
	return &r.YearlyData[len(r.YearlyData)-1]
}
