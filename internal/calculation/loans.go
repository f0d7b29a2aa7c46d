package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// Loan is the mutable monthly state of one debt instrument. Payment is fixed
// at setup; Balance only ever decreases and snaps to zero below epsilon.
type Loan struct {
	Name        string
	Balance     decimal.Decimal
	Payment     decimal.Decimal
	MonthlyRate decimal.Decimal
}

// Active reports whether the loan still carries a balance.
func (l *Loan) Active() bool {
	return l.Balance.GreaterThan(decimal.Zero)
}

// AmortizedPayment computes the fixed monthly payment for a loan of the given
// principal, annual percentage rate and term in years:
//
//	payment = principal * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the number of monthly payments. A zero rate
// falls back to straight-line principal/n; a non-positive principal or term
// yields a zero payment.
func AmortizedPayment(principal, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	n := int64(termYears * monthsPerYear)
	if principal.LessThanOrEqual(decimal.Zero) || n <= 0 {
		return decimal.Zero
	}
	if annualRatePercent.IsZero() {
		return principal.Div(decimal.NewFromInt(n))
	}
	r := monthlyLoanRate(annualRatePercent)
	pow := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(n))
	return principal.Mul(r).Mul(pow).Div(pow.Sub(decimal.NewFromInt(1)))
}

// LoanStack holds the three stacked instruments in priority order:
// subsidized first, secondary second, primary absorbs the residual.
type LoanStack struct {
	Subsidized Loan
	Secondary  Loan
	Primary    Loan
}

// All returns the instruments in stacking order.
func (s *LoanStack) All() []*Loan {
	return []*Loan{&s.Subsidized, &s.Secondary, &s.Primary}
}

// TotalBalance returns the aggregate outstanding debt across instruments.
func (s *LoanStack) TotalBalance() decimal.Decimal {
	return s.Subsidized.Balance.Add(s.Secondary.Balance).Add(s.Primary.Balance)
}

// SetupLoans allocates the total financing need across the three instruments
// and computes each fixed payment. Configured amounts are clamped downward so
// that subsidized + secondary + primary always sums to exactly
// max(0, price - down payment).
func SetupLoans(params *domain.SimulationParams) LoanStack {
	residual := params.FinancedAmount()

	subsidized := decimal.Zero
	if params.SubsidizedLoan.Enabled {
		subsidized = decimal.Min(params.SubsidizedLoan.Amount, residual)
		if subsidized.IsNegative() {
			subsidized = decimal.Zero
		}
	}
	remaining := residual.Sub(subsidized)

	secondary := decimal.Zero
	if params.SecondaryMortgage.Enabled {
		secondary = decimal.Min(params.SecondaryMortgage.Amount, remaining)
		if secondary.IsNegative() {
			secondary = decimal.Zero
		}
	}

	// The primary mortgage takes whatever is left, even if its configured
	// amount says otherwise. An amount of zero in the config means exactly
	// this: derive from residual.
	primary := remaining.Sub(secondary)

	return LoanStack{
		Subsidized: Loan{
			Name:    "subsidized",
			Balance: subsidized,
			Payment: AmortizedPayment(subsidized, decimal.Zero, params.SubsidizedLoan.TermYears),
		},
		Secondary: Loan{
			Name:        "secondary",
			Balance:     secondary,
			Payment:     AmortizedPayment(secondary, params.SecondaryMortgage.AnnualRate, params.SecondaryMortgage.TermYears),
			MonthlyRate: monthlyLoanRate(params.SecondaryMortgage.AnnualRate),
		},
		Primary: Loan{
			Name:        "primary",
			Balance:     primary,
			Payment:     AmortizedPayment(primary, params.Mortgage.AnnualRate, params.Mortgage.TermYears),
			MonthlyRate: monthlyLoanRate(params.Mortgage.AnnualRate),
		},
	}
}

// DebtService is one loan's mandatory interest/principal split for a month.
type DebtService struct {
	Interest  decimal.Decimal
	Principal decimal.Decimal
}

// Paid returns the cash actually paid: interest plus (clamped) principal.
func (d DebtService) Paid() decimal.Decimal {
	return d.Interest.Add(d.Principal)
}

// serviceLoan computes the mandatory split for one month. A depleted loan
// pays nothing; a final payment has its principal clamped to the remaining
// balance. The subsidized loan's zero MonthlyRate makes its principal equal
// its full fixed payment.
func serviceLoan(l *Loan) DebtService {
	if !l.Active() {
		return DebtService{Interest: decimal.Zero, Principal: decimal.Zero}
	}
	interest := l.Balance.Mul(l.MonthlyRate)
	principal := l.Payment.Sub(interest)
	if principal.GreaterThan(l.Balance) {
		principal = l.Balance
	}
	return DebtService{Interest: interest, Principal: principal}
}

// amortize reduces the balance by the given principal and snaps residue
// below epsilon to exactly zero.
func (l *Loan) amortize(principal decimal.Decimal) {
	l.Balance = l.Balance.Sub(principal)
	if l.Balance.LessThan(balanceEpsilon) {
		l.Balance = decimal.Zero
	}
}
