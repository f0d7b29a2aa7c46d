package calculation

import (
	"github.com/shopspring/decimal"
)

// allocationTarget is one tier of the surplus cascade: a loan that can absorb
// extra principal up to its mandatory-adjusted remaining balance. Tiers are
// ordered by rate priority (secondary before primary); the subsidized loan is
// never a target since early repayment of interest-free debt buys nothing.
type allocationTarget struct {
	loan     *Loan
	capacity decimal.Decimal
}

// extraPrincipal is the outcome of one month's surplus cascade.
type extraPrincipal struct {
	bySecondary decimal.Decimal
	byPrimary   decimal.Decimal
	toPortfolio decimal.Decimal
}

// allocateSurplus distributes a positive surplus across the ordered targets,
// each absorbing up to its remaining capacity; whatever is left becomes a
// portfolio contribution. Adding a future tier only means appending a target.
func allocateSurplus(surplus decimal.Decimal, targets []allocationTarget) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(targets)+1)
	remaining := surplus
	for i, t := range targets {
		applied := decimal.Min(remaining, t.capacity)
		if applied.IsNegative() {
			applied = decimal.Zero
		}
		amounts[i] = applied
		remaining = remaining.Sub(applied)
	}
	amounts[len(targets)] = remaining
	return amounts
}

// accelerate runs the cascade for the buy-side surplus against the secondary
// then primary mortgage, given the mandatory principal already scheduled this
// month.
func accelerate(surplus decimal.Decimal, loans *LoanStack, secondaryDue, primaryDue DebtService) extraPrincipal {
	targets := []allocationTarget{
		{loan: &loans.Secondary, capacity: loans.Secondary.Balance.Sub(secondaryDue.Principal)},
		{loan: &loans.Primary, capacity: loans.Primary.Balance.Sub(primaryDue.Principal)},
	}
	amounts := allocateSurplus(surplus, targets)
	return extraPrincipal{
		bySecondary: amounts[0],
		byPrimary:   amounts[1],
		toPortfolio: amounts[2],
	}
}
