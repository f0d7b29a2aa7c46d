package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// generateProjection walks the horizon month by month, mutating the working
// state through four stages per iteration: debt service, cost netting,
// budget/allocation, state advance. Each month's inputs are the previous
// month's outputs; yearly snapshots are appended every twelfth month.
func (e *Engine) generateProjection(params *domain.SimulationParams, result *domain.SimulationResult) {
	loans := SetupLoans(params)

	// Fixed monthly multipliers, derived once from the annual rates.
	investFactor := monthlyGrowthFactor(params.InvestmentReturnRate)
	inflationFactor := monthlyGrowthFactor(params.InflationRate)
	appreciationFactor := monthlyGrowthFactor(params.AppreciationRate)
	salaryFactor := monthlyGrowthFactor(params.SalaryGrowthRate)

	marginalRate := fraction(params.MarginalTaxRate)
	propertyTaxMonthlyRate := fraction(params.PropertyTaxRate).Div(twelve)
	maintenanceMonthlyRate := fraction(params.MaintenancePercentYearly).Div(twelve)
	insuranceMonthlyBase := params.HomeInsuranceYearly.Div(twelve)

	// Indexed scalar state. The buy scenario starts with everything sunk
	// into the home; the rent scenario invests the same initial outlay.
	homeValue := params.HomePrice
	rent := params.MonthlyRent
	rentInsurance := params.RentInsuranceMonthly
	subLetIncome := params.SubLetMonthlyIncome
	salary := params.MonthlyNetSalary
	insuranceFactor := decimal.NewFromInt(1)
	allocationPercent := params.HousingAllocationPercent

	buyPortfolio := Portfolio{}
	rentPortfolio := Portfolio{
		Value:       result.Summary.InitialOutlay,
		Contributed: result.Summary.InitialOutlay,
	}

	salaryPolicy := params.BudgetStrategy == domain.BudgetSalaryPercent

	var totalInterest, totalPrincipal, totalRent decimal.Decimal
	var yearInterest, yearPrincipal, yearRent, yearBuyOutflow decimal.Decimal

	months := params.Years * monthsPerYear
	for m := 0; m < months; m++ {
		// Stage 1: mandatory debt service for every active loan.
		subsidizedDue := serviceLoan(&loans.Subsidized)
		secondaryDue := serviceLoan(&loans.Secondary)
		primaryDue := serviceLoan(&loans.Primary)

		// Stage 2: cost netting off the start-of-month asset values.
		propertyTax := homeValue.Mul(propertyTaxMonthlyRate)
		maintenance := homeValue.Mul(maintenanceMonthlyRate)
		homeInsurance := insuranceMonthlyBase.Mul(insuranceFactor)
		loanInsurance := decimal.Zero
		if loans.TotalBalance().GreaterThan(decimal.Zero) {
			loanInsurance = params.LoanInsuranceMonthly
		}

		taxShield := primaryDue.Interest.Add(secondaryDue.Interest).Add(propertyTax).Mul(marginalRate)
		netRental := decimal.Zero
		if params.SubLet {
			netRental = subLetIncome.Sub(subLetIncome.Mul(marginalRate))
		}

		mandatory := subsidizedDue.Paid().Add(secondaryDue.Paid()).Add(primaryDue.Paid())
		netBuyCost := mandatory.Add(propertyTax).Add(maintenance).Add(homeInsurance).Add(loanInsurance).
			Sub(taxShield).Sub(netRental)
		totalRentCost := rent.Add(rentInsurance)

		// Stage 3: budget ceiling and surplus allocation.
		var budget decimal.Decimal
		if salaryPolicy {
			budget = salary.Mul(fraction(allocationPercent))
		} else {
			budget = decimal.Max(netBuyCost, totalRentCost)
		}
		buySurplus := budget.Sub(netBuyCost)
		rentSurplus := budget.Sub(totalRentCost)

		var extra extraPrincipal
		buyContribution := buySurplus
		if salaryPolicy && params.PayDownMortgageEarly && buySurplus.GreaterThan(decimal.Zero) {
			extra = accelerate(buySurplus, &loans, secondaryDue, primaryDue)
			buyContribution = extra.toPortfolio
		}

		if e.Debug {
			e.Logger.Debugf("month %d: netBuyCost=%s rentCost=%s budget=%s buySurplus=%s",
				m+1, netBuyCost.StringFixed(2), totalRentCost.StringFixed(2),
				budget.StringFixed(2), buySurplus.StringFixed(2))
		}

		// Stage 4: advance loan balances, portfolios, indexed scalars.
		loans.Subsidized.amortize(subsidizedDue.Principal)
		loans.Secondary.amortize(secondaryDue.Principal.Add(extra.bySecondary))
		loans.Primary.amortize(primaryDue.Principal.Add(extra.byPrimary))

		buyPortfolio.advance(investFactor, buyContribution)
		rentPortfolio.advance(investFactor, rentSurplus)

		monthInterest := secondaryDue.Interest.Add(primaryDue.Interest)
		monthPrincipal := subsidizedDue.Principal.Add(secondaryDue.Principal).Add(primaryDue.Principal).
			Add(extra.bySecondary).Add(extra.byPrimary)

		totalInterest = totalInterest.Add(monthInterest)
		totalPrincipal = totalPrincipal.Add(monthPrincipal)
		totalRent = totalRent.Add(totalRentCost)
		yearInterest = yearInterest.Add(monthInterest)
		yearPrincipal = yearPrincipal.Add(monthPrincipal)
		yearRent = yearRent.Add(totalRentCost)
		yearBuyOutflow = yearBuyOutflow.Add(netBuyCost)

		result.MonthlyData = append(result.MonthlyData, domain.MonthlyRecord{
			Month:         m + 1,
			InterestPaid:  monthInterest,
			PrincipalPaid: monthPrincipal,
			LoanBalance:   loans.TotalBalance(),
		})

		homeValue = homeValue.Mul(appreciationFactor)
		rent = rent.Mul(inflationFactor)
		rentInsurance = rentInsurance.Mul(inflationFactor)
		subLetIncome = subLetIncome.Mul(inflationFactor)
		salary = salary.Mul(salaryFactor)
		insuranceFactor = insuranceFactor.Mul(inflationFactor)

		// Annual snapshot on each month that completes a year.
		if (m+1)%monthsPerYear != 0 {
			continue
		}

		if salaryPolicy && params.AllocationAnnualIncrement.GreaterThan(decimal.Zero) {
			allocationPercent = decimal.Min(allocationPercent.Add(params.AllocationAnnualIncrement), hundred)
		}

		debt := loans.TotalBalance()
		sellingCost := homeValue.Mul(fraction(params.SellingCostPercent))
		taxedBuy := buyPortfolio.TaxedValue(params.CapitalGainsTaxRate)
		taxedRent := rentPortfolio.TaxedValue(params.CapitalGainsTaxRate)

		result.YearlyData = append(result.YearlyData, domain.YearlyRecord{
			Year:                (m + 1) / monthsPerYear,
			HomeValue:           homeValue,
			MortgageBalance:     debt,
			Equity:              homeValue.Sub(debt),
			BuyCashOutflow:      yearBuyOutflow,
			InvestmentValueBuy:  taxedBuy,
			InvestmentValueRent: taxedRent,
			NetWorthBuy:         homeValue.Sub(debt).Sub(sellingCost).Add(taxedBuy),
			NetWorthRent:        taxedRent,
			YearInterest:        yearInterest,
			YearPrincipal:       yearPrincipal,
			YearRentCost:        yearRent,
		})

		yearInterest = decimal.Zero
		yearPrincipal = decimal.Zero
		yearRent = decimal.Zero
		yearBuyOutflow = decimal.Zero
	}

	result.Summary.TotalInterestPaid = totalInterest
	result.Summary.TotalPrincipalPaid = totalPrincipal
	result.Summary.TotalRentPaid = totalRent
}
