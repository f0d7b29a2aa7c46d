// Package wizard builds a parameter record interactively in the terminal.
package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/bvrgo/buyrent-calculator/internal/config"
	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// answers holds the raw form values before conversion to SimulationParams.
type answers struct {
	years          string
	strategy       string
	salary         string
	salaryGrowth   string
	allocation     string
	allocationStep string
	payDownEarly   bool

	homePrice      string
	downPayment    string
	buyingCost     string
	sellingCost    string
	appreciation   string
	propertyTax    string
	homeInsurance  string
	maintenance    string
	marginalTax    string
	investReturn   string
	inflation      string
	capGains       string
	mortgageRate   string
	mortgageTerm   string
	loanInsurance  string
	useSubsidized  bool
	subsidizedAmt  string
	subsidizedTerm string
	useSecondary   bool
	secondaryAmt   string
	secondaryRate  string
	secondaryTerm  string

	monthlyRent   string
	rentInsurance string
}

func validateDecimal(s string) error {
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Run walks the user through every parameter and returns a validated record.
func Run() (*domain.SimulationParams, error) {
	a := answers{
		years:        "25",
		strategy:     string(domain.BudgetAutoMatch),
		sellingCost:  "6",
		capGains:     "30",
		mortgageTerm: "25",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Projection horizon (years)").Value(&a.years).Validate(validateInt),
			huh.NewInput().Title("Investment return rate (% per year)").Value(&a.investReturn).Validate(validateDecimal),
			huh.NewInput().Title("Inflation rate (% per year)").Value(&a.inflation).Validate(validateDecimal),
			huh.NewInput().Title("Capital gains tax rate (%)").Value(&a.capGains).Validate(validateDecimal),
			huh.NewSelect[string]().
				Title("Budget strategy").
				Description("How much money both scenarios may spend each month").
				Options(
					huh.NewOption("Match the more expensive scenario", string(domain.BudgetAutoMatch)),
					huh.NewOption("Percentage of net salary", string(domain.BudgetSalaryPercent)),
				).
				Value(&a.strategy),
		),

		huh.NewGroup(
			huh.NewInput().Title("Monthly net salary").Value(&a.salary).Validate(validateDecimal),
			huh.NewInput().Title("Salary growth rate (% per year)").Value(&a.salaryGrowth).Validate(validateDecimal),
			huh.NewInput().Title("Housing allocation (% of salary)").Value(&a.allocation).Validate(validateDecimal),
			huh.NewInput().Title("Allocation increase per year (points)").Value(&a.allocationStep).Validate(validateDecimal),
			huh.NewConfirm().Title("Use budget surplus to pay down loans early?").Value(&a.payDownEarly),
		).WithHideFunc(func() bool { return a.strategy != string(domain.BudgetSalaryPercent) }),

		huh.NewGroup(
			huh.NewInput().Title("Home price").Value(&a.homePrice).Validate(validateDecimal),
			huh.NewInput().Title("Down payment (% of price)").Value(&a.downPayment).Validate(validateDecimal),
			huh.NewInput().Title("Buying costs (% of price)").Value(&a.buyingCost).Validate(validateDecimal),
			huh.NewInput().Title("Selling costs (% of value)").Value(&a.sellingCost).Validate(validateDecimal),
			huh.NewInput().Title("Appreciation rate (% per year)").Value(&a.appreciation).Validate(validateDecimal),
			huh.NewInput().Title("Property tax (% of value per year)").Value(&a.propertyTax).Validate(validateDecimal),
			huh.NewInput().Title("Home insurance (per year)").Value(&a.homeInsurance).Validate(validateDecimal),
			huh.NewInput().Title("Maintenance (% of value per year)").Value(&a.maintenance).Validate(validateDecimal),
			huh.NewInput().Title("Marginal income tax rate (%)").Value(&a.marginalTax).Validate(validateDecimal),
		),

		huh.NewGroup(
			huh.NewInput().Title("Primary mortgage rate (% per year)").Value(&a.mortgageRate).Validate(validateDecimal),
			huh.NewInput().Title("Primary mortgage term (years)").Value(&a.mortgageTerm).Validate(validateInt),
			huh.NewInput().Title("Loan insurance (per month, 0 for none)").Value(&a.loanInsurance).Validate(validateDecimal),
			huh.NewConfirm().Title("Add a zero-interest subsidized loan?").Value(&a.useSubsidized),
			huh.NewConfirm().Title("Add a secondary mortgage?").Value(&a.useSecondary),
		),

		huh.NewGroup(
			huh.NewInput().Title("Subsidized loan amount").Value(&a.subsidizedAmt).Validate(validateDecimal),
			huh.NewInput().Title("Subsidized loan term (years)").Value(&a.subsidizedTerm).Validate(validateInt),
		).WithHideFunc(func() bool { return !a.useSubsidized }),

		huh.NewGroup(
			huh.NewInput().Title("Secondary mortgage amount").Value(&a.secondaryAmt).Validate(validateDecimal),
			huh.NewInput().Title("Secondary mortgage rate (% per year)").Value(&a.secondaryRate).Validate(validateDecimal),
			huh.NewInput().Title("Secondary mortgage term (years)").Value(&a.secondaryTerm).Validate(validateInt),
		).WithHideFunc(func() bool { return !a.useSecondary }),

		huh.NewGroup(
			huh.NewInput().Title("Monthly rent for a comparable home").Value(&a.monthlyRent).Validate(validateDecimal),
			huh.NewInput().Title("Renter's insurance (per month, 0 for none)").Value(&a.rentInsurance).Validate(validateDecimal),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	params := a.toParams()
	if err := config.NewInputParser().ValidateParams(params); err != nil {
		return nil, err
	}
	return params, nil
}

func (a *answers) toParams() *domain.SimulationParams {
	params := &domain.SimulationParams{
		Years:                mustInt(a.years),
		InvestmentReturnRate: mustDecimal(a.investReturn),
		InflationRate:        mustDecimal(a.inflation),
		CapitalGainsTaxRate:  mustDecimal(a.capGains),

		BudgetStrategy: domain.BudgetStrategy(a.strategy),

		HomePrice:                mustDecimal(a.homePrice),
		DownPaymentPercent:       mustDecimal(a.downPayment),
		BuyingCostPercent:        mustDecimal(a.buyingCost),
		SellingCostPercent:       mustDecimal(a.sellingCost),
		AppreciationRate:         mustDecimal(a.appreciation),
		PropertyTaxRate:          mustDecimal(a.propertyTax),
		HomeInsuranceYearly:      mustDecimal(a.homeInsurance),
		MaintenancePercentYearly: mustDecimal(a.maintenance),
		MarginalTaxRate:          mustDecimal(a.marginalTax),

		Mortgage: domain.MortgageConfig{
			Enabled:    true,
			AnnualRate: mustDecimal(a.mortgageRate),
			TermYears:  mustInt(a.mortgageTerm),
		},
		LoanInsuranceMonthly: mustDecimal(a.loanInsurance),

		MonthlyRent:          mustDecimal(a.monthlyRent),
		RentInsuranceMonthly: mustDecimal(a.rentInsurance),
	}

	if a.strategy == string(domain.BudgetSalaryPercent) {
		params.MonthlyNetSalary = mustDecimal(a.salary)
		params.SalaryGrowthRate = mustDecimal(a.salaryGrowth)
		params.HousingAllocationPercent = mustDecimal(a.allocation)
		params.AllocationAnnualIncrement = mustDecimal(a.allocationStep)
		params.PayDownMortgageEarly = a.payDownEarly
	}
	if a.useSubsidized {
		params.SubsidizedLoan = domain.SubsidizedLoanConfig{
			Enabled:   true,
			Amount:    mustDecimal(a.subsidizedAmt),
			TermYears: mustInt(a.subsidizedTerm),
		}
	}
	if a.useSecondary {
		params.SecondaryMortgage = domain.MortgageConfig{
			Enabled:    true,
			Amount:     mustDecimal(a.secondaryAmt),
			AnnualRate: mustDecimal(a.secondaryRate),
			TermYears:  mustInt(a.secondaryTerm),
		}
	}
	return params
}
