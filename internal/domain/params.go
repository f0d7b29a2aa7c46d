package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetStrategy selects how the monthly spending ceiling is determined.
type BudgetStrategy string

const (
	// BudgetSalaryPercent caps monthly housing spend at a percentage of the
	// current (growth-indexed) salary.
	BudgetSalaryPercent BudgetStrategy = "salary_percent"
	// BudgetAutoMatch gives both scenarios the same ceiling: the higher of
	// the two scenarios' net monthly costs.
	BudgetAutoMatch BudgetStrategy = "auto_match"
)

// SubsidizedLoanConfig describes the optional zero-interest state-subsidized
// loan. It is always drawn first in the stacking order.
type SubsidizedLoanConfig struct {
	Enabled   bool            `yaml:"enabled" json:"enabled"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	TermYears int             `yaml:"term_years" json:"term_years"`
}

// MortgageConfig describes an amortized mortgage instrument. For the primary
// mortgage an Amount of zero means "absorb the residual financing need".
type MortgageConfig struct {
	Enabled    bool            `yaml:"enabled" json:"enabled"`
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	AnnualRate decimal.Decimal `yaml:"annual_rate" json:"annual_rate"` // percent
	TermYears  int             `yaml:"term_years" json:"term_years"`
}

// SimulationParams is the single immutable input record for a run.
// All rates are annual percentages (7 means 7%), fixed for the whole horizon.
type SimulationParams struct {
	Years int `yaml:"years" json:"years"`

	InvestmentReturnRate decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	CapitalGainsTaxRate  decimal.Decimal `yaml:"capital_gains_tax_rate" json:"capital_gains_tax_rate"`

	// Budget policy.
	BudgetStrategy            BudgetStrategy  `yaml:"budget_strategy" json:"budget_strategy"`
	MonthlyNetSalary          decimal.Decimal `yaml:"monthly_net_salary" json:"monthly_net_salary"`
	SalaryGrowthRate          decimal.Decimal `yaml:"salary_growth_rate" json:"salary_growth_rate"`
	HousingAllocationPercent  decimal.Decimal `yaml:"housing_allocation_percent" json:"housing_allocation_percent"`
	AllocationAnnualIncrement decimal.Decimal `yaml:"allocation_annual_increment,omitempty" json:"allocation_annual_increment,omitempty"`
	PayDownMortgageEarly      bool            `yaml:"pay_down_mortgage_early" json:"pay_down_mortgage_early"`

	// Home purchase economics.
	HomePrice                decimal.Decimal `yaml:"home_price" json:"home_price"`
	DownPaymentPercent       decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	BuyingCostPercent        decimal.Decimal `yaml:"buying_cost_percent" json:"buying_cost_percent"`
	SellingCostPercent       decimal.Decimal `yaml:"selling_cost_percent" json:"selling_cost_percent"`
	AppreciationRate         decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"`
	PropertyTaxRate          decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	HomeInsuranceYearly      decimal.Decimal `yaml:"home_insurance_yearly" json:"home_insurance_yearly"`
	MaintenancePercentYearly decimal.Decimal `yaml:"maintenance_percent_yearly" json:"maintenance_percent_yearly"`
	MarginalTaxRate          decimal.Decimal `yaml:"marginal_tax_rate" json:"marginal_tax_rate"`

	// Optional sub-letting of part of the property.
	SubLet              bool            `yaml:"sub_let,omitempty" json:"sub_let,omitempty"`
	SubLetMonthlyIncome decimal.Decimal `yaml:"sub_let_monthly_income,omitempty" json:"sub_let_monthly_income,omitempty"`

	// Debt instruments, in stacking priority order.
	SubsidizedLoan       SubsidizedLoanConfig `yaml:"subsidized_loan,omitempty" json:"subsidized_loan,omitempty"`
	SecondaryMortgage    MortgageConfig       `yaml:"secondary_mortgage,omitempty" json:"secondary_mortgage,omitempty"`
	Mortgage             MortgageConfig       `yaml:"mortgage" json:"mortgage"`
	LoanInsuranceMonthly decimal.Decimal      `yaml:"loan_insurance_monthly,omitempty" json:"loan_insurance_monthly,omitempty"`

	// Rental scenario economics.
	MonthlyRent          decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	RentInsuranceMonthly decimal.Decimal `yaml:"rent_insurance_monthly,omitempty" json:"rent_insurance_monthly,omitempty"`
}

// DownPayment returns the cash down payment implied by the price and percent.
func (p *SimulationParams) DownPayment() decimal.Decimal {
	return p.HomePrice.Mul(p.DownPaymentPercent).Div(decimal.NewFromInt(100))
}

// BuyingCost returns the one-off acquisition cost (notary, agency, taxes).
func (p *SimulationParams) BuyingCost() decimal.Decimal {
	return p.HomePrice.Mul(p.BuyingCostPercent).Div(decimal.NewFromInt(100))
}

// InitialOutlay returns the cash required on day one of the buy scenario.
func (p *SimulationParams) InitialOutlay() decimal.Decimal {
	return p.DownPayment().Add(p.BuyingCost())
}

// FinancedAmount returns the total borrowing need across all instruments:
// max(0, price - down payment).
func (p *SimulationParams) FinancedAmount() decimal.Decimal {
	residual := p.HomePrice.Sub(p.DownPayment())
	if residual.IsNegative() {
		return decimal.Zero
	}
	return residual
}
