package output

import (
	"fmt"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// GenerateAssumptions creates the assumptions list rendered in detailed outputs
// from the actual run parameters.
func GenerateAssumptions(params *domain.SimulationParams) []string {
	assumptions := []string{
		fmt.Sprintf("Investment return: %s%% annually, compounded monthly", params.InvestmentReturnRate.StringFixed(1)),
		fmt.Sprintf("Home appreciation: %s%% annually", params.AppreciationRate.StringFixed(1)),
		fmt.Sprintf("Inflation (rent, insurance, sub-let income): %s%% annually", params.InflationRate.StringFixed(1)),
		fmt.Sprintf("Capital gains tax on portfolio gains: %s%%", params.CapitalGainsTaxRate.StringFixed(1)),
		fmt.Sprintf("Selling cost deducted from home equity: %s%% of home value", params.SellingCostPercent.StringFixed(1)),
		"All rates held constant for the whole horizon",
	}
	if params.BudgetStrategy == domain.BudgetSalaryPercent {
		assumptions = append(assumptions,
			fmt.Sprintf("Budget: %s%% of net salary, salary growing %s%% annually",
				params.HousingAllocationPercent.StringFixed(1), params.SalaryGrowthRate.StringFixed(1)),
			"Early mortgage paydown: "+boolToString(params.PayDownMortgageEarly))
	} else {
		assumptions = append(assumptions,
			"Budget: both scenarios spend the higher of the two monthly net costs")
	}
	return assumptions
}
