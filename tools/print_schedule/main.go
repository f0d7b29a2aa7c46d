package main

import (
	"fmt"
	"os"

	calc "github.com/bvrgo/buyrent-calculator/internal/calculation"
	"github.com/bvrgo/buyrent-calculator/internal/config"
)

// Prints the month-by-month debt service schedule for a parameter file.
// Debugging aid for checking loan stacking and payoff months by hand.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_schedule <params-file>")
		return
	}

	params, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	stack := calc.SetupLoans(params)
	fmt.Printf("financed amount: %s\n", params.FinancedAmount().StringFixed(2))
	for _, l := range stack.All() {
		if !l.Active() {
			continue
		}
		fmt.Printf("%-12s principal=%s payment=%s/mo monthly-rate=%s\n",
			l.Name, l.Balance.StringFixed(2), l.Payment.StringFixed(2), l.MonthlyRate.StringFixed(6))
	}
	fmt.Println()

	result := calc.NewEngine().Run(params)
	fmt.Println("month  interest   principal  balance")
	for _, m := range result.MonthlyData {
		fmt.Printf("%5d  %9s  %9s  %12s\n",
			m.Month, m.InterestPaid.StringFixed(2), m.PrincipalPaid.StringFixed(2), m.LoanBalance.StringFixed(2))
		if m.LoanBalance.IsZero() {
			fmt.Printf("all loans repaid at month %d\n", m.Month)
			break
		}
	}
}
