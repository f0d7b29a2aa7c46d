package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	calc "github.com/bvrgo/buyrent-calculator/internal/calculation"
	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full detailed console report via the
// pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	params := &result.Params

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "BUY VS RENT-AND-INVEST PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(params) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PURCHASE SETUP")
	fmt.Fprintln(&buf, "==============")
	fmt.Fprintf(&buf, "Home Price:           %s\n", FormatCurrency(params.HomePrice))
	fmt.Fprintf(&buf, "Down Payment:         %s (%s)\n", FormatCurrency(params.DownPayment()), FormatPercentage(params.DownPaymentPercent))
	fmt.Fprintf(&buf, "Buying Costs:         %s (%s)\n", FormatCurrency(params.BuyingCost()), FormatPercentage(params.BuyingCostPercent))
	fmt.Fprintf(&buf, "Initial Outlay:       %s\n", FormatCurrency(result.Summary.InitialOutlay))
	fmt.Fprintf(&buf, "Financed Amount:      %s\n", FormatCurrency(params.FinancedAmount()))
	fmt.Fprintln(&buf)

	writeLoanStack(&buf, params)
	writeYearlyTable(&buf, result)

	fmt.Fprintln(&buf, "RUN TOTALS")
	fmt.Fprintln(&buf, "----------")
	fmt.Fprintf(&buf, "  Total Interest Paid:    %s\n", FormatCurrency(result.Summary.TotalInterestPaid))
	fmt.Fprintf(&buf, "  Total Principal Paid:   %s\n", FormatCurrency(result.Summary.TotalPrincipalPaid))
	fmt.Fprintf(&buf, "  Total Rent Paid:        %s\n", FormatCurrency(result.Summary.TotalRentPaid))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FINAL NET WORTH COMPARISON:")
	fmt.Fprintln(&buf, "---------------------------")
	fmt.Fprintf(&buf, "  Buy Scenario:           %s\n", FormatCurrency(result.Summary.FinalNetWorthBuy))
	fmt.Fprintf(&buf, "  Rent Scenario:          %s\n", FormatCurrency(result.Summary.FinalNetWorthRent))
	gap := result.Summary.FinalNetWorthBuy.Sub(result.Summary.FinalNetWorthRent)
	if gap.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&buf, "  ADVANTAGE: BUY by +%s\n", FormatCurrency(gap))
	} else {
		fmt.Fprintf(&buf, "  ADVANTAGE: RENT by +%s\n", FormatCurrency(gap.Neg()))
	}
	fmt.Fprintln(&buf)

	rec := AnalyzeResult(result)
	if rec.BreakEven != nil {
		fmt.Fprintf(&buf, "Buying overtakes renting during year %d (%.0f%% through the year) at net worth %s\n",
			rec.BreakEven.YearIndex,
			rec.BreakEven.Fraction.Mul(decimal.NewFromInt(100)).InexactFloat64(),
			FormatCurrency(rec.BreakEven.NetWorth))
	} else {
		fmt.Fprintln(&buf, "Buying never overtakes renting within the horizon")
	}
	fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", strings.ToUpper(rec.Verdict), FormatCurrency(rec.FinalAdvantage), FormatPercentage(rec.PercentageChange))

	return buf.Bytes(), nil
}

func writeLoanStack(buf *bytes.Buffer, params *domain.SimulationParams) {
	stack := calc.SetupLoans(params)
	active := stack.All()
	if len(active) == 0 {
		return
	}
	fmt.Fprintln(buf, "DEBT INSTRUMENTS (stacking order)")
	fmt.Fprintln(buf, "---------------------------------")
	for _, l := range active {
		if !l.Active() {
			continue
		}
		fmt.Fprintf(buf, "  %-12s principal=%s payment=%s/mo\n", l.Name, FormatCurrency(l.Balance), FormatCurrency(l.Payment))
	}
	fmt.Fprintln(buf)
}

func writeYearlyTable(buf *bytes.Buffer, result *domain.SimulationResult) {
	if len(result.YearlyData) == 0 {
		return
	}
	fmt.Fprintln(buf, "YEARLY PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("=", 96))
	fmt.Fprintf(buf, "%4s %14s %14s %14s %14s %14s %14s\n",
		"Year", "HomeValue", "DebtBalance", "Equity", "NetWorthBuy", "NetWorthRent", "Gap")
	fmt.Fprintln(buf, strings.Repeat("-", 96))
	for _, yr := range result.YearlyData {
		fmt.Fprintf(buf, "%4d %14s %14s %14s %14s %14s %14s\n",
			yr.Year,
			yr.HomeValue.StringFixed(0),
			yr.MortgageBalance.StringFixed(0),
			yr.Equity.StringFixed(0),
			yr.NetWorthBuy.StringFixed(0),
			yr.NetWorthRent.StringFixed(0),
			yr.NetWorthGap().StringFixed(0),
		)
	}
	fmt.Fprintln(buf, strings.Repeat("=", 96))
	fmt.Fprintln(buf)
}
