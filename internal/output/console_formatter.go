package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "BUY VS RENT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Horizon: %d years  Home Price: %s  Initial Outlay: %s\n",
		result.Params.Years,
		FormatCurrency(result.Params.HomePrice),
		FormatCurrency(result.Summary.InitialOutlay),
	)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Buy:  FinalNetWorth=%s Interest=%s Principal=%s\n",
		FormatCurrency(result.Summary.FinalNetWorthBuy),
		FormatCurrency(result.Summary.TotalInterestPaid),
		FormatCurrency(result.Summary.TotalPrincipalPaid),
	)
	fmt.Fprintf(&buf, "Rent: FinalNetWorth=%s RentPaid=%s\n",
		FormatCurrency(result.Summary.FinalNetWorthRent),
		FormatCurrency(result.Summary.TotalRentPaid),
	)

	rec := AnalyzeResult(result)
	fmt.Fprintln(&buf)
	if rec.BreakEven != nil {
		fmt.Fprintf(&buf, "Break-even: year %d\n", rec.BreakEven.YearIndex)
	} else {
		fmt.Fprintln(&buf, "Break-even: never")
	}
	fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", strings.ToUpper(rec.Verdict), FormatCurrency(rec.FinalAdvantage), FormatPercentage(rec.PercentageChange))
	return buf.Bytes(), nil
}
