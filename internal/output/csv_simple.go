package output

import (
	"bytes"
	"encoding/csv"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// CSVSummarizer implements the yearly summary CSV output (one row per year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "HomeValue", "MortgageBalance", "Equity", "BuyCashOutflow", "InvestmentValueBuy", "InvestmentValueRent", "NetWorthBuy", "NetWorthRent", "NetWorthGap", "YearInterest", "YearPrincipal", "YearRentCost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range result.YearlyData {
		row := []string{
			intToString(yr.Year),
			yr.HomeValue.StringFixed(2),
			yr.MortgageBalance.StringFixed(2),
			yr.Equity.StringFixed(2),
			yr.BuyCashOutflow.StringFixed(2),
			yr.InvestmentValueBuy.StringFixed(2),
			yr.InvestmentValueRent.StringFixed(2),
			yr.NetWorthBuy.StringFixed(2),
			yr.NetWorthRent.StringFixed(2),
			yr.NetWorthGap().StringFixed(2),
			yr.YearInterest.StringFixed(2),
			yr.YearPrincipal.StringFixed(2),
			yr.YearRentCost.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
