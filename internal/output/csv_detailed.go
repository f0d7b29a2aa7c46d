package output

import (
	"bytes"
	"encoding/csv"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw month-by-month debt service detail.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Year", "InterestPaid", "PrincipalPaid", "LoanBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range result.MonthlyData {
		row := []string{
			intToString(m.Month),
			intToString((m.Month-1)/12 + 1),
			m.InterestPaid.StringFixed(2),
			m.PrincipalPaid.StringFixed(2),
			m.LoanBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
