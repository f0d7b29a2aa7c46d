package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

func buildTestResult() *domain.SimulationResult {
	yr := func(year, buy, rent int64) domain.YearlyRecord {
		return domain.YearlyRecord{
			Year:                int(year),
			HomeValue:           decimal.NewFromInt(300000 + year*6000),
			MortgageBalance:     decimal.NewFromInt(240000 - year*8000),
			Equity:              decimal.NewFromInt(60000 + year*14000),
			InvestmentValueBuy:  decimal.NewFromInt(year * 1000),
			InvestmentValueRent: decimal.NewFromInt(40000 + year*2000),
			NetWorthBuy:         decimal.NewFromInt(buy),
			NetWorthRent:        decimal.NewFromInt(rent),
		}
	}
	return &domain.SimulationResult{
		Params: domain.SimulationParams{
			Years:              3,
			HomePrice:          decimal.NewFromInt(300000),
			DownPaymentPercent: decimal.NewFromInt(20),
			BuyingCostPercent:  decimal.NewFromInt(8),
			MonthlyRent:        decimal.NewFromInt(1100),
			BudgetStrategy:     domain.BudgetAutoMatch,
			Mortgage: domain.MortgageConfig{
				Enabled:    true,
				AnnualRate: decimal.NewFromFloat(3.5),
				TermYears:  20,
			},
		},
		MonthlyData: []domain.MonthlyRecord{
			{Month: 1, InterestPaid: decimal.NewFromInt(700), PrincipalPaid: decimal.NewFromInt(690), LoanBalance: decimal.NewFromInt(239310)},
			{Month: 2, InterestPaid: decimal.NewFromInt(698), PrincipalPaid: decimal.NewFromInt(692), LoanBalance: decimal.NewFromInt(238618)},
		},
		YearlyData: []domain.YearlyRecord{
			yr(1, 30000, 46000),
			yr(2, 48000, 50000),
			yr(3, 70000, 54000),
		},
		Summary: domain.Summary{
			FinalNetWorthBuy:   decimal.NewFromInt(70000),
			FinalNetWorthRent:  decimal.NewFromInt(54000),
			TotalInterestPaid:  decimal.NewFromInt(24000),
			TotalPrincipalPaid: decimal.NewFromInt(24800),
			TotalRentPaid:      decimal.NewFromInt(41000),
			InitialOutlay:      decimal.NewFromInt(84000),
		},
	}
}

func TestConsoleLiteFormatter(t *testing.T) {
	f := ConsoleFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Recommended: BUY") {
		t.Fatalf("expected buy recommendation, got: %s", content)
	}
	if !strings.Contains(content, "Break-even: year 3") {
		t.Fatalf("expected break-even in year 3, got: %s", content)
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	f := ConsoleVerboseFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "BUY VS RENT-AND-INVEST PROJECTION") {
		t.Fatalf("expected verbose heading, got: %s", content[:120])
	}
	if !strings.Contains(content, "YEARLY PROJECTION") {
		t.Fatalf("expected yearly table section")
	}
	if !strings.Contains(content, "KEY ASSUMPTIONS:") {
		t.Fatalf("expected assumptions section")
	}
}

func TestCSVSummarizerRowPerYear(t *testing.T) {
	f := CSVSummarizer{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header+3 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1,") || !strings.HasPrefix(lines[3], "3,") {
		t.Fatalf("rows not in year order: %v", lines)
	}
}

func TestCSVDetailedExporterRowPerMonth(t *testing.T) {
	f := CSVDetailedExporter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header+2 monthly rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1,1,") {
		t.Fatalf("first data row should be month 1 of year 1: %q", lines[1])
	}
}

func TestHTMLFormatterBasic(t *testing.T) {
	f := HTMLFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Yearly Projection") {
		t.Fatalf("expected Yearly Projection section in HTML output")
	}
	if !strings.Contains(content, "Recommended: BUY") {
		t.Fatalf("expected buy verdict in HTML output")
	}
}

func TestPDFFormatterProducesDocument(t *testing.T) {
	f := PDFFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("pdf format error: %v", err)
	}
	if !strings.HasPrefix(string(out), "%PDF") {
		t.Fatalf("expected PDF magic header, got %q", string(out[:8]))
	}
}

func TestGetFormatterByNameResolvesAliases(t *testing.T) {
	cases := map[string]string{
		"console":      "console",
		"verbose":      "console",
		"csv-monthly":  "detailed-csv",
		"JSON-Pretty":  "json",
		"  pdf-report": "pdf",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil {
			t.Fatalf("no formatter for %q", in)
		}
		if f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %q, want %q", in, f.Name(), want)
		}
	}
	if f := GetFormatterByName("xml"); f != nil {
		t.Fatalf("expected nil for unknown format, got %q", f.Name())
	}
}
