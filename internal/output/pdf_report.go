package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// pdfText converts UTF-8 text to the cp1252 bytes the built-in PDF fonts
// expect. Only the euro sign needs mapping in practice.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "€", "\x80")
}

// PDFFormatter renders a printable A4 report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
	}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)

	r.addTitlePage()
	r.addYearlyTable()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf    *fpdf.Fpdf
	result *domain.SimulationResult
}

func (r *pdfReport) addTitlePage() {
	params := &r.result.Params
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(20)
	r.pdf.CellFormat(pdfContentWidth, 14, "Buy vs Rent-and-Invest Projection", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(8)

	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetFillColor(230, 236, 245)
	r.pdf.CellFormat(pdfContentWidth, 8, "Purchase Setup", "1", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "", 11)
	r.addKV("Home Price", FormatCurrency(params.HomePrice))
	r.addKV("Down Payment", fmt.Sprintf("%s (%s)", FormatCurrency(params.DownPayment()), FormatPercentage(params.DownPaymentPercent)))
	r.addKV("Buying Costs", FormatCurrency(params.BuyingCost()))
	r.addKV("Initial Outlay", FormatCurrency(r.result.Summary.InitialOutlay))
	r.addKV("Financed Amount", FormatCurrency(params.FinancedAmount()))
	r.addKV("Horizon", fmt.Sprintf("%d years", params.Years))
	r.pdf.CellFormat(pdfContentWidth, 1, "", "LRB", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(pdfContentWidth, 8, "Outcome", "1", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "", 11)
	r.addKV("Final Net Worth (Buy)", FormatCurrency(r.result.Summary.FinalNetWorthBuy))
	r.addKV("Final Net Worth (Rent)", FormatCurrency(r.result.Summary.FinalNetWorthRent))
	r.addKV("Total Interest Paid", FormatCurrency(r.result.Summary.TotalInterestPaid))
	r.addKV("Total Rent Paid", FormatCurrency(r.result.Summary.TotalRentPaid))

	rec := AnalyzeResult(r.result)
	if rec.BreakEven != nil {
		r.addKV("Break-even", fmt.Sprintf("year %d", rec.BreakEven.YearIndex))
	} else {
		r.addKV("Break-even", "never within horizon")
	}
	r.pdf.CellFormat(pdfContentWidth, 1, "", "LRB", 1, "C", false, 0, "")
	r.pdf.Ln(8)

	r.pdf.SetFont("Arial", "B", 14)
	if rec.Verdict == "buy" {
		r.pdf.SetTextColor(32, 114, 39)
	} else {
		r.pdf.SetTextColor(26, 86, 219)
	}
	verdictText := fmt.Sprintf("Recommended: %s (advantage %s / %s)",
		strings.ToUpper(rec.Verdict), FormatCurrency(rec.FinalAdvantage), FormatPercentage(rec.PercentageChange))
	r.pdf.CellFormat(pdfContentWidth, 10, pdfText(verdictText), "", 1, "C", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *pdfReport) addKV(label, value string) {
	r.pdf.CellFormat(pdfContentWidth/2, 7, pdfText("  "+label), "L", 0, "L", false, 0, "")
	r.pdf.CellFormat(pdfContentWidth/2, 7, pdfText(value+"  "), "R", 1, "R", false, 0, "")
}

func (r *pdfReport) addYearlyTable() {
	if len(r.result.YearlyData) == 0 {
		return
	}
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(pdfContentWidth, 8, "Yearly Projection", "", 1, "L", false, 0, "")
	r.pdf.Ln(2)

	headers := []string{"Year", "Home Value", "Debt", "Equity", "Net Worth Buy", "Net Worth Rent", "Gap"}
	widths := []float64{14, 29, 27, 27, 29, 29, 25}

	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(230, 236, 245)
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 8)
	for _, yr := range r.result.YearlyData {
		cells := []string{
			intToString(yr.Year),
			compactAmount(yr.HomeValue),
			compactAmount(yr.MortgageBalance),
			compactAmount(yr.Equity),
			compactAmount(yr.NetWorthBuy),
			compactAmount(yr.NetWorthRent),
			compactAmount(yr.NetWorthGap()),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			r.pdf.CellFormat(widths[i], 5, pdfText(c), "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

// compactAmount keeps wide yearly tables readable with thousands shorthand.
func compactAmount(d decimal.Decimal) string {
	f := d.InexactFloat64()
	if f >= 100000 || f <= -100000 {
		return fmt.Sprintf("€%.0fk", f/1000)
	}
	return fmt.Sprintf("€%.0f", f)
}
