// Package narrative turns a finished projection into a plain-language
// summary using Gemini.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
	"github.com/bvrgo/buyrent-calculator/internal/output"
)

const model = "gemini-2.5-pro"

const systemInstruction = `
You are a financial explainer. You receive the inputs and outputs of a
deterministic buy-a-home versus rent-and-invest projection and write a short
summary for a non-expert reader.

Rules:
- Use only the numbers you are given, never invent figures.
- State which scenario ends ahead and by how much.
- Mention the break-even year if one exists.
- Mention the biggest cost drivers (interest, rent, initial outlay).
- Close with one sentence on what assumption the outcome is most sensitive to.
- Keep it under 250 words. No financial advice disclaimer needed.
`

// Summarizer holds a one-shot Gemini chat for narrative generation.
type Summarizer struct {
	chat *genai.Chat
}

// NewSummarizer creates the Gemini chat session. The client carries its own
// credentials (GEMINI_API_KEY or application default credentials).
func NewSummarizer(ctx context.Context, client *genai.Client) (*Summarizer, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, err
	}
	return &Summarizer{chat: chat}, nil
}

// Summarize sends the projection digest and returns the generated text.
func (s *Summarizer) Summarize(ctx context.Context, result *domain.SimulationResult) (string, error) {
	resp, err := s.chat.Send(ctx, &genai.Part{Text: BuildDigest(result)})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// BuildDigest renders the compact textual digest the model is prompted with.
// Exported so the prompt content can be inspected and tested without a live
// client.
func BuildDigest(result *domain.SimulationResult) string {
	var b strings.Builder
	params := &result.Params

	fmt.Fprintf(&b, "Projection horizon: %d years\n", params.Years)
	fmt.Fprintf(&b, "Home price: %s, initial outlay: %s\n",
		output.FormatCurrency(params.HomePrice), output.FormatCurrency(result.Summary.InitialOutlay))
	fmt.Fprintf(&b, "Monthly rent at start: %s\n", output.FormatCurrency(params.MonthlyRent))
	fmt.Fprintf(&b, "Budget strategy: %s\n", params.BudgetStrategy)
	b.WriteString("\nAssumptions:\n")
	for _, a := range output.GenerateAssumptions(params) {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	b.WriteString("\nOutcome:\n")
	fmt.Fprintf(&b, "- Final net worth buying: %s\n", output.FormatCurrency(result.Summary.FinalNetWorthBuy))
	fmt.Fprintf(&b, "- Final net worth renting: %s\n", output.FormatCurrency(result.Summary.FinalNetWorthRent))
	fmt.Fprintf(&b, "- Total interest paid: %s\n", output.FormatCurrency(result.Summary.TotalInterestPaid))
	fmt.Fprintf(&b, "- Total rent paid: %s\n", output.FormatCurrency(result.Summary.TotalRentPaid))

	rec := output.AnalyzeResult(result)
	fmt.Fprintf(&b, "- Winner: %s by %s (%s)\n",
		rec.Verdict, output.FormatCurrency(rec.FinalAdvantage), output.FormatPercentage(rec.PercentageChange))
	if rec.BreakEven != nil {
		fmt.Fprintf(&b, "- Break-even: buying overtakes renting in year %d\n", rec.BreakEven.YearIndex)
	} else {
		b.WriteString("- Break-even: buying never overtakes renting within the horizon\n")
	}

	if final := result.FinalYear(); final != nil {
		fmt.Fprintf(&b, "- Final year: home value %s, remaining debt %s, portfolio (buy) %s, portfolio (rent) %s\n",
			output.FormatCurrency(final.HomeValue),
			output.FormatCurrency(final.MortgageBalance),
			output.FormatCurrency(final.InvestmentValueBuy),
			output.FormatCurrency(final.InvestmentValueRent))
	}
	return b.String()
}
