package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

func TestAmortizedPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		termYears int
		expected  float64
		tolerance float64
	}{
		{
			name:      "standard 3% over 10 years",
			principal: decimal.NewFromInt(100000),
			rate:      decimal.NewFromInt(3),
			termYears: 10,
			expected:  965.61,
			tolerance: 0.01,
		},
		{
			name:      "typical mortgage 3.5% over 25 years",
			principal: decimal.NewFromInt(200000),
			rate:      decimal.NewFromFloat(3.5),
			termYears: 25,
			expected:  1001.25,
			tolerance: 0.01,
		},
		{
			name:      "zero rate falls back to straight-line",
			principal: decimal.NewFromInt(120000),
			rate:      decimal.Zero,
			termYears: 10,
			expected:  1000.00,
			tolerance: 0.0001,
		},
		{
			name:      "zero principal yields zero payment",
			principal: decimal.Zero,
			rate:      decimal.NewFromInt(3),
			termYears: 10,
			expected:  0,
			tolerance: 0,
		},
		{
			name:      "zero term yields zero payment",
			principal: decimal.NewFromInt(100000),
			rate:      decimal.NewFromInt(3),
			termYears: 0,
			expected:  0,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := AmortizedPayment(tt.principal, tt.rate, tt.termYears)
			assert.InDelta(t, tt.expected, payment.InexactFloat64(), tt.tolerance)
		})
	}
}

func stackingParams(price, down float64, sub, sec domain.SubsidizedLoanConfig) *domain.SimulationParams {
	return &domain.SimulationParams{
		HomePrice:          decimal.NewFromFloat(price),
		DownPaymentPercent: decimal.NewFromFloat(down),
		SubsidizedLoan:     sub,
		SecondaryMortgage: domain.MortgageConfig{
			Enabled:    sec.Enabled,
			Amount:     sec.Amount,
			AnnualRate: decimal.NewFromInt(4),
			TermYears:  sec.TermYears,
		},
		Mortgage: domain.MortgageConfig{
			AnnualRate: decimal.NewFromFloat(3.5),
			TermYears:  25,
		},
	}
}

func TestSetupLoansStackingInvariant(t *testing.T) {
	tests := []struct {
		name string
		sub  domain.SubsidizedLoanConfig
		sec  domain.SubsidizedLoanConfig
	}{
		{"no optional instruments", domain.SubsidizedLoanConfig{}, domain.SubsidizedLoanConfig{}},
		{
			"all three within residual",
			domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(40000), TermYears: 15},
			domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(30000), TermYears: 10},
		},
		{
			"subsidized amount exceeds residual",
			domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(999999), TermYears: 15},
			domain.SubsidizedLoanConfig{},
		},
		{
			"secondary clamps to what subsidized leaves",
			domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(200000), TermYears: 15},
			domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(999999), TermYears: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := stackingParams(300000, 20, tt.sub, tt.sec)
			stack := SetupLoans(params)

			total := stack.Subsidized.Balance.Add(stack.Secondary.Balance).Add(stack.Primary.Balance)
			assert.True(t, total.Equal(params.FinancedAmount()),
				"stack total %s != financed amount %s", total, params.FinancedAmount())
			for _, l := range stack.All() {
				assert.False(t, l.Balance.IsNegative(), "%s balance negative", l.Name)
			}
		})
	}
}

func TestSetupLoansFullDownPayment(t *testing.T) {
	params := stackingParams(300000, 100, domain.SubsidizedLoanConfig{}, domain.SubsidizedLoanConfig{})
	stack := SetupLoans(params)
	assert.True(t, stack.TotalBalance().IsZero())
	assert.True(t, stack.Primary.Payment.IsZero())
}

func TestSetupLoansPrimaryAbsorbsResidual(t *testing.T) {
	params := stackingParams(300000, 20,
		domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(40000), TermYears: 15},
		domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(30000), TermYears: 10})
	// configured primary amount is ignored; it always takes the remainder
	params.Mortgage.Amount = decimal.NewFromInt(5)

	stack := SetupLoans(params)
	require.True(t, stack.Primary.Balance.Equal(decimal.NewFromInt(170000)),
		"primary = %s, want 170000", stack.Primary.Balance)
}

func TestServiceLoanSplitsInterestAndPrincipal(t *testing.T) {
	l := &Loan{
		Name:        "primary",
		Balance:     decimal.NewFromInt(100000),
		Payment:     decimal.NewFromFloat(965.61),
		MonthlyRate: decimal.NewFromFloat(0.0025),
	}
	due := serviceLoan(l)
	assert.True(t, due.Interest.Equal(decimal.NewFromFloat(250)), "interest = %s", due.Interest)
	assert.InDelta(t, 715.61, due.Principal.InexactFloat64(), 0.001)
	assert.InDelta(t, 965.61, due.Paid().InexactFloat64(), 0.001)
}

func TestServiceLoanClampsFinalPayment(t *testing.T) {
	l := &Loan{
		Name:        "secondary",
		Balance:     decimal.NewFromInt(100),
		Payment:     decimal.NewFromInt(500),
		MonthlyRate: decimal.NewFromFloat(0.003),
	}
	due := serviceLoan(l)
	assert.True(t, due.Principal.Equal(decimal.NewFromInt(100)), "principal = %s", due.Principal)

	l.amortize(due.Principal)
	assert.True(t, l.Balance.IsZero())
	assert.False(t, l.Active())
}

func TestServiceLoanDepletedPaysNothing(t *testing.T) {
	l := &Loan{Name: "secondary", Payment: decimal.NewFromInt(500)}
	due := serviceLoan(l)
	assert.True(t, due.Interest.IsZero())
	assert.True(t, due.Principal.IsZero())
}

func TestSubsidizedLoanHasNoInterest(t *testing.T) {
	params := stackingParams(300000, 20,
		domain.SubsidizedLoanConfig{Enabled: true, Amount: decimal.NewFromInt(36000), TermYears: 15},
		domain.SubsidizedLoanConfig{})
	stack := SetupLoans(params)

	// 36000 over 180 months, straight-line
	assert.True(t, stack.Subsidized.Payment.Equal(decimal.NewFromInt(200)),
		"payment = %s", stack.Subsidized.Payment)

	due := serviceLoan(&stack.Subsidized)
	assert.True(t, due.Interest.IsZero())
	assert.True(t, due.Principal.Equal(stack.Subsidized.Payment))
}

func TestAmortizeSnapsResidueToZero(t *testing.T) {
	l := &Loan{Name: "primary", Balance: decimal.NewFromFloat(500.005)}
	l.amortize(decimal.NewFromInt(500))
	assert.True(t, l.Balance.IsZero(), "residue below epsilon should snap, got %s", l.Balance)
}
