package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAllocateSurplus(t *testing.T) {
	d := decimal.NewFromInt

	tests := []struct {
		name       string
		surplus    decimal.Decimal
		capacities []decimal.Decimal
		expected   []decimal.Decimal
	}{
		{
			name:       "first tier absorbs everything",
			surplus:    d(300),
			capacities: []decimal.Decimal{d(1000), d(5000)},
			expected:   []decimal.Decimal{d(300), d(0), d(0)},
		},
		{
			name:       "overflow cascades into second tier",
			surplus:    d(1200),
			capacities: []decimal.Decimal{d(1000), d(5000)},
			expected:   []decimal.Decimal{d(1000), d(200), d(0)},
		},
		{
			name:       "overflow past all tiers lands in the portfolio",
			surplus:    d(7000),
			capacities: []decimal.Decimal{d(1000), d(5000)},
			expected:   []decimal.Decimal{d(1000), d(5000), d(1000)},
		},
		{
			name:       "depleted first tier is skipped",
			surplus:    d(400),
			capacities: []decimal.Decimal{d(0), d(5000)},
			expected:   []decimal.Decimal{d(0), d(400), d(0)},
		},
		{
			name:       "negative capacity treated as zero",
			surplus:    d(400),
			capacities: []decimal.Decimal{d(-50), d(5000)},
			expected:   []decimal.Decimal{d(0), d(400), d(0)},
		},
		{
			name:       "no tiers routes straight to the portfolio",
			surplus:    d(400),
			capacities: nil,
			expected:   []decimal.Decimal{d(400)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := make([]allocationTarget, len(tt.capacities))
			for i, c := range tt.capacities {
				targets[i] = allocationTarget{capacity: c}
			}
			amounts := allocateSurplus(tt.surplus, targets)
			assert.Len(t, amounts, len(tt.expected))
			for i := range tt.expected {
				assert.True(t, amounts[i].Equal(tt.expected[i]),
					"tier %d = %s, want %s", i, amounts[i], tt.expected[i])
			}

			// Conservation: the cascade never creates or loses money.
			total := decimal.Zero
			for _, a := range amounts {
				total = total.Add(a)
			}
			assert.True(t, total.Equal(tt.surplus))
		})
	}
}

func TestAccelerateOrdersSecondaryBeforePrimary(t *testing.T) {
	loans := &LoanStack{
		Secondary: Loan{Name: "secondary", Balance: decimal.NewFromInt(500)},
		Primary:   Loan{Name: "primary", Balance: decimal.NewFromInt(100000)},
	}
	secondaryDue := DebtService{Principal: decimal.NewFromInt(100)}
	primaryDue := DebtService{Principal: decimal.NewFromInt(300)}

	extra := accelerate(decimal.NewFromInt(1000), loans, secondaryDue, primaryDue)

	// capacity of the secondary is balance minus mandatory principal
	assert.True(t, extra.bySecondary.Equal(decimal.NewFromInt(400)), "secondary = %s", extra.bySecondary)
	assert.True(t, extra.byPrimary.Equal(decimal.NewFromInt(600)), "primary = %s", extra.byPrimary)
	assert.True(t, extra.toPortfolio.IsZero())
}

func TestAccelerateSpillsToPortfolio(t *testing.T) {
	loans := &LoanStack{
		Secondary: Loan{Name: "secondary", Balance: decimal.NewFromInt(200)},
		Primary:   Loan{Name: "primary", Balance: decimal.NewFromInt(150)},
	}
	extra := accelerate(decimal.NewFromInt(1000), loans, DebtService{}, DebtService{})

	assert.True(t, extra.bySecondary.Equal(decimal.NewFromInt(200)))
	assert.True(t, extra.byPrimary.Equal(decimal.NewFromInt(150)))
	assert.True(t, extra.toPortfolio.Equal(decimal.NewFromInt(650)))
}
