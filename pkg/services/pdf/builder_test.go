package pdf

import (
	"testing"
	"time"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	builder := NewBuilder("₹")
	report := &domain.Report{
		Title:       DefaultTitle,
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Summary: domain.FinancialSummary{
			TotalRevenue:  decimal.NewFromInt(350000),
			TotalExpenses: decimal.NewFromInt(100000),
			NetProfit:     decimal.NewFromInt(250000),
		},
		Narrative: "Revenue grew steadily — strong quarter with ₹250,000 profit.",
	}

	out, err := builder.Build(report)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuildEmptyNarrative(t *testing.T) {
	builder := NewBuilder("₹")
	report := &domain.Report{
		Title:       DefaultTitle,
		GeneratedAt: time.Now(),
	}

	out, err := builder.Build(report)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestStripNonASCII(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain ascii untouched", in: "Net profit: 250,000.", expected: "Net profit: 250,000."},
		{name: "currency symbols removed", in: "Profit of ₹250,000 (≈ $3,000)", expected: "Profit of 250,000 ( $3,000)"},
		{name: "accents removed not transliterated", in: "café naïve", expected: "caf nave"},
		{name: "empty", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stripped := StripNonASCII(tt.in)
			assert.Equal(t, tt.expected, stripped)
			assert.Equal(t, stripped, StripNonASCII(stripped), "stripping must be idempotent")
		})
	}
}
