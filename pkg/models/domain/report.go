package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ColumnResolution holds the table columns selected for each financial
// field. An empty string means the field could not be resolved.
type ColumnResolution struct {
	Revenue string
	Expense string
	Date    string
}

// Complete reports whether all three fields resolved.
func (r ColumnResolution) Complete() bool {
	return r.Revenue != "" && r.Expense != "" && r.Date != ""
}

// Missing lists the canonical names of unresolved fields.
func (r ColumnResolution) Missing() []string {
	var missing []string
	if r.Revenue == "" {
		missing = append(missing, FieldRevenue)
	}
	if r.Expense == "" {
		missing = append(missing, FieldExpense)
	}
	if r.Date == "" {
		missing = append(missing, FieldDate)
	}
	return missing
}

// Canonical field names used by the column resolver.
const (
	FieldRevenue = "revenue"
	FieldExpense = "expense"
	FieldDate    = "date"
)

// FinancialSummary holds the three headline figures derived from a table.
// NetProfit is always TotalRevenue minus TotalExpenses, exactly.
type FinancialSummary struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
}

// GroupedPoint is one bucket of the date-grouped series: all revenue and
// expense values sharing the same parsed date, summed.
type GroupedPoint struct {
	Date     time.Time
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
}

// Report is the assembled business report, rebuilt from scratch on every
// generate action and never persisted.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Summary     FinancialSummary
	Narrative   string
}

// RunResult carries everything a single pipeline pass produced. Warnings
// hold non-fatal stage failures keyed by stage name ("chart", "narrative",
// "delivery").
type RunResult struct {
	Table      *Table
	Resolution ColumnResolution
	Summary    FinancialSummary
	Series     []GroupedPoint
	ChartPNG   []byte
	Narrative  string
	Warnings   map[string]string
}

// FormatAmount renders a monetary value with the given currency symbol, a
// thousands separator and zero decimal places, e.g. "₹1,250".
func FormatAmount(d decimal.Decimal, symbol string) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	out := symbol + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
