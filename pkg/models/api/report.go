package api

type Preview struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

type ColumnResolution struct {
	Revenue string `json:"revenue"`
	Expense string `json:"expense"`
	Date    string `json:"date"`
}

type FinancialSummary struct {
	TotalRevenue  string `json:"total_revenue"`
	TotalExpenses string `json:"total_expenses"`
	NetProfit     string `json:"net_profit"`
	// Display variants with currency symbol and thousands separator.
	TotalRevenueFormatted  string `json:"total_revenue_formatted"`
	TotalExpensesFormatted string `json:"total_expenses_formatted"`
	NetProfitFormatted     string `json:"net_profit_formatted"`
}

type SeriesPoint struct {
	Date     string `json:"date"`
	Revenue  string `json:"revenue"`
	Expenses string `json:"expenses"`
}

// Report is the envelope returned by POST /api/v1/reports. ChartPNG and
// PDF are base64-encoded; Warnings carries non-fatal stage failures keyed
// by stage name.
type Report struct {
	Preview    Preview           `json:"preview"`
	Resolution ColumnResolution  `json:"resolution"`
	Summary    FinancialSummary  `json:"summary"`
	Series     []SeriesPoint     `json:"series"`
	ChartPNG   string            `json:"chart_png,omitempty"`
	Narrative  string            `json:"narrative"`
	PDF        string            `json:"pdf"`
	Warnings   map[string]string `json:"warnings,omitempty"`
}

// Error is the body of a failed pipeline run. Preview is populated when the
// upload parsed but required columns were missing.
type Error struct {
	Kind     string              `json:"kind"`
	Message  string              `json:"error"`
	Missing  []string            `json:"missing_columns,omitempty"`
	Accepted map[string][]string `json:"accepted_names,omitempty"`
	Preview  *Preview            `json:"preview,omitempty"`
}
