package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/adhavannn/ai-report-generator/pkg/services/aggregate"
)

type TableConfig struct {
	DateWidth    int
	RevenueWidth int
	ExpenseWidth int
	MarkerWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:    12,
		RevenueWidth: 18,
		ExpenseWidth: 18,
		MarkerWidth:  6,
	}
}

// Reporter prints a pipeline run to the console as a formatted text table.
type Reporter struct {
	writer io.Writer
	symbol string
	config TableConfig
}

func NewReporter(writer io.Writer, currencySymbol string) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		symbol: currencySymbol,
		config: DefaultTableConfig(),
	}
}

type seriesRow struct {
	Date    string
	Revenue string
	Expense string
	Marker  string
}

type view struct {
	Resolution domain.ColumnResolution
	Revenue    string
	Expenses   string
	Profit     string
	Rows       []seriesRow
	Narrative  string
	Warnings   map[string]string
}

func (c *Reporter) Handle(result *domain.RunResult) error {
	funcMap := template.FuncMap{
		"formatRow": func(date, revenue, expense, marker string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %-*s |",
				c.config.DateWidth, date,
				c.config.RevenueWidth, revenue,
				c.config.ExpenseWidth, expense,
				c.config.MarkerWidth, marker)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.DateWidth+2),
				strings.Repeat("-", c.config.RevenueWidth+2),
				strings.Repeat("-", c.config.ExpenseWidth+2),
				strings.Repeat("-", c.config.MarkerWidth+2))
		},
	}

	tmpl := `
AI Business Report

Resolved columns: revenue={{.Resolution.Revenue}} expense={{.Resolution.Expense}} date={{.Resolution.Date}}

Total Revenue:  {{.Revenue}}
Total Expenses: {{.Expenses}}
Net Profit:     {{.Profit}}

{{separator}}
{{formatRow "Date" "Revenue" "Expenses" ""}}
{{separator}}
{{range .Rows}}{{formatRow .Date .Revenue .Expense .Marker}}
{{end}}{{separator}}
{{if .Narrative}}
Summary:
{{.Narrative}}
{{end}}{{range $stage, $warning := .Warnings}}
warning ({{$stage}}): {{$warning}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, c.buildView(result))
}

func (c *Reporter) buildView(result *domain.RunResult) view {
	v := view{
		Resolution: result.Resolution,
		Revenue:    domain.FormatAmount(result.Summary.TotalRevenue, c.symbol),
		Expenses:   domain.FormatAmount(result.Summary.TotalExpenses, c.symbol),
		Profit:     domain.FormatAmount(result.Summary.NetProfit, c.symbol),
		Narrative:  result.Narrative,
		Warnings:   result.Warnings,
	}

	maxIdx, minIdx := aggregate.MaxMin(result.Series)
	for i, p := range result.Series {
		marker := ""
		if i == maxIdx {
			marker = "max"
		} else if i == minIdx {
			marker = "min"
		}
		v.Rows = append(v.Rows, seriesRow{
			Date:    p.Date.Format("2006-01-02"),
			Revenue: domain.FormatAmount(p.Revenue, c.symbol),
			Expense: domain.FormatAmount(p.Expenses, c.symbol),
			Marker:  marker,
		})
	}
	return v
}
