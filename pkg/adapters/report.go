package adapters

import (
	"encoding/base64"

	"github.com/adhavannn/ai-report-generator/pkg/models/api"
	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
)

const previewRows = 5

func MapTablePreviewDomainToApi(t *domain.Table) api.Preview {
	preview := api.Preview{
		Columns: append([]string{}, t.Columns...),
		Rows:    []map[string]string{},
	}
	for _, row := range t.Preview(previewRows) {
		out := make(map[string]string, len(row))
		for k, v := range row {
			out[k] = v
		}
		preview.Rows = append(preview.Rows, out)
	}
	return preview
}

func MapResolutionDomainToApi(r domain.ColumnResolution) api.ColumnResolution {
	return api.ColumnResolution{
		Revenue: r.Revenue,
		Expense: r.Expense,
		Date:    r.Date,
	}
}

func MapSummaryDomainToApi(s domain.FinancialSummary, symbol string) api.FinancialSummary {
	return api.FinancialSummary{
		TotalRevenue:           s.TotalRevenue.String(),
		TotalExpenses:          s.TotalExpenses.String(),
		NetProfit:              s.NetProfit.String(),
		TotalRevenueFormatted:  domain.FormatAmount(s.TotalRevenue, symbol),
		TotalExpensesFormatted: domain.FormatAmount(s.TotalExpenses, symbol),
		NetProfitFormatted:     domain.FormatAmount(s.NetProfit, symbol),
	}
}

func MapSeriesDomainToApi(series []domain.GroupedPoint) []api.SeriesPoint {
	points := make([]api.SeriesPoint, 0, len(series))
	for _, p := range series {
		points = append(points, api.SeriesPoint{
			Date:     p.Date.Format("2006-01-02"),
			Revenue:  p.Revenue.String(),
			Expenses: p.Expenses.String(),
		})
	}
	return points
}

func MapRunResultDomainToApi(result *domain.RunResult, pdf []byte, symbol string) api.Report {
	report := api.Report{
		Preview:    MapTablePreviewDomainToApi(result.Table),
		Resolution: MapResolutionDomainToApi(result.Resolution),
		Summary:    MapSummaryDomainToApi(result.Summary, symbol),
		Series:     MapSeriesDomainToApi(result.Series),
		Narrative:  result.Narrative,
		PDF:        base64.StdEncoding.EncodeToString(pdf),
		Warnings:   result.Warnings,
	}
	if len(result.ChartPNG) > 0 {
		report.ChartPNG = base64.StdEncoding.EncodeToString(result.ChartPNG)
	}
	return report
}
