// Package aggregate turns a resolved table into the financial summary and
// the date-grouped revenue series.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order for every date cell. Day-first layouts sit
// after month-first ones so ambiguous values resolve the same way on every
// row.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"01-02-2006",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02.01.2006",
	// excelize formats date-typed workbook cells with a two-digit year
	// (Excel's default short date). Tried last so four-digit layouts keep
	// priority.
	"01-02-06",
	"1/2/06",
	"1/2/06 15:04",
}

// Aggregate sums the resolved revenue and expense columns, parses the date
// column, and buckets both numeric columns by exact parsed-date equality.
// The returned series is sorted ascending by date. A single unparseable
// date aborts the whole step with *domain.DateParseError; resolution must
// be complete before calling.
func Aggregate(table *domain.Table, res domain.ColumnResolution) (domain.FinancialSummary, []domain.GroupedPoint, error) {
	var summary domain.FinancialSummary

	buckets := make(map[int64]*domain.GroupedPoint)
	for i, row := range table.Rows {
		revenue := parseAmount(row[domain.NormalizeColumn(res.Revenue)])
		expense := parseAmount(row[domain.NormalizeColumn(res.Expense)])

		dateCol := domain.NormalizeColumn(res.Date)
		date, err := ParseDate(row[dateCol])
		if err != nil {
			return domain.FinancialSummary{}, nil, &domain.DateParseError{
				Row:    i + 1,
				Column: res.Date,
				Value:  row[dateCol],
			}
		}

		summary.TotalRevenue = summary.TotalRevenue.Add(revenue)
		summary.TotalExpenses = summary.TotalExpenses.Add(expense)

		key := date.UnixNano()
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.GroupedPoint{Date: date}
			buckets[key] = bucket
		}
		bucket.Revenue = bucket.Revenue.Add(revenue)
		bucket.Expenses = bucket.Expenses.Add(expense)
	}
	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpenses)

	series := make([]domain.GroupedPoint, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return summary, series, nil
}

// MaxMin returns the indices of the global maximum and minimum of the
// grouped revenue series. Ties go to the lowest index, i.e. the earliest
// date after sorting. Returns (-1, -1) for an empty series.
func MaxMin(series []domain.GroupedPoint) (maxIdx, minIdx int) {
	if len(series) == 0 {
		return -1, -1
	}
	maxIdx, minIdx = 0, 0
	for i, p := range series[1:] {
		if p.Revenue.GreaterThan(series[maxIdx].Revenue) {
			maxIdx = i + 1
		}
		if p.Revenue.LessThan(series[minIdx].Revenue) {
			minIdx = i + 1
		}
	}
	return maxIdx, minIdx
}

// ParseDate parses a date cell against the supported layouts, trying each
// in order.
func ParseDate(value string) (t time.Time, err error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// parseAmount reads a money cell. Thousands separators, surrounding spaces
// and a leading currency symbol are tolerated; blank or non-numeric cells
// count as zero so a stray label never aborts a run.
func parseAmount(value string) decimal.Decimal {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	value = strings.TrimLeftFunc(value, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '-' && r != '+' && r != '.'
	})
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
