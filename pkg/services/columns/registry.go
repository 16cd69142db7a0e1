// Package columns resolves table columns to canonical financial fields by
// exact membership in configurable synonym sets. Resolution is pure: the
// absence of a match is a valid empty result, never an error.
package columns

import (
	"fmt"
	"strings"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/spf13/viper"
)

// Registry maps each canonical field to the column names it accepts.
// Revenue and expense match by exact membership; the date field matches any
// column whose name contains DateHint. Aliases are data, not code: a custom
// registry can be loaded from a YAML file.
type Registry struct {
	revenue  map[string]struct{}
	expense  map[string]struct{}
	dateHint string

	// kept in declaration order for user-facing messages
	revenueNames []string
	expenseNames []string
}

// DefaultRegistry returns the built-in synonym sets.
func DefaultRegistry() *Registry {
	return newRegistry(
		[]string{"revenue", "sales", "turnover"},
		[]string{"expenses", "costs", "expenditure"},
		"date",
	)
}

// LoadRegistry reads synonym sets from a YAML file. Keys: "revenue" and
// "expense" (string lists), "date_hint" (string). Missing keys keep their
// built-in defaults.
func LoadRegistry(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read column aliases from %s: %w", path, err)
	}

	def := DefaultRegistry()
	revenue := def.revenueNames
	expense := def.expenseNames
	dateHint := def.dateHint

	if v.IsSet("revenue") {
		revenue = v.GetStringSlice("revenue")
	}
	if v.IsSet("expense") {
		expense = v.GetStringSlice("expense")
	}
	if v.IsSet("date_hint") {
		dateHint = v.GetString("date_hint")
	}

	if len(revenue) == 0 || len(expense) == 0 || dateHint == "" {
		return nil, fmt.Errorf("column aliases in %s leave a field with no accepted names", path)
	}

	return newRegistry(revenue, expense, dateHint), nil
}

func newRegistry(revenue, expense []string, dateHint string) *Registry {
	r := &Registry{
		revenue:  make(map[string]struct{}, len(revenue)),
		expense:  make(map[string]struct{}, len(expense)),
		dateHint: domain.NormalizeColumn(dateHint),
	}
	for _, name := range revenue {
		name = domain.NormalizeColumn(name)
		r.revenue[name] = struct{}{}
		r.revenueNames = append(r.revenueNames, name)
	}
	for _, name := range expense {
		name = domain.NormalizeColumn(name)
		r.expense[name] = struct{}{}
		r.expenseNames = append(r.expenseNames, name)
	}
	return r
}

// Resolve scans the column names in table order and selects the first match
// for each field independently.
func (r *Registry) Resolve(columns []string) domain.ColumnResolution {
	var res domain.ColumnResolution
	for _, col := range columns {
		name := domain.NormalizeColumn(col)
		if res.Revenue == "" {
			if _, ok := r.revenue[name]; ok {
				res.Revenue = col
			}
		}
		if res.Expense == "" {
			if _, ok := r.expense[name]; ok {
				res.Expense = col
			}
		}
		if res.Date == "" && strings.Contains(name, r.dateHint) {
			res.Date = col
		}
	}
	return res
}

// AcceptedNames describes what each canonical field answers to, for the
// missing-columns warning.
func (r *Registry) AcceptedNames() map[string][]string {
	return map[string][]string{
		domain.FieldRevenue: append([]string{}, r.revenueNames...),
		domain.FieldExpense: append([]string{}, r.expenseNames...),
		domain.FieldDate:    {fmt.Sprintf("any column name containing %q", r.dateHint)},
	}
}
