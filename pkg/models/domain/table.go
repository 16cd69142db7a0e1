package domain

import (
	"fmt"
	"strings"
)

// Row maps a normalized column name to the raw cell value.
type Row map[string]string

// Table is an ordered tabular dataset parsed from an uploaded file.
// Column names are normalized (trimmed, lowercased) and unique.
type Table struct {
	Columns []string
	Rows    []Row
}

// NormalizeColumn trims surrounding whitespace and lowercases a column name.
// The operation is idempotent.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewTable builds a Table from a raw header and record rows. Header names are
// normalized; duplicates after normalization get a positional suffix so row
// keys stay unique. Records shorter than the header leave the missing cells
// empty, longer records are truncated.
func NewTable(header []string, records [][]string) *Table {
	columns := make([]string, 0, len(header))
	seen := make(map[string]int, len(header))
	for _, h := range header {
		name := NormalizeColumn(h)
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[name] = 1
		columns = append(columns, name)
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}
}

// Preview returns up to n leading rows, preserving order.
func (t *Table) Preview(n int) []Row {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}
