// Package pdf assembles the downloadable report document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/go-pdf/fpdf"
)

// DefaultTitle is the document and first-line title.
const DefaultTitle = "AI Business Report"

// Builder renders a domain.Report into PDF bytes. The core Arial font only
// guarantees ASCII coverage, so every text block passes through
// StripNonASCII before placement. The stripping is deliberately lossy:
// currency symbols and accented characters are removed, not transliterated.
type Builder struct {
	symbol string
}

func NewBuilder(currencySymbol string) *Builder {
	return &Builder{symbol: currencySymbol}
}

// Build lays out the single document: centered title, generation date,
// the three summary figures, then the sanitized narrative under a bold
// "Summary:" heading.
func (b *Builder) Build(report *domain.Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(report.Title, true)
	doc.AddPage()
	doc.SetFont("Arial", "", 12)

	doc.CellFormat(190, 10, StripNonASCII(report.Title), "", 1, "C", false, 0, "")
	doc.Ln(10)
	doc.CellFormat(0, 10, "Date: "+report.GeneratedAt.Format("2006-01-02"), "", 1, "L", false, 0, "")

	totals := fmt.Sprintf("Total Revenue: %s\nTotal Expenses: %s\nNet Profit: %s",
		domain.FormatAmount(report.Summary.TotalRevenue, b.symbol),
		domain.FormatAmount(report.Summary.TotalExpenses, b.symbol),
		domain.FormatAmount(report.Summary.NetProfit, b.symbol),
	)
	doc.MultiCell(0, 10, StripNonASCII(totals), "", "L", false)
	doc.Ln(5)

	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 10, "Summary:", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 12)
	doc.MultiCell(0, 10, StripNonASCII(report.Narrative), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// StripNonASCII removes every byte outside the 7-bit range. Idempotent.
func StripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
