// Package report orchestrates the full pipeline: load, resolve columns,
// aggregate, chart, narrative, document, delivery. One forward pass per
// request, recomputed from scratch every time; no state survives a run.
package report

import (
	"context"
	"io"
	"time"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/adhavannn/ai-report-generator/pkg/services/aggregate"
	"github.com/adhavannn/ai-report-generator/pkg/services/columns"
	"github.com/adhavannn/ai-report-generator/pkg/services/dataset"
	"github.com/adhavannn/ai-report-generator/pkg/services/pdf"
	"github.com/rs/zerolog"
)

// WarningChart, WarningNarrative and WarningDelivery key the non-fatal
// stage failures collected on a RunResult.
const (
	WarningChart     = "chart"
	WarningNarrative = "narrative"
	WarningDelivery  = "delivery"
)

// ChartRenderer draws the grouped revenue series.
type ChartRenderer interface {
	Render(series []domain.GroupedPoint) ([]byte, error)
}

// NarrativeGenerator produces the prose summary.
type NarrativeGenerator interface {
	Generate(ctx context.Context, summary domain.FinancialSummary) (string, error)
}

// DocumentBuilder renders the report document bytes.
type DocumentBuilder interface {
	Build(report *domain.Report) ([]byte, error)
}

// Deliverer transmits the document to a recipient.
type Deliverer interface {
	Send(ctx context.Context, to string, pdfBytes []byte) error
}

// Dependencies wires the pipeline's collaborators.
type Dependencies struct {
	Loader    *dataset.Loader
	Registry  *columns.Registry
	Chart     ChartRenderer
	Narrative NarrativeGenerator
	Builder   DocumentBuilder
	Sender    Deliverer
}

// Controller runs the pipeline. Fatal stages (file load, column
// resolution, aggregation) abort the run; chart, narrative and delivery
// degrade into warnings per the error taxonomy.
type Controller struct {
	deps Dependencies
}

func NewController(deps Dependencies) *Controller {
	return &Controller{deps: deps}
}

// Run executes the forward pass up to the narrative. On a fatal error the
// returned result still carries whatever was produced before the failure
// (the preview table for missing columns, plus the resolution for a bad
// date), so the caller can show it alongside the error.
func (c *Controller) Run(ctx context.Context, r io.Reader, filename string) (*domain.RunResult, error) {
	logger := zerolog.Ctx(ctx)
	result := &domain.RunResult{Warnings: map[string]string{}}

	table, err := c.deps.Loader.Load(r, filename)
	if err != nil {
		return nil, err
	}
	result.Table = table

	result.Resolution = c.deps.Registry.Resolve(table.Columns)
	if !result.Resolution.Complete() {
		return result, &domain.MissingColumnsError{
			Missing:  result.Resolution.Missing(),
			Accepted: c.deps.Registry.AcceptedNames(),
		}
	}

	summary, series, err := aggregate.Aggregate(table, result.Resolution)
	if err != nil {
		return result, err
	}
	result.Summary = summary
	result.Series = series

	png, err := c.deps.Chart.Render(series)
	if err != nil {
		logger.Warn().Err(err).Msg("chart rendering skipped")
		result.Warnings[WarningChart] = err.Error()
	} else {
		result.ChartPNG = png
	}

	narrative, err := c.deps.Narrative.Generate(ctx, summary)
	if err != nil {
		logger.Warn().Err(err).Msg("narrative generation failed, continuing with empty summary")
		result.Warnings[WarningNarrative] = err.Error()
	} else {
		result.Narrative = narrative
	}

	return result, nil
}

// BuildPDF assembles the document from a successful run.
func (c *Controller) BuildPDF(result *domain.RunResult) (*domain.Report, []byte, error) {
	report := &domain.Report{
		Title:       pdf.DefaultTitle,
		GeneratedAt: time.Now(),
		Summary:     result.Summary,
		Narrative:   result.Narrative,
	}
	doc, err := c.deps.Builder.Build(report)
	if err != nil {
		return nil, nil, err
	}
	return report, doc, nil
}

// Deliver emails the document when a recipient was given; a blank address
// skips delivery entirely. A failed send is recorded as a warning on the
// result and never aborts the run.
func (c *Controller) Deliver(ctx context.Context, result *domain.RunResult, to string, pdfBytes []byte) {
	if to == "" {
		return
	}
	if err := c.deps.Sender.Send(ctx, to, pdfBytes); err != nil {
		result.Warnings[WarningDelivery] = err.Error()
	}
}
