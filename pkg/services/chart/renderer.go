// Package chart renders the grouped revenue series as a PNG line chart
// with the global maximum and minimum marked.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/adhavannn/ai-report-generator/pkg/services/aggregate"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer draws the revenue trend figure. Presentation only: nothing
// downstream reads the chart back.
type Renderer struct {
	symbol string
}

func NewRenderer(currencySymbol string) *Renderer {
	return &Renderer{symbol: currencySymbol}
}

// Render produces a PNG: revenue line with dot markers, green Max and red
// Min points with labels, currency-formatted y-axis, dashed gridlines and a
// legend. Series with fewer than two points cannot span an axis; those
// return domain.ErrNotEnoughData and the caller degrades gracefully.
func (r *Renderer) Render(series []domain.GroupedPoint) ([]byte, error) {
	if len(series) < 2 {
		return nil, domain.ErrNotEnoughData
	}

	dates := make([]time.Time, len(series))
	revenues := make([]float64, len(series))
	for i, p := range series {
		dates[i] = p.Date
		revenues[i] = p.Revenue.InexactFloat64()
	}

	maxIdx, minIdx := aggregate.MaxMin(series)

	gridStyle := chart.Style{
		StrokeColor:     chart.ColorLightGray,
		StrokeWidth:     0.5,
		StrokeDashArray: []float64{3.0, 3.0},
	}

	yAxis := chart.YAxis{
		Name:           "Revenue",
		ValueFormatter: r.formatTick,
		GridMajorStyle: gridStyle,
		GridMinorStyle: gridStyle,
	}
	// A flat series leaves go-chart with a zero-height y-range and its tick
	// generation never terminates; pin an explicit range around the value.
	if revenues[maxIdx] == revenues[minIdx] {
		yAxis.Range = &chart.ContinuousRange{
			Min: revenues[minIdx] - 1,
			Max: revenues[maxIdx] + 1,
		}
	}

	graph := chart.Chart{
		Title: "Revenue Trend",
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Revenue",
				XValues: dates,
				YValues: revenues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					DotColor:    chart.ColorBlue,
					DotWidth:    3,
				},
			},
			pointSeries("Max", dates[maxIdx], revenues[maxIdx], chart.ColorGreen),
			pointSeries("Min", dates[minIdx], revenues[minIdx], chart.ColorRed),
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{XValue: chart.TimeToFloat64(dates[maxIdx]), YValue: revenues[maxIdx], Label: "Max"},
					{XValue: chart.TimeToFloat64(dates[minIdx]), YValue: revenues[minIdx], Label: "Min"},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) formatTick(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s%s", r.symbol, thousands(int64(f)))
}

func pointSeries(name string, date time.Time, value float64, color drawing.Color) chart.TimeSeries {
	return chart.TimeSeries{
		Name:    name,
		XValues: []time.Time{date},
		YValues: []float64{value},
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotColor:    color,
			DotWidth:    6,
		},
	}
}

func thousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + string(out)
}
