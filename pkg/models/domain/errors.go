package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotEnoughData is returned by the chart renderer when the grouped
// series has fewer than two points; the pipeline degrades to a report
// without a chart.
var ErrNotEnoughData = errors.New("not enough data points to draw a chart")

// UnreadableFileError means the uploaded file could not be parsed at all.
// Fatal: nothing downstream runs.
type UnreadableFileError struct {
	Filename string
	Err      error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("error reading file %q: %v", e.Filename, e.Err)
}

func (e *UnreadableFileError) Unwrap() error { return e.Err }

func (e *UnreadableFileError) Kind() string { return "unreadable_file" }

// MissingColumnsError means one or more of the revenue/expense/date columns
// could not be resolved against the synonym sets. Fatal, but the data
// preview is still shown.
type MissingColumnsError struct {
	Missing []string
	// Accepted maps each canonical field to the column names it accepts,
	// so the user-facing warning can spell them out.
	Accepted map[string][]string
}

func (e *MissingColumnsError) Error() string {
	var hints []string
	for _, field := range e.Missing {
		hints = append(hints, fmt.Sprintf("%s (one of: %s)", field, strings.Join(e.Accepted[field], ", ")))
	}
	return "missing required columns: " + strings.Join(hints, "; ")
}

func (e *MissingColumnsError) Kind() string { return "missing_columns" }

// DateParseError means the date column held a value no supported layout
// could parse. A single bad date aborts the whole aggregation.
type DateParseError struct {
	Row    int
	Column string
	Value  string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable date %q in column %q at row %d", e.Value, e.Column, e.Row)
}

func (e *DateParseError) Kind() string { return "date_parse" }

// NarrativeUnavailableError means the completion service call failed. The
// report is still generated with an empty narrative.
type NarrativeUnavailableError struct {
	Err error
}

func (e *NarrativeUnavailableError) Error() string {
	return fmt.Sprintf("failed to generate summary: %v", e.Err)
}

func (e *NarrativeUnavailableError) Unwrap() error { return e.Err }

func (e *NarrativeUnavailableError) Kind() string { return "narrative_unavailable" }

// DeliveryError means the mail relay rejected or failed the send. The
// downloadable document is unaffected.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email sending failed for %q: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func (e *DeliveryError) Kind() string { return "delivery_failed" }

// ErrorKind returns the stable machine-readable kind for a pipeline error,
// or "internal" for anything unclassified.
func ErrorKind(err error) string {
	type kinder interface{ Kind() string }
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return "internal"
}
