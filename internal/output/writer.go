package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessmoves-go/internal/config"
)

// ReportWriter is the interface for writing move reports.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewReportWriter returns the writer for cfg.Format. batch selects the
// JSON array form used for multi-position input.
func NewReportWriter(w io.Writer, cfg *config.Config, batch bool) ReportWriter {
	if cfg.Format == config.JSONFormat {
		if batch {
			return NewJSONWriter(w)
		}
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, 80)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
	written       int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{w: w, maxLineLength: maxLineLength}
}

// WriteReport writes a report, separating consecutive reports with a
// blank line.
func (tw *TextWriter) WriteReport(r *Report) error {
	if tw.written > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	writeText(tw.w, r, tw.maxLineLength)
	tw.written++
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*Report `json:"positions"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports into one
// document.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return encode(jw.w, r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := encode(jw.w, &JSONOutput{Positions: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes any pending reports.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
