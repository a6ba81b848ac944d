package report

import (
	"io"
	"strings"

	"github.com/doctools/dwscan/internal/model"
)

// TextWriter outputs plain GCC-style diagnostic lines, one per finding,
// in emission order:
//
//	path:line: line text
//
// This is the default output format. It intentionally contains nothing
// but the diagnostic lines so it can be piped to other tools and consumed
// from editors' compilation modes. A report with no findings produces no
// output at all.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report's diagnostics as plain text lines.
func (w *TextWriter) Write(report *model.ScanReport) (int, error) {
	if !report.HasFindings() {
		return 0, nil
	}

	var sb strings.Builder
	for _, d := range report.Diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteAll outputs each report's diagnostics in turn. The result is the
// same line stream the original tool produces when run over the files in
// a shell loop.
func (w *TextWriter) WriteAll(reports []*model.ScanReport) (int, error) {
	var total int
	for _, report := range reports {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
