package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/doctools/dwscan/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. attaching
// scan results to a review or an issue.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeFindings(md, report)

	return len(md.String()), md.Build()
}

// WriteAll outputs one Markdown section per report, in order.
func (w *MarkdownWriter) WriteAll(reports []*model.ScanReport) (int, error) {
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

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Double Word Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", "`" + report.Path + "`"},
			{"Scan Date", report.ScannedAt.Format("2006-01-02 15:04:05 MST")},
			{"Lines Scanned", strconv.Itoa(report.LinesScanned)},
			{"Findings", strconv.Itoa(len(report.Diagnostics))},
		},
	})
	md.PlainText("")
}

// writeFindings writes the diagnostics table, or a tip when the file is clean.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.ScanReport) {
	if !report.HasFindings() {
		md.Tip("No double words found.")
		return
	}

	md.H2("Findings")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		rows = append(rows, []string{
			d.Path + ":" + strconv.Itoa(d.Line),
			d.Kind.String(),
			"`" + d.Text + "`",
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Location", "Kind", "Line"},
		Rows:   rows,
	})
	md.PlainText("")

	md.Note(fmt.Sprintf("%d adjacent, %d cross-line diagnostics. Cross-line pairs are reported as two entries.",
		report.AdjacentCount(), report.CrossLineCount()))
}
