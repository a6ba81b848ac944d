package report

import (
	"io"

	"github.com/doctools/dwscan/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs reports in YAML format.
// This format is convenient for human review of structured output and
// for configuration-style tooling that prefers YAML over JSON.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in YAML format.
func (w *YAMLWriter) Write(report *model.ScanReport) (int, error) {
	return w.writeYAML(report)
}

// WriteAll outputs a single YAML document for the whole run: the bare
// report for one file, a sequence of reports for several.
func (w *YAMLWriter) WriteAll(reports []*model.ScanReport) (int, error) {
	if len(reports) == 1 {
		return w.writeYAML(reports[0])
	}
	return w.writeYAML(reports)
}

// writeYAML marshals the given value to YAML and writes it to the output.
func (w *YAMLWriter) writeYAML(v interface{}) (int, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return 0, err
	}

	return w.output.Write(data)
}
