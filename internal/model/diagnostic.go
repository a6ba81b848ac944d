package model

import "fmt"

// Diagnostic is a single suspected double-word typo location.
// Line numbers follow the reporting convention of the original tool:
// a cross-line pair is reported as two diagnostics, the previous line at
// the current line's 1-indexed number and the current line at one past it.
// This matches compiler-style output and is intentionally not normalized.
type Diagnostic struct {
	// Path is the scanned file path exactly as given on the command line.
	Path string `json:"path" yaml:"path"`

	// Line is the reported line number (see the type comment for the
	// cross-line numbering convention).
	Line int `json:"line" yaml:"line"`

	// Text is the trimmed line text. For lines starting with a comment
	// marker ("*" or "//") the marker is included even though it is
	// excluded from token comparisons.
	Text string `json:"text" yaml:"text"`

	// Kind records which heuristic fired.
	Kind Kind `json:"kind" yaml:"kind"`
}

// String formats the diagnostic in GCC style, `path:line: text`,
// so output can be consumed from editors' compilation modes.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s", d.Path, d.Line, d.Text)
}
