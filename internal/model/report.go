package model

import "time"

// ScanReport is the result of scanning a single file.
//
// Design decision: The default text output needs only the ordered
// diagnostics, but the JSON/YAML/Markdown writers benefit from summary
// counts, so the report carries both rather than recomputing counts in
// every writer.
type ScanReport struct {
	// Path is the scanned file path exactly as given on the command line.
	Path string `json:"path" yaml:"path"`

	// ScannedAt is the time the scan started.
	ScannedAt time.Time `json:"scannedAt" yaml:"scannedAt"`

	// LinesScanned is the number of input lines read.
	LinesScanned int `json:"linesScanned" yaml:"linesScanned"`

	// Diagnostics holds all findings in emission order. A cross-line pair
	// contributes two consecutive entries.
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// NewScanReport creates an empty report for the given path.
func NewScanReport(path string) *ScanReport {
	return &ScanReport{
		Path:      path,
		ScannedAt: time.Now(),
	}
}

// Add appends a diagnostic to the report.
func (r *ScanReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// HasFindings reports whether the scan produced any diagnostics.
func (r *ScanReport) HasFindings() bool {
	return len(r.Diagnostics) > 0
}

// AdjacentCount returns the number of same-line diagnostics.
func (r *ScanReport) AdjacentCount() int {
	return r.countKind(KindAdjacent)
}

// CrossLineCount returns the number of cross-line diagnostics.
// Each cross-line pair counts as two diagnostics.
func (r *ScanReport) CrossLineCount() int {
	return r.countKind(KindCrossLine)
}

// countKind counts diagnostics of the given kind.
func (r *ScanReport) countKind(kind Kind) int {
	var n int
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
