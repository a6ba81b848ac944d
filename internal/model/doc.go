// Package model defines the core data structures used throughout dwscan.
//
// This package contains the following main types:
//   - Diagnostic: A single suspected double-word typo location
//   - Kind: The detection heuristic that produced a diagnostic
//   - ScanReport: The per-file scan result
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Both the scanner and report packages need these types, so
// centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON and YAML for report
// output.
package model
