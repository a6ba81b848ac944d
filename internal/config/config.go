package config

import "errors"

// ErrNoPaths is returned by Validate when no scan targets were provided.
var ErrNoPaths = errors.New("no paths provided (specify one or more files as arguments)")

// ErrFormatConflict is returned by Validate when more than one structured
// report format is requested at the same time.
var ErrFormatConflict = errors.New("--json, --markdown, and --yaml are mutually exclusive")

// Config holds all configuration options for dwscan.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs.
// The number of options is small, and nesting would add complexity without
// benefit.
type Config struct {
	// Paths is the list of files to scan, in command-line order.
	// Must contain at least one entry.
	Paths []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the plain
	// GCC-style diagnostic lines. Mutually exclusive with MarkdownReport
	// and YAMLReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output with summary tables.
	// Mutually exclusive with JSONReport and YAMLReport.
	MarkdownReport bool

	// YAMLReport enables YAML report output.
	// Mutually exclusive with JSONReport and MarkdownReport.
	YAMLReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values: plain text output
// to stdout, warnings-only logging.
func NewConfig() *Config {
	return &Config{}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return ErrNoPaths
	}

	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.YAMLReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrFormatConflict
	}

	return nil
}
