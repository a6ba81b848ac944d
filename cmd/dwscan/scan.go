package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/doctools/dwscan/internal/config"
	"github.com/doctools/dwscan/internal/model"
	"github.com/doctools/dwscan/internal/report"
	"github.com/doctools/dwscan/internal/scanner"
	"github.com/spf13/cobra"
)

// runScanCmd executes the scan.
func runScanCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	return runScan(cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.YAMLReport, err = cmd.Flags().GetBool("yaml")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the files to scan
	cfg.Paths = args

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runScan scans each configured path in order and writes one run-level
// report. The first unreadable path aborts the run; diagnostics themselves
// never affect the exit status.
//
// All files are scanned before anything is written so that the structured
// formats can emit a single document covering the whole run.
func runScan(cfg *config.Config, logger *slog.Logger) error {
	output, cleanup, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	s := scanner.New(scanner.WithLogger(logger))
	writer := newReportWriter(cfg, output)

	logger.Info("starting scan", "paths", cfg.Paths)

	reports := make([]*model.ScanReport, 0, len(cfg.Paths))
	for _, path := range cfg.Paths {
		scanReport, err := s.ScanFile(path)
		if err != nil {
			return err
		}
		reports = append(reports, scanReport)
	}

	if _, err := writer.WriteAll(reports); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// openOutput returns the report destination and a cleanup function.
// By default reports go to stdout; with --output they go to the given
// file, creating parent directories as needed.
func openOutput(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

// newReportWriter selects the report writer for the configured format.
// Plain GCC-style text is the default.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	case cfg.YAMLReport:
		return report.NewYAMLWriter(output)
	default:
		return report.NewTextWriter(output)
	}
}
