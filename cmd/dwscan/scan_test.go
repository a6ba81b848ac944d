package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/doctools/dwscan/internal/config"
	"github.com/doctools/dwscan/internal/report"
)

// TestBuildConfig tests config construction from command flags.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.JSONReport || cfg.MarkdownReport || cfg.YAMLReport {
			t.Error("expected text output by default")
		}
		if cfg.ReportFile != "" {
			t.Error("expected stdout output by default")
		}
		if len(cfg.Paths) != 1 || cfg.Paths[0] != "a.txt" {
			t.Errorf("expected paths [a.txt], got %v", cfg.Paths)
		}
	})

	t.Run("report flags", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"--json", "--output", "out.json", "--verbose"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.txt", "b.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.JSONReport {
			t.Error("expected JSON report enabled")
		}
		if cfg.ReportFile != "out.json" {
			t.Errorf("expected report file 'out.json', got %q", cfg.ReportFile)
		}
		if !cfg.Verbose {
			t.Error("expected verbose enabled")
		}
		if len(cfg.Paths) != 2 {
			t.Errorf("expected two paths, got %v", cfg.Paths)
		}
	})
}

// TestNewReportWriter tests report writer selection.
func TestNewReportWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	testCases := []struct {
		name   string
		mutate func(*config.Config)
		check  func(report.Writer) bool
	}{
		{
			name:   "text by default",
			mutate: func(_ *config.Config) {},
			check: func(w report.Writer) bool {
				_, ok := w.(*report.TextWriter)
				return ok
			},
		},
		{
			name:   "json",
			mutate: func(c *config.Config) { c.JSONReport = true },
			check: func(w report.Writer) bool {
				_, ok := w.(*report.JSONWriter)
				return ok
			},
		},
		{
			name:   "markdown",
			mutate: func(c *config.Config) { c.MarkdownReport = true },
			check: func(w report.Writer) bool {
				_, ok := w.(*report.MarkdownWriter)
				return ok
			},
		},
		{
			name:   "yaml",
			mutate: func(c *config.Config) { c.YAMLReport = true },
			check: func(w report.Writer) bool {
				_, ok := w.(*report.YAMLWriter)
				return ok
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tc.mutate(cfg)

			if !tc.check(newReportWriter(cfg, &buf)) {
				t.Error("unexpected writer type")
			}
		})
	}
}

// TestOpenOutput tests report destination handling.
func TestOpenOutput(t *testing.T) {
	t.Parallel()

	t.Run("stdout by default", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		output, cleanup, err := openOutput(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()

		if output == nil {
			t.Error("expected an output writer")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.ReportFile = filepath.Join(t.TempDir(), "nested", "dir", "report.txt")

		output, cleanup, err := openOutput(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()

		if output == nil {
			t.Error("expected an output writer")
		}
	})
}

// TestSetupLogger tests logger level configuration.
func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level is warn", func(t *testing.T) {
		t.Parallel()

		logger := setupLogger(false)
		if logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("expected debug disabled by default")
		}
		if !logger.Enabled(context.Background(), slog.LevelWarn) {
			t.Error("expected warn enabled by default")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		logger := setupLogger(true)
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("expected debug enabled in verbose mode")
		}
	})
}
