package scanner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/doctools/dwscan/internal/model"
)

// skipTokens contains tokens exempt from duplicate detection because they
// repeat frequently in documentation and source comments without being
// typos. The set is fixed and case-sensitive.
var skipTokens = map[string]struct{}{
	"//":                             {},
	"*":                              {},
	"}":                              {},
	"|":                              {},
	"};":                             {},
	">":                              {},
	`"`:                              {},
	"/":                              {},
	"numbers::invalid_unsigned_int,": {},
	"std::string,":                   {},
	"int,":                           {},
}

// isSkipToken reports whether the token is exempt from duplicate detection.
func isSkipToken(token string) bool {
	_, ok := skipTokens[token]
	return ok
}

// Scanner detects double-word typos in text files.
// The zero value is not usable; create instances with New.
type Scanner struct {
	// logger receives debug-level progress information.
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ScanFile scans the file at path and returns its report.
// The file is opened read-only and closed before ScanFile returns.
// An unopenable path is the only hard failure; the content itself cannot
// cause an error since scanning is string splitting and comparison only.
func (s *Scanner) ScanFile(path string) (*model.ScanReport, error) {
	f, err := os.Open(path) //nolint:gosec // scanning user-provided paths is the tool's purpose
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	report, err := s.Scan(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return report, nil
}

// Scan reads lines from r and returns a report attributed to path.
//
// For each line (0-indexed loop counter i, 1-indexed line number i+1):
//  1. Trim surrounding whitespace and split into tokens.
//  2. A whitespace-only line still becomes the stored previous line, which
//     resets the cross-line check, but produces no diagnostics itself.
//  3. A first token of exactly "*" or "//" is dropped from the comparison
//     token list, not from the stored line text.
//  4. Cross-line check: if the previous line ends with the current line's
//     first remaining token and that token is not in the skip set, two
//     diagnostics are emitted, the previous line at i+1 and the current
//     line at i+2. The off-by-one on the previous line mirrors the
//     compiler-style reporting of the original tool and is kept as is.
//  5. Adjacent check: each pair of equal neighboring tokens not in the
//     skip set emits one diagnostic at i+1.
//  6. The trimmed line becomes the stored previous line.
//
// Lines are read with bufio.Reader rather than bufio.Scanner so line
// length is unbounded: generated documentation can contain arbitrarily
// long lines, and content must never abort a scan.
func (s *Scanner) Scan(path string, r io.Reader) (*model.ScanReport, error) {
	report := model.NewScanReport(path)

	br := bufio.NewReader(r)

	var previousLine string
	for i := 0; ; i++ {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			break
		}

		report.LinesScanned++

		line := strings.TrimSpace(raw)
		words := strings.Fields(line)
		if len(words) > 0 {
			// Ignore comment-block markers at the beginning of each line.
			if words[0] == "*" || words[0] == "//" {
				words = words[1:]
			}

			// A marker-only line has no tokens left to compare. It still
			// participates as the previous line below.
			previousWords := strings.Fields(previousLine)
			if len(previousWords) > 0 && len(words) > 0 {
				first := words[0]
				if !isSkipToken(first) && previousWords[len(previousWords)-1] == first {
					report.Add(model.Diagnostic{
						Path: path,
						Line: i + 1,
						Text: previousLine,
						Kind: model.KindCrossLine,
					})
					report.Add(model.Diagnostic{
						Path: path,
						Line: i + 2,
						Text: line,
						Kind: model.KindCrossLine,
					})
				}
			}

			for j := 0; j+1 < len(words); j++ {
				if words[j] == words[j+1] && !isSkipToken(words[j]) {
					report.Add(model.Diagnostic{
						Path: path,
						Line: i + 1,
						Text: line,
						Kind: model.KindAdjacent,
					})
				}
			}
		}

		// Whitespace-only lines still become the previous line, which
		// resets the cross-line check.
		previousLine = line

		if err == io.EOF {
			break
		}
	}

	s.logger.Debug("scan complete",
		"path", path,
		"lines", report.LinesScanned,
		"findings", len(report.Diagnostics),
	)

	return report, nil
}
