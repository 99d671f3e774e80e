// Package report formats lint violations and computes run summaries.
package report

import (
	"fmt"
	"io"

	"github.com/leapstack-labs/nglint/internal/cli/output"
	"github.com/leapstack-labs/nglint/pkg/lint"
)

// Format is a report output format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. An empty name selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (want text or json)", s)
	}
}

// Summary counts violations per severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Summarize counts violations by severity.
func Summarize(violations []lint.Violation) Summary {
	var s Summary
	for _, v := range violations {
		switch v.Severity {
		case lint.SeverityError:
			s.Errors++
		case lint.SeverityWarning:
			s.Warnings++
		case lint.SeverityInfo:
			s.Info++
		}
	}
	return s
}

// Total returns the number of violations counted.
func (s Summary) Total() int { return s.Errors + s.Warnings + s.Info }

// ExitCode returns 1 when any Error-severity violation was found, else 0.
func (s Summary) ExitCode() int {
	if s.Errors > 0 {
		return 1
	}
	return 0
}

// String returns the trailing count line of the text report.
func (s Summary) String() string {
	return fmt.Sprintf("%d errors, %d warnings, %d info", s.Errors, s.Warnings, s.Info)
}

// Reporter writes violations in one format.
type Reporter struct {
	r      *output.Renderer
	format Format
	quiet  bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithQuiet limits text output to the count line.
func WithQuiet(quiet bool) Option {
	return func(rep *Reporter) { rep.quiet = quiet }
}

// New creates a reporter writing to w. Text output is styled only when w
// is a terminal.
func New(w io.Writer, format Format, opts ...Option) *Reporter {
	mode := output.ModeText
	if format == FormatJSON {
		mode = output.ModeJSON
	}
	return NewWithRenderer(output.NewRenderer(w, io.Discard, mode), format, opts...)
}

// NewWithRenderer creates a reporter on an existing renderer.
func NewWithRenderer(r *output.Renderer, format Format, opts ...Option) *Reporter {
	rep := &Reporter{r: r, format: format}
	for _, opt := range opts {
		opt(rep)
	}
	return rep
}

// Write renders the violations, in the order given.
func (rep *Reporter) Write(violations []lint.Violation) error {
	if rep.format == FormatJSON {
		return writeJSON(rep.r, violations)
	}
	writeText(rep.r, violations, rep.quiet)
	return nil
}

// Filter drops violations less severe than threshold.
func Filter(violations []lint.Violation, threshold lint.Severity) []lint.Violation {
	filtered := make([]lint.Violation, 0, len(violations))
	for _, v := range violations {
		if v.Severity <= threshold {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
