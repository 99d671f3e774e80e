package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/nglint/internal/cli/output"
	"github.com/leapstack-labs/nglint/pkg/lint"
)

func writeJSON(r *output.Renderer, violations []lint.Violation) error {
	if violations == nil {
		violations = []lint.Violation{}
	}
	if err := r.JSON(violations); err != nil {
		return fmt.Errorf("failed to encode violations: %w", err)
	}
	return nil
}

// pathGroup holds one path's violations in first-seen order.
type pathGroup struct {
	path       string
	violations []lint.Violation
}

// groupBySeverity buckets violations by severity, then by path in
// first-seen order, keeping emission order inside each path.
func groupBySeverity(violations []lint.Violation) map[lint.Severity][]*pathGroup {
	groups := make(map[lint.Severity][]*pathGroup)
	index := make(map[lint.Severity]map[string]*pathGroup)

	for _, v := range violations {
		if index[v.Severity] == nil {
			index[v.Severity] = make(map[string]*pathGroup)
		}
		g, ok := index[v.Severity][v.Path]
		if !ok {
			g = &pathGroup{path: v.Path}
			index[v.Severity][v.Path] = g
			groups[v.Severity] = append(groups[v.Severity], g)
		}
		g.violations = append(g.violations, v)
	}
	return groups
}

func writeText(r *output.Renderer, violations []lint.Violation, quiet bool) {
	summary := Summarize(violations)

	if !quiet {
		groups := groupBySeverity(violations)
		for _, sev := range lint.Severities {
			paths := groups[sev]
			if len(paths) == 0 {
				continue
			}
			r.Println(severityStyle(r.Styles(), sev).Render(sev.String()))
			for _, g := range paths {
				r.Println(r.Styles().Path.Render(g.path))
				for _, v := range g.violations {
					r.Printf("  %s  %s\n", r.Styles().Bold.Render(v.RuleID), v.Message)
				}
			}
			r.Println("")
		}
	}

	r.Println(summaryLine(r.Styles(), summary))
}

func summaryLine(styles *output.Styles, s Summary) string {
	errs := fmt.Sprintf("%d errors", s.Errors)
	if s.Errors > 0 {
		errs = styles.Error.Render(errs)
	}
	warns := fmt.Sprintf("%d warnings", s.Warnings)
	if s.Warnings > 0 {
		warns = styles.Warning.Render(warns)
	}
	return fmt.Sprintf("%s, %s, %d info", errs, warns, s.Info)
}

func severityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}
