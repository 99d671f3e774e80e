// Package styles provides component stylesheet rules.
package styles

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/leapstack-labs/nglint/pkg/lint"
)

// ScssPerComponent requires each component to have its own stylesheet.
// It is disabled by default.
var ScssPerComponent = lint.RuleDef{
	ID:              "scss-per-component",
	Name:            "Stylesheet per component",
	Group:           "styles",
	Description:     "Each component needs a sibling stylesheet unless it declares inline styles.",
	Severity:        lint.SeverityInfo,
	DefaultDisabled: true,
	AppliesTo:       lint.HasSuffix(".component.ts"),
	Check:           checkScssPerComponent,
	ConfigKeys:      []string{"style_extensions"},
	BadExample:      "pay-button.component.ts with no pay-button.component.scss",
	GoodExample:     "pay-button.component.ts next to pay-button.component.scss",
}

var inlineStyles = regexp.MustCompile(`\bstyles\s*:`)

func checkScssPerComponent(in *lint.Input) ([]lint.Violation, error) {
	exts := lint.GetStringSliceOption(in.Options, "style_extensions", []string{".scss"})
	stem := strings.TrimSuffix(in.Entry.Path, path.Ext(in.Entry.Path))

	for _, ext := range exts {
		if in.Exists(stem + ext) {
			return nil, nil
		}
	}

	content, err := in.Content()
	if err != nil {
		return nil, err
	}
	if inlineStyles.Match(content) {
		return nil, nil
	}

	return []lint.Violation{{
		Message: fmt.Sprintf("%s has no sibling %s stylesheet", in.Entry.Base(), strings.Join(exts, " or ")),
	}}, nil
}
