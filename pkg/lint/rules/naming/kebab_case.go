package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/nglint/pkg/lint"
)

// KebabCase requires lower kebab-case file names.
var KebabCase = lint.RuleDef{
	ID:          "file-kebab-case",
	Name:        "Kebab-case file names",
	Group:       "naming",
	Description: "Source, template and style file names must be lower kebab-case with dot-separated qualifiers.",
	Severity:    lint.SeverityWarning,
	AppliesTo:   lint.HasExt(".ts", ".html", ".scss", ".css"),
	Check:       checkKebabCase,
	BadExample:  "userProfile.component.ts",
	GoodExample: "user-profile.component.ts",
}

var kebabPart = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func checkKebabCase(in *lint.Input) ([]lint.Violation, error) {
	base := in.Entry.Base()
	name := base[:len(base)-len(in.Entry.Ext)]

	// Sass partials are prefixed with an underscore.
	if in.Entry.Ext == ".scss" {
		name = strings.TrimPrefix(name, "_")
	}

	for _, part := range strings.Split(name, ".") {
		if !kebabPart.MatchString(part) {
			return []lint.Violation{{
				Message: fmt.Sprintf("%s is not kebab-case", base),
			}}, nil
		}
	}
	return nil, nil
}
