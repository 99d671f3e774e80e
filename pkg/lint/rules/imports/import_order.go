// Package imports provides TypeScript import rules.
package imports

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/internal/ngfile"
)

// Order requires imports grouped as Angular, third-party, app aliases, relative.
var Order = lint.RuleDef{
	ID:          "import-order",
	Name:        "Import grouping",
	Group:       "imports",
	Description: "Imports must be grouped: @angular/*, third-party, app aliases, then relative paths.",
	Severity:    lint.SeverityInfo,
	AppliesTo:   lint.HasExt(".ts"),
	Check:       checkOrder,
	ConfigKeys:  []string{"internal_prefixes"},
	Rationale:   "A fixed grouping makes dependencies on the framework, libraries and the app itself visible at a glance.",
	BadExample: `import { CartService } from '@core/services/cart.service';
import { Component } from '@angular/core';`,
	GoodExample: `import { Component } from '@angular/core';
import { CartService } from '@core/services/cart.service';`,
}

// DefaultInternalPrefixes are path aliases that resolve into the application.
var DefaultInternalPrefixes = []string{"@app/", "@core/", "@shared/", "@features/", "@env/"}

type group int

const (
	groupAngular group = iota
	groupThirdParty
	groupInternal
	groupRelative
)

func (g group) String() string {
	switch g {
	case groupAngular:
		return "@angular"
	case groupThirdParty:
		return "third-party"
	case groupInternal:
		return "app alias"
	default:
		return "relative"
	}
}

// importSpec matches static import declarations, including multi-line
// named imports and side-effect imports.
var importSpec = regexp.MustCompile(`(?m)^[ \t]*import\s+(?:[^'";]*?\bfrom\s*)?['"]([^'"]+)['"]`)

func checkOrder(in *lint.Input) ([]lint.Violation, error) {
	content, err := in.Content()
	if err != nil {
		return nil, err
	}

	prefixes := append(append([]string(nil), DefaultInternalPrefixes...),
		lint.GetStringSliceOption(in.Options, "internal_prefixes", nil)...)

	highest := groupAngular
	for _, m := range importSpec.FindAllSubmatchIndex(content, -1) {
		spec := string(content[m[2]:m[3]])
		g := classify(spec, prefixes)
		if g < highest {
			return []lint.Violation{{
				Message: fmt.Sprintf("line %d: %s import %q should come before %s imports",
					ngfile.LineAt(content, m[0]), g, spec, highest),
			}}, nil
		}
		highest = g
	}
	return nil, nil
}

func classify(spec string, internalPrefixes []string) group {
	switch {
	case strings.HasPrefix(spec, "."):
		return groupRelative
	case strings.HasPrefix(spec, "@angular/"):
		return groupAngular
	}
	for _, p := range internalPrefixes {
		if strings.HasPrefix(spec, p) {
			return groupInternal
		}
	}
	return groupThirdParty
}
