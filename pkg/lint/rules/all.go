package rules

import (
	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/imports"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/markup"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/naming"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/routing"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/structure"
	"github.com/leapstack-labs/nglint/pkg/lint/rules/styles"
)

// Builtin returns the built-in rule set in registration order.
// Each call returns a fresh slice.
func Builtin() []lint.RuleDef {
	return []lint.RuleDef{
		naming.Suffix,
		naming.PageNaming,
		naming.KebabCase,
		structure.FolderResponsibility,
		routing.GuardPresent,
		markup.DataTest,
		imports.Order,
		styles.ScssPerComponent,
	}
}

// Find returns the rule with the given id.
func Find(rules []lint.RuleDef, id string) (lint.RuleDef, bool) {
	for _, r := range rules {
		if r.ID == id {
			return r, true
		}
	}
	return lint.RuleDef{}, false
}
