// Package lint provides the convention-linting framework behind nglint.
//
// # Architecture
//
// The lint package follows a layered layout:
//
//  1. Root package (pkg/lint/): shared contracts (Entry, RuleDef, Violation,
//     Severity), rule configuration and the Engine that applies rules
//  2. Scanner (pkg/lint/scan/): deterministic, ignore-aware project walk
//  3. Built-in rules (pkg/lint/rules/): Angular style-guide checks grouped by
//     concern (naming, structure, routing, markup, imports, styles)
//  4. Script rules (pkg/lint/script/): user-defined Starlark checks
//
// # Rule Sets
//
// There is no global registry. A rule set is an explicit, ordered slice
// built once at start-up and handed to the engine:
//
//	set := rules.Builtin()
//	set = append(set, scripted...)
//	engine := lint.NewEngine(set, cfg)
//
// Registration order is significant: it is the tie-break for violations
// reported against the same entry.
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	cfg := lint.NewConfig()
//	cfg.Disable("import-order")
//	cfg.Enable("scss-per-component")
//	cfg.SetSeverity("naming-suffix", lint.SeverityError)
//	cfg.SetRuleOptions("import-order", map[string]any{"internal_prefixes": []string{"@acme/"}})
//
// # Writing Rules
//
// A rule is a RuleDef value. Check must be pure: the same entry, contents and
// options always produce the same violations.
//
//	var MyRule = lint.RuleDef{
//		ID:        "my-rule",
//		Group:     "custom",
//		Severity:  lint.SeverityWarning,
//		AppliesTo: lint.HasExt(".ts"),
//		Check:     checkMyRule,
//	}
package lint
