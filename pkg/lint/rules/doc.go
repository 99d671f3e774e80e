// Package rules collects the built-in Angular convention rules.
//
// Rules are organized by group:
//   - naming: suffixes, page names, kebab-case file names
//   - structure: what belongs in core/ and shared/
//   - routing: guards on lazy-loaded routes
//   - markup: data-test attributes on interactive elements
//   - imports: import grouping
//   - styles: one stylesheet per component (opt-in)
//
// There is no global registry. Callers build the rule set explicitly:
//
//	engine := lint.NewEngine(rules.Builtin(), cfg)
//
// Individual rules can also be used on their own, e.g. naming.Suffix.
package rules
