// Package routing provides route configuration rules.
package routing

import (
	"bytes"

	"github.com/leapstack-labs/nglint/pkg/lint"
)

// GuardPresent flags lazy-loaded route files that declare no guard.
var GuardPresent = lint.RuleDef{
	ID:          "route-guard-present",
	Name:        "Guarded lazy routes",
	Group:       "routing",
	Description: "Route files that lazy-load children or components should declare a route guard.",
	Severity:    lint.SeverityInfo,
	AppliesTo:   lint.HasSuffix("-routing.module.ts", ".routes.ts"),
	Check:       checkGuardPresent,
	Rationale: `Lazy-loaded areas are usually feature boundaries that need access control.
This is a text heuristic: it looks for the property names, not for a parsed route tree.`,
	BadExample:  "{ path: 'admin', loadChildren: () => import('./admin/admin.routes') }",
	GoodExample: "{ path: 'admin', canMatch: [adminGuard], loadChildren: () => import('./admin/admin.routes') }",
}

var (
	lazyMarkers  = [][]byte{[]byte("loadChildren"), []byte("loadComponent")}
	guardMarkers = [][]byte{
		[]byte("canActivate"), // also matches canActivateChild
		[]byte("canMatch"),
		[]byte("canLoad"),
	}
)

func checkGuardPresent(in *lint.Input) ([]lint.Violation, error) {
	content, err := in.Content()
	if err != nil {
		return nil, err
	}

	if !containsAny(content, lazyMarkers) || containsAny(content, guardMarkers) {
		return nil, nil
	}
	return []lint.Violation{{
		Message: "lazy-loaded routes without canActivate, canActivateChild, canMatch or canLoad guard",
	}}, nil
}

func containsAny(content []byte, markers [][]byte) bool {
	for _, m := range markers {
		if bytes.Contains(content, m) {
			return true
		}
	}
	return false
}
