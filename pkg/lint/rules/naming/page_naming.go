package naming

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/internal/ngfile"
)

// PageNaming requires routed pages to be named <feature>-page.component.
var PageNaming = lint.RuleDef{
	ID:          "page-naming",
	Name:        "Page component naming",
	Group:       "naming",
	Description: "Files under pages/ must be named <feature>-page.component.",
	Severity:    lint.SeverityWarning,
	AppliesTo:   lint.HasExt(".ts", ".html", ".scss"),
	Check:       checkPageNaming,
	Rationale:   "The -page suffix separates routed containers from reusable presentational components.",
	BadExample:  "src/app/features/pay/pages/checkout/checkout.component.ts",
	GoodExample: "src/app/features/pay/pages/checkout/checkout-page.component.ts",
}

// pageRoles are the directories that compete with pages/ for the deepest role.
var pageRoles = func() map[string]bool {
	roles := map[string]bool{ngfile.PagesDir: true}
	for k := range ngfile.RoleSuffixes {
		roles[k] = true
	}
	return roles
}()

func checkPageNaming(in *lint.Input) ([]lint.Violation, error) {
	role, ok := ngfile.DeepestRole(in.Entry.Segments(), pageRoles)
	if !ok || role != ngfile.PagesDir {
		return nil, nil
	}

	base := in.Entry.Base()
	if ngfile.IsBarrel(base) {
		return nil, nil
	}
	if strings.HasSuffix(strings.ToLower(ngfile.Stem(base)), "-page.component") {
		return nil, nil
	}

	return []lint.Violation{{
		Message: fmt.Sprintf("%s is in a pages directory but is not named <feature>-page.component", base),
	}}, nil
}
