package naming

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/internal/ngfile"
)

// Suffix requires files under a role directory to carry the role's suffix.
var Suffix = lint.RuleDef{
	ID:          "naming-suffix",
	Name:        "Role suffix naming",
	Group:       "naming",
	Description: "Files under components/, services/, pipes/ and other role directories must carry the matching suffix.",
	Severity:    lint.SeverityWarning,
	AppliesTo:   lint.HasExt(".ts"),
	Check:       checkSuffix,
	ConfigKeys:  []string{"roles", "allow"},
	Rationale: `The suffix tells readers and tooling what a file contains without opening it.
The deepest role directory in the path decides the expected suffix, so a component
nested inside a feature's services/ folder is judged as a service.`,
	BadExample:  "src/app/features/pay/components/pay-button/PayButton.ts",
	GoodExample: "src/app/features/pay/components/pay-button/pay-button.component.ts",
}

func checkSuffix(in *lint.Input) ([]lint.Violation, error) {
	roles := ngfile.RoleSuffixes
	if custom := lint.GetStringMapSliceOption(in.Options, "roles", nil); len(custom) > 0 {
		roles = mergeRoles(roles, custom)
	}

	role, ok := ngfile.DeepestRole(in.Entry.Segments(), roles)
	if !ok {
		return nil, nil
	}

	base := in.Entry.Base()
	if ngfile.IsBarrel(base) || slices.Contains(lint.GetStringSliceOption(in.Options, "allow", nil), base) {
		return nil, nil
	}

	name := strings.ToLower(ngfile.WithoutSpec(base))
	suffixes := roles[role]
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return nil, nil
		}
	}

	return []lint.Violation{{
		Message: fmt.Sprintf("%s is in a %s directory but does not end with %s",
			base, role, strings.Join(suffixes, " or ")),
	}}, nil
}

// mergeRoles overlays configured roles onto the defaults. Keys are
// lower-cased to match DeepestRole.
func mergeRoles(defaults, custom map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(defaults)+len(custom))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range custom {
		merged[strings.ToLower(k)] = v
	}
	return merged
}
