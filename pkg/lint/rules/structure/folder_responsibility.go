package structure

import (
	"fmt"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/internal/ngfile"
)

// FolderResponsibility keeps declarables out of core/ and services out of shared/.
var FolderResponsibility = lint.RuleDef{
	ID:          "folder-responsibility",
	Name:        "Folder responsibility",
	Group:       "structure",
	Description: "Components, directives and pipes must not live under core/; services must not live under shared/.",
	Severity:    lint.SeverityWarning,
	AppliesTo:   lint.HasExt(".ts"),
	Check:       checkFolderResponsibility,
	Rationale: `core/ holds application-wide singletons loaded once; shared/ holds stateless
building blocks reused across features. Mixing them hides which code is a singleton.`,
	BadExample:  "src/app/shared/services/cart.service.ts",
	GoodExample: "src/app/core/services/cart.service.ts",
}

var declarables = map[string]bool{
	"component": true,
	"directive": true,
	"pipe":      true,
}

func checkFolderResponsibility(in *lint.Input) ([]lint.Violation, error) {
	base := in.Entry.Base()
	if ngfile.IsSpec(base) {
		return nil, nil
	}

	segments := in.Entry.Segments()
	artifact := ngfile.Artifact(base)

	switch {
	case declarables[artifact] && ngfile.HasSegment(segments, "core"):
		return []lint.Violation{{
			Message: fmt.Sprintf("%s %s is under core/; declarables belong in shared/ or a feature", artifact, base),
		}}, nil
	case artifact == "service" && ngfile.HasSegment(segments, "shared"):
		return []lint.Violation{{
			Message: fmt.Sprintf("service %s is under shared/; services belong in core/ or a feature", base),
		}}, nil
	}
	return nil, nil
}
