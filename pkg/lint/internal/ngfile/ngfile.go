// Package ngfile classifies Angular source files by their path.
package ngfile

import (
	"path"
	"strings"
)

// RoleSuffixes maps role directories to the file suffixes expected beneath them.
var RoleSuffixes = map[string][]string{
	"components":   {".component.ts"},
	"services":     {".service.ts"},
	"models":       {".model.ts", ".interface.ts"},
	"interfaces":   {".interface.ts", ".model.ts"},
	"pipes":        {".pipe.ts"},
	"guards":       {".guard.ts"},
	"directives":   {".directive.ts"},
	"interceptors": {".interceptor.ts"},
}

// PagesDir is the role directory holding routed page components.
const PagesDir = "pages"

var barrels = map[string]bool{
	"index.ts":      true,
	"public-api.ts": true,
}

// IsBarrel reports whether base is a re-export barrel file.
func IsBarrel(base string) bool {
	return barrels[strings.ToLower(base)]
}

// IsSpec reports whether base is a unit test file, e.g. "a.component.spec.ts".
func IsSpec(base string) bool {
	return strings.HasSuffix(strings.TrimSuffix(base, path.Ext(base)), ".spec")
}

// Stem returns base without its extension and without a ".spec" qualifier:
// "pay-button.component.spec.ts" becomes "pay-button.component".
func Stem(base string) string {
	return strings.TrimSuffix(strings.TrimSuffix(base, path.Ext(base)), ".spec")
}

// WithoutSpec drops the ".spec" qualifier and keeps the extension:
// "pay.service.spec.ts" becomes "pay.service.ts".
func WithoutSpec(base string) string {
	return Stem(base) + path.Ext(base)
}

// Artifact returns the Angular artifact kind encoded in the last qualifier
// of the stem, e.g. "component" for "pay-button.component.ts". It returns
// "" when the name carries no qualifier.
func Artifact(base string) string {
	stem := Stem(base)
	i := strings.LastIndexByte(stem, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(stem[i+1:])
}

// DeepestRole returns the last segment that is a key of roles.
// Segments are compared case-insensitively.
func DeepestRole[V any](segments []string, roles map[string]V) (string, bool) {
	for i := len(segments) - 1; i >= 0; i-- {
		seg := strings.ToLower(segments[i])
		if _, ok := roles[seg]; ok {
			return seg, true
		}
	}
	return "", false
}

// HasSegment reports whether any segment equals name, ignoring case.
func HasSegment(segments []string, name string) bool {
	for _, s := range segments {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// LineAt returns the 1-based line number of byte offset off in content.
func LineAt(content []byte, off int) int {
	if off > len(content) {
		off = len(content)
	}
	line := 1
	for _, b := range content[:off] {
		if b == '\n' {
			line++
		}
	}
	return line
}
