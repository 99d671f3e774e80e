package lint

import (
	"path"
	"strings"
)

// =============================================================================
// Entries
// =============================================================================

// Kind distinguishes files from directories.
type Kind int

// Entry kinds.
const (
	KindFile Kind = iota
	KindDirectory
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is one file or directory found under the project root.
type Entry struct {
	Path string // Relative to the root, forward-slash separated, e.g. "src/app/app.component.ts"
	Kind Kind
	Ext  string // Lower-cased extension including the dot; empty for directories
}

// NewEntry builds an Entry from a root-relative path, normalising separators
// and deriving the extension for files.
func NewEntry(rel string, kind Kind) Entry {
	p := strings.TrimPrefix(path.Clean(strings.ReplaceAll(rel, "\\", "/")), "/")
	e := Entry{Path: p, Kind: kind}
	if kind == KindFile {
		e.Ext = strings.ToLower(path.Ext(p))
	}
	return e
}

// IsFile reports whether the entry is a regular file.
func (e Entry) IsFile() bool { return e.Kind == KindFile }

// Base returns the last path element.
func (e Entry) Base() string { return path.Base(e.Path) }

// Dir returns the parent directory, "." for top-level entries.
func (e Entry) Dir() string { return path.Dir(e.Path) }

// Segments returns the directory segments leading to the entry, excluding
// the entry's own name.
func (e Entry) Segments() []string {
	dir := e.Dir()
	if dir == "." {
		return nil
	}
	return strings.Split(dir, "/")
}

// =============================================================================
// Violations
// =============================================================================

// Violation represents one failed check against an entry.
type Violation struct {
	RuleID   string   `json:"ruleId"`
	Path     string   `json:"path"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Input passed to Check.
type RuleDef struct {
	ID              string    // Unique identifier, e.g., "naming-suffix"
	Name            string    // Human-readable name, e.g., "Role suffix naming"
	Group           string    // Category, e.g., "naming", "markup", "routing"
	Description     string    // Human-readable description
	Severity        Severity  // Default severity
	DefaultDisabled bool      // Rule runs only when enabled by configuration
	AppliesTo       Predicate // Narrows the entries Check is invoked on
	Check           CheckFunc // The check function
	ConfigKeys      []string  // Configuration keys this rule accepts

	// Documentation fields
	Rationale   string // Why this rule exists
	BadExample  string // Path or snippet showing the anti-pattern
	GoodExample string // Path or snippet showing the correct pattern
}

// CheckFunc analyzes one entry and returns the violations found.
// RuleID, Path and Severity may be left empty; the engine fills them in.
type CheckFunc func(in *Input) ([]Violation, error)

// Predicate reports whether a rule applies to an entry.
type Predicate func(e Entry) bool

// Info returns the documentation view of the rule.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		DefaultEnabled:  !r.DefaultDisabled,
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
	}
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	DefaultEnabled  bool     `json:"default_enabled"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Rationale       string   `json:"rationale,omitempty"`
	BadExample      string   `json:"bad_example,omitempty"`
	GoodExample     string   `json:"good_example,omitempty"`
}

// =============================================================================
// Predicates
// =============================================================================

// Files matches regular files only.
func Files(e Entry) bool { return e.IsFile() }

// HasExt matches files with one of the given extensions.
func HasExt(exts ...string) Predicate {
	return func(e Entry) bool {
		if !e.IsFile() {
			return false
		}
		for _, ext := range exts {
			if e.Ext == ext {
				return true
			}
		}
		return false
	}
}

// HasSuffix matches files whose path ends with one of the given suffixes.
func HasSuffix(suffixes ...string) Predicate {
	return func(e Entry) bool {
		if !e.IsFile() {
			return false
		}
		for _, s := range suffixes {
			if strings.HasSuffix(e.Path, s) {
				return true
			}
		}
		return false
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(e Entry) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}
