// Package linttest provides helpers for testing lint rules without a real
// project tree.
package linttest

import (
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/leapstack-labs/nglint/pkg/lint"
)

// Files is an in-memory FileSource keyed by root-relative path.
// Directories exist implicitly when any file lives beneath them.
type Files map[string]string

// ReadFile implements lint.FileSource.
func (f Files) ReadFile(p string) ([]byte, error) {
	content, ok := f[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

// Exists implements lint.FileSource.
func (f Files) Exists(p string) bool {
	if _, ok := f[p]; ok {
		return true
	}
	prefix := strings.TrimSuffix(p, "/") + "/"
	for name := range f {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Entries returns the file entries in lexicographic order, preceded by the
// directories that contain them.
func (f Files) Entries() []lint.Entry {
	seen := make(map[string]bool)
	var paths []string
	for name := range f {
		dir := path.Dir(name)
		for dir != "." && !seen[dir] {
			seen[dir] = true
			paths = append(paths, dir+"/")
			dir = path.Dir(dir)
		}
		paths = append(paths, name)
	}
	sortPaths(paths)

	entries := make([]lint.Entry, 0, len(paths))
	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			entries = append(entries, lint.NewEntry(strings.TrimSuffix(p, "/"), lint.KindDirectory))
			continue
		}
		entries = append(entries, lint.NewEntry(p, lint.KindFile))
	}
	return entries
}

// Input builds a rule input for the file at p.
func (f Files) Input(p string, opts map[string]any) *lint.Input {
	return lint.NewInput(lint.NewEntry(p, lint.KindFile), f, opts)
}

// Check evaluates a rule against the file at p, honouring the rule's
// AppliesTo predicate. It returns nil when the rule does not apply.
func (f Files) Check(rule lint.RuleDef, p string, opts map[string]any) ([]lint.Violation, error) {
	entry := lint.NewEntry(p, lint.KindFile)
	if rule.AppliesTo != nil && !rule.AppliesTo(entry) {
		return nil, nil
	}
	return rule.Check(lint.NewInput(entry, f, opts))
}

// sortPaths orders paths so a directory ("a/") sorts right before its
// contents, which matches a depth-first lexicographic walk.
func sortPaths(paths []string) {
	key := func(p string) string {
		return strings.ReplaceAll(p, "/", "\x00")
	}
	slices.SortFunc(paths, func(a, b string) int {
		return strings.Compare(key(a), key(b))
	})
}
