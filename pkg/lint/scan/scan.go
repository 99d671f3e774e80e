// Package scan walks a project tree and produces lint entries.
//
// The walk is lazy and deterministic: entries come out in lexicographic
// order within each directory, with a directory's descendants following it.
// Directories matching an ignore pattern are pruned along with everything
// beneath them.
package scan

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultIgnore lists build output and dependency folders skipped unless
// WithoutDefaultIgnore is given.
var DefaultIgnore = []string{
	"node_modules",
	"dist",
	"out-tsc",
	"coverage",
	"tmp",
	".angular",
	".git",
}

const defaultDirCacheSize = 512

// Error reports a project tree that cannot be scanned.
type Error struct {
	Root string
	Path string // Offending path; equals Root for root-level failures
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" || e.Path == e.Root {
		return fmt.Sprintf("cannot scan %s: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("cannot scan %s: %s: %v", e.Root, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrNotDirectory is wrapped by Error when the root is a regular file.
var ErrNotDirectory = errors.New("not a directory")

var errStopped = errors.New("scan stopped")

// Scanner walks one project root.
type Scanner struct {
	fs       afero.Fs
	root     string
	ignore   []string
	defaults bool
	dirs     *lru.Cache[string, map[string]struct{}]
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithIgnore adds ignore globs. A glob matches an entry when it matches
// either the entry's base name or its root-relative path. Globs are cleaned,
// so "./src/generated/" and "src/generated" are the same pattern.
func WithIgnore(globs ...string) Option {
	return func(s *Scanner) {
		for _, g := range globs {
			if g = normalizeGlob(g); g != "" {
				s.ignore = append(s.ignore, g)
			}
		}
	}
}

func normalizeGlob(g string) string {
	g = strings.TrimSpace(filepath.ToSlash(g))
	if g == "" {
		return ""
	}
	g = path.Clean(g)
	if g == "." {
		return ""
	}
	return g
}

// checkGlob rejects patterns that can never match a root-relative path.
func checkGlob(g string) error {
	switch {
	case path.IsAbs(g) || filepath.IsAbs(filepath.FromSlash(g)):
		return fmt.Errorf("ignore pattern %q must be relative to the project root", g)
	case g == ".." || strings.HasPrefix(g, "../"):
		return fmt.Errorf("ignore pattern %q points outside the project root", g)
	case !doublestar.ValidatePattern(g):
		return fmt.Errorf("invalid ignore pattern %q", g)
	}
	return nil
}

// WithoutDefaultIgnore disables DefaultIgnore.
func WithoutDefaultIgnore() Option {
	return func(s *Scanner) { s.defaults = false }
}

// New creates a scanner for root on fs.
func New(fs afero.Fs, root string, opts ...Option) (*Scanner, error) {
	dirs, err := lru.New[string, map[string]struct{}](defaultDirCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory cache: %w", err)
	}

	s := &Scanner{
		fs:       fs,
		root:     filepath.Clean(root),
		defaults: true,
		dirs:     dirs,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.defaults {
		s.ignore = append(append([]string(nil), DefaultIgnore...), s.ignore...)
	}

	for _, g := range s.ignore {
		if err := checkGlob(g); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Root returns the cleaned root path.
func (s *Scanner) Root() string { return s.root }

// IgnorePatterns returns the active ignore globs.
func (s *Scanner) IgnorePatterns() []string {
	return append([]string(nil), s.ignore...)
}

// Validate checks that the root exists and is a directory.
func (s *Scanner) Validate() error {
	info, err := s.fs.Stat(s.root)
	if err != nil {
		return &Error{Root: s.root, Path: s.root, Err: err}
	}
	if !info.IsDir() {
		return &Error{Root: s.root, Path: s.root, Err: ErrNotDirectory}
	}
	return nil
}

// Entries returns the lazy entry sequence. The root itself is not yielded.
// A root that cannot be read is yielded once as a *Error and ends the
// sequence, as does context cancellation. Unreadable paths below the root
// are logged through the context logger and pruned.
func (s *Scanner) Entries(ctx context.Context) iter.Seq2[lint.Entry, error] {
	return func(yield func(lint.Entry, error) bool) {
		if err := s.Validate(); err != nil {
			yield(lint.Entry{}, err)
			return
		}

		err := afero.Walk(s.fs, s.root, func(p string, info os.FileInfo, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				if p == s.root {
					return &Error{Root: s.root, Path: p, Err: err}
				}
				zerolog.Ctx(ctx).Warn().Err(err).Str("path", p).Msg("skipping unreadable path")
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			rel, err := filepath.Rel(s.root, p)
			if err != nil {
				return &Error{Root: s.root, Path: p, Err: err}
			}
			if rel == "." {
				return nil
			}
			rel = filepath.ToSlash(rel)

			if s.Ignored(rel) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			kind := lint.KindFile
			if info.IsDir() {
				kind = lint.KindDirectory
			}
			if !yield(lint.NewEntry(rel, kind), nil) {
				return errStopped
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopped) {
			yield(lint.Entry{}, err)
		}
	}
}

// Ignored reports whether a root-relative path matches an ignore glob.
func (s *Scanner) Ignored(rel string) bool {
	base := path.Base(rel)
	for _, g := range s.ignore {
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

// ReadFile implements lint.FileSource.
func (s *Scanner) ReadFile(rel string) ([]byte, error) {
	return afero.ReadFile(s.fs, s.abs(rel))
}

// Exists implements lint.FileSource. Directory listings are cached, so
// repeated sibling lookups in one directory hit the filesystem once.
func (s *Scanner) Exists(rel string) bool {
	rel = path.Clean(filepath.ToSlash(rel))
	if rel == "." || rel == "" {
		return true
	}
	names, ok := s.listing(path.Dir(rel))
	if !ok {
		return false
	}
	_, found := names[path.Base(rel)]
	return found
}

func (s *Scanner) listing(dir string) (map[string]struct{}, bool) {
	if names, ok := s.dirs.Get(dir); ok {
		return names, true
	}
	infos, err := afero.ReadDir(s.fs, s.abs(dir))
	if err != nil {
		return nil, false
	}
	names := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		names[info.Name()] = struct{}{}
	}
	s.dirs.Add(dir, names)
	return names, true
}

// Reset drops cached directory listings, e.g. between watch-mode runs.
func (s *Scanner) Reset() {
	s.dirs.Purge()
}

func (s *Scanner) abs(rel string) string {
	if rel == "." || rel == "" {
		return s.root
	}
	return filepath.Join(s.root, filepath.FromSlash(rel))
}
