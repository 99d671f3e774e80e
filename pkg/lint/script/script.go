// Package script loads lint rules written in Starlark.
//
// A script file declares a rule through top-level globals:
//
//	id = "no-console-log"
//	severity = "warning"          # optional, defaults to warning
//	description = "No console.log in application code"
//	extensions = [".ts"]           # optional, defaults to every file
//
//	def check(path, content):
//	    if "console.log(" in content:
//	        return ["console.log left in " + path]
//	    return []
//
// check may declare a third parameter to receive the rule's configured
// options as a dict. It returns None, a message string, or a list whose
// items are message strings or dicts with a "message" key and an optional
// "path" key.
package script

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/leapstack-labs/nglint/pkg/lint"
)

// Group is the group assigned to every script rule.
const Group = "script"

// LoadError represents an error loading a rule script.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Loader turns script files into rule definitions. Rules loaded by the same
// Loader share one thread pool.
type Loader struct {
	fs     afero.Fs
	pool   *ThreadPool
	logger zerolog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	poolSize int
	logger   zerolog.Logger
}

// WithPoolSize sets how many idle Starlark threads are kept for reuse.
func WithPoolSize(n int) LoaderOption {
	return func(c *loaderConfig) { c.poolSize = n }
}

// WithLogger sets the logger receiving script print() output.
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(c *loaderConfig) { c.logger = logger }
}

// NewLoader creates a loader reading scripts from fs.
func NewLoader(fs afero.Fs, opts ...LoaderOption) *Loader {
	cfg := loaderConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{
		fs:     fs,
		pool:   NewThreadPool(cfg.poolSize, cfg.logger),
		logger: cfg.logger,
	}
}

// LoadAll loads every script in order. Duplicate ids are rejected.
func (l *Loader) LoadAll(paths []string) ([]lint.RuleDef, error) {
	rules := make([]lint.RuleDef, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		rule, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[rule.ID]; dup {
			return nil, &LoadError{File: p, Message: fmt.Sprintf("rule id %q already defined by %s", rule.ID, prev)}
		}
		seen[rule.ID] = p
		rules = append(rules, rule)
	}
	return rules, nil
}

// Load executes a script file and builds its rule definition.
func (l *Loader) Load(path string) (lint.RuleDef, error) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return lint.RuleDef{}, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}
	}

	thread := l.pool.Get("load:" + filepath.Base(path))
	defer l.pool.Put(thread)

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, path, content, nil)
	if err != nil {
		return lint.RuleDef{}, &LoadError{File: path, Message: fmt.Sprintf("Starlark execution error: %v", err)}
	}

	r, err := l.fromGlobals(path, globals)
	if err != nil {
		return lint.RuleDef{}, &LoadError{File: path, Message: err.Error()}
	}

	l.logger.Debug().Str("rule", r.id).Str("file", path).Msg("loaded script rule")
	return r.def(), nil
}

type scriptRule struct {
	id          string
	file        string
	description string
	severity    lint.Severity
	extensions  []string
	fn          *starlark.Function
	wantsOpts   bool
	pool        *ThreadPool
}

func (l *Loader) fromGlobals(path string, globals starlark.StringDict) (*scriptRule, error) {
	r := &scriptRule{file: path, severity: lint.SeverityWarning, pool: l.pool}

	id, ok := stringGlobal(globals, "id")
	if !ok || strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing string global %q", "id")
	}
	r.id = id
	r.description, _ = stringGlobal(globals, "description")

	if s, ok := stringGlobal(globals, "severity"); ok {
		sev, valid := lint.ParseSeverity(s)
		if !valid {
			return nil, fmt.Errorf("invalid severity %q", s)
		}
		r.severity = sev
	}

	if v, ok := globals["extensions"]; ok {
		raw, err := ToGo(v)
		if err != nil {
			return nil, fmt.Errorf("extensions: %w", err)
		}
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("extensions must be a list, got %s", v.Type())
		}
		for _, item := range list {
			ext, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("extensions must contain strings")
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			r.extensions = append(r.extensions, strings.ToLower(ext))
		}
	}

	fn, ok := globals["check"].(*starlark.Function)
	if !ok {
		return nil, fmt.Errorf("missing function %q", "check")
	}
	switch fn.NumParams() {
	case 2:
	case 3:
		r.wantsOpts = true
	default:
		return nil, fmt.Errorf("check must take (path, content) or (path, content, options), got %d parameters", fn.NumParams())
	}
	r.fn = fn

	return r, nil
}

func stringGlobal(globals starlark.StringDict, name string) (string, bool) {
	s, ok := globals[name].(starlark.String)
	return string(s), ok
}

func (r *scriptRule) def() lint.RuleDef {
	var applies lint.Predicate = lint.Files
	if len(r.extensions) > 0 {
		applies = lint.HasExt(r.extensions...)
	}
	return lint.RuleDef{
		ID:          r.id,
		Name:        r.id,
		Group:       Group,
		Description: r.description,
		Severity:    r.severity,
		AppliesTo:   applies,
		Check:       r.check,
		Rationale:   "Defined in " + r.file,
	}
}

func (r *scriptRule) check(in *lint.Input) ([]lint.Violation, error) {
	content, err := in.Content()
	if err != nil {
		return nil, err
	}

	args := starlark.Tuple{starlark.String(in.Entry.Path), starlark.String(content)}
	if r.wantsOpts {
		opts, err := GoToStarlark(in.Options)
		if err != nil {
			return nil, fmt.Errorf("options: %w", err)
		}
		args = append(args, opts)
	}

	ctx := in.Context()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	thread := r.pool.Get(r.id + ":" + in.Entry.Path)
	stop := context.AfterFunc(ctx, func() { thread.Cancel(ctx.Err().Error()) })
	result, err := starlark.Call(thread, r.fn, args, nil)

	// A cancelled thread stays cancelled, so it cannot go back to the pool.
	if stop() {
		r.pool.Put(thread)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", r.file, ctxErr)
		}
		return nil, fmt.Errorf("%s: %w", r.file, err)
	}
	return r.violations(result)
}

func (r *scriptRule) violations(result starlark.Value) ([]lint.Violation, error) {
	raw, err := ToGo(result)
	if err != nil {
		return nil, fmt.Errorf("%s: check result: %w", r.file, err)
	}

	var items []any
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		items = []any{v}
	case []any:
		items = v
	default:
		return nil, fmt.Errorf("%s: check must return a list of messages, got %s", r.file, result.Type())
	}

	violations := make([]lint.Violation, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			violations = append(violations, lint.Violation{Message: v})
		case map[string]any:
			msg, ok := v["message"].(string)
			if !ok {
				return nil, fmt.Errorf("%s: result %d has no message", r.file, i)
			}
			p, _ := v["path"].(string)
			violations = append(violations, lint.Violation{Path: p, Message: msg})
		default:
			return nil, fmt.Errorf("%s: result %d must be a string or dict", r.file, i)
		}
	}
	return violations, nil
}
