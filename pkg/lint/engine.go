package lint

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RuleFailureMessage is the message of the synthetic violation reported when
// a rule's check fails unexpectedly.
const RuleFailureMessage = "rule execution failed"

// FileSource gives rules read-only access to the scanned tree.
// Paths are root-relative and forward-slash separated.
type FileSource interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
}

// Input is what a rule's Check receives for one entry.
type Input struct {
	Entry   Entry
	Options map[string]any

	ctx     context.Context
	files   FileSource
	content *lazyContent
}

// NewInput creates an Input for a single entry. The engine builds these
// itself; NewInput exists for callers that evaluate a rule directly.
func NewInput(entry Entry, files FileSource, opts map[string]any) *Input {
	return &Input{
		Entry:   entry,
		Options: opts,
		files:   files,
		content: &lazyContent{files: files, path: entry.Path},
	}
}

// Context returns the context of the run the check belongs to. Long-running
// checks should stop when it is done.
func (in *Input) Context() context.Context {
	if in.ctx == nil {
		return context.Background()
	}
	return in.ctx
}

// WithContext returns a shallow copy of in carrying ctx.
func (in *Input) WithContext(ctx context.Context) *Input {
	out := *in
	out.ctx = ctx
	return &out
}

// Content returns the entry's file contents. The file is read at most once
// per entry no matter how many rules ask for it.
func (in *Input) Content() ([]byte, error) {
	if !in.Entry.IsFile() {
		return nil, fmt.Errorf("%s is a directory", in.Entry.Path)
	}
	return in.content.get()
}

// Exists reports whether a root-relative path exists in the scanned tree.
func (in *Input) Exists(rel string) bool {
	if in.files == nil {
		return false
	}
	return in.files.Exists(rel)
}

type lazyContent struct {
	once  sync.Once
	files FileSource
	path  string
	data  []byte
	err   error
}

func (c *lazyContent) get() ([]byte, error) {
	c.once.Do(func() {
		if c.files == nil {
			c.err = fmt.Errorf("no file source for %s", c.path)
			return
		}
		c.data, c.err = c.files.ReadFile(c.path)
	})
	return c.data, c.err
}

// Engine applies a fixed rule set to scanned entries.
type Engine struct {
	rules       []RuleDef
	config      *Config
	parallelism int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithParallelism bounds how many entries are checked concurrently.
// Values below 1 select GOMAXPROCS.
func WithParallelism(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

// NewEngine creates an engine over a copy of the given rule set.
func NewEngine(rules []RuleDef, config *Config, opts ...EngineOption) *Engine {
	if config == nil {
		config = NewConfig()
	}
	e := &Engine{
		rules:       append([]RuleDef(nil), rules...),
		config:      config,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the engine's rule set in registration order.
func (e *Engine) Rules() []RuleDef {
	return append([]RuleDef(nil), e.rules...)
}

// activeRule is a rule resolved against the configuration.
type activeRule struct {
	def      RuleDef
	severity Severity
	options  map[string]any
}

func (e *Engine) activeRules() []activeRule {
	active := make([]activeRule, 0, len(e.rules))
	for _, r := range e.rules {
		if !e.config.IsEnabled(r) || r.Check == nil {
			continue
		}
		active = append(active, activeRule{
			def:      r,
			severity: e.config.GetSeverity(r.ID, r.Severity),
			options:  e.config.GetRuleOptions(r.ID),
		})
	}
	return active
}

// Run checks every entry and returns the violations ordered by entry, then
// by rule registration order. An error yielded by the entry sequence aborts
// the run and is returned unchanged.
func (e *Engine) Run(ctx context.Context, entries iter.Seq2[Entry, error], files FileSource) ([]Violation, error) {
	active := e.activeRules()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	var (
		slots   []*[]Violation
		scanErr error
	)
	for entry, err := range entries {
		if err != nil {
			scanErr = err
			break
		}
		if gctx.Err() != nil {
			break
		}
		slot := new([]Violation)
		slots = append(slots, slot)
		g.Go(func() error {
			*slot = e.checkEntry(gctx, entry, active, files)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if scanErr != nil {
		return nil, scanErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var violations []Violation
	for _, slot := range slots {
		violations = append(violations, *slot...)
	}
	return violations, nil
}

// CheckEntry runs the enabled rules against a single entry.
func (e *Engine) CheckEntry(ctx context.Context, entry Entry, files FileSource) []Violation {
	return e.checkEntry(ctx, entry, e.activeRules(), files)
}

func (e *Engine) checkEntry(ctx context.Context, entry Entry, rules []activeRule, files FileSource) []Violation {
	if ctx.Err() != nil {
		return nil
	}
	content := &lazyContent{files: files, path: entry.Path}

	var violations []Violation
	for _, r := range rules {
		in := &Input{Entry: entry, Options: r.options, ctx: ctx, files: files, content: content}
		violations = append(violations, runRule(ctx, r, in)...)
	}
	return violations
}

// runRule evaluates a rule's predicate and, when it applies, its check.
// Errors and panics from either become one synthetic error-severity
// violation.
func runRule(ctx context.Context, r activeRule, in *Input) (violations []Violation) {
	logger := zerolog.Ctx(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().
				Str("rule", r.def.ID).
				Str("path", in.Entry.Path).
				Interface("panic", rec).
				Msg("rule panicked")
			violations = []Violation{ruleFailure(r.def.ID, in.Entry.Path)}
		}
	}()

	applies := r.def.AppliesTo
	if applies == nil {
		applies = Files
	}
	if !applies(in.Entry) {
		return nil
	}

	found, err := r.def.Check(in)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("rule", r.def.ID).
			Str("path", in.Entry.Path).
			Msg("rule check failed")
		return []Violation{ruleFailure(r.def.ID, in.Entry.Path)}
	}

	for i := range found {
		found[i].RuleID = r.def.ID
		found[i].Severity = r.severity
		if found[i].Path == "" {
			found[i].Path = in.Entry.Path
		}
	}
	return found
}

func ruleFailure(ruleID, path string) Violation {
	return Violation{
		RuleID:   ruleID,
		Path:     path,
		Severity: SeverityError,
		Message:  RuleFailureMessage,
	}
}

// Slice adapts an in-memory entry list to the sequence Run consumes.
func Slice(entries []Entry) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for _, e := range entries {
			if !yield(e, nil) {
				return
			}
		}
	}
}
