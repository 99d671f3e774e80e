package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/leapstack-labs/nglint/internal/cli/config"
	"github.com/leapstack-labs/nglint/internal/cli/output"
	"github.com/leapstack-labs/nglint/internal/logging"
	"github.com/leapstack-labs/nglint/internal/report"
	"github.com/leapstack-labs/nglint/internal/watch"
	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/rules"
	"github.com/leapstack-labs/nglint/pkg/lint/scan"
	"github.com/leapstack-labs/nglint/pkg/lint/script"
)

// CommandContext holds what a lint run needs: the loaded configuration,
// the scanner over the project root and the engine with its rule set.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *zerolog.Logger
	Scanner *scan.Scanner
	Engine  *lint.Engine
}

// NewCommandContext builds the scanner and engine for cfg. The logger is
// taken from ctx.
//
// A root that cannot be scanned is reported as *scan.Error; a bad ignore
// pattern or a script that fails to load as *config.Error.
func NewCommandContext(ctx context.Context, fs afero.Fs, cfg *config.Config) (*CommandContext, error) {
	logger := logging.Get(ctx)

	scanner, err := scan.New(fs, cfg.Root, scan.WithIgnore(cfg.Ignore...))
	if err != nil {
		return nil, &config.Error{File: cfg.ConfigFile, Err: err}
	}
	if err := scanner.Validate(); err != nil {
		return nil, err
	}

	allRules := rules.Builtin()
	if len(cfg.Scripts) > 0 {
		loader := script.NewLoader(fs, script.WithPoolSize(cfg.Parallelism), script.WithLogger(*logger))
		scripted, err := loader.LoadAll(cfg.Scripts)
		if err != nil {
			file := cfg.ConfigFile
			var loadErr *script.LoadError
			if errors.As(err, &loadErr) {
				file = loadErr.File
			}
			return nil, &config.Error{File: file, Err: err}
		}
		allRules = append(allRules, scripted...)
	}

	lintCfg, unknown := cfg.LintConfig(allRules)
	for _, id := range unknown {
		logger.Warn().Str("rule", id).Msg("unknown rule in config")
	}

	logger.Debug().
		Str("root", scanner.Root()).
		Int("rules", len(allRules)).
		Strs("ignore", scanner.IgnorePatterns()).
		Msg("lint configured")

	return &CommandContext{
		Cfg:     cfg,
		Logger:  logger,
		Scanner: scanner,
		Engine:  lint.NewEngine(allRules, lintCfg, lint.WithParallelism(cfg.Parallelism)),
	}, nil
}

// Lint runs one pass over the tree and writes the report to w. The summary
// counts every violation, including those below the severity threshold.
// Nothing is written when the scan fails.
func (c *CommandContext) Lint(ctx context.Context, w io.Writer) (report.Summary, error) {
	start := time.Now()

	violations, err := c.Engine.Run(ctx, c.Scanner.Entries(ctx), c.Scanner)
	if err != nil {
		return report.Summary{}, err
	}
	summary := report.Summarize(violations)

	format, err := report.ParseFormat(c.Cfg.Format)
	if err != nil {
		return summary, &config.Error{File: c.Cfg.ConfigFile, Err: err}
	}
	rep := report.New(w, format, report.WithQuiet(c.Cfg.Quiet))
	if err := rep.Write(report.Filter(violations, c.Cfg.SeverityThreshold)); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}

	c.Logger.Debug().
		Int("errors", summary.Errors).
		Int("warnings", summary.Warnings).
		Int("info", summary.Info).
		Dur("elapsed", time.Since(start)).
		Msg("lint finished")
	return summary, nil
}

// Watch lints once, then again after every settled burst of file changes,
// until ctx is cancelled.
func (c *CommandContext) Watch(ctx context.Context, w io.Writer) error {
	if _, err := c.Lint(ctx, w); err != nil {
		return err
	}

	watcher, err := watch.New(c.Scanner.Root(),
		watch.WithSkip(c.Scanner.Ignored),
		watch.WithLogger(*c.Logger),
	)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	r := output.NewRenderer(w, io.Discard, output.ModeText)
	r.Println(r.Muted("Watching for changes. Press Ctrl+C to stop."))

	return watcher.Run(ctx, func(ctx context.Context) {
		c.Scanner.Reset()
		r.Println("")
		r.Println(r.Muted("Change detected, linting again..."))
		if _, err := c.Lint(ctx, w); err != nil && ctx.Err() == nil {
			c.Logger.Error().Err(err).Msg("lint failed")
		}
	})
}
