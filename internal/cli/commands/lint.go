package commands

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/nglint/internal/cli/config"
	"github.com/leapstack-labs/nglint/internal/cli/output"
	"github.com/leapstack-labs/nglint/internal/logging"
)

// ErrViolations is returned when a run found Error-severity violations.
var ErrViolations = errors.New("error-severity violations found")

// LintOptions holds options for the lint command that are not part of the
// layered configuration.
type LintOptions struct {
	ConfigFile string // Explicit config file path
}

// NewLintCommand creates the lint command. It serves as the root command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "nglint <root-path>",
		Short: "Check an Angular project against its style guide conventions",
		Long: `Walk an Angular project tree and report files that break the
project's conventions: file naming, folder responsibilities, route guards,
data-test attributes on interactive elements and import ordering.

Configuration is read from nglint.yaml in the project root (or --config),
NGLINT_* environment variables and flags, in increasing precedence.

Exit codes:
  0  no error-severity violations
  1  at least one error-severity violation
  2  the run could not start (bad root, invalid config, bad flags)`,
		Example: `  # Lint the project in the current directory
  nglint .

  # Machine-readable output
  nglint ./web --format json

  # Only show warnings and errors, skip generated code
  nglint . --severity-threshold warning --ignore "**/generated/**"

  # Re-lint on every change
  nglint . --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigFile, "config", "c", "", "Config file (default: <root>/nglint.yaml)")
	flags.StringP("format", "f", config.DefaultFormat, "Output format: text, json")
	flags.StringSlice("ignore", nil, "Glob patterns to skip, in addition to node_modules, dist and build output")
	flags.StringSlice("disable", nil, "Rule IDs to disable")
	flags.String("severity-threshold", config.DefaultSeverityThreshold, "Hide violations less severe than: error, warning, info")
	flags.Int("parallelism", 0, "Maximum concurrent checks (0 = GOMAXPROCS)")
	flags.BoolP("quiet", "q", false, "Print only the summary line")
	flags.BoolP("watch", "w", false, "Lint again whenever files change")
	flags.BoolP("verbose", "v", false, "Debug logging on stderr")
	flags.String("log-file", "", "Also write debug logs to this rotating file")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("severity-threshold", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, root string, opts *LintOptions) error {
	cfg, err := config.Load(root, opts.ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := logging.WarnLevel
	if cfg.Verbose {
		level = logging.DebugLevel
	}
	ctx, closeLog, err := logging.New(cmd.Context(), logging.Config{
		Console: cmd.ErrOrStderr(),
		NoColor: !output.IsTerminal(cmd.ErrOrStderr()),
		Level:   level,
		File:    cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if cfg.ConfigFile != "" {
		logging.Get(ctx).Debug().Str("file", cfg.ConfigFile).Msg("using config file")
	}

	cmdCtx, err := NewCommandContext(ctx, afero.NewOsFs(), cfg)
	if err != nil {
		return err
	}

	if cfg.Watch {
		return cmdCtx.Watch(ctx, cmd.OutOrStdout())
	}

	summary, err := cmdCtx.Lint(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if summary.ExitCode() != 0 {
		return ErrViolations
	}
	return nil
}
