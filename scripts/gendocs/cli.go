package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/nglint/internal/cli"
	"github.com/leapstack-labs/nglint/internal/cli/config"
)

// exitCodes documents cli.ExitCode.
var exitCodes = [][]string{
	{InlineCode(fmt.Sprint(cli.ExitOK)), "No error-severity violations"},
	{InlineCode(fmt.Sprint(cli.ExitViolations)), "At least one error-severity violation"},
	{InlineCode(fmt.Sprint(cli.ExitFailure)), "Invalid configuration, unreadable root or bad usage"},
}

// generateCLIDocs writes index.md for the lint command and one page per
// subcommand.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	if err := writePage(filepath.Join(outDir, "index.md"), lintPage(root)); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, cmd := range documented(root) {
		if err := writePage(filepath.Join(outDir, cmd.Name()+".md"), subcommandPage(cmd)); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}
	return nil
}

func writePage(path string, w *MarkdownWriter) error {
	if err := os.WriteFile(path, w.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func documented(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// lintPage documents the root command. Its flags double as configuration
// keys, so the options table lists the key and environment variable of each.
func lintPage(root *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for nglint")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(cleanDescription(root.Short))

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/nglint/cmd/nglint@latest")

	w.Header(2, "Usage")
	w.CodeBlock("bash", "nglint <root-path> [options]\nnglint <command> [options]")

	w.Header(2, "Options")
	w.Paragraph(fmt.Sprintf("Every option except %s can also be set in %s or through the environment. Flags win over the environment, which wins over the file.",
		InlineCode("--config"), InlineCode(config.FileNames[0])))
	lintFlagsTable(w, root.LocalFlags())

	w.Header(2, "Configuration File")
	w.Paragraph(fmt.Sprintf("Without %s, the first of %s found in the project root is used.",
		InlineCode("--config"), strings.Join(inlineAll(config.FileNames), ", ")))
	w.Paragraph(fmt.Sprintf("Run %s to write one listing every built-in rule.", InlineCode("nglint init")))

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documented(root) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, exitCodes)

	if root.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(root.Example))
	}
	return w
}

func lintFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		key, env := "", ""
		if k, ok := config.FlagKey(f.Name); ok {
			key = InlineCode(k)
			env = InlineCode(config.EnvPrefix + strings.ToUpper(k))
		}
		rows = append(rows, []string{flagName(f), key, env, flagDefault(f), cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Config key", "Environment", "Default", "Description"}, rows)
}

// subcommandPage documents an auxiliary command. These never lint, so they
// share only the version and help flags with the root.
func subcommandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter("nglint "+cmd.Name(), cleanDescription(cmd.Short))
	w.GeneratedMarker()

	w.Header(1, "nglint "+cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(strings.TrimSpace(cmd.Long))
	} else {
		w.Paragraph(cleanDescription(cmd.Short))
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if len(cmd.ValidArgs) > 0 {
		w.Header(2, "Arguments")
		w.BulletList(inlineAll(cmd.ValidArgs))
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		var rows [][]string
		cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if !f.Hidden {
				rows = append(rows, []string{flagName(f), flagDefault(f), cleanDescription(f.Usage)})
			}
		})
		w.Table([]string{"Flag", "Default", "Description"}, rows)
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w
}

func flagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return InlineCode("-"+f.Shorthand) + ", " + InlineCode("--"+f.Name)
	}
	return InlineCode("--" + f.Name)
}

func flagDefault(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "[]", "false", "0":
		return ""
	}
	return InlineCode(f.DefValue)
}

func inlineAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = InlineCode(s)
	}
	return out
}

// dedent strips the two-space indent cobra examples are written with.
func dedent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "  ")
	}
	return strings.Join(lines, "\n")
}
