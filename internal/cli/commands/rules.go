package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/nglint/internal/cli/output"
	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/rules"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show descriptions in the listing
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List the built-in lint rules with their documentation.

Rules are organized by group (naming, structure, routing, markup, imports,
styles). Pass a rule id to see its full documentation.`,
		Example: `  # List all rules
  nglint rules

  # Show details for a specific rule
  nglint rules naming-suffix

  # List rules in the naming group
  nglint rules --group naming

  # Output as JSON
  nglint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(opts.Format)
			if err != nil {
				return err
			}
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			if len(args) > 0 {
				return showRule(r, args[0])
			}
			return listRules(r, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show rule descriptions")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	_ = cmd.RegisterFlagCompletionFunc("group", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return ruleGroups(ruleInfos()), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func ruleInfos() []lint.RuleInfo {
	builtin := rules.Builtin()
	infos := make([]lint.RuleInfo, len(builtin))
	for i, r := range builtin {
		infos[i] = r.Info()
	}
	return infos
}

// ruleGroups returns groups in first-seen order.
func ruleGroups(infos []lint.RuleInfo) []string {
	var groups []string
	seen := make(map[string]bool)
	for _, info := range infos {
		if !seen[info.Group] {
			seen[info.Group] = true
			groups = append(groups, info.Group)
		}
	}
	return groups
}

func listRules(r *output.Renderer, opts *RulesOptions) error {
	infos := ruleInfos()
	if opts.Group != "" {
		filtered := infos[:0]
		for _, info := range infos {
			if info.Group == opts.Group {
				filtered = append(filtered, info)
			}
		}
		infos = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, infos)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, infos, opts.Verbose)
	default:
		return listRulesText(r, infos, opts.Verbose)
	}
}

func showRule(r *output.Renderer, ruleID string) error {
	rule, ok := rules.Find(rules.Builtin(), ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := rule.Info()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, info)
	default:
		return showRuleText(r, info)
	}
}

var groupTitle = cases.Title(language.English)

func defaultLabel(info lint.RuleInfo) string {
	if info.DefaultEnabled {
		return "on"
	}
	return "off"
}

// listRulesText outputs one table per group.
func listRulesText(r *output.Renderer, infos []lint.RuleInfo, verbose bool) error {
	styles := r.Styles()

	r.Println(styles.Header.Render(fmt.Sprintf("Lint Rules (%d)", len(infos))))
	r.Println("")

	for _, group := range ruleGroups(infos) {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.SetTitle(groupTitle.String(group))

		header := table.Row{"ID", "Name", "Severity", "Default"}
		if verbose {
			header = append(header, "Description")
		}
		t.AppendHeader(header)

		for _, info := range infos {
			if info.Group != group {
				continue
			}
			row := table.Row{info.ID, info.Name, info.DefaultSeverity.String(), defaultLabel(info)}
			if verbose {
				row = append(row, info.Description)
			}
			t.AppendRow(row)
		}

		r.Println(t.Render())
		r.Println("")
	}

	r.Println(styles.Muted.Render("Use 'nglint rules <rule-id>' for detailed documentation"))
	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, infos []lint.RuleInfo, verbose bool) error {
	r.Println("# Lint Rules")
	r.Println("")

	for _, group := range ruleGroups(infos) {
		r.Println("## " + groupTitle.String(group))
		r.Println("")
		for _, info := range infos {
			if info.Group != group {
				continue
			}
			r.Printf("- **%s** - %s (`%s`, %s by default)\n", info.ID, info.Name, info.DefaultSeverity, defaultLabel(info))
			if verbose {
				r.Println("  " + info.Description)
			}
		}
		r.Println("")
	}
	return nil
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []lint.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

func listRulesJSON(r *output.Renderer, infos []lint.RuleInfo) error {
	if infos == nil {
		infos = []lint.RuleInfo{}
	}
	return r.JSON(RulesJSONOutput{Rules: infos, Count: len(infos)})
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, info lint.RuleInfo) error {
	styles := r.Styles()

	r.Println(styles.Header.Render(fmt.Sprintf("%s - %s", info.ID, info.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), info.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), severityStyle(styles, info.DefaultSeverity).Render(info.DefaultSeverity.String()))
	r.Printf("  %s: %s\n", styles.Bold.Render("Default"), defaultLabel(info))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		for _, line := range strings.Split(info.Rationale, "\n") {
			r.Println("  " + line)
		}
		r.Println("")
	}

	if info.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(info.BadExample, "\n") {
			r.Println(styles.Error.Render("  " + line))
		}
		r.Println("")
	}

	if info.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(info.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if len(info.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(info.ConfigKeys, ", "))
		r.Println("")
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, info lint.RuleInfo) error {
	r.Printf("# %s - %s\n\n", info.ID, info.Name)
	r.Printf("**Group:** %s | **Severity:** `%s` | **Default:** %s\n\n", info.Group, info.DefaultSeverity, defaultLabel(info))
	r.Println(info.Description)
	r.Println("")

	if info.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(info.Rationale)
		r.Println("")
	}

	if info.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```text")
		r.Println(info.BadExample)
		r.Println("```")
		r.Println("")
	}

	if info.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```text")
		r.Println(info.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if len(info.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(info.ConfigKeys, "`, `"))
		r.Println("")
	}

	return nil
}

func severityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	default:
		return styles.Info
	}
}
