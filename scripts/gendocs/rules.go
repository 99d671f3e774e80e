package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/rules"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"naming":    "Rules about file names and role suffixes.",
	"structure": "Rules about which kinds of files belong in which folders.",
	"routing":   "Rules about route definitions.",
	"markup":    "Rules about component templates.",
	"imports":   "Rules about import statement ordering.",
	"styles":    "Rules about component stylesheets.",
}

// generateRuleDocs writes the rule index and one page per group.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	infos := builtinInfos()
	groups := groupOrder(infos)

	if err := generateRulesIndex(outDir, infos, groups); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groups {
		if err := generateGroupPage(outDir, group, infos); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}
	return nil
}

func builtinInfos() []lint.RuleInfo {
	defs := rules.Builtin()
	infos := make([]lint.RuleInfo, len(defs))
	for i, r := range defs {
		infos[i] = r.Info()
	}
	return infos
}

// groupOrder returns groups in registration order.
func groupOrder(infos []lint.RuleInfo) []string {
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

func generateRulesIndex(outDir string, infos []lint.RuleInfo, groups []string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Built-in Angular convention rules")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	w.Paragraph(fmt.Sprintf("nglint ships %d built-in rules in %d groups.", len(infos), len(groups)))

	title := cases.Title(language.English)
	headers := []string{"Rule", "Group", "Severity", "Default"}
	var rows [][]string
	for _, info := range infos {
		link := fmt.Sprintf("[%s](/rules/%s#%s)", InlineCode(info.ID), info.Group, info.ID)
		rows = append(rows, []string{link, title.String(info.Group), InlineCode(info.DefaultSeverity.String()), enabledLabel(info.DefaultEnabled)})
	}
	w.Table(headers, rows)

	w.Paragraph(fmt.Sprintf("Rules are configured under %s in the configuration file.", InlineCode("rules")))

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

func generateGroupPage(outDir, group string, infos []lint.RuleInfo) error {
	w := NewMarkdownWriter()
	heading := cases.Title(language.English).String(group) + " Rules"

	w.Frontmatter(heading, groupDescriptions[group])
	w.GeneratedMarker()

	w.Header(1, heading)
	if desc, ok := groupDescriptions[group]; ok {
		w.Paragraph(desc)
	}

	for _, info := range infos {
		if info.Group == group {
			writeRuleDoc(w, info)
		}
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), w.Bytes(), 0600)
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, info lint.RuleInfo) {
	// ## naming-suffix - Role suffix naming {#naming-suffix}
	w.Line(fmt.Sprintf("## %s - %s {#%s}", info.ID, info.Name, info.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s | **Default:** %s", InlineCode(info.DefaultSeverity.String()), enabledLabel(info.DefaultEnabled)))
	w.Newline()

	w.Paragraph(cleanDescription(info.Description))

	if info.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(info.Rationale))
	}

	if info.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("text", info.BadExample)
	}

	if info.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("text", info.GoodExample)
	}

	if len(info.ConfigKeys) > 0 {
		w.Header(4, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following options: %s",
			InlineCode(strings.Join(info.ConfigKeys, ", "))))
	}

	w.Line("---")
	w.Newline()
}
