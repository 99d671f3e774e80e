package rules_test

import (
	"context"
	"path"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/leapstack-labs/nglint/pkg/lint/rules"
	"github.com/leapstack-labs/nglint/pkg/lint/scan"
)

func TestBuiltin_RegistrationOrderAndUniqueIDs(t *testing.T) {
	builtin := rules.Builtin()

	ids := make([]string, len(builtin))
	seen := make(map[string]bool)
	for i, r := range builtin {
		ids[i] = r.ID
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.Group, r.ID)
		assert.NotEmpty(t, r.Description, r.ID)
		assert.NotNil(t, r.Check, r.ID)
		assert.NotNil(t, r.AppliesTo, r.ID)
	}
	assert.Equal(t, []string{
		"naming-suffix",
		"page-naming",
		"file-kebab-case",
		"folder-responsibility",
		"route-guard-present",
		"data-test-attribute",
		"import-order",
		"scss-per-component",
	}, ids)
}

func TestBuiltin_ReturnsFreshSlice(t *testing.T) {
	first := rules.Builtin()
	first[0].ID = "changed"
	assert.Equal(t, "naming-suffix", rules.Builtin()[0].ID)
}

func TestFind(t *testing.T) {
	r, ok := rules.Find(rules.Builtin(), "data-test-attribute")
	require.True(t, ok)
	assert.Equal(t, "markup", r.Group)

	_, ok = rules.Find(rules.Builtin(), "nope")
	assert.False(t, ok)
}

func lintTree(t *testing.T, files map[string]string, cfg *lint.Config) []lint.Violation {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o755))
	for p, content := range files {
		full := path.Join("/proj", p)
		require.NoError(t, fs.MkdirAll(path.Dir(full), 0o755))
		require.NoError(t, afero.WriteFile(fs, full, []byte(content), 0o644))
	}

	scanner, err := scan.New(fs, "/proj")
	require.NoError(t, err)

	got, err := lint.NewEngine(rules.Builtin(), cfg).Run(context.Background(), scanner.Entries(context.Background()), scanner)
	require.NoError(t, err)
	return got
}

func ruleIDs(vs []lint.Violation) []string {
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.RuleID
	}
	return ids
}

func TestBuiltin_WellNamedComponentIsClean(t *testing.T) {
	got := lintTree(t, map[string]string{
		"src/app/features/pay/components/pay-button/pay-button.component.ts":   "import { Component } from '@angular/core';\n",
		"src/app/features/pay/components/pay-button/pay-button.component.html": `<button data-test="send-btn">Send</button>`,
	}, nil)
	assert.Empty(t, got)
}

func TestBuiltin_MisnamedComponent(t *testing.T) {
	got := lintTree(t, map[string]string{
		"src/app/features/pay/components/pay-button/PayButton.ts": "",
	}, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, lint.Violation{
		RuleID:   "naming-suffix",
		Path:     "src/app/features/pay/components/pay-button/PayButton.ts",
		Severity: lint.SeverityWarning,
		Message:  "PayButton.ts is in a components directory but does not end with .component.ts",
	}, got[0])
	assert.Equal(t, []string{"naming-suffix", "file-kebab-case"}, ruleIDs(got))
}

func TestBuiltin_ButtonWithoutDataTest(t *testing.T) {
	got := lintTree(t, map[string]string{
		"src/app/send.component.html": "<button>Send</button>",
	}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "data-test-attribute", got[0].RuleID)
	assert.Equal(t, lint.SeverityWarning, got[0].Severity)
}

func TestBuiltin_ConfigControlsRules(t *testing.T) {
	files := map[string]string{
		"src/app/pay/pay-button.component.ts": "@Component({})",
		"src/app/pay/Bad.html":                "<input>",
	}

	assert.Equal(t, []string{"file-kebab-case", "data-test-attribute"}, ruleIDs(lintTree(t, files, nil)))

	cfg := lint.NewConfig().
		Disable("file-kebab-case").
		Enable("scss-per-component").
		SetSeverity("data-test-attribute", lint.SeverityError)
	got := lintTree(t, files, cfg)
	require.Len(t, got, 2)
	assert.Equal(t, "data-test-attribute", got[0].RuleID)
	assert.Equal(t, lint.SeverityError, got[0].Severity)
	assert.Equal(t, "scss-per-component", got[1].RuleID)
	assert.Equal(t, lint.SeverityInfo, got[1].Severity)
}
