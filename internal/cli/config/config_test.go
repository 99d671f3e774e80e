package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("format", DefaultFormat, "")
	flags.StringSlice("ignore", nil, "")
	flags.StringSlice("disable", nil, "")
	flags.String("severity-threshold", DefaultSeverityThreshold, "")
	flags.Int("parallelism", 0, "")
	flags.Bool("quiet", false, "")
	return flags
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg, err := Load(root, "", newFlags())
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, lint.SeverityInfo, cfg.SeverityThreshold)
	assert.Equal(t, 0, cfg.Parallelism)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, root, cfg.Root)
}

func TestLoad_DiscoversConfigFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{name: "nglint.yaml", file: "nglint.yaml"},
		{name: "nglint.yml", file: "nglint.yml"},
		{name: "hidden", file: ".nglint.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			p := writeFile(t, root, tt.file, "format: json\n")

			cfg, err := Load(root, "", nil)
			require.NoError(t, err)
			assert.Equal(t, "json", cfg.Format)
			assert.Equal(t, p, cfg.ConfigFile)
		})
	}
}

func TestLoad_FileContents(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "nglint.yaml", `
format: json
ignore: ["**/generated/**"]
parallelism: 4
severity_threshold: warning
scripts: ["lint/no-any.star"]
rules:
  naming-suffix:
    enabled: false
  file-kebab-case:
    severity: error
  scss-per-component:
    enabled: true
    options:
      style_extensions: [".scss", ".css"]
`)

	cfg, err := Load(root, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"**/generated/**"}, cfg.Ignore)
	assert.Equal(t, 4, cfg.Parallelism)
	assert.Equal(t, lint.SeverityWarning, cfg.SeverityThreshold)
	assert.Equal(t, []string{filepath.Join(root, "lint/no-any.star")}, cfg.Scripts)

	require.Contains(t, cfg.Rules, "naming-suffix")
	require.NotNil(t, cfg.Rules["naming-suffix"].Enabled)
	assert.False(t, *cfg.Rules["naming-suffix"].Enabled)
	assert.Nil(t, cfg.Rules["naming-suffix"].Severity)

	require.NotNil(t, cfg.Rules["file-kebab-case"].Severity)
	assert.Equal(t, lint.SeverityError, *cfg.Rules["file-kebab-case"].Severity)

	scss := cfg.Rules["scss-per-component"]
	assert.Equal(t, []any{".scss", ".css"}, scss.Options["style_extensions"])
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "nglint.yaml", "format: text\n")
	other := writeFile(t, t.TempDir(), "custom.yaml", "format: json\n")

	cfg, err := Load(root, other, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, other, cfg.ConfigFile)
}

func TestLoad_Precedence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "nglint.yaml", "format: text\nseverity_threshold: info\nparallelism: 2\n")

	t.Setenv("NGLINT_FORMAT", "json")
	t.Setenv("NGLINT_SEVERITY_THRESHOLD", "warning")
	t.Setenv("NGLINT_IGNORE", "a/**,b/**")

	t.Run("env overrides file", func(t *testing.T) {
		cfg, err := Load(root, "", newFlags())
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, lint.SeverityWarning, cfg.SeverityThreshold)
		assert.Equal(t, []string{"a/**", "b/**"}, cfg.Ignore)
		assert.Equal(t, 2, cfg.Parallelism)
	})

	t.Run("flags override env", func(t *testing.T) {
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--format", "text", "--severity-threshold", "error"}))

		cfg, err := Load(root, "", flags)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, lint.SeverityError, cfg.SeverityThreshold)
	})

	t.Run("unchanged flags do not override", func(t *testing.T) {
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--parallelism", "8"}))

		cfg, err := Load(root, "", flags)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, 8, cfg.Parallelism)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{
			name:      "unparseable yaml",
			content:   "format: [text\n",
			errSubstr: "error reading config file",
		},
		{
			name:      "invalid rule severity",
			content:   "rules:\n  naming-suffix:\n    severity: fatal\n",
			errSubstr: "invalid severity",
		},
		{
			name:      "invalid threshold",
			content:   "severity_threshold: loud\n",
			errSubstr: "invalid severity",
		},
		{
			name:      "invalid format",
			content:   "format: xml\n",
			errSubstr: "invalid format",
		},
		{
			name:      "negative parallelism",
			content:   "parallelism: -1\n",
			errSubstr: "parallelism must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			p := writeFile(t, root, "nglint.yaml", tt.content)

			_, err := Load(root, "", nil)
			require.Error(t, err)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, p, cfgErr.File)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"), nil)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
}

func TestConfig_LintConfig(t *testing.T) {
	t.Parallel()

	on, off := true, false
	warn := lint.SeverityWarning
	cfg := &Config{
		Rules: map[string]RuleConfig{
			"naming-suffix":      {Severity: &warn},
			"scss-per-component": {Enabled: &on, Options: map[string]any{"style_extensions": []any{".css"}}},
			"page-naming":        {Enabled: &off},
			"nmaing-suffix":      {Enabled: &on},
		},
		Disable: []string{"file-kebab-case", "data-test-atribute"},
	}
	rules := []lint.RuleDef{
		{ID: "naming-suffix", Severity: lint.SeverityError},
		{ID: "page-naming", Severity: lint.SeverityError},
		{ID: "file-kebab-case", Severity: lint.SeverityWarning},
		{ID: "scss-per-component", Severity: lint.SeverityInfo, DefaultDisabled: true},
	}

	lintCfg, unknown := cfg.LintConfig(rules)

	assert.Equal(t, []string{"data-test-atribute", "nmaing-suffix"}, unknown)
	assert.Equal(t, lint.SeverityWarning, lintCfg.GetSeverity("naming-suffix", lint.SeverityError))
	assert.True(t, lintCfg.IsEnabled(rules[0]))
	assert.False(t, lintCfg.IsEnabled(rules[1]))
	assert.False(t, lintCfg.IsEnabled(rules[2]))
	assert.True(t, lintCfg.IsEnabled(rules[3]))
	assert.Equal(t, []any{".css"}, lintCfg.GetRuleOptions("scss-per-component")["style_extensions"])
}

func TestDefaultFile_LoadsBack(t *testing.T) {
	t.Parallel()

	rules := []lint.RuleDef{
		{ID: "naming-suffix", Severity: lint.SeverityError},
		{ID: "scss-per-component", Severity: lint.SeverityInfo, DefaultDisabled: true},
	}
	data, err := DefaultFile(rules)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# nglint configuration")

	root := t.TempDir()
	writeFile(t, root, "nglint.yaml", string(data))

	cfg, err := Load(root, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	require.NotNil(t, cfg.Rules["scss-per-component"].Enabled)
	assert.False(t, *cfg.Rules["scss-per-component"].Enabled)
	require.NotNil(t, cfg.Rules["naming-suffix"].Severity)
	assert.Equal(t, lint.SeverityError, *cfg.Rules["naming-suffix"].Severity)

	_, unknown := cfg.LintConfig(rules)
	assert.Empty(t, unknown)
}

func TestFlagKey(t *testing.T) {
	tests := []struct {
		flag string
		key  string
		ok   bool
	}{
		{flag: "severity-threshold", key: "severity_threshold", ok: true},
		{flag: "log-file", key: "log_file", ok: true},
		{flag: "format", key: "format", ok: true},
		{flag: "config", ok: false},
		{flag: "help", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			key, ok := FlagKey(tt.flag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}
