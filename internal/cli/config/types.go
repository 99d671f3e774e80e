// Package config provides configuration management for the nglint CLI.
//
// Configuration is layered with koanf. Precedence, highest first:
// flags, NGLINT_* environment variables, the config file, defaults.
package config

import (
	"github.com/leapstack-labs/nglint/pkg/lint"
)

// Config file names searched in the project root, in order.
var FileNames = []string{"nglint.yaml", "nglint.yml", ".nglint.yaml"}

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "NGLINT_"

// Defaults.
const (
	DefaultFormat            = "text"
	DefaultSeverityThreshold = "info"
)

// Config holds all CLI configuration options.
type Config struct {
	Format            string                `koanf:"format"`
	Ignore            []string              `koanf:"ignore"`
	Parallelism       int                   `koanf:"parallelism"`
	SeverityThreshold lint.Severity         `koanf:"severity_threshold"`
	LogFile           string                `koanf:"log_file"`
	Verbose           bool                  `koanf:"verbose"`
	Quiet             bool                  `koanf:"quiet"`
	Watch             bool                  `koanf:"watch"`
	Disable           []string              `koanf:"disable"`
	Scripts           []string              `koanf:"scripts"`
	Rules             map[string]RuleConfig `koanf:"rules"`

	// Set by Load, not read from sources.
	Root       string `koanf:"-"`
	ConfigFile string `koanf:"-"`
}

// RuleConfig configures one rule. Unset fields keep the rule's defaults.
type RuleConfig struct {
	Enabled  *bool          `koanf:"enabled"`
	Severity *lint.Severity `koanf:"severity"`
	Options  map[string]any `koanf:"options"`
}

// LintConfig converts the rule settings into an engine configuration.
// It also returns the configured rule ids that match none of rules, sorted.
func (c *Config) LintConfig(rules []lint.RuleDef) (*lint.Config, []string) {
	lintCfg := lint.NewConfig()

	for id, rc := range c.Rules {
		if rc.Enabled != nil {
			if *rc.Enabled {
				lintCfg.Enable(id)
			} else {
				lintCfg.Disable(id)
			}
		}
		if rc.Severity != nil {
			lintCfg.SetSeverity(id, *rc.Severity)
		}
		if len(rc.Options) > 0 {
			lintCfg.SetRuleOptions(id, rc.Options)
		}
	}

	// --disable wins over the file.
	for _, id := range c.Disable {
		lintCfg.Disable(id)
	}

	return lintCfg, lintCfg.UnknownRules(rules)
}
