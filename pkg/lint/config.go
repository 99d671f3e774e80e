package lint

import (
	"maps"
	"slices"
)

// Config controls which rules are enabled, their severity and their options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// EnabledRules turns on rules that are disabled by default
	EnabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules at their defaults.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		EnabledRules:      make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// IsEnabled reports whether the rule should run.
// An explicit disable wins over an explicit enable.
func (c *Config) IsEnabled(rule RuleDef) bool {
	if c == nil {
		return !rule.DefaultDisabled
	}
	if c.DisabledRules[rule.ID] {
		return false
	}
	if rule.DefaultDisabled {
		return c.EnabledRules[rule.ID]
	}
	return true
}

// IsDisabled returns true if the rule has been explicitly disabled.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	delete(c.EnabledRules, ruleID)
	c.DisabledRules[ruleID] = true
	return c
}

// Enable enables a rule by ID, including rules that are off by default.
func (c *Config) Enable(ruleID string) *Config {
	delete(c.DisabledRules, ruleID)
	c.EnabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions replaces the options for a rule.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// UnknownRules returns the IDs referenced by the configuration that are not
// part of the given rule set, in sorted order.
func (c *Config) UnknownRules(rules []RuleDef) []string {
	if c == nil {
		return nil
	}
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r.ID] = true
	}
	seen := make(map[string]bool)
	collect := func(id string) {
		if !known[id] {
			seen[id] = true
		}
	}
	for id := range c.DisabledRules {
		collect(id)
	}
	for id := range c.EnabledRules {
		collect(id)
	}
	for id := range c.SeverityOverrides {
		collect(id)
	}
	for id := range c.RuleOptions {
		collect(id)
	}
	return slices.Sorted(maps.Keys(seen))
}
