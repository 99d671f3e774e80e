package config

import (
	"bytes"
	"fmt"

	"github.com/leapstack-labs/nglint/pkg/lint"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# nglint configuration
# Precedence: flags > NGLINT_* environment variables > this file > defaults.
`

type fileConfig struct {
	Format            string              `yaml:"format"`
	Ignore            []string            `yaml:"ignore"`
	Parallelism       int                 `yaml:"parallelism"`
	SeverityThreshold string              `yaml:"severity_threshold"`
	Scripts           []string            `yaml:"scripts"`
	Rules             map[string]fileRule `yaml:"rules"`
}

type fileRule struct {
	Enabled  bool   `yaml:"enabled"`
	Severity string `yaml:"severity"`
}

// DefaultFile renders a config file listing every rule at its defaults.
func DefaultFile(rules []lint.RuleDef) ([]byte, error) {
	fc := fileConfig{
		Format:            DefaultFormat,
		Ignore:            []string{},
		SeverityThreshold: DefaultSeverityThreshold,
		Scripts:           []string{},
		Rules:             make(map[string]fileRule, len(rules)),
	}
	for _, r := range rules {
		fc.Rules[r.ID] = fileRule{
			Enabled:  !r.DefaultDisabled,
			Severity: r.Severity.String(),
		}
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
