package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// findConfigFile finds the config file to use.
// Priority: explicit path > nglint.yaml > nglint.yml > .nglint.yaml in root
func findConfigFile(explicit, root string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		candidate := filepath.Join(root, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// FlagKey returns the configuration key a command-line flag sets: the flag
// name in snake_case. The config flag itself has no key.
func FlagKey(flag string) (string, bool) {
	if flag == "config" || flag == "help" || flag == "version" {
		return "", false
	}
	return strings.ReplaceAll(flag, "-", "_"), true
}

// Load loads configuration for the project at root from the config file,
// environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
// Every failure is returned as *Error.
func Load(root, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"format":             DefaultFormat,
		"parallelism":        0,
		"severity_threshold": DefaultSeverityThreshold,
	}, "."), nil); err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to load defaults: %w", err)}
	}

	// 2. Find and load config file
	configFileUsed := findConfigFile(cfgFile, root)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, &Error{File: configFileUsed, Err: fmt.Errorf("error reading config file: %w", err)}
		}
	}

	// 3. Load environment variables (NGLINT_ prefix)
	// Transform: NGLINT_SEVERITY_THRESHOLD -> severity_threshold
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to load env vars: %w", err)}
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			// Only load flags that were explicitly set
			key, ok := FlagKey(f.Name)
			if !f.Changed || !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, &Error{Err: fmt.Errorf("failed to load flags: %w", err)}
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, &Error{File: configFileUsed, Err: fmt.Errorf("unable to decode config: %w", err)}
	}

	cfg.Root = root
	cfg.ConfigFile = configFileUsed

	// Script paths in a config file are relative to the project root.
	for i, s := range cfg.Scripts {
		cfg.Scripts[i] = resolvePathRelativeTo(s, root)
	}

	if err := cfg.Validate(); err != nil {
		return nil, &Error{File: configFileUsed, Err: err}
	}
	return &cfg, nil
}
