package lint

import "strings"

// Rule options arrive from YAML, environment variables or Go callers, so the
// helpers below accept the loosely typed shapes each of those produces.

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetBoolOption extracts a bool option.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	return GetOption(opts, key, defaultVal)
}

// GetStringSliceOption extracts a string slice option.
// A comma-separated string is accepted as well (environment variables).
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	return toStringSlice(v, defaultVal)
}

// GetStringMapSliceOption extracts a map of string slices, e.g.
//
//	roles:
//	  components: [".component.ts"]
//	  models: [".model.ts", ".interface.ts"]
func GetStringMapSliceOption(opts map[string]any, key string, defaultVal map[string][]string) map[string][]string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch m := v.(type) {
	case map[string][]string:
		return m
	case map[string]any:
		result := make(map[string][]string, len(m))
		for k, item := range m {
			result[k] = toStringSlice(item, nil)
		}
		return result
	default:
		return defaultVal
	}
}

func toStringSlice(v any, defaultVal []string) []string {
	switch s := v.(type) {
	case []string:
		return s
	case string:
		var result []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
		return result
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return defaultVal
	}
}
