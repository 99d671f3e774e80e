package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/nglint/internal/report"
)

// Error reports configuration that cannot be read or is invalid.
type Error struct {
	File string // Config file involved, if any
	Err  error
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration in %s: %v", e.File, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := report.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism must be >= 0, got %d", c.Parallelism))
	}
	if c.Watch && c.Format == string(report.FormatJSON) {
		errs = append(errs, errors.New("watch mode only supports text output"))
	}

	return errors.Join(errs...)
}
