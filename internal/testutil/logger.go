// Package testutil provides test utilities for structured logging.
package testutil

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

// Context returns a background context carrying a test logger.
func Context(t testing.TB) context.Context {
	t.Helper()
	logger := NewTestLogger(t)
	return logger.WithContext(context.Background())
}
