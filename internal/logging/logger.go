// Package logging configures the zerolog logger carried on the context.
//
// Diagnostics go to stderr, never to stdout, so JSON reports stay parseable.
// When a log file is configured, every run also appends debug-level JSON
// lines to a rotating file.
package logging

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config defines the configuration for logger creation.
type Config struct {
	Console io.Writer     // Human-readable output, usually stderr; nil disables it
	NoColor bool          // Disable console colors
	Level   zerolog.Level // Console level
	File    string        // Rotating JSON log file; empty disables it
	RunID   string        // Defaults to a new UUID
}

// New attaches a logger to ctx. The returned close function flushes and
// closes the log file, if any.
func New(ctx context.Context, config Config) (context.Context, func() error, error) {
	runID := config.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	var (
		writers []io.Writer
		closer  = func() error { return nil }
		level   = config.Level
	)

	if config.Console != nil {
		console := zerolog.ConsoleWriter{Out: config.Console, NoColor: config.NoColor}
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: console},
			Level:  config.Level,
		})
	}

	if config.File != "" {
		file := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
		writers = append(writers, file)
		closer = file.Close
		level = DebugLevel
	}

	if len(writers) == 0 {
		logger := zerolog.Nop()
		return logger.WithContext(ctx), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Str("run_id", runID).
		Logger().
		Level(level)

	return logger.WithContext(ctx), closer, nil
}

// Get retrieves the logger from the provided context.
// Returns the logger associated with the context, or a disabled logger if none exists.
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
