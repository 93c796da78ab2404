// Package logging constructs the process-wide zerolog logger, the
// structured-logging library observed as a direct dependency across the
// retrieved example pack (see SPEC_FULL.md's DOMAIN STACK section).
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a logger writing JSON by default, or a colorized
// console writer when pretty is set (intended for local/dev runs, mirroring
// the --log-pretty style flag common across the pack's cobra entrypoints).
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(lvl).With().Timestamp().Logger()
}
