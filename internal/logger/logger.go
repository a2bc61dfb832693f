// Package logger builds the process-wide zerolog root logger.
// Components derive their own tagged sub-loggers from it, e.g.
// log.With().Str("component", "BookRepository").Logger().
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a root logger at the given level. When pretty is set the
// output is the human-oriented console format, otherwise JSON lines.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(lvl).With().Timestamp().Logger()
}
