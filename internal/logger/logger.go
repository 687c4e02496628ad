package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the service logger: human-readable console output in
// development, JSON elsewhere.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
