// Package logger configures the global zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. format is "json" or "console".
func Setup(level, format string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(parsed)

	var output = os.Stdout
	switch strings.ToLower(format) {
	case "json":
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	default:
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return nil
}

// WithComponent returns a logger with a component field.
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
