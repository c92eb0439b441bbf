package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog instance. JSON to stderr by default;
// set LOG_PRETTY=1 for a human-readable console writer during development.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339

	if os.Getenv("LOG_PRETTY") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	log.Info().Msg("Logger initialized")
}
