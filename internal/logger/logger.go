// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects the level and output format.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	Writer io.Writer
}

// Init sets the global level and replaces the global logger.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = cfg.Writer
	if output == nil {
		output = os.Stderr
	}
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// New creates a child of the global logger tagged with component.
func New(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
