package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/rpg-dm-tools/internal/config"
	"github.com/rs/zerolog"
)

// New builds the process logger. Console output is meant for people at a
// terminal, json for log collectors.
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var w io.Writer
	switch cfg.Format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
		w = out
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
