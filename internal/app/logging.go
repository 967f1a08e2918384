package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/lyrics-overlay/internal/config"
)

// newLogger builds the process logger. The overlay owns the terminal, so it
// logs JSON lines to cfg.LogFile; console mode logs to stderr and only shows
// warnings unless a debug level was asked for. The returned func closes the
// log file.
func newLogger(cfg config.Config, console bool) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if console {
		if level > zerolog.DebugLevel && level < zerolog.WarnLevel {
			level = zerolog.WarnLevel
		}
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), func() {}
	}

	f, err := openLogFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lyrics-overlay: logging disabled: %v\n", err)
		return zerolog.Nop(), func() {}
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
