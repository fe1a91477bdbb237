// Package logging configures the structured diagnostic logger used by promptlib.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger output.
type Config struct {
	// Level is a zerolog level name: debug, info, warn, error.
	// Default: warn.
	Level string

	// Format is either "console" or "json".
	// Default: console.
	Format string
}

var (
	mu   sync.RWMutex
	root = New(os.Stderr, Config{})
)

// Init replaces the global logger. Diagnostics always go to stderr so that
// command output on stdout stays clean.
func Init(cfg Config) {
	InitTo(os.Stderr, cfg)
}

// InitTo replaces the global logger with one writing to w.
func InitTo(w io.Writer, cfg Config) {
	SetLogger(New(w, cfg))
}

// SetLogger replaces the global logger with an already built one.
func SetLogger(logger zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = logger
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// New builds a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	out := w
	if strings.ToLower(strings.TrimSpace(cfg.Format)) != "json" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.Kitchen,
			PartsExclude: []string{
				zerolog.TimestampFieldName,
			},
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
