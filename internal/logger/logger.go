package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config represents logger configuration
type Config struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text", "json"
}

// DefaultConfig returns the defaults used when no configuration is loaded.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// LogLevel converts the string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	mu      sync.Mutex
	current *slog.Logger
)

// Init sets up the process logger. Safe to call more than once; the last
// call wins.
func Init(cfg Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	mu.Lock()
	defer mu.Unlock()
	current = slog.New(handler)
	slog.SetDefault(current)
}

// Get returns the process logger, initializing with defaults if Init was
// never called.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		current = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return current
}
