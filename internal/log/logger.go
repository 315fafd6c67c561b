// Package log configures the process-wide zerolog logger.
//
// The TUI owns stdout, so logs go to a file or nowhere. Set GOALBOARD_DEBUG=1
// to log at debug level to the default file.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional level ("debug", "info", ...); defaults to info
	Path   string    // optional log file; ignored when Output is set
	Output io.Writer // optional writer; defaults to io.Discard
}

var (
	mu     sync.Mutex
	base   = zerolog.Nop()
	closer io.Closer
)

// DefaultPath returns the log file used when debugging is enabled without an
// explicit path.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "goalboard-debug.log")
}

// Configure replaces the global logger. It is called once from main; tests
// call it with an explicit Output.
func Configure(cfg Config) error {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	path := cfg.Path
	if path == "" && cfg.Output == nil && os.Getenv("GOALBOARD_DEBUG") == "1" {
		path = DefaultPath()
		level = zerolog.DebugLevel
	}

	writer := cfg.Output
	var c io.Closer
	if writer == nil && path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		writer, c = f, f
	}
	if writer == nil {
		writer = io.Discard
	}

	zerolog.TimeFieldFormat = time.RFC3339

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
	}
	closer = c
	base = zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", "goalboard").
		Logger()
	return nil
}

// Close releases the log file, if any, and resets to a no-op logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.Nop()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Base returns the configured base logger.
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
