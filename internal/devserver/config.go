// Package devserver hosts the WebAssembly build of the app for local
// development and serves a prerendered snapshot of the initial view.
package devserver

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ErrDistNotFound is returned when the bundle directory does not exist.
var ErrDistNotFound = errors.New("dist directory not found")

// Config holds the dev server settings. Values come from CLI flags.
type Config struct {
	// Addr is the TCP address to listen on. Defaults to ":8080".
	Addr string

	// DistDir holds main.wasm and wasm_exec.js. Defaults to "dist".
	DistDir string

	// LogLevel is a zerolog level name. Defaults to "info".
	LogLevel string

	// Pretty switches logging from JSON lines to console output.
	Pretty bool

	// ShutdownTimeout bounds how long in-flight requests get on shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		DistDir:         "dist",
		LogLevel:        "info",
		ShutdownTimeout: 15 * time.Second,
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	info, err := os.Stat(c.DistDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDistNotFound, c.DistDir)
		}
		return fmt.Errorf("stat dist directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDistNotFound, c.DistDir)
	}
	return nil
}

// NewLogger builds the process logger described by the config.
func (c Config) NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out zerolog.Logger
	if c.Pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		out = zerolog.New(os.Stderr)
	}
	return out.Level(level).With().Timestamp().Logger()
}
