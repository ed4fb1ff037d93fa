//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Native builds have no browser console, so messages go to a zerolog logger.
// The default logger discards everything, which keeps tests quiet.
var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// SetLogger routes console output to l.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l.With().Str("source", "console").Logger()
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Log writes args at info level.
func Log(args ...any) {
	current().Info().Msg(join(args))
}

// Warn writes args at warn level.
func Warn(args ...any) {
	current().Warn().Msg(join(args))
}

// Error writes args at error level.
func Error(args ...any) {
	current().Error().Msg(join(args))
}

// join formats args the way the browser console does: space separated.
func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
