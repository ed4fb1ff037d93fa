//go:build js || wasm

// Package console is the logging facade shared by the browser runtime and
// native tooling. In the browser every call lands in the devtools console.
package console

import (
	"syscall/js"
)

func jsConsole() js.Value {
	return js.Global().Get("console")
}

// Log writes args to console.log.
func Log(args ...any) {
	jsConsole().Call("log", args...)
}

// Warn writes args to console.warn.
func Warn(args ...any) {
	jsConsole().Call("warn", args...)
}

// Error writes args to console.error.
func Error(args ...any) {
	jsConsole().Call("error", args...)
}
