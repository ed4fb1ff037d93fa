//go:build js || wasm

package main

import (
	"github.com/split-it/splitit/internal/app/components"
	"github.com/split-it/splitit/runtime"
)

func main() {
	// Create the view; its tap count starts at zero
	view := components.NewCounterView()

	// Create the renderer
	renderer := runtime.NewRenderer("#app")

	// Set the component and render
	renderer.SetCurrentComponent(view, "counter")
	renderer.ReRender()

	// Keep the Go program running
	select {}
}
