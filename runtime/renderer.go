package runtime

// Renderer is what a mounted component sees of the runtime.
// It has NO build tags, so the browser renderer and the in-memory test
// renderer can both drive the same components.
type Renderer interface {
	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}
