package runtime

import "github.com/split-it/splitit/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that need one-time setup
// before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to their
// parameters before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that release resources when they
// leave the tree.
type Cleaner interface {
	OnDestroy()
}
