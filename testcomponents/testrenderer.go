package testcomponents

import (
	"github.com/split-it/splitit/runtime"
	"github.com/split-it/splitit/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	initialized bool
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, running OnInit
// the first time it is called.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	if !r.initialized {
		if initializer, ok := r.component.(runtime.Initializer); ok {
			initializer.OnInit()
		}
		r.initialized = true
	}
	r.render()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.render()
}

func (r *TestRenderer) render() {
	if paramReceiver, ok := r.component.(runtime.ParameterReceiver); ok {
		paramReceiver.OnParametersSet()
	}
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many render passes have run.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// Dispose unmounts the component: OnDestroy runs if it was initialized and
// the component loses its renderer.
func (r *TestRenderer) Dispose() {
	if r.initialized {
		if cleaner, ok := r.component.(runtime.Cleaner); ok {
			cleaner.OnDestroy()
		}
	}
	r.component.SetRenderer(nil)
	r.initialized = false
	r.currentVDOM = nil
}
