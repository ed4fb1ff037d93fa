//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/split-it/splitit/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It owns one root component and keeps the DOM under mountID in sync with it.
type RendererImpl struct {
	currentComponent Component
	currentKey       string
	initialized      bool // OnInit has run for currentComponent
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a renderer that mounts under the element matching mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{mountID: mountID}
}

// SetCurrentComponent sets the root component to be rendered.
// Replacing the root destroys the previous one and forces a fresh mount.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if r.currentComponent != nil && r.currentComponent != comp {
		r.destroyRoot()
		vdom.Clear(r.mountID, r.prevVDOM)
		r.prevVDOM = nil
	}
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot runs the lifecycle hooks, renders the root component and
// mounts or patches the result.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}

	r.currentComponent.SetRenderer(r)

	if !r.initialized {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, r.currentKey)
		}
		r.initialized = true
	}

	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, r.currentKey)
	}

	newVDOM := r.currentComponent.Render(r)
	if newVDOM != nil && newVDOM.ComponentKey == "" {
		newVDOM.ComponentKey = r.currentKey
	}

	if r.prevVDOM == nil {
		// Initial render: clear whatever the server prerendered and mount fresh
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM
}

func (r *RendererImpl) destroyRoot() {
	if r.currentComponent == nil {
		return
	}
	if r.initialized {
		if cleaner, ok := r.currentComponent.(Cleaner); ok {
			r.callOnDestroy(cleaner, r.currentKey)
		}
	}
	r.currentComponent.SetRenderer(nil)
	r.initialized = false
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Dispose unmounts the root: it receives OnDestroy, loses its renderer
// reference and the mount element is emptied.
func (r *RendererImpl) Dispose() {
	r.destroyRoot()
	vdom.Clear(r.mountID, r.prevVDOM)
	r.currentComponent = nil
	r.currentKey = ""
	r.prevVDOM = nil
}
