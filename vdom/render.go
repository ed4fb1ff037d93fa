//go:build js || wasm
// +build js wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/split-it/splitit/console"
)

// clickBinding is the one click listener an element ever gets. Patching
// retargets fn, so re-renders never stack listeners on the same element.
type clickBinding struct {
	fn func()
	cb js.Func
}

func (b *clickBinding) release() {
	b.fn = nil
	b.cb.Release()
}

// clickBindingOf returns the binding recorded on v, if any.
func clickBindingOf(v *VNode) *clickBinding {
	for _, cb := range v.GetEventCallbacks() {
		if b, ok := cb.(*clickBinding); ok {
			return b
		}
	}
	return nil
}

// releaseCallbacks releases the listeners recorded on a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if b, ok := cb.(*clickBinding); ok {
			b.release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountElement(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// Clear empties the mount element and releases the callbacks held by prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute, following HTML presence semantics for booleans.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}

	// Handlers only arrive through VNode.OnClick
	if isEventAttribute(key) {
		return
	}

	el.Call("setAttribute", key, fmt.Sprint(value))
}

// attachClickHandler wires VNode.OnClick to the element's click event.
func attachClickHandler(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	b := &clickBinding{fn: n.OnClick}
	b.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if b.fn != nil {
			b.fn()
		}
		return nil
	})
	el.Call("addEventListener", "click", b.cb)
	n.AddEventCallback(b)
}

// patchClickHandler moves the element's listener from oldVNode to newVNode.
// The listener is added only when the element had none, and removed only
// when the new node has no handler.
func patchClickHandler(el js.Value, oldVNode, newVNode *VNode) {
	b := clickBindingOf(oldVNode)
	oldVNode.ClearEventCallbacks()

	switch {
	case b == nil:
		attachClickHandler(el, newVNode)
	case newVNode.OnClick == nil:
		el.Call("removeEventListener", "click", b.cb)
		b.release()
	default:
		b.fn = newVNode.OnClick
		newVNode.AddEventCallback(b)
	}
}

// supportedTag lists the elements the vdom constructors produce.
func supportedTag(tag string) bool {
	switch tag {
	case "p", "div", "form", "section", "button":
		return true
	}
	return false
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTag(n.Tag) {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachClickHandler(el, n)

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := mountElement(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

// replaceElement swaps domElement for a freshly created element.
func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	parent := domElement.Get("parentNode")
	if parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != newVNode.ComponentKey || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)
	patchClickHandler(domElement, oldVNode, newVNode)

	// Setting textContent wipes out all child nodes, so only do it for leaves
	if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
		domElement.Set("textContent", newVNode.Content)
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
// Values are compared in their string form, which is what the DOM stores.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists && !isEventAttribute(key) {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if isEventAttribute(key) {
			continue
		}
		if old, ok := oldAttrs[key]; !ok || fmt.Sprint(old) != fmt.Sprint(value) {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		oldChild := oldChildren[i]
		newChild := newChildren[i]

		switch {
		case oldChild == nil && newChild != nil:
			newChildEl := createElement(newChild)
			if !newChildEl.Truthy() {
				continue
			}
			refChild := domChildren.Call("item", i)
			if refChild.Truthy() {
				domElement.Call("insertBefore", newChildEl, refChild)
			} else {
				domElement.Call("appendChild", newChildEl)
			}
		case oldChild != nil && newChild == nil:
			deepReleaseCallbacks(oldChild)
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				domElement.Call("removeChild", childElement)
			}
		case oldChild != nil && newChild != nil:
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				patchElement(childElement, oldChild, newChild)
			}
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
