//go:build js && wasm

// Package fakedom installs a small in-memory document on the JS global
// object, so DOM code can run under node (go_js_wasm_exec) where no browser
// document exists. It implements only what the vdom package calls.
package fakedom

import (
	"strings"
	"syscall/js"
)

const idKey = "__fakedomID"

// Document is an installed fake document.
type Document struct {
	value    js.Value
	previous js.Value
	nodes    map[int]*Node
	mounts   map[string]*Node
	funcs    []js.Func
}

// Node is one element or text node.
type Node struct {
	Tag      string // "#text" for text nodes
	Attrs    map[string]string
	Children []*Node
	Parent   *Node

	value     js.Value
	childList js.Value
	text      string
	listeners map[string][]js.Value
	doc       *Document
}

// Install replaces the global document with an empty fake one that has a
// mount element for each selector. Call Close to restore the original.
func Install(selectors ...string) *Document {
	d := &Document{
		previous: js.Global().Get("document"),
		nodes:    make(map[int]*Node),
		mounts:   make(map[string]*Node),
	}

	d.value = js.Global().Get("Object").New()
	d.method(d.value, "querySelector", func(args []js.Value) any {
		if n, ok := d.mounts[args[0].String()]; ok {
			return n.value
		}
		return js.Null()
	})
	d.method(d.value, "createElement", func(args []js.Value) any {
		return d.newNode(args[0].String()).value
	})
	d.method(d.value, "createTextNode", func(args []js.Value) any {
		n := d.newNode("#text")
		n.value.Set("nodeValue", args[0].String())
		return n.value
	})

	for _, sel := range selectors {
		d.mounts[sel] = d.newNode("div")
	}

	js.Global().Set("document", d.value)
	return d
}

// Close restores the previous global document and releases every callback.
func (d *Document) Close() {
	if d.previous.IsUndefined() {
		js.Global().Delete("document")
	} else {
		js.Global().Set("document", d.previous)
	}
	for _, f := range d.funcs {
		f.Release()
	}
	d.funcs = nil
}

// Mount returns the mount element registered for selector.
func (d *Document) Mount(selector string) *Node {
	return d.mounts[selector]
}

func (d *Document) method(obj js.Value, name string, fn func(args []js.Value) any) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		return fn(args)
	})
	d.funcs = append(d.funcs, f)
	obj.Set(name, f)
}

func (d *Document) lookup(v js.Value) *Node {
	if v.Type() != js.TypeObject {
		return nil
	}
	id := v.Get(idKey)
	if id.Type() != js.TypeNumber {
		return nil
	}
	return d.nodes[id.Int()]
}

func (d *Document) newNode(tag string) *Node {
	n := &Node{
		Tag:       tag,
		Attrs:     make(map[string]string),
		listeners: make(map[string][]js.Value),
		doc:       d,
		value:     js.Global().Get("Object").New(),
		childList: js.Global().Get("Object").New(),
	}
	id := len(d.nodes) + 1
	d.nodes[id] = n
	n.value.Set(idKey, id)
	n.value.Set("nodeName", strings.ToUpper(tag))
	n.value.Set("childNodes", n.childList)

	d.method(n.childList, "item", func(args []js.Value) any {
		i := args[0].Int()
		if i < 0 || i >= len(n.Children) {
			return js.Null()
		}
		return n.Children[i].value
	})

	d.method(n.value, "setAttribute", func(args []js.Value) any {
		n.Attrs[args[0].String()] = js.Global().Call("String", args[1]).String()
		return nil
	})
	d.method(n.value, "removeAttribute", func(args []js.Value) any {
		delete(n.Attrs, args[0].String())
		return nil
	})
	d.method(n.value, "appendChild", func(args []js.Value) any {
		n.insert(d.lookup(args[0]), len(n.Children))
		return args[0]
	})
	d.method(n.value, "insertBefore", func(args []js.Value) any {
		n.insert(d.lookup(args[0]), n.indexOf(d.lookup(args[1])))
		return args[0]
	})
	d.method(n.value, "removeChild", func(args []js.Value) any {
		n.remove(d.lookup(args[0]))
		return args[0]
	})
	d.method(n.value, "replaceChild", func(args []js.Value) any {
		newChild, oldChild := d.lookup(args[0]), d.lookup(args[1])
		i := n.indexOf(oldChild)
		n.remove(oldChild)
		n.insert(newChild, i)
		return args[1]
	})
	d.method(n.value, "addEventListener", func(args []js.Value) any {
		event := args[0].String()
		for _, l := range n.listeners[event] {
			if l.Equal(args[1]) {
				return nil
			}
		}
		n.listeners[event] = append(n.listeners[event], args[1])
		return nil
	})
	d.method(n.value, "removeEventListener", func(args []js.Value) any {
		event := args[0].String()
		kept := n.listeners[event][:0]
		for _, l := range n.listeners[event] {
			if !l.Equal(args[1]) {
				kept = append(kept, l)
			}
		}
		n.listeners[event] = kept
		return nil
	})
	d.method(n.value, "matches", func(args []js.Value) any {
		return false
	})

	d.property(n, "textContent",
		func() any { return n.TextContent() },
		func(v js.Value) {
			n.clear()
			n.text = v.String()
		})
	d.property(n, "innerHTML",
		func() any { return n.TextContent() },
		func(v js.Value) {
			n.clear()
			n.text = ""
		})

	n.sync()
	return n
}

func (d *Document) property(n *Node, name string, get func() any, set func(js.Value)) {
	getter := js.FuncOf(func(this js.Value, args []js.Value) any { return get() })
	setter := js.FuncOf(func(this js.Value, args []js.Value) any {
		set(args[0])
		return nil
	})
	d.funcs = append(d.funcs, getter, setter)

	desc := js.Global().Get("Object").New()
	desc.Set("get", getter)
	desc.Set("set", setter)
	desc.Set("configurable", true)
	js.Global().Get("Object").Call("defineProperty", n.value, name, desc)
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return len(n.Children)
}

func (n *Node) insert(child *Node, at int) {
	if child == nil {
		return
	}
	if child.Parent != nil {
		child.Parent.remove(child)
	}
	if at > len(n.Children) {
		at = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[at+1:], n.Children[at:])
	n.Children[at] = child
	child.Parent = n
	n.text = ""
	child.sync()
	n.sync()
}

func (n *Node) remove(child *Node) {
	i := n.indexOf(child)
	if i == len(n.Children) {
		return
	}
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	child.Parent = nil
	child.sync()
	n.sync()
}

func (n *Node) clear() {
	for _, c := range n.Children {
		c.Parent = nil
		c.sync()
	}
	n.Children = nil
	n.sync()
}

// sync mirrors the Go-side tree into the JS properties DOM code reads.
func (n *Node) sync() {
	n.childList.Set("length", len(n.Children))
	if len(n.Children) > 0 {
		n.value.Set("firstChild", n.Children[0].value)
	} else {
		n.value.Set("firstChild", js.Null())
	}
	if n.Parent != nil {
		n.value.Set("parentNode", n.Parent.value)
	} else {
		n.value.Set("parentNode", js.Null())
	}
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n.Tag == "#text" {
		return n.value.Get("nodeValue").String()
	}
	if len(n.Children) == 0 {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// Find returns the first descendant with the given tag, depth first.
func (n *Node) Find(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// Listeners returns how many listeners are registered for event.
func (n *Node) Listeners(event string) int {
	return len(n.listeners[event])
}

// Dispatch calls every listener registered for event, in order.
func (n *Node) Dispatch(event string) {
	ev := js.Global().Get("Object").New()
	ev.Set("type", event)
	ev.Set("target", n.value)
	for _, l := range append([]js.Value(nil), n.listeners[event]...) {
		l.Invoke(ev)
	}
}
