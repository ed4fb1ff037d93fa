//go:build js && wasm

package vdom

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/split-it/splitit/internal/fakedom"
)

// counterTree builds the counter layout; the click handler records gen.
func counterTree(count int, gen int, hits *[]int) *VNode {
	return Form(map[string]any{"class": "counter-view"},
		Section(nil, Paragraph("Lets Upload a video!", nil)),
		Button("Tap Count: "+strconv.Itoa(count), map[string]any{
			"type":    "button",
			"onClick": func() { *hits = append(*hits, gen) },
		}),
	)
}

// TestPatch_ClickKeepsOneListener verifies that patching after each click
// leaves exactly one live listener that runs the newest handler, and that
// the label text follows the tree.
func TestPatch_ClickKeepsOneListener(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	var hits []int
	prev := counterTree(0, 0, &hits)
	RenderToSelector("#app", prev)

	mount := doc.Mount("#app")
	require.Len(t, mount.Children, 1)
	button := mount.Find("button")
	require.NotNil(t, button)
	require.Equal(t, 1, button.Listeners("click"))
	require.Equal(t, "Tap Count: 0", button.TextContent())
	assert.Equal(t, "button", button.Attrs["type"])
	assert.Equal(t, "Lets Upload a video!", mount.Find("p").TextContent())

	for i := 1; i <= 3; i++ {
		button.Dispatch("click")

		next := counterTree(i, i, &hits)
		Patch("#app", prev, next)
		prev = next

		require.Same(t, button, mount.Find("button"), "button element is patched, not replaced")
		require.Equal(t, 1, button.Listeners("click"), "after click %d", i)
	}

	assert.Equal(t, []int{0, 1, 2}, hits)
	assert.Equal(t, "Tap Count: 3", button.TextContent())
}

// TestPatch_RemovedHandlerDropsListener verifies a node that loses its
// OnClick also loses its DOM listener.
func TestPatch_RemovedHandlerDropsListener(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	clicks := 0
	prev := Button("go", map[string]any{"onClick": func() { clicks++ }})
	RenderToSelector("#app", prev)
	button := doc.Mount("#app").Children[0]
	require.Equal(t, 1, button.Listeners("click"))

	next := Button("stop", nil)
	Patch("#app", prev, next)

	assert.Equal(t, 0, button.Listeners("click"))
	assert.Equal(t, "stop", button.TextContent())
	assert.Nil(t, prev.GetEventCallbacks())

	// A later patch that brings a handler back attaches a fresh listener.
	again := Button("go", map[string]any{"onClick": func() { clicks++ }})
	Patch("#app", next, again)
	button.Dispatch("click")

	assert.Equal(t, 1, button.Listeners("click"))
	assert.Equal(t, 1, clicks)
}

// TestPatch_AttributeValuesOfAnyType verifies attribute diffing tolerates
// values that are not comparable with ==.
func TestPatch_AttributeValuesOfAnyType(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	prev := Div(map[string]any{"data-x": []int{1}, "hidden": true, "title": "a"})
	RenderToSelector("#app", prev)
	div := doc.Mount("#app").Children[0]
	require.Equal(t, "[1]", div.Attrs["data-x"])
	require.Contains(t, div.Attrs, "hidden")

	next := Div(map[string]any{"data-x": []int{2}, "hidden": false})
	require.NotPanics(t, func() { Patch("#app", prev, next) })

	assert.Equal(t, "[2]", div.Attrs["data-x"])
	assert.NotContains(t, div.Attrs, "hidden")
	assert.NotContains(t, div.Attrs, "title")
}

// TestPatch_TagChangeReplacesElement verifies a different tag swaps the
// element and releases the old listener.
func TestPatch_TagChangeReplacesElement(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	prev := Div(nil, Button("x", map[string]any{"onClick": func() {}}))
	RenderToSelector("#app", prev)
	root := doc.Mount("#app").Children[0]
	oldButton := root.Children[0]

	next := Div(nil, Paragraph("y", nil))
	Patch("#app", prev, next)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "p", root.Children[0].Tag)
	assert.Equal(t, "y", root.Children[0].TextContent())
	assert.Nil(t, oldButton.Parent)
	assert.Nil(t, prev.Children[0].GetEventCallbacks())
}

// TestClear_EmptiesMount verifies Clear removes the rendered tree.
func TestClear_EmptiesMount(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	tree := Form(nil, Text("hello"), Button("b", map[string]any{"onClick": func() {}}))
	RenderToSelector("#app", tree)
	require.Len(t, doc.Mount("#app").Children, 1)
	require.Equal(t, "hellob", doc.Mount("#app").TextContent())

	Clear("#app", tree)

	assert.Empty(t, doc.Mount("#app").Children)
	assert.Nil(t, tree.Children[1].GetEventCallbacks())
}
