//go:build js && wasm

package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/split-it/splitit/internal/app/components"
	"github.com/split-it/splitit/internal/fakedom"
	"github.com/split-it/splitit/runtime"
)

// TestRendererImpl_CounterClicks mounts CounterView, clicks the button the
// way the browser would and checks the DOM after every re-render.
func TestRendererImpl_CounterClicks(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	view := components.NewCounterView()
	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(view, "counter")
	renderer.ReRender()

	mount := doc.Mount("#app")
	require.Len(t, mount.Children, 1)
	assert.Equal(t, "form", mount.Children[0].Tag)
	assert.Equal(t, "Lets Upload a video!", mount.Find("p").TextContent())

	button := mount.Find("button")
	require.NotNil(t, button)
	require.Equal(t, "Tap Count: 0", button.TextContent())

	for i := 1; i <= 10; i++ {
		button.Dispatch("click")

		require.Equal(t, components.TapCountLabel(i), button.TextContent())
		require.Equal(t, 1, button.Listeners("click"), "after click %d", i)
		require.Same(t, button, mount.Find("button"))
	}
	assert.Equal(t, 10, view.TapCount())
}

// TestRendererImpl_DisposeThenFreshView verifies Dispose unmounts the view
// and a new view mounted afterwards starts from zero.
func TestRendererImpl_DisposeThenFreshView(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	first := components.NewCounterView()
	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(first, "counter")
	renderer.ReRender()
	doc.Mount("#app").Find("button").Dispatch("click")
	require.Equal(t, 1, first.TapCount())

	renderer.Dispose()

	assert.Empty(t, doc.Mount("#app").Children)
	assert.Nil(t, first.GetRenderer())

	second := components.NewCounterView()
	renderer.SetCurrentComponent(second, "counter")
	renderer.ReRender()

	button := doc.Mount("#app").Find("button")
	require.NotNil(t, button)
	assert.Equal(t, "Tap Count: 0", button.TextContent())
	assert.Equal(t, 1, button.Listeners("click"))
}

// TestRendererImpl_ReplacesRoot verifies swapping the root component destroys
// the previous one and mounts the new tree fresh.
func TestRendererImpl_ReplacesRoot(t *testing.T) {
	doc := fakedom.Install("#app")
	defer doc.Close()

	first := components.NewCounterView()
	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(first, "counter")
	renderer.ReRender()

	second := components.NewCounterView()
	renderer.SetCurrentComponent(second, "counter-2")
	renderer.ReRender()

	assert.Nil(t, first.GetRenderer())
	require.Len(t, doc.Mount("#app").Children, 1)

	first.OnActivate()
	assert.Equal(t, "Tap Count: 0", doc.Mount("#app").Find("button").TextContent())
}
