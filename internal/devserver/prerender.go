package devserver

import (
	"fmt"
	"io"

	"github.com/split-it/splitit/internal/app/components"
	"github.com/split-it/splitit/runtime"
	"github.com/split-it/splitit/vdom"
)

// staticRenderer renders a tree once. Re-render requests are ignored since
// nothing on the server can change state.
type staticRenderer struct{}

var _ runtime.Renderer = staticRenderer{}

func (staticRenderer) ReRender() {}

// Prerender writes the HTML of a freshly instantiated CounterView.
func Prerender(w io.Writer) error {
	view := components.NewCounterView()
	view.SetRenderer(staticRenderer{})
	if err := vdom.RenderHTML(w, view.Render(staticRenderer{})); err != nil {
		return fmt.Errorf("prerender counter view: %w", err)
	}
	return nil
}
