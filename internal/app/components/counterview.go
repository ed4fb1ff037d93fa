package components

import (
	"strconv"

	"github.com/split-it/splitit/runtime"
	"github.com/split-it/splitit/signals"
	"github.com/split-it/splitit/vdom"
)

// UploadPrompt is the static text shown above the counter.
// It is a placeholder; nothing behind it uploads anything.
const UploadPrompt = "Lets Upload a video!"

const tapCountPrefix = "Tap Count: "

// CounterView shows the upload prompt and a button that counts its own taps.
// The count lives in a signal; every change re-renders the view.
type CounterView struct {
	runtime.ComponentBase

	tapCount    *signals.Signal[int]
	unsubscribe func()
}

// NewCounterView returns a view whose tap count starts at zero.
func NewCounterView() *CounterView {
	return &CounterView{tapCount: signals.NewSignal(0)}
}

// TapCountLabel formats the button label for n taps.
func TapCountLabel(n int) string {
	return tapCountPrefix + strconv.Itoa(n)
}

func (c *CounterView) state() *signals.Signal[int] {
	if c.tapCount == nil {
		c.tapCount = signals.NewSignal(0)
	}
	return c.tapCount
}

// OnInit subscribes the re-render to tap count changes.
func (c *CounterView) OnInit() {
	if c.unsubscribe != nil {
		return
	}
	c.unsubscribe = c.state().Subscribe(func() {
		c.StateHasChanged()
	})
}

// OnDestroy drops the subscription taken in OnInit.
func (c *CounterView) OnDestroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// TapCount returns the number of completed activations.
func (c *CounterView) TapCount() int {
	return c.state().Get()
}

// OnActivate handles one tap of the button.
func (c *CounterView) OnActivate() {
	c.state().Update(func(n int) int { return n + 1 })

	// Not initialized yet, so no subscription carried the change.
	if c.unsubscribe == nil {
		c.StateHasChanged()
	}
}

// Render implements runtime.Component.
func (c *CounterView) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Form(map[string]any{"class": "counter-view"},
		vdom.Section(nil,
			vdom.Paragraph(UploadPrompt, nil),
		),
		vdom.Button(TapCountLabel(c.TapCount()), map[string]any{
			"type":    "button",
			"onClick": c.OnActivate,
		}),
	)
}
