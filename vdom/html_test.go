package vdom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLString_CounterLayout(t *testing.T) {
	tree := Form(map[string]any{"class": "counter-view"},
		Section(nil, Paragraph("Lets Upload a video!", nil)),
		Button("Tap Count: 0", map[string]any{
			"type":    "button",
			"onClick": func() {},
		}),
	)

	got, err := HTMLString(tree)

	require.NoError(t, err)
	assert.Equal(t,
		`<form class="counter-view"><section><p>Lets Upload a video!</p></section><button type="button">Tap Count: 0</button></form>`,
		got)
}

func TestHTMLString_EscapesContent(t *testing.T) {
	got, err := HTMLString(Paragraph(`<b>"hi"</b> & bye`, map[string]any{"title": `a"b`}))

	require.NoError(t, err)
	assert.Equal(t, `<p title="a&#34;b">&lt;b&gt;&#34;hi&#34;&lt;/b&gt; &amp; bye</p>`, got)
}

func TestHTMLString_AttributesSortedAndBoolean(t *testing.T) {
	got, err := HTMLString(Button("x", map[string]any{
		"type":     "submit",
		"disabled": true,
		"hidden":   false,
		"data-n":   -1.5,
		"onInput":  "ignored",
	}))

	require.NoError(t, err)
	assert.Equal(t, `<button data-n="-1.5" disabled="" type="submit">x</button>`, got)
}

func TestHTMLString_TextChildren(t *testing.T) {
	got, err := HTMLString(Div(nil,
		Text("plain"),
		Paragraph("para", nil),
	))

	require.NoError(t, err)
	assert.Equal(t, `<div>plain<p>para</p></div>`, got)
}

func TestHTMLString_UnsupportedTag(t *testing.T) {
	_, err := HTMLString(Div(nil, NewVNode("not-a-tag", nil, nil, "")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedTag))
}

func TestRenderHTML_Nil(t *testing.T) {
	got, err := HTMLString(nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
