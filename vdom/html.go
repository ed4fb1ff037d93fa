package vdom

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrUnsupportedTag is returned when a tree contains a tag that is not a
// known HTML element.
var ErrUnsupportedTag = errors.New("vdom: unsupported tag")

// RenderHTML serializes the tree as HTML. Event handlers are dropped, so the
// output is a static snapshot suitable for server-side prerendering.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	node, err := toHTMLNode(n)
	if err != nil {
		return err
	}
	if err := html.Render(w, node); err != nil {
		return fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return nil
}

// HTMLString is RenderHTML into a string.
func HTMLString(n *VNode) (string, error) {
	var sb strings.Builder
	if err := RenderHTML(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func toHTMLNode(n *VNode) (*html.Node, error) {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}, nil
	}

	a := atom.Lookup([]byte(n.Tag))
	if a == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTag, n.Tag)
	}

	el := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     n.Tag,
		Attr:     htmlAttributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}

	for _, child := range n.Children {
		if child == nil {
			continue
		}
		c, err := toHTMLNode(child)
		if err != nil {
			return nil, err
		}
		el.AppendChild(c)
	}
	return el, nil
}

// htmlAttributes converts attributes in key order. Handlers are skipped and
// boolean attributes follow HTML presence semantics.
func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if isEventAttribute(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		default:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	return out
}

// isEventAttribute reports whether key names an event handler such as onClick.
func isEventAttribute(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}
