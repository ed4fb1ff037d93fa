package vdom

import "fmt"

// Equal reports whether two trees would produce the same DOM.
// Click handlers are compared by presence only, since funcs are not comparable.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Content != b.Content || a.ComponentKey != b.ComponentKey {
		return false
	}
	if (a.OnClick == nil) != (b.OnClick == nil) {
		return false
	}
	if !equalAttributes(a.Attributes, b.Attributes) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func equalAttributes(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if fmt.Sprint(av) != fmt.Sprint(bv) {
			return false
		}
	}
	return true
}
