// Package doc defines the document tree consumed by the renderer.
package doc

import (
	"fmt"
	"strconv"
)

// Node is a typed element of the parsed document tree. The renderer treats
// nodes as read-only apart from one sanctioned mutation: a generated id is
// written onto a heading node the first time it is rendered.
type Node struct {
	// Kind identifies the element, e.g. "paragraph", "heading", "image".
	Kind string

	// Content is one of: nil (empty), string (text), *Node (a single
	// nested node) or []any (an ordered mix of strings and *Node).
	Content any

	// Attrs holds the node's attributes in insertion order. A nil value
	// marks an absent attribute which must never be emitted.
	Attrs Attrs

	// Children holds nested nodes for compound kinds such as lists.
	Children []*Node
}

// New returns a node with the given kind and content.
func New(kind string, content any) *Node {
	return &Node{Kind: kind, Content: content}
}

// WithAttr appends an attribute and returns the node for chaining.
func (n *Node) WithAttr(key string, value any) *Node {
	n.Attrs.Set(key, value)
	return n
}

// WithChildren appends child nodes and returns the node for chaining.
func (n *Node) WithChildren(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr is a single key/value attribute pair.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute list. Insertion order is preserved and is
// significant: output must be byte-identical across renders of the same
// document.
type Attrs []Attr

// Get returns the value for key and whether the key is present.
func (as Attrs) Get(key string) (any, bool) {
	for _, a := range as {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// String returns the value for key converted to a string, or the empty
// string if the key is missing or absent.
func (as Attrs) String(key string) string {
	v, ok := as.Get(key)
	if !ok {
		return ""
	}
	return ValueString(v)
}

// Int returns the value for key as an integer, or 0 if the key is missing
// or not numeric.
func (as Attrs) Int(key string) int {
	v, ok := as.Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}

// Set replaces the value for key if present, otherwise appends it,
// preserving the order of existing keys.
func (as *Attrs) Set(key string, value any) {
	for i := range *as {
		if (*as)[i].Key == key {
			(*as)[i].Value = value
			return
		}
	}
	*as = append(*as, Attr{Key: key, Value: value})
}

// Without returns a copy of the attribute list with the given keys removed.
func (as Attrs) Without(keys ...string) Attrs {
	out := make(Attrs, 0, len(as))
	for _, a := range as {
		skip := false
		for _, k := range keys {
			if a.Key == k {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, a)
		}
	}
	return out
}

// ValueString converts a scalar attribute or content value to its output
// string form. A nil value converts to the empty string.
func ValueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
