// Package scene holds the external design-scene model the editor hands to the
// export pipeline. The pipeline only reads it; ownership stays with the editor.
package scene

// Scene is the root of an editor document: one or more layers of nodes.
// Editors without a layer concept produce a single unnamed layer.
type Scene struct {
	Name   string  `json:"name,omitempty"`
	Layers []Layer `json:"layers"`
}

// Layer groups top-level nodes. A layer whose Visible flag is explicitly
// false is excluded from export; an absent flag means visible.
type Layer struct {
	Name    string  `json:"name,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
	Nodes   []*Node `json:"nodes"`
}

// Node is one abstract component instance in the scene tree.
type Node struct {
	// Type is the editor's component type tag (e.g. "button", "text-input").
	Type string `json:"type"`
	// TargetType optionally pre-declares the target element, bypassing the
	// registry lookup for this node.
	TargetType string  `json:"targetType,omitempty"`
	Name       string  `json:"name,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	// Properties is the flat property bag. Values are whatever the editor
	// serialized: strings, numbers (float64), booleans, or nested objects
	// for composite values (thickness tuples, gradients, transform lists).
	Properties map[string]any `json:"properties,omitempty"`
	Children   []*Node        `json:"children,omitempty"`
}

// IsVisible reports whether the layer takes part in export.
func (l *Layer) IsVisible() bool {
	return l.Visible == nil || *l.Visible
}

// Property returns the named property value and whether it is present.
// Only explicitly set properties exist in the bag; schema defaults never do.
func (n *Node) Property(name string) (any, bool) {
	if n.Properties == nil {
		return nil, false
	}
	v, ok := n.Properties[name]
	return v, ok
}

// VisibleNodes returns the top-level nodes of all visible layers, layer order
// first, node order within each layer second.
func (s *Scene) VisibleNodes() []*Node {
	var nodes []*Node
	for i := range s.Layers {
		l := &s.Layers[i]
		if !l.IsVisible() {
			continue
		}
		nodes = append(nodes, l.Nodes...)
	}
	return nodes
}

// Walk visits every node of every visible layer depth-first in document
// order, parents before children. Traversal stops early if fn returns false.
func (s *Scene) Walk(fn func(n *Node) bool) {
	for _, n := range s.VisibleNodes() {
		if !walkNode(n, fn) {
			return
		}
	}
}

func walkNode(n *Node, fn func(n *Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !walkNode(c, fn) {
			return false
		}
	}
	return true
}

// Count returns the total number of nodes across all visible layers.
func (s *Scene) Count() int {
	count := 0
	s.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
