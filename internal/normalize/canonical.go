package normalize

import "axamlforge/internal/emit"

// CanonicalNode is one element of the render tree. It is built fresh per
// export call and owned by the pipeline; nothing here aliases scene memory.
type CanonicalNode struct {
	// Element is the target element name.
	Element string
	// Attrs are the attributes in their final emission order.
	Attrs []emit.Attr
	// Nested are property elements rendered inside the element, before
	// children.
	Nested []NestedProperty
	// Children are the canonical child nodes.
	Children []*CanonicalNode
	// InlineText, when set, is emitted as element content instead of the
	// content property attribute.
	InlineText string
	// SourceType is the scene type this node came from.
	SourceType string
	// Unsupported marks placeholder nodes for unmapped types.
	Unsupported bool
}

// NestedProperty is one owner-qualified property element, e.g. the
// <Button.Background> wrapper around a gradient brush.
type NestedProperty struct {
	// Property is the attribute name; rendering prefixes the owner element.
	Property string
	// Els are the value elements inside the wrapper.
	Els []emit.El
}

// AttrValue returns the named attribute's value, or "" when absent.
func (n *CanonicalNode) AttrValue(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}

	return ""
}

// HasAttr reports whether the named attribute is present.
func (n *CanonicalNode) HasAttr(name string) bool {
	for _, a := range n.Attrs {
		if a.Name == name {
			return true
		}
	}

	return false
}

// Handler is one event handler stub the code-behind must provide.
type Handler struct {
	// Name is the C# method name, e.g. "SubmitButton_Click".
	Name string
	// Args is the event-args type, e.g. "RoutedEventArgs".
	Args string
}

// Binding is one collected binding expression: the path inside the
// expression and the attribute it was bound to. The target lets the
// view-model generator pick collection types for items sources.
type Binding struct {
	Path   string
	Target string
}

// Namespace is one markup namespace a mapped element pulled in. The
// document root declares each prefix exactly once.
type Namespace struct {
	Prefix string
	URI    string
}

// Result is the outcome of normalizing one scene.
type Result struct {
	// Roots are the top-level canonical nodes in scene order.
	Roots []*CanonicalNode
	// WrapCanvas is set when any root carries attached coordinates, which
	// forces the single implicit Canvas container.
	WrapCanvas bool
	// Handlers are the event stubs in first-seen order, deduplicated.
	Handlers []Handler
	// Bindings are the binding expressions in first-seen order, deduplicated
	// by path.
	Bindings []Binding
	// Namespaces are the prefixed namespaces used by mapped elements,
	// deduplicated by prefix and sorted.
	Namespaces []Namespace
	// Unsupported are the distinct unmapped source types, sorted.
	Unsupported []string
}
