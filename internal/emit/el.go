package emit

// Attr is one markup attribute. Attributes travel in slices so emission
// order is always the order the producer chose, never map order.
type Attr struct {
	Name  string
	Value string
}

// El is an element in the ordered element model. Converters that produce
// nested property values (gradient brushes, transforms, effects) return an
// El tree instead of an attribute string; the markup generator wraps it in
// the owning property element.
type El struct {
	Name     string
	Attrs    []Attr
	Children []El
	// Text, when non-empty, is emitted as escaped element content. An
	// element carries either Text or Children, not both.
	Text string
}

// WithAttr returns a copy of e with one attribute appended.
func (e El) WithAttr(name, value string) El {
	attrs := make([]Attr, len(e.Attrs), len(e.Attrs)+1)
	copy(attrs, e.Attrs)
	e.Attrs = append(attrs, Attr{Name: name, Value: value})
	return e
}

// openTag renders "<Name a="v" …" without the closing bracket.
func openTag(e El) string {
	s := "<" + e.Name
	for _, a := range e.Attrs {
		s += " " + a.Name + `="` + EscapeAttr(a.Value) + `"`
	}
	return s
}

// WriteEl renders the element tree into the buffer. Leaf elements
// self-close on one line; elements with text inline it between the tags;
// elements with children indent them one level.
func WriteEl(b *Buffer, e El) {
	switch {
	case len(e.Children) == 0 && e.Text == "":
		b.Line(openTag(e) + "/>")
	case len(e.Children) == 0:
		b.Line(openTag(e) + ">" + EscapeText(e.Text) + "</" + e.Name + ">")
	default:
		b.Line(openTag(e) + ">")
		b.Indent()
		for _, child := range e.Children {
			WriteEl(b, child)
		}
		b.Dedent()
		b.Line("</" + e.Name + ">")
	}
}
