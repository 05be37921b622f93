package markup

import (
	"strconv"
	"strings"

	"axamlforge/internal/convert"
	"axamlforge/internal/emit"
	"axamlforge/internal/normalize"
	"axamlforge/options"
)

// Preamble is the first line of every generated markup file.
const Preamble = "<!-- Code generated by axamlforge. DO NOT EDIT. -->"

// Namespace URIs declared on the root element.
const (
	nsAvalonia     = "https://github.com/avaloniaui"
	nsXaml         = "http://schemas.microsoft.com/winfx/2006/xaml"
	nsDesign       = "http://schemas.microsoft.com/expression/blend/2008"
	nsMarkupCompat = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

// inlineAttrLimit is the attribute count up to which a node renders with
// inline attributes instead of one attribute per line.
const inlineAttrLimit = 2

// Generator renders normalized trees into .axaml text.
type Generator struct {
	opts options.ExportOptions
}

// New returns a generator for the given options.
func New(opts options.ExportOptions) *Generator {
	return &Generator{opts: opts.Clamped()}
}

// Document renders the complete markup artifact for a normalized scene.
func (g *Generator) Document(res *normalize.Result) string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	b.Line(Preamble)

	rootEl := g.opts.Root.Element()
	b.Line("<" + rootEl)
	b.Indent()

	attrs := g.rootAttrs(res)
	for i, a := range attrs {
		line := attrText(a)
		if i == len(attrs)-1 {
			line += ">"
		}

		b.Line(line)
	}

	for _, n := range contentRoots(res) {
		g.writeNode(b, n)
	}

	b.Dedent()
	b.Line("</" + rootEl + ">")

	return b.String()
}

// Node renders one canonical node as a standalone fragment, mainly for
// tests and previews.
func (g *Generator) Node(n *normalize.CanonicalNode) string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	g.writeNode(b, n)

	return b.String()
}

// rootAttrs assembles the root element's attributes in declaration order.
// The design-time namespace pair only appears when a design size is wanted.
func (g *Generator) rootAttrs(res *normalize.Result) []emit.Attr {
	attrs := []emit.Attr{
		{Name: "xmlns", Value: nsAvalonia},
		{Name: "xmlns:x", Value: nsXaml},
	}

	for _, ns := range res.Namespaces {
		attrs = append(attrs, emit.Attr{Name: "xmlns:" + ns.Prefix, Value: ns.URI})
	}

	if g.opts.IncludeDesignSize {
		attrs = append(attrs,
			emit.Attr{Name: "xmlns:d", Value: nsDesign},
			emit.Attr{Name: "xmlns:mc", Value: nsMarkupCompat},
			emit.Attr{Name: "mc:Ignorable", Value: "d"},
		)
	}

	if g.opts.IncludeCodeBehind {
		attrs = append(attrs, emit.Attr{Name: "x:Class", Value: g.opts.Namespace + "." + g.opts.ClassName})
	}

	if g.opts.IncludeDesignSize {
		attrs = append(attrs,
			emit.Attr{Name: "d:DesignWidth", Value: strconv.Itoa(g.opts.DesignWidth)},
			emit.Attr{Name: "d:DesignHeight", Value: strconv.Itoa(g.opts.DesignHeight)},
		)
	}

	if g.opts.Root == options.RootWindow && g.opts.Title != "" {
		attrs = append(attrs, emit.Attr{Name: "Title", Value: g.opts.Title})
	}

	return attrs
}

// contentRoots applies the implicit container policy: one positioned
// top-level node puts every top-level node under a single Canvas.
func contentRoots(res *normalize.Result) []*normalize.CanonicalNode {
	if !res.WrapCanvas {
		return res.Roots
	}

	return []*normalize.CanonicalNode{{Element: "Canvas", Children: res.Roots}}
}

// writeNode renders one node at the buffer's current depth.
func (g *Generator) writeNode(b *emit.Buffer, n *normalize.CanonicalNode) {
	leaf := len(n.Children) == 0 && len(n.Nested) == 0 && n.InlineText == ""

	if len(n.Attrs) <= inlineAttrLimit {
		open := "<" + n.Element
		for _, a := range n.Attrs {
			open += " " + attrText(a)
		}

		if leaf {
			b.Line(open + "/>")

			return
		}

		b.Line(open + ">")
	} else {
		b.Line("<" + n.Element)
		b.Indent()

		for i, a := range n.Attrs {
			line := attrText(a)
			if i == len(n.Attrs)-1 {
				if leaf {
					line += "/>"
				} else {
					line += ">"
				}
			}

			b.Line(line)
		}

		b.Dedent()

		if leaf {
			return
		}
	}

	b.Indent()
	g.writeContent(b, n)
	b.Dedent()
	b.Line("</" + n.Element + ">")
}

// writeContent renders a node's inner content: inline text first, then
// nested property elements, then children.
func (g *Generator) writeContent(b *emit.Buffer, n *normalize.CanonicalNode) {
	if n.InlineText != "" {
		for _, line := range strings.Split(n.InlineText, "\n") {
			b.Line(textLine(line))
		}
	}

	for _, nested := range n.Nested {
		owner := n.Element + "." + nested.Property
		b.Line("<" + owner + ">")
		b.Indent()

		for _, el := range nested.Els {
			emit.WriteEl(b, el)
		}

		b.Dedent()
		b.Line("</" + owner + ">")
	}

	for _, child := range n.Children {
		g.writeNode(b, child)
	}
}

// attrText renders one name="value" pair with the value escaped.
func attrText(a emit.Attr) string {
	return a.Name + `="` + emit.EscapeAttr(a.Value) + `"`
}

// textLine escapes element text. Binding expressions pass through verbatim.
func textLine(s string) string {
	if convert.IsExpression(s) {
		return s
	}

	return emit.EscapeText(s)
}
