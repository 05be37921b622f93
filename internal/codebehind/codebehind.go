package codebehind

import (
	"axamlforge/internal/common"
	"axamlforge/internal/emit"
	"axamlforge/internal/normalize"
)

// CodeBehind renders the partial class paired with the markup document.
func (g *Generator) CodeBehind(res *normalize.Result) string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	writeHeader(b)

	usings := []string{"Avalonia.Controls", "Avalonia.Markup.Xaml"}
	for _, h := range res.Handlers {
		if ns, ok := argsNamespace[h.Args]; ok {
			usings = common.AppendUnique(usings, ns)
		}
	}

	writeUsings(b, usings)

	b.Line("namespace " + g.opts.Namespace)
	b.Line("{")
	b.Indent()

	b.Line("public partial class " + g.opts.ClassName + " : " + g.opts.Root.Element())
	b.Line("{")
	b.Indent()

	b.Line("public " + g.opts.ClassName + "()")
	b.Line("{")
	b.Indent()
	b.Line("InitializeComponent();")

	if g.opts.IncludeViewModel {
		b.Line("DataContext = new " + g.opts.ViewModelClassName() + "();")
	}

	b.Dedent()
	b.Line("}")
	b.Blank()

	b.Line("private void InitializeComponent()")
	b.Line("{")
	b.Indent()
	b.Line("AvaloniaXamlLoader.Load(this);")
	b.Dedent()
	b.Line("}")

	for _, h := range res.Handlers {
		b.Blank()
		b.Line("private void " + h.Name + "(object? sender, " + h.Args + " e)")
		b.Line("{")
		b.Line("}")
	}

	b.Dedent()
	b.Line("}")
	b.Dedent()
	b.Line("}")

	return b.String()
}
