package codebehind

import (
	"strings"
	"unicode"

	"axamlforge/internal/common"
	"axamlforge/internal/emit"
	"axamlforge/internal/naming"
	"axamlforge/internal/normalize"
)

// vmMembers is the partition of collected bindings into view-model members.
type vmMembers struct {
	props    []normalize.Binding
	commands []string
	// nested holds dotted and otherwise non-declarable paths; they surface
	// as a comment because they resolve against host model members.
	nested []string
}

func splitMembers(res *normalize.Result) vmMembers {
	var m vmMembers

	for _, bind := range res.Bindings {
		switch {
		case !isFlatIdent(bind.Path):
			m.nested = append(m.nested, bind.Path)
		case isCommandPath(bind.Path):
			m.commands = append(m.commands, bind.Path)
		default:
			m.props = append(m.props, bind)
		}
	}

	return m
}

// isFlatIdent reports whether a path can be declared as a C# member.
func isFlatIdent(path string) bool {
	for i, r := range path {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return path != ""
}

// ViewModel renders the view-model source in the configured idiom.
func (g *Generator) ViewModel(res *normalize.Result) string {
	members := splitMembers(res)

	if g.opts.MvvmToolkit {
		return g.toolkitViewModel(members)
	}

	return g.classicViewModel(members)
}

func (m vmMembers) usings(toolkit bool) []string {
	var usings []string
	if toolkit {
		usings = []string{"CommunityToolkit.Mvvm.ComponentModel"}
		if len(m.commands) > 0 {
			usings = append(usings, "CommunityToolkit.Mvvm.Input")
		}
	} else {
		usings = []string{"System.ComponentModel", "System.Runtime.CompilerServices"}
		if len(m.commands) > 0 {
			usings = append(usings, "System.Windows.Input")
		}
	}

	for _, p := range m.props {
		switch inferType(p) {
		case "DateTime":
			usings = common.AppendUnique(usings, "System")
		case collectionType:
			usings = common.AppendUnique(usings, "System.Collections.ObjectModel")
		}
	}

	return usings
}

func (g *Generator) classicViewModel(m vmMembers) string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	writeHeader(b)
	writeUsings(b, m.usings(false))

	b.Line("namespace " + g.opts.Namespace)
	b.Line("{")
	b.Indent()

	writeNestedComment(b, m.nested)
	b.Line("public partial class " + g.opts.ViewModelClassName() + " : INotifyPropertyChanged")
	b.Line("{")
	b.Indent()

	b.Line("public event PropertyChangedEventHandler? PropertyChanged;")

	for _, p := range m.props {
		typ := inferType(p)
		field := "_" + naming.Camel(p.Path)

		b.Blank()

		decl := "private " + typ + " " + field
		if init := initializer(typ); init != "" {
			decl += " = " + init
		}

		b.Line(decl + ";")
		b.Line("public " + typ + " " + p.Path)
		b.Line("{")
		b.Indent()
		b.Line("get => " + field + ";")
		b.Line("set")
		b.Line("{")
		b.Indent()
		b.Line("if (" + field + " == value) return;")
		b.Line(field + " = value;")
		b.Line("OnPropertyChanged();")
		b.Dedent()
		b.Line("}")
		b.Dedent()
		b.Line("}")
	}

	for _, cmd := range m.commands {
		b.Blank()
		b.Line("public ICommand? " + cmd + " { get; set; }")
	}

	b.Blank()
	b.Line("protected void OnPropertyChanged([CallerMemberName] string? propertyName = null)")
	b.Line("{")
	b.Indent()
	b.Line("PropertyChanged?.Invoke(this, new PropertyChangedEventArgs(propertyName));")
	b.Dedent()
	b.Line("}")

	b.Dedent()
	b.Line("}")
	b.Dedent()
	b.Line("}")

	return b.String()
}

func (g *Generator) toolkitViewModel(m vmMembers) string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	writeHeader(b)
	writeUsings(b, m.usings(true))

	b.Line("namespace " + g.opts.Namespace)
	b.Line("{")
	b.Indent()

	writeNestedComment(b, m.nested)
	b.Line("public partial class " + g.opts.ViewModelClassName() + " : ObservableObject")
	b.Line("{")
	b.Indent()

	first := true
	for _, p := range m.props {
		if !first {
			b.Blank()
		}

		first = false
		typ := inferType(p)

		decl := "private " + typ + " _" + naming.Camel(p.Path)
		if init := initializer(typ); init != "" {
			decl += " = " + init
		}

		b.Line("[ObservableProperty]")
		b.Line(decl + ";")
	}

	for _, cmd := range m.commands {
		if !first {
			b.Blank()
		}

		first = false
		b.Line("[RelayCommand]")
		b.Line("private void " + naming.Pascal(commandBase(cmd)) + "()")
		b.Line("{")
		b.Line("}")
	}

	b.Dedent()
	b.Line("}")
	b.Dedent()
	b.Line("}")

	return b.String()
}

// writeNestedComment notes binding paths the view-model cannot declare.
func writeNestedComment(b *emit.Buffer, nested []string) {
	if len(nested) == 0 {
		return
	}

	b.Line("// Nested binding paths resolve against host model members: " + strings.Join(nested, ", "))
}
