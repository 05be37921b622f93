package codebehind

import (
	"sort"

	"axamlforge/internal/emit"
	"axamlforge/options"
)

// Generator renders the C# companion artifacts for one export call.
type Generator struct {
	opts options.ExportOptions
}

// New returns a companion-source generator for the given options.
func New(opts options.ExportOptions) *Generator {
	return &Generator{opts: opts.Clamped()}
}

// argsNamespace maps event-args type names to the namespace providing them.
var argsNamespace = map[string]string{
	"RoutedEventArgs":                "Avalonia.Interactivity",
	"TappedEventArgs":                "Avalonia.Input",
	"KeyEventArgs":                   "Avalonia.Input",
	"GotFocusEventArgs":              "Avalonia.Input",
	"TextChangedEventArgs":           "Avalonia.Controls",
	"SelectionChangedEventArgs":      "Avalonia.Controls",
	"RangeBaseValueChangedEventArgs": "Avalonia.Controls.Primitives",
}

// writeHeader emits the auto-generated banner and nullable directive every
// companion file starts with.
func writeHeader(b *emit.Buffer) {
	b.Line("// <auto-generated>")
	b.Line("//     Code generated by axamlforge. DO NOT EDIT.")
	b.Line("// </auto-generated>")
	b.Line("#nullable enable")
	b.Blank()
}

// writeUsings emits using directives in sorted order.
func writeUsings(b *emit.Buffer, namespaces []string) {
	sorted := make([]string, len(namespaces))
	copy(sorted, namespaces)
	sort.Strings(sorted)

	for _, ns := range sorted {
		b.Line("using " + ns + ";")
	}

	b.Blank()
}
