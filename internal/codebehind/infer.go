package codebehind

import (
	"strings"

	"axamlforge/internal/naming"
	"axamlforge/internal/normalize"
)

// collectionType is the inferred type for list-shaped bindings.
const collectionType = "ObservableCollection<string>"

// inferType maps a bindable property name to a C# type. The name's first
// and last words drive the decision; anything unrecognized is a string.
func inferType(b normalize.Binding) string {
	tokens := naming.Tokenize(b.Path)
	if len(tokens) == 0 {
		return "string"
	}

	switch strings.ToLower(tokens[0]) {
	case "is", "has", "can", "should":
		return "bool"
	}

	switch strings.ToLower(tokens[len(tokens)-1]) {
	case "count", "index", "total":
		return "int"
	case "price", "amount", "percent", "progress", "value", "width", "height", "opacity":
		return "double"
	case "date", "time":
		return "DateTime"
	case "items", "list":
		return collectionType
	}

	// A plural bound to an items source is a collection even without a
	// list-ish suffix.
	if b.Target == "ItemsSource" && strings.HasSuffix(b.Path, "s") {
		return collectionType
	}

	return "string"
}

// initializer returns the field initializer for a type, or "" for types
// whose C# default is fine.
func initializer(typ string) string {
	switch typ {
	case "string":
		return "string.Empty"
	case collectionType:
		return "new()"
	default:
		return ""
	}
}

// isCommandPath reports whether a binding path names a command member.
func isCommandPath(path string) bool {
	return strings.HasSuffix(path, "Command")
}

// commandBase strips the Command suffix for method naming. A path that is
// nothing but the suffix keeps its full name.
func commandBase(path string) string {
	base := strings.TrimSuffix(path, "Command")
	if base == "" {
		return path
	}

	return base
}
