package convert

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"axamlforge/internal/emit"
	"axamlforge/internal/mapping"
	"axamlforge/internal/naming"
	"axamlforge/options"
)

// bindingDelimiters are the markup-extension prefixes passed through
// verbatim.
var bindingDelimiters = []string{
	"{Binding",
	"{DynamicResource",
	"{StaticResource",
	"{TemplateBinding",
	"{CompiledBinding",
}

// IsExpression reports whether s is already a markup extension.
func IsExpression(s string) bool {
	for _, d := range bindingDelimiters {
		if strings.HasPrefix(s, d) {
			return true
		}
	}

	return false
}

// isDottedPath reports whether s is a capitalized dotted property path like
// "User.Name". Single words never qualify, so plain labels stay literal.
func isDottedPath(s string) bool {
	if !strings.Contains(s, ".") {
		return false
	}

	for _, seg := range strings.Split(s, ".") {
		if !isCapitalizedIdent(seg) {
			return false
		}
	}

	return true
}

// isCapitalizedIdent reports whether s is an identifier starting with an
// uppercase letter and containing at least one lowercase letter, so
// shouting literals like "OK" stay literal.
func isCapitalizedIdent(s string) bool {
	if s == "" {
		return false
	}

	runes := []rune(s)
	if !unicode.IsUpper(runes[0]) {
		return false
	}

	hasLower := false
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}

		if unicode.IsLower(r) {
			hasLower = true
		}
	}

	return hasLower
}

// isIdentPath reports whether s is a plain identifier path (dots allowed),
// the shape a binding-typed property accepts as a path.
func isIdentPath(s string) bool {
	if s == "" {
		return false
	}

	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return false
		}

		for i, r := range seg {
			if i == 0 && !unicode.IsLetter(r) && r != '_' {
				return false
			}

			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

// wrapBinding builds "{Binding Path, Mode=X}". Mode is omitted for targets
// that have no meaningful direction (commands, items sources).
func wrapBinding(path, target string, opts options.ExportOptions) string {
	if strings.Contains(target, "Command") || target == "ItemsSource" {
		return "{Binding " + path + "}"
	}

	return "{Binding " + path + ", Mode=" + opts.BindingMode.Literal() + "}"
}

// convertText passes strings through, auto-wrapping capitalized dotted paths
// into bindings. Numbers and booleans render in their canonical text forms.
func convertText(value any, opts options.ExportOptions) (Result, error) {
	switch v := value.(type) {
	case string:
		if IsExpression(v) {
			return textResult(v), nil
		}

		if isDottedPath(v) {
			return textResult(wrapBinding(v, "", opts)), nil
		}

		return textResult(v), nil
	case bool:
		return textResult(boolLiteral(v)), nil
	default:
		if f, ok := asFloat(value); ok {
			return textResult(emit.Float(f)), nil
		}

		return Result{}, errors.Newf("value of type %T is not textual", value)
	}
}

// convertBinding wraps bare identifier paths into bindings. Non-identifier
// strings fall back to literal text.
func convertBinding(value any, rule mapping.PropertyRule, opts options.ExportOptions) (Result, error) {
	s, ok := value.(string)
	if !ok {
		return convertText(value, opts)
	}

	if IsExpression(s) {
		return textResult(s), nil
	}

	if isIdentPath(s) {
		return textResult(wrapBinding(pascalPath(s), rule.Target, opts)), nil
	}

	return textResult(s), nil
}

// pascalPath normalizes each path segment to PascalCase so the markup
// agrees with the generated view-model member names.
func pascalPath(s string) string {
	segs := strings.Split(s, ".")
	for i, seg := range segs {
		segs[i] = naming.Pascal(seg)
	}

	return strings.Join(segs, ".")
}
