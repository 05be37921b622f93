package convert

import (
	"github.com/cockroachdb/errors"

	"axamlforge/internal/emit"
	"axamlforge/internal/mapping"
	"axamlforge/options"
)

// Result is the outcome of one conversion. Exactly one of the three shapes
// is populated: Text is a single attribute value for the rule's target,
// Attrs carries converter-named attributes, and Els carries nested elements
// (wrapped in a property element when Nested is set, appended as children
// otherwise).
type Result struct {
	Text   string
	Attrs  []emit.Attr
	Els    []emit.El
	Nested bool
}

// textResult wraps a plain attribute value.
func textResult(s string) Result { return Result{Text: s} }

// Convert runs value through the rule's converter. A nil value or a failed
// conversion returns an error; the caller decides whether that is a
// diagnostic or a hard failure.
func Convert(value any, rule mapping.PropertyRule, opts options.ExportOptions) (Result, error) {
	if value == nil {
		return Result{}, errors.New("no value")
	}

	switch rule.Kind {
	case mapping.ConvertText:
		return convertText(value, opts)
	case mapping.ConvertNumber:
		return convertNumber(value)
	case mapping.ConvertBool:
		return convertBool(value)
	case mapping.ConvertColor:
		return convertColor(value)
	case mapping.ConvertBrush:
		return convertBrush(value, opts)
	case mapping.ConvertThickness:
		return convertThickness(value)
	case mapping.ConvertCornerRadius:
		return convertCornerRadius(value)
	case mapping.ConvertEnum:
		return convertEnum(value, rule)
	case mapping.ConvertBinding:
		return convertBinding(value, rule, opts)
	case mapping.ConvertGridDefs:
		return convertGridDefs(value)
	case mapping.ConvertGeometry:
		return convertGeometry(value, rule)
	case mapping.ConvertItems:
		return convertItems(value, rule, opts)
	case mapping.ConvertTransform:
		return convertTransform(value)
	case mapping.ConvertEffect:
		return convertEffect(value)
	case mapping.ConvertBoxShadow:
		return convertBoxShadow(value)
	default:
		return Result{}, errors.Newf("unknown converter kind %d", rule.Kind)
	}
}

// asFloat coerces JSON numbers and Go ints.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asMap coerces a JSON object.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)

	return m, ok
}

// asSlice coerces a JSON array.
func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)

	return s, ok
}

// mapFloat reads a numeric field from a JSON object, trying the given keys
// in order.
func mapFloat(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if f, ok := asFloat(v); ok {
				return f, true
			}
		}
	}

	return 0, false
}

// mapString reads a string field from a JSON object, trying the given keys
// in order.
func mapString(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}

	return "", false
}
