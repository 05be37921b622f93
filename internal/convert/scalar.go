package convert

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"axamlforge/internal/emit"
	"axamlforge/internal/mapping"
	"axamlforge/internal/naming"
)

func boolLiteral(b bool) string {
	if b {
		return "True"
	}

	return "False"
}

// convertNumber renders numbers in trimmed decimal form. Numeric strings
// parse first; binding expressions pass through.
func convertNumber(value any) (Result, error) {
	if f, ok := asFloat(value); ok {
		return finiteResult(f)
	}

	if s, ok := value.(string); ok {
		if IsExpression(s) {
			return textResult(s), nil
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Result{}, errors.Newf("%q is not a number", s)
		}

		return finiteResult(f)
	}

	return Result{}, errors.Newf("value of type %T is not numeric", value)
}

// finiteResult rejects NaN and infinities, which ParseFloat accepts.
func finiteResult(f float64) (Result, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Result{}, errors.New("value is not finite")
	}

	return textResult(emit.Float(f)), nil
}

// boolWords maps folded string literals onto booleans.
var boolWords = map[string]bool{
	"true": true, "yes": true, "on": true, "1": true,
	"false": false, "no": false, "off": false, "0": false,
}

// convertBool renders True/False.
func convertBool(value any) (Result, error) {
	switch v := value.(type) {
	case bool:
		return textResult(boolLiteral(v)), nil
	case string:
		if IsExpression(v) {
			return textResult(v), nil
		}

		if b, ok := boolWords[naming.Fold(v)]; ok {
			return textResult(boolLiteral(b)), nil
		}

		return Result{}, errors.Newf("%q is not a boolean", v)
	default:
		if f, ok := asFloat(value); ok {
			return textResult(boolLiteral(f != 0)), nil
		}

		return Result{}, errors.Newf("value of type %T is not a boolean", value)
	}
}

// convertEnum maps a scene literal through the rule's value table. Unknown
// literals are a conversion failure, not a silent passthrough.
func convertEnum(value any, rule mapping.PropertyRule) (Result, error) {
	var key string

	switch v := value.(type) {
	case string:
		if IsExpression(v) {
			return textResult(v), nil
		}

		key = naming.Fold(v)
	case bool:
		key = strconv.FormatBool(v)
	default:
		if f, ok := asFloat(value); ok {
			key = emit.Float(f)
		} else {
			return Result{}, errors.Newf("value of type %T is not an enum literal", value)
		}
	}

	if mapped, ok := rule.EnumValues[key]; ok {
		return textResult(mapped), nil
	}

	return Result{}, errors.Newf("%q is not a recognized %s value", key, rule.Source)
}
