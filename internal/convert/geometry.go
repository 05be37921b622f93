package convert

import (
	"strings"

	"github.com/cockroachdb/errors"

	"axamlforge/internal/emit"
	"axamlforge/internal/mapping"
	"axamlforge/options"
)

// point is one parsed 2D coordinate.
type point struct {
	x, y float64
}

func (p point) String() string {
	return emit.Float(p.x) + "," + emit.Float(p.y)
}

// parsePoint accepts [x,y] arrays and {x,y} objects.
func parsePoint(v any) (point, bool) {
	if arr, ok := asSlice(v); ok && len(arr) == 2 {
		x, okX := asFloat(arr[0])
		y, okY := asFloat(arr[1])

		return point{x, y}, okX && okY
	}

	if m, ok := asMap(v); ok {
		x, okX := mapFloat(m, "x")
		y, okY := mapFloat(m, "y")

		return point{x, y}, okX && okY
	}

	return point{}, false
}

// convertGeometry renders path-data strings verbatim and point lists as
// attributes: two points become StartPoint/EndPoint, more become Points.
func convertGeometry(value any, rule mapping.PropertyRule) (Result, error) {
	if s, ok := value.(string); ok {
		if rule.Target != "" {
			return textResult(s), nil
		}

		return Result{Attrs: []emit.Attr{{Name: "Data", Value: s}}}, nil
	}

	arr, ok := asSlice(value)
	if !ok {
		return Result{}, errors.Newf("value of type %T is not a geometry", value)
	}

	points := make([]point, 0, len(arr))
	for _, e := range arr {
		p, ok := parsePoint(e)
		if !ok {
			return Result{}, errors.New("geometry entries must be [x,y] pairs or {x,y} objects")
		}

		points = append(points, p)
	}

	switch {
	case len(points) < 2:
		return Result{}, errors.Newf("geometry needs at least 2 points, got %d", len(points))
	case len(points) == 2:
		return Result{Attrs: []emit.Attr{
			{Name: "StartPoint", Value: points[0].String()},
			{Name: "EndPoint", Value: points[1].String()},
		}}, nil
	default:
		parts := make([]string, len(points))
		for i, p := range points {
			parts[i] = p.String()
		}

		return Result{Attrs: []emit.Attr{{Name: "Points", Value: strings.Join(parts, " ")}}}, nil
	}
}

// convertItems expands a literal list into child item elements. A string
// value is treated as an items-source binding path instead.
func convertItems(value any, rule mapping.PropertyRule, opts options.ExportOptions) (Result, error) {
	elem := rule.ItemElement
	if elem == "" {
		elem = "ListBoxItem"
	}

	attr := rule.ItemAttr
	if attr == "" {
		attr = "Content"
	}

	if s, ok := value.(string); ok {
		switch {
		case IsExpression(s):
			return Result{Attrs: []emit.Attr{{Name: "ItemsSource", Value: s}}}, nil
		case isIdentPath(s):
			wrapped := wrapBinding(pascalPath(s), "ItemsSource", opts)

			return Result{Attrs: []emit.Attr{{Name: "ItemsSource", Value: wrapped}}}, nil
		default:
			return Result{}, errors.Newf("%q is not an items source", s)
		}
	}

	arr, ok := asSlice(value)
	if !ok {
		return Result{}, errors.Newf("value of type %T is not an item list", value)
	}

	els := make([]emit.El, 0, len(arr))
	for _, e := range arr {
		var text string

		switch v := e.(type) {
		case string:
			text = v
		case map[string]any:
			t, ok := mapString(v, "text", "label", "title")
			if !ok {
				return Result{}, errors.New("item objects need a text field")
			}

			text = t
		default:
			f, ok := asFloat(e)
			if !ok {
				return Result{}, errors.Newf("item of type %T is not textual", e)
			}

			text = emit.Float(f)
		}

		els = append(els, emit.El{Name: elem, Attrs: []emit.Attr{{Name: attr, Value: text}}})
	}

	return Result{Els: els}, nil
}
