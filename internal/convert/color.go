package convert

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"axamlforge/internal/emit"
	"axamlforge/options"
)

// NormalizeColor turns any supported color spelling into a markup color:
// hex literals uppercase (3-digit forms expand), rgb()/rgba() become hex
// with the alpha byte first, named colors capitalize, expressions pass
// through.
func NormalizeColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty color")
	}

	if IsExpression(s) {
		return s, nil
	}

	if strings.HasPrefix(s, "#") {
		return normalizeHex(s)
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return rgbCallToHex(s)
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return "", errors.Newf("%q is not a color", s)
		}
	}

	return strings.ToUpper(s[:1]) + s[1:], nil
}

func normalizeHex(s string) (string, error) {
	hex := strings.ToUpper(s[1:])
	for _, r := range hex {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return "", errors.Newf("%q is not a hex color", s)
		}
	}

	switch len(hex) {
	case 3:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}

		return "#" + b.String(), nil
	case 6, 8:
		return "#" + hex, nil
	default:
		return "", errors.Newf("%q is not a hex color", s)
	}
}

// rgbCallToHex converts "rgb(r,g,b)" and "rgba(r,g,b,a)" calls. Alpha is a
// 0..1 fraction and lands in the leading byte.
func rgbCallToHex(s string) (string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", errors.Newf("%q is not a color function", s)
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	hasAlpha := strings.HasPrefix(s, "rgba(")

	if (hasAlpha && len(parts) != 4) || (!hasAlpha && len(parts) != 3) {
		return "", errors.Newf("%q has the wrong number of components", s)
	}

	var ch [3]int
	for i := range 3 {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return "", errors.Newf("%q has an out-of-range component", s)
		}

		ch[i] = n
	}

	if !hasAlpha {
		return fmt.Sprintf("#%02X%02X%02X", ch[0], ch[1], ch[2]), nil
	}

	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || a < 0 || a > 1 {
		return "", errors.Newf("%q has an out-of-range alpha", s)
	}

	return fmt.Sprintf("#%02X%02X%02X%02X", int(math.Round(a*255)), ch[0], ch[1], ch[2]), nil
}

// componentColor builds a hex color from an {r,g,b[,a]} object.
func componentColor(m map[string]any) (string, error) {
	r, okR := mapFloat(m, "r", "red")
	g, okG := mapFloat(m, "g", "green")
	b, okB := mapFloat(m, "b", "blue")

	if !okR || !okG || !okB {
		return "", errors.New("color object needs r, g, and b")
	}

	clamp := func(f float64) int {
		return int(math.Round(math.Min(255, math.Max(0, f))))
	}

	if a, ok := mapFloat(m, "a", "alpha"); ok {
		if a <= 1 {
			a *= 255
		}

		return fmt.Sprintf("#%02X%02X%02X%02X", clamp(a), clamp(r), clamp(g), clamp(b)), nil
	}

	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b)), nil
}

func convertColor(value any) (Result, error) {
	switch v := value.(type) {
	case string:
		c, err := NormalizeColor(v)
		if err != nil {
			return Result{}, err
		}

		return textResult(c), nil
	case map[string]any:
		c, err := componentColor(v)
		if err != nil {
			return Result{}, err
		}

		return textResult(c), nil
	default:
		return Result{}, errors.Newf("value of type %T is not a color", value)
	}
}

// gradientStop is one parsed stop, kept sorted by offset.
type gradientStop struct {
	color  string
	offset float64
}

// fallback stops used when a gradient declares none.
var fallbackStops = []gradientStop{
	{color: "#FFFFFFFF", offset: 0},
	{color: "#FF000000", offset: 1},
}

// convertBrush renders solid values as a color attribute and gradient
// objects as a nested brush element. With gradients disabled the first stop
// color stands in as a solid.
func convertBrush(value any, opts options.ExportOptions) (Result, error) {
	m, ok := asMap(value)
	if !ok {
		return convertColor(value)
	}

	if _, isGradient := m["stops"]; !isGradient {
		return convertColor(value)
	}

	stops := parseStops(m["stops"])

	if !opts.IncludeGradients {
		return textResult(stops[0].color), nil
	}

	kind, _ := mapString(m, "type", "kind")

	var brush emit.El
	if strings.EqualFold(kind, "radial") {
		brush = emit.El{Name: "RadialGradientBrush"}
	} else {
		angle := 90.0
		if a, ok := mapFloat(m, "angle", "rotation"); ok {
			angle = a
		}

		start, end := gradientAxis(angle)
		brush = emit.El{
			Name: "LinearGradientBrush",
			Attrs: []emit.Attr{
				{Name: "StartPoint", Value: start},
				{Name: "EndPoint", Value: end},
			},
		}
	}

	for _, st := range stops {
		brush.Children = append(brush.Children, emit.El{
			Name: "GradientStop",
			Attrs: []emit.Attr{
				{Name: "Color", Value: st.color},
				{Name: "Offset", Value: emit.Float(st.offset)},
			},
		})
	}

	return Result{Els: []emit.El{brush}, Nested: true}, nil
}

// parseStops reads the stop list, dropping unreadable entries. No readable
// stops yields the white-to-black fallback; a single stop is duplicated at
// both ends.
func parseStops(v any) []gradientStop {
	entries, _ := asSlice(v)

	var stops []gradientStop
	for _, e := range entries {
		m, ok := asMap(e)
		if !ok {
			continue
		}

		raw, ok := mapString(m, "color")
		if !ok {
			continue
		}

		c, err := NormalizeColor(raw)
		if err != nil {
			continue
		}

		offset, _ := mapFloat(m, "offset", "position")
		stops = append(stops, gradientStop{color: c, offset: offset})
	}

	if len(stops) == 0 {
		return fallbackStops
	}

	if len(stops) == 1 {
		return []gradientStop{
			{color: stops[0].color, offset: 0},
			{color: stops[0].color, offset: 1},
		}
	}

	sort.SliceStable(stops, func(i, j int) bool { return stops[i].offset < stops[j].offset })

	return stops
}

// gradientAxis converts a gradient angle in degrees to percentage start and
// end points on the unit square. 90 degrees runs top to bottom.
func gradientAxis(angle float64) (string, string) {
	rad := angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)

	pct := func(f float64) string {
		return emit.Float(math.Round(f*100)/100) + "%"
	}

	start := pct(50-50*dx) + "," + pct(50-50*dy)
	end := pct(50+50*dx) + "," + pct(50+50*dy)

	return start, end
}
