package convert

import (
	"strings"

	"github.com/cockroachdb/errors"

	"axamlforge/internal/emit"
	"axamlforge/internal/naming"
)

// defaultShadowColor is used when a shadow object names no color.
const defaultShadowColor = "#66000000"

// convertTransform renders rotation/scale/translation/skew objects as nested
// transform elements in a fixed order. A bare number is a rotation.
func convertTransform(value any) (Result, error) {
	if f, ok := asFloat(value); ok {
		return nestedResult(rotateEl(f)), nil
	}

	m, ok := asMap(value)
	if !ok {
		return Result{}, errors.Newf("value of type %T is not a transform", value)
	}

	var els []emit.El

	if angle, ok := mapFloat(m, "rotation", "rotate", "angle"); ok && angle != 0 {
		els = append(els, rotateEl(angle))
	}

	sx, okX := mapFloat(m, "scaleX")
	sy, okY := mapFloat(m, "scaleY")

	if s, ok := mapFloat(m, "scale"); ok {
		sx, sy = s, s
		okX, okY = true, true
	}

	if (okX || okY) && !(sx == 1 && sy == 1) {
		if !okX {
			sx = 1
		}

		if !okY {
			sy = 1
		}

		els = append(els, emit.El{Name: "ScaleTransform", Attrs: []emit.Attr{
			{Name: "ScaleX", Value: emit.Float(sx)},
			{Name: "ScaleY", Value: emit.Float(sy)},
		}})
	}

	tx, okTX := mapFloat(m, "translateX", "offsetX")
	ty, okTY := mapFloat(m, "translateY", "offsetY")

	if (okTX || okTY) && !(tx == 0 && ty == 0) {
		els = append(els, emit.El{Name: "TranslateTransform", Attrs: []emit.Attr{
			{Name: "X", Value: emit.Float(tx)},
			{Name: "Y", Value: emit.Float(ty)},
		}})
	}

	kx, okKX := mapFloat(m, "skewX")
	ky, okKY := mapFloat(m, "skewY")

	if (okKX || okKY) && !(kx == 0 && ky == 0) {
		els = append(els, emit.El{Name: "SkewTransform", Attrs: []emit.Attr{
			{Name: "AngleX", Value: emit.Float(kx)},
			{Name: "AngleY", Value: emit.Float(ky)},
		}})
	}

	switch len(els) {
	case 0:
		return Result{}, errors.New("transform object has no effective components")
	case 1:
		return nestedResult(els[0]), nil
	default:
		return nestedResult(emit.El{Name: "TransformGroup", Children: els}), nil
	}
}

func rotateEl(angle float64) emit.El {
	return emit.El{Name: "RotateTransform", Attrs: []emit.Attr{
		{Name: "Angle", Value: emit.Float(angle)},
	}}
}

func nestedResult(el emit.El) Result {
	return Result{Els: []emit.El{el}, Nested: true}
}

// convertEffect renders shadow and blur objects as nested effect elements.
func convertEffect(value any) (Result, error) {
	m, ok := asMap(value)
	if !ok {
		return Result{}, errors.Newf("value of type %T is not an effect", value)
	}

	kind, _ := mapString(m, "type", "kind")
	kind = naming.Fold(kind)

	blur, hasBlur := mapFloat(m, "blur", "blurRadius", "radius")
	dx, hasDX := mapFloat(m, "offsetX", "dx")
	dy, hasDY := mapFloat(m, "offsetY", "dy")

	isBlur := kind == "blur" || (kind == "" && hasBlur && !hasDX && !hasDY)

	if isBlur {
		if !hasBlur {
			return Result{}, errors.New("blur effect needs a radius")
		}

		return nestedResult(emit.El{Name: "BlurEffect", Attrs: []emit.Attr{
			{Name: "Radius", Value: emit.Float(blur)},
		}}), nil
	}

	if !hasDX && !hasDY && !hasBlur {
		return Result{}, errors.New("shadow object has no offsets or blur")
	}

	color := defaultShadowColor
	if raw, ok := mapString(m, "color"); ok {
		c, err := NormalizeColor(raw)
		if err != nil {
			return Result{}, err
		}

		color = c
	}

	return nestedResult(emit.El{Name: "DropShadowEffect", Attrs: []emit.Attr{
		{Name: "OffsetX", Value: emit.Float(dx)},
		{Name: "OffsetY", Value: emit.Float(dy)},
		{Name: "BlurRadius", Value: emit.Float(blur)},
		{Name: "Color", Value: color},
	}}), nil
}

// convertBoxShadow renders a shadow object in box-shadow attribute syntax:
// "offsetX offsetY blur spread color". Strings pass through.
func convertBoxShadow(value any) (Result, error) {
	if s, ok := value.(string); ok {
		return textResult(s), nil
	}

	m, ok := asMap(value)
	if !ok {
		return Result{}, errors.Newf("value of type %T is not a shadow", value)
	}

	dx, _ := mapFloat(m, "offsetX", "dx")
	dy, _ := mapFloat(m, "offsetY", "dy")
	blur, _ := mapFloat(m, "blur", "blurRadius", "radius")
	spread, _ := mapFloat(m, "spread")

	color := defaultShadowColor
	if raw, ok := mapString(m, "color"); ok {
		c, err := NormalizeColor(raw)
		if err != nil {
			return Result{}, err
		}

		color = c
	}

	return textResult(strings.Join([]string{
		emit.Float(dx), emit.Float(dy), emit.Float(blur), emit.Float(spread), color,
	}, " ")), nil
}
