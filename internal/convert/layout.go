package convert

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"axamlforge/internal/emit"
	"axamlforge/internal/naming"
)

// sides is a parsed four-sided value in left, top, right, bottom order.
type sides struct {
	left, top, right, bottom float64
}

// parseSides accepts the thickness value shapes: a single number, an object
// with side or axis keys, an array of 1/2/4 numbers, or a numeric string.
func parseSides(value any) (sides, error) {
	if f, ok := asFloat(value); ok {
		return sides{f, f, f, f}, nil
	}

	if m, ok := asMap(value); ok {
		if h, okH := mapFloat(m, "horizontal", "x"); okH {
			v, _ := mapFloat(m, "vertical", "y")

			return sides{h, v, h, v}, nil
		}

		l, _ := mapFloat(m, "left", "l")
		t, _ := mapFloat(m, "top", "t")
		r, _ := mapFloat(m, "right", "r")
		b, _ := mapFloat(m, "bottom", "b")

		return sides{l, t, r, b}, nil
	}

	if arr, ok := asSlice(value); ok {
		nums := make([]float64, 0, len(arr))
		for _, e := range arr {
			f, ok := asFloat(e)
			if !ok {
				return sides{}, errors.New("thickness array must be numeric")
			}

			nums = append(nums, f)
		}

		switch len(nums) {
		case 1:
			return sides{nums[0], nums[0], nums[0], nums[0]}, nil
		case 2:
			return sides{nums[0], nums[1], nums[0], nums[1]}, nil
		case 4:
			return sides{nums[0], nums[1], nums[2], nums[3]}, nil
		default:
			return sides{}, errors.Newf("thickness array has %d entries, want 1, 2, or 4", len(nums))
		}
	}

	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return sides{}, errors.Newf("%q is not a thickness", s)
		}

		return sides{f, f, f, f}, nil
	}

	return sides{}, errors.Newf("value of type %T is not a thickness", value)
}

// convertThickness collapses to the shortest form: uniform "N", axis pair
// "H,V", or the full "L,T,R,B".
func convertThickness(value any) (Result, error) {
	s, err := parseSides(value)
	if err != nil {
		return Result{}, err
	}

	switch {
	case s.left == s.top && s.top == s.right && s.right == s.bottom:
		return textResult(emit.Float(s.left)), nil
	case s.left == s.right && s.top == s.bottom:
		return textResult(emit.Float(s.left) + "," + emit.Float(s.top)), nil
	default:
		return textResult(strings.Join([]string{
			emit.Float(s.left), emit.Float(s.top), emit.Float(s.right), emit.Float(s.bottom),
		}, ",")), nil
	}
}

// convertCornerRadius collapses to uniform "N" or the four-corner form in
// top-left, top-right, bottom-right, bottom-left order.
func convertCornerRadius(value any) (Result, error) {
	if f, ok := asFloat(value); ok {
		return textResult(emit.Float(f)), nil
	}

	var corners [4]float64

	if m, ok := asMap(value); ok {
		corners[0], _ = mapFloat(m, "topLeft", "tl")
		corners[1], _ = mapFloat(m, "topRight", "tr")
		corners[2], _ = mapFloat(m, "bottomRight", "br")
		corners[3], _ = mapFloat(m, "bottomLeft", "bl")
	} else if arr, ok := asSlice(value); ok && len(arr) == 4 {
		for i, e := range arr {
			f, ok := asFloat(e)
			if !ok {
				return Result{}, errors.New("corner radius array must be numeric")
			}

			corners[i] = f
		}
	} else {
		return Result{}, errors.Newf("value of type %T is not a corner radius", value)
	}

	if corners[0] == corners[1] && corners[1] == corners[2] && corners[2] == corners[3] {
		return textResult(emit.Float(corners[0])), nil
	}

	parts := make([]string, 4)
	for i, c := range corners {
		parts[i] = emit.Float(c)
	}

	return textResult(strings.Join(parts, ",")), nil
}

// convertGridDefs renders row/column definition lists: a count becomes that
// many star rows, array entries become Auto or star sizes, strings pass
// through.
func convertGridDefs(value any) (Result, error) {
	if f, ok := asFloat(value); ok {
		n := int(f)
		if n <= 0 {
			return Result{}, errors.Newf("definition count %d is not positive", n)
		}

		parts := make([]string, n)
		for i := range parts {
			parts[i] = "*"
		}

		return textResult(strings.Join(parts, ",")), nil
	}

	if arr, ok := asSlice(value); ok {
		parts := make([]string, 0, len(arr))
		for _, e := range arr {
			if f, ok := asFloat(e); ok {
				if f == 0 {
					parts = append(parts, "Auto")
				} else if f == 1 {
					parts = append(parts, "*")
				} else {
					parts = append(parts, emit.Float(f)+"*")
				}

				continue
			}

			s, ok := e.(string)
			if !ok {
				return Result{}, errors.New("definition entries must be numbers or strings")
			}

			if naming.Fold(s) == "auto" {
				parts = append(parts, "Auto")
			} else {
				parts = append(parts, s)
			}
		}

		return textResult(strings.Join(parts, ",")), nil
	}

	if s, ok := value.(string); ok {
		return textResult(s), nil
	}

	return Result{}, errors.Newf("value of type %T is not a definition list", value)
}
