package mapping

//go:generate go tool stringer -type=ConverterKind -output=converterkind_string.go

// ConverterKind selects the value converter a property rule runs its scene
// value through. The zero value is plain text, so an unspecified kind is
// always safe.
type ConverterKind int

const (
	// ConvertText passes strings through, auto-wrapping capitalized dotted
	// paths into binding expressions.
	ConvertText ConverterKind = iota
	// ConvertNumber renders numbers in trimmed decimal form.
	ConvertNumber
	// ConvertBool renders True/False.
	ConvertBool
	// ConvertColor normalizes rgb()/rgba()/hex/named colors to hex literals.
	ConvertColor
	// ConvertBrush renders solid colors as attributes and gradient objects
	// as nested brush elements.
	ConvertBrush
	// ConvertThickness collapses margin-like values to 1, 2, or 4 numbers.
	ConvertThickness
	// ConvertCornerRadius collapses corner radii the same way.
	ConvertCornerRadius
	// ConvertEnum maps scene enum literals through the rule's value table.
	ConvertEnum
	// ConvertBinding wraps bare identifiers into binding expressions.
	ConvertBinding
	// ConvertGridDefs renders row/column definition lists.
	ConvertGridDefs
	// ConvertGeometry renders point lists and path data.
	ConvertGeometry
	// ConvertItems expands a string list into child item elements.
	ConvertItems
	// ConvertTransform renders rotation/scale/translation objects as nested
	// transform elements.
	ConvertTransform
	// ConvertEffect renders shadow/blur objects as nested effect elements.
	ConvertEffect
	// ConvertBoxShadow renders shadow objects as a box-shadow attribute.
	ConvertBoxShadow

	// ConvertTotal is the number of converter kinds defined.
	ConvertTotal = int(iota)
)

// IsValid reports whether the kind is one of the defined converters.
func (k ConverterKind) IsValid() bool {
	return k >= 0 && int(k) < ConvertTotal
}

// Nested reports whether the converter can produce nested property elements
// instead of an attribute value.
func (k ConverterKind) Nested() bool {
	switch k {
	case ConvertBrush, ConvertTransform, ConvertEffect:
		return true
	default:
		return false
	}
}
