package mapping

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// OverlayFile represents the root of a YAML overlay document contributing
// user mappings. Overlays may shadow builtin source types.
type OverlayFile struct {
	// Version of the overlay schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Mappings is the list of contributed mappings.
	Mappings []Mapping `yaml:"mappings"`
}

// LoadFile loads and parses a YAML overlay file from the given path.
func LoadFile(path string) (*OverlayFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading overlay file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into an OverlayFile.
func Parse(data []byte) (*OverlayFile, error) {
	var of OverlayFile

	err := yaml.Unmarshal(data, &of)
	if err != nil {
		return nil, errors.Wrap(err, "parsing overlay YAML")
	}

	applyDefaults(&of)

	return &of, nil
}

// applyDefaults resolves the string-form kind and category names carried in
// YAML into their enum values.
func applyDefaults(of *OverlayFile) {
	if of.Version == "" {
		of.Version = "1"
	}

	for i := range of.Mappings {
		m := &of.Mappings[i]

		if c, ok := ParseCategory(m.CategoryName); ok {
			m.Category = c
		} else {
			m.Category = CategoryDisplay
		}

		for j := range m.Rules {
			m.Rules[j].Kind = parseKindName(m.Rules[j].KindName)
		}
	}
}

// kindNames maps overlay kind strings onto converter kinds. Empty means text.
var kindNames = map[string]ConverterKind{
	"text":      ConvertText,
	"number":    ConvertNumber,
	"bool":      ConvertBool,
	"color":     ConvertColor,
	"brush":     ConvertBrush,
	"thickness": ConvertThickness,
	"corner":    ConvertCornerRadius,
	"enum":      ConvertEnum,
	"binding":   ConvertBinding,
	"griddefs":  ConvertGridDefs,
	"geometry":  ConvertGeometry,
	"items":     ConvertItems,
	"transform": ConvertTransform,
	"effect":    ConvertEffect,
	"boxshadow": ConvertBoxShadow,
}

func parseKindName(name string) ConverterKind {
	if k, ok := kindNames[foldName(name)]; ok {
		return k
	}

	return ConvertText
}

// ApplyOverlay validates and merges every overlay mapping into the registry.
// The first invalid mapping aborts the merge.
func (r *Registry) ApplyOverlay(of *OverlayFile) error {
	for _, m := range of.Mappings {
		if err := r.Add(m); err != nil {
			return errors.Wrap(err, "applying overlay")
		}
	}

	return nil
}
