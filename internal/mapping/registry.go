package mapping

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Registry is the merged view of builtin and overlay mappings. Lookups fold
// and alias-resolve the source type, so "Text-Box" finds "textinput" via the
// alias table.
type Registry struct {
	mappings []Mapping
	bySource map[string]int
}

// NewRegistry returns a registry holding the builtin table.
func NewRegistry() *Registry {
	r := &Registry{bySource: make(map[string]int)}
	for _, m := range builtins() {
		// builtins are validated by their own test, not at startup
		r.put(m)
	}

	return r
}

// put inserts or shadows a mapping keyed by its folded source type.
func (r *Registry) put(m Mapping) {
	key := foldName(m.SourceType)
	if i, ok := r.bySource[key]; ok {
		r.mappings[i] = m

		return
	}

	r.bySource[key] = len(r.mappings)
	r.mappings = append(r.mappings, m)
}

// Add validates and inserts a mapping, shadowing any existing one with the
// same folded source type.
func (r *Registry) Add(m Mapping) error {
	if err := validate(m); err != nil {
		return err
	}

	r.put(m)

	return nil
}

// validate rejects mappings that could not render.
func validate(m Mapping) error {
	if m.SourceType == "" {
		return errors.New("mapping has empty source type")
	}

	if m.Target == "" {
		return errors.Newf("mapping %q has empty target element", m.SourceType)
	}

	if m.Prefix != "" && m.Namespace == "" {
		return errors.Newf("mapping %q has prefix %q without an xmlns", m.SourceType, m.Prefix)
	}

	if m.Prefix == "" && m.Namespace != "" {
		return errors.Newf("mapping %q has an xmlns without a prefix", m.SourceType)
	}

	for _, rl := range m.Rules {
		if rl.Source == "" {
			return errors.Newf("mapping %q has a rule with empty source", m.SourceType)
		}

		if rl.Target == "" && rl.Kind != ConvertItems && rl.Kind != ConvertGeometry {
			return errors.Newf("mapping %q rule %q has empty target", m.SourceType, rl.Source)
		}

		if !rl.Kind.IsValid() {
			return errors.Newf("mapping %q rule %q has unknown converter", m.SourceType, rl.Source)
		}
	}

	for _, ev := range m.Events {
		if ev.Source == "" || ev.Attr == "" {
			return errors.Newf("mapping %q has an incomplete event rule", m.SourceType)
		}
	}

	return nil
}

// LookupBySourceType resolves a scene node type to its mapping. The type is
// folded and alias-resolved before lookup.
func (r *Registry) LookupBySourceType(t string) (Mapping, bool) {
	i, ok := r.bySource[CanonicalType(t)]
	if !ok {
		return Mapping{}, false
	}

	return r.mappings[i], true
}

// LookupByTargetElement returns every mapping rendering to the given element
// name, in table order.
func (r *Registry) LookupByTargetElement(element string) []Mapping {
	var out []Mapping
	for _, m := range r.mappings {
		if m.Target == element {
			out = append(out, m)
		}
	}

	return out
}

// ListByCategory returns the mappings of one category in table order.
func (r *Registry) ListByCategory(c Category) []Mapping {
	var out []Mapping
	for _, m := range r.mappings {
		if m.Category == c {
			out = append(out, m)
		}
	}

	return out
}

// All returns every mapping in table order.
func (r *Registry) All() []Mapping {
	out := make([]Mapping, len(r.mappings))
	copy(out, r.mappings)

	return out
}

// SourceTypes returns the canonical source types in sorted order.
func (r *Registry) SourceTypes() []string {
	out := make([]string, 0, len(r.mappings))
	for _, m := range r.mappings {
		out = append(out, m.SourceType)
	}

	sort.Strings(out)

	return out
}

// Len returns the number of registered mappings.
func (r *Registry) Len() int {
	return len(r.mappings)
}
