package mapping

import (
	"axamlforge/internal/common"
)

// Category groups mappings for listing and preview purposes.
type Category int

const (
	CategoryInput Category = iota
	CategoryDisplay
	CategoryShape
	CategoryContainer
	CategoryNavigation
	CategoryMedia

	// CategoryTotal is the number of categories defined.
	CategoryTotal = int(iota)
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryDisplay:
		return "display"
	case CategoryShape:
		return "shape"
	case CategoryContainer:
		return "container"
	case CategoryNavigation:
		return "navigation"
	case CategoryMedia:
		return "media"
	default:
		return common.UnknownStr
	}
}

// ParseCategory maps a listing string back onto a Category.
func ParseCategory(s string) (Category, bool) {
	for c := range CategoryTotal {
		if Category(c).String() == s {
			return Category(c), true
		}
	}

	return 0, false
}

// PropertyRule maps one scene property onto one target attribute.
type PropertyRule struct {
	// Source is the canonical scene property name (e.g. "fontSize").
	// Lookup folds both sides, so any separator style matches.
	Source string `yaml:"source"`

	// Target is the attribute name on the target element.
	Target string `yaml:"target"`

	// Kind selects the value converter. Zero value is plain text.
	Kind ConverterKind `yaml:"-"`

	// KindName carries the converter kind in overlay files
	// (e.g. "number", "brush"). Empty means text.
	KindName string `yaml:"kind,omitempty"`

	// SkipValues lists converted string forms equal to the target's own
	// default. A value converting to one of these is not emitted. An empty
	// list means the rule always emits.
	SkipValues []string `yaml:"skip,omitempty"`

	// EnumValues is the literal table for ConvertEnum rules, keyed by the
	// folded scene literal.
	EnumValues map[string]string `yaml:"values,omitempty"`

	// ItemElement and ItemAttr configure ConvertItems rules: each list entry
	// becomes <ItemElement ItemAttr="entry"/>.
	ItemElement string `yaml:"itemElement,omitempty"`
	ItemAttr    string `yaml:"itemAttr,omitempty"`
}

// StaticAttr is an attribute every instance of a mapping carries, with no
// scene property behind it (e.g. AcceptsReturn on multiline text boxes).
type StaticAttr struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// EventRule maps a scene handler property onto a target event attribute and
// the C# signature of its generated handler stub.
type EventRule struct {
	// Source is the scene property, e.g. "onClick".
	Source string `yaml:"source"`
	// Attr is the markup event attribute, e.g. "Click".
	Attr string `yaml:"attr"`
	// Args is the C# event-args type, e.g. "RoutedEventArgs".
	Args string `yaml:"args"`
}

// Mapping declares how one scene node type renders as a target element.
type Mapping struct {
	// SourceType is the canonical scene node type (e.g. "button").
	SourceType string `yaml:"source"`

	// Target is the element name (e.g. "Button").
	Target string `yaml:"target"`

	// Prefix qualifies Target with a markup namespace prefix for elements
	// outside the default namespace, such as third-party control libraries.
	Prefix string `yaml:"prefix,omitempty"`

	// Namespace is the xmlns value the document root declares when any
	// node uses Prefix.
	Namespace string `yaml:"xmlns,omitempty"`

	// Category groups the mapping for listings.
	Category Category `yaml:"-"`

	// CategoryName carries the category in overlay files.
	CategoryName string `yaml:"category,omitempty"`

	// StyleClass, when set, is emitted as the element's Classes attribute
	// and anchors the theme's style selector.
	StyleClass string `yaml:"class,omitempty"`

	// ContentProperty names the scene property whose multiline values are
	// emitted as element text instead of an attribute.
	ContentProperty string `yaml:"content,omitempty"`

	// Rules are the property rules in emission order.
	Rules []PropertyRule `yaml:"rules,omitempty"`

	// Static are fixed attributes emitted after the mapped rules.
	Static []StaticAttr `yaml:"static,omitempty"`

	// Events are the handler rules for this type, consulted before the
	// global fallback table.
	Events []EventRule `yaml:"events,omitempty"`
}

// RuleFor returns the property rule whose folded source matches the folded
// canonical property name.
func (m Mapping) RuleFor(canonicalProp string) (PropertyRule, bool) {
	for _, r := range m.Rules {
		if foldName(r.Source) == canonicalProp {
			return r, true
		}
	}

	return PropertyRule{}, false
}

// QualifiedTarget returns the element name as emitted, prefix-qualified
// when the mapping lives outside the default namespace.
func (m Mapping) QualifiedTarget() string {
	if m.Prefix == "" {
		return m.Target
	}

	return m.Prefix + ":" + m.Target
}

// EventFor returns the event rule for a scene handler property, consulting
// the mapping's own rules first and the global fallback table second.
func (m Mapping) EventFor(prop string) (EventRule, bool) {
	key := foldName(prop)
	for _, e := range m.Events {
		if foldName(e.Source) == key {
			return e, true
		}
	}

	for _, e := range globalEvents {
		if foldName(e.Source) == key {
			return e, true
		}
	}

	return EventRule{}, false
}
