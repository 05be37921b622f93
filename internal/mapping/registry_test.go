package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBySourceType(t *testing.T) {
	r := NewRegistry()

	m, ok := r.LookupBySourceType("button")
	require.True(t, ok)
	assert.Equal(t, "Button", m.Target)
	assert.Equal(t, CategoryInput, m.Category)

	// Folding and aliases
	for _, spelling := range []string{"Button", "BUTTON", "btn", "Text-Box", "text_box", "textbox"} {
		_, ok := r.LookupBySourceType(spelling)
		assert.True(t, ok, spelling)
	}

	tb, ok := r.LookupBySourceType("TextBox")
	require.True(t, ok)
	assert.Equal(t, "textinput", tb.SourceType)

	_, ok = r.LookupBySourceType("gauge")
	assert.False(t, ok)
}

func TestLookupByTargetElement(t *testing.T) {
	r := NewRegistry()

	boxes := r.LookupByTargetElement("TextBox")
	require.NotEmpty(t, boxes)

	var sources []string
	for _, m := range boxes {
		sources = append(sources, m.SourceType)
	}

	assert.Contains(t, sources, "textinput")
	assert.Contains(t, sources, "textarea")
	assert.Contains(t, sources, "passwordinput")

	assert.Empty(t, r.LookupByTargetElement("NoSuchElement"))
}

func TestListByCategory(t *testing.T) {
	r := NewRegistry()

	inputs := r.ListByCategory(CategoryInput)
	require.NotEmpty(t, inputs)
	for _, m := range inputs {
		assert.Equal(t, CategoryInput, m.Category, m.SourceType)
	}

	shapes := r.ListByCategory(CategoryShape)
	var sources []string
	for _, m := range shapes {
		sources = append(sources, m.SourceType)
	}
	assert.Equal(t, []string{"rectangle", "ellipse", "line"}, sources)
}

func TestSourceTypesSorted(t *testing.T) {
	r := NewRegistry()

	types := r.SourceTypes()
	require.Equal(t, r.Len(), len(types))

	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1], types[i])
	}
}

func TestAddValidation(t *testing.T) {
	r := NewRegistry()

	err := r.Add(Mapping{SourceType: "", Target: "Gauge"})
	assert.ErrorContains(t, err, "empty source type")

	err = r.Add(Mapping{SourceType: "gauge", Target: ""})
	assert.ErrorContains(t, err, "empty target element")

	err = r.Add(Mapping{
		SourceType: "gauge", Target: "Gauge",
		Rules: []PropertyRule{{Source: "value", Target: ""}},
	})
	assert.ErrorContains(t, err, "empty target")

	err = r.Add(Mapping{
		SourceType: "gauge", Target: "Gauge",
		Events: []EventRule{{Source: "onChange"}},
	})
	assert.ErrorContains(t, err, "incomplete event rule")

	err = r.Add(Mapping{SourceType: "gauge", Target: "Gauge", Prefix: "gauges"})
	assert.ErrorContains(t, err, "without an xmlns")

	err = r.Add(Mapping{SourceType: "gauge", Target: "Gauge", Namespace: "clr-namespace:X"})
	assert.ErrorContains(t, err, "without a prefix")
}

func TestQualifiedTarget(t *testing.T) {
	plain := Mapping{SourceType: "button", Target: "Button"}
	assert.Equal(t, "Button", plain.QualifiedTarget())

	prefixed := Mapping{
		SourceType: "gauge", Target: "Gauge",
		Prefix: "gauges", Namespace: "clr-namespace:Example.Gauges;assembly=Example.Gauges",
	}
	assert.Equal(t, "gauges:Gauge", prefixed.QualifiedTarget())
}

func TestAddShadowsBuiltin(t *testing.T) {
	r := NewRegistry()
	before := r.Len()

	err := r.Add(Mapping{SourceType: "button", Target: "MyButton", Category: CategoryInput})
	require.NoError(t, err)

	assert.Equal(t, before, r.Len())

	m, ok := r.LookupBySourceType("button")
	require.True(t, ok)
	assert.Equal(t, "MyButton", m.Target)
}

func TestRuleFor(t *testing.T) {
	r := NewRegistry()
	m, ok := r.LookupBySourceType("slider")
	require.True(t, ok)

	rl, ok := m.RuleFor("max")
	require.True(t, ok)
	assert.Equal(t, "Maximum", rl.Target)
	assert.Equal(t, []string{"100"}, rl.SkipValues)

	_, ok = m.RuleFor("nosuch")
	assert.False(t, ok)
}

func TestEventFor(t *testing.T) {
	r := NewRegistry()

	button, ok := r.LookupBySourceType("button")
	require.True(t, ok)

	// Own rule wins over the global fallback
	ev, ok := button.EventFor("onClick")
	require.True(t, ok)
	assert.Equal(t, "Click", ev.Attr)
	assert.Equal(t, "RoutedEventArgs", ev.Args)

	// Global fallback covers types without their own rule
	img, ok := r.LookupBySourceType("image")
	require.True(t, ok)

	ev, ok = img.EventFor("onClick")
	require.True(t, ok)
	assert.Equal(t, "Tapped", ev.Attr)

	_, ok = img.EventFor("onTeleport")
	assert.False(t, ok)
}

func TestCanonicalProperty(t *testing.T) {
	assert.Equal(t, "background", CanonicalProperty("bg"))
	assert.Equal(t, "background", CanonicalProperty("BGColor"))
	assert.Equal(t, "text", CanonicalProperty("content"))
	assert.Equal(t, "fontsize", CanonicalProperty("font-size"))
	assert.Equal(t, "checked", CanonicalProperty("isChecked"))
	assert.Equal(t, "custom", CanonicalProperty("Custom"))
}
