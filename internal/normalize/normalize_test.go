package normalize

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axamlforge/internal/diagnostic"
	"axamlforge/internal/emit"
	"axamlforge/internal/mapping"
	"axamlforge/options"
	"axamlforge/scene"
)

func normalizeScene(t *testing.T, s *scene.Scene, opts options.ExportOptions) (*Result, *diagnostic.Diagnostics) {
	t.Helper()

	diags := &diagnostic.Diagnostics{}
	res, err := New(mapping.NewRegistry(), opts, diags).Normalize(s)
	require.NoError(t, err)

	return res, diags
}

func singleLayer(nodes ...*scene.Node) *scene.Scene {
	return &scene.Scene{Layers: []scene.Layer{{Nodes: nodes}}}
}

func TestNormalizeButton(t *testing.T) {
	s := singleLayer(&scene.Node{
		Type: "button",
		Name: "submit-button",
		Properties: map[string]any{
			"text":    "OK",
			"onClick": true,
		},
	})

	res, diags := normalizeScene(t, s, options.Default())

	require.Len(t, res.Roots, 1)
	root := res.Roots[0]

	assert.Equal(t, "Button", root.Element)
	assert.Equal(t, "button", root.SourceType)
	assert.False(t, root.Unsupported)

	// Check name, mapped rules, and events land in that order.
	assert.Equal(t, []emit.Attr{
		{Name: "x:Name", Value: "SubmitButton"},
		{Name: "Content", Value: "OK"},
		{Name: "Click", Value: "SubmitButton_Click"},
	}, root.Attrs)

	assert.Equal(t, []Handler{{Name: "SubmitButton_Click", Args: "RoutedEventArgs"}}, res.Handlers)
	assert.Empty(t, res.Bindings)
	assert.False(t, res.WrapCanvas)
	assert.Zero(t, diags.Count())
}

func TestNormalizePositionedNodes(t *testing.T) {
	s := singleLayer(
		&scene.Node{Type: "rectangle", X: 10.5, Y: 20},
		&scene.Node{Type: "ellipse"},
	)

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 2)

	// Check one positioned root is enough to force the canvas wrapper.
	assert.True(t, res.WrapCanvas)
	assert.Equal(t, []emit.Attr{
		{Name: "Canvas.Left", Value: "10.5"},
		{Name: "Canvas.Top", Value: "20"},
	}, res.Roots[0].Attrs)
	assert.Empty(t, res.Roots[1].Attrs)
}

func TestNormalizeSkipsTargetDefaults(t *testing.T) {
	s := singleLayer(
		&scene.Node{Type: "label", Properties: map[string]any{
			"text":   "Hi",
			"margin": float64(0),
		}},
		&scene.Node{Type: "label", Properties: map[string]any{
			"text":    "Hi",
			"margin":  float64(8),
			"opacity": 0.5,
		}},
	)

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 2)

	// Check the zero margin matches the target default and is dropped.
	assert.Equal(t, []emit.Attr{{Name: "Text", Value: "Hi"}}, res.Roots[0].Attrs)

	assert.Equal(t, []emit.Attr{
		{Name: "Text", Value: "Hi"},
		{Name: "Margin", Value: "8"},
		{Name: "Opacity", Value: "0.5"},
	}, res.Roots[1].Attrs)
}

func TestNormalizeUnmappedType(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "buton", Name: "speed"})

	res, diags := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)
	root := res.Roots[0]

	// Check the placeholder keeps the source type recoverable.
	assert.True(t, root.Unsupported)
	assert.Equal(t, "Border", root.Element)
	assert.Equal(t, []emit.Attr{
		{Name: "x:Name", Value: "Speed"},
		{Name: "Classes", Value: "unsupported"},
		{Name: "Tag", Value: "buton"},
	}, root.Attrs)

	assert.Equal(t, []string{"buton"}, res.Unsupported)

	require.Len(t, diags.Warnings, 1)
	warning := diags.Warnings[0]
	assert.Equal(t, "unmapped-type", warning.Code)
	assert.Equal(t, "speed", warning.Node)
	assert.Equal(t, []string{"button"}, warning.Suggestions)
}

func TestNormalizeTargetTypeOverride(t *testing.T) {
	s := singleLayer(
		&scene.Node{Type: "button", TargetType: "ToggleButton", Properties: map[string]any{"text": "On"}},
		&scene.Node{Type: "custom-widget", TargetType: "Viewbox"},
	)

	res, diags := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 2)

	// Check the override replaces the element but keeps the mapping's rules.
	assert.Equal(t, "ToggleButton", res.Roots[0].Element)
	assert.Equal(t, []emit.Attr{{Name: "Content", Value: "On"}}, res.Roots[0].Attrs)

	// Check an override on an unknown type is trusted without a placeholder.
	assert.Equal(t, "Viewbox", res.Roots[1].Element)
	assert.False(t, res.Roots[1].Unsupported)
	assert.Empty(t, res.Unsupported)
	assert.Zero(t, diags.Count())
}

func TestNormalizePrefixedMapping(t *testing.T) {
	reg := mapping.NewRegistry()
	require.NoError(t, reg.Add(mapping.Mapping{
		SourceType: "gauge", Target: "Gauge",
		Prefix: "gauges", Namespace: "clr-namespace:Example.Gauges;assembly=Example.Gauges",
		Category: mapping.CategoryDisplay,
		Rules:    []mapping.PropertyRule{{Source: "value", Target: "Value", Kind: mapping.ConvertNumber}},
	}))

	s := singleLayer(
		&scene.Node{Type: "gauge", Properties: map[string]any{"value": float64(72), "onClick": true}},
		&scene.Node{Type: "gauge"},
		&scene.Node{Type: "button", Properties: map[string]any{"text": "OK"}},
	)

	diags := &diagnostic.Diagnostics{}
	res, err := New(reg, options.Default(), diags).Normalize(s)
	require.NoError(t, err)
	require.Len(t, res.Roots, 3)

	assert.Equal(t, "gauges:Gauge", res.Roots[0].Element)
	assert.Equal(t, "72", res.Roots[0].AttrValue("Value"))
	assert.Equal(t, "gauges:Gauge", res.Roots[1].Element)
	assert.Equal(t, "Button", res.Roots[2].Element)

	// Check the unnamed fallback ident drops the prefix.
	assert.Equal(t, []Handler{{Name: "Gauge1_Tapped", Args: "TappedEventArgs"}}, res.Handlers)

	// Check the prefix is declared once despite two uses.
	assert.Equal(t, []Namespace{{
		Prefix: "gauges",
		URI:    "clr-namespace:Example.Gauges;assembly=Example.Gauges",
	}}, res.Namespaces)

	assert.Zero(t, diags.Count())
}

func TestNormalizeDepthLimit(t *testing.T) {
	node := &scene.Node{Type: "label", Properties: map[string]any{"text": "deep"}}
	for i := 0; i < 9; i++ {
		node = &scene.Node{Type: "panel", Children: []*scene.Node{node}}
	}

	opts := options.Default()
	opts.MaxDepth = 8

	diags := &diagnostic.Diagnostics{}
	_, err := New(mapping.NewRegistry(), opts, diags).Normalize(singleLayer(node))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func TestNormalizeHandlerNames(t *testing.T) {
	s := singleLayer(
		&scene.Node{Type: "button", Name: "save", Properties: map[string]any{"onClick": true}},
		&scene.Node{Type: "button", Name: "save", Properties: map[string]any{"onClick": true}},
		&scene.Node{Type: "button", Properties: map[string]any{"onClick": "submitForm"}},
	)

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 3)

	// Check colliding names get ordinal suffixes.
	assert.Equal(t, "Save", res.Roots[0].AttrValue("x:Name"))
	assert.Equal(t, "Save2", res.Roots[1].AttrValue("x:Name"))

	// Check a handler-valued property overrides the derived name.
	assert.Equal(t, "SubmitForm", res.Roots[2].AttrValue("Click"))

	assert.Equal(t, []Handler{
		{Name: "Save_Click", Args: "RoutedEventArgs"},
		{Name: "Save2_Click", Args: "RoutedEventArgs"},
		{Name: "SubmitForm", Args: "RoutedEventArgs"},
	}, res.Handlers)
}

func TestNormalizeCollectsBindings(t *testing.T) {
	s := singleLayer(
		&scene.Node{Type: "textinput", Properties: map[string]any{"value": "user.email"}},
		&scene.Node{Type: "label", Properties: map[string]any{"text": "Customer.Name"}},
		&scene.Node{Type: "datagrid", Properties: map[string]any{"items": "orders"}},
	)

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 3)

	assert.Equal(t, "{Binding User.Email, Mode=TwoWay}", res.Roots[0].AttrValue("Text"))
	assert.Equal(t, "{Binding Customer.Name, Mode=TwoWay}", res.Roots[1].AttrValue("Text"))

	// Check items source bindings carry no mode.
	assert.Equal(t, "{Binding Orders}", res.Roots[2].AttrValue("ItemsSource"))

	assert.Equal(t, []Binding{
		{Path: "User.Email", Target: "Text"},
		{Path: "Customer.Name", Target: "Text"},
		{Path: "Orders", Target: "ItemsSource"},
	}, res.Bindings)
}

func TestNormalizeHiddenLayer(t *testing.T) {
	hidden := false
	s := &scene.Scene{Layers: []scene.Layer{
		{Name: "notes", Visible: &hidden, Nodes: []*scene.Node{{Type: "label"}}},
		{Nodes: []*scene.Node{{Type: "button"}}},
	}}

	res, diags := normalizeScene(t, s, options.Default())

	require.Len(t, res.Roots, 1)
	assert.Equal(t, "Button", res.Roots[0].Element)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "hidden-layer", diags.Infos[0].Code)
	assert.Equal(t, "notes", diags.Infos[0].Node)
}

func TestNormalizeEmptyScene(t *testing.T) {
	hidden := false

	diags := &diagnostic.Diagnostics{}
	norm := New(mapping.NewRegistry(), options.Default(), diags)

	_, err := norm.Normalize(&scene.Scene{Layers: []scene.Layer{
		{Name: "off", Visible: &hidden, Nodes: []*scene.Node{{Type: "label"}}},
	}})
	assert.ErrorIs(t, err, ErrSceneEmpty)

	_, err = norm.Normalize(nil)
	assert.ErrorIs(t, err, ErrNotTraversable)
}

func TestNormalizeItemsExpandToChildren(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "dropdown", Properties: map[string]any{
		"items":         []any{"A", "B"},
		"selectedIndex": float64(0),
	}})

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)
	root := res.Roots[0]

	assert.Equal(t, "ComboBox", root.Element)
	assert.Equal(t, []emit.Attr{{Name: "SelectedIndex", Value: "0"}}, root.Attrs)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "ComboBoxItem", root.Children[0].Element)
	assert.Equal(t, []emit.Attr{{Name: "Content", Value: "A"}}, root.Children[0].Attrs)
	assert.Equal(t, "B", root.Children[1].AttrValue("Content"))
}

func TestNormalizeGradientBecomesNestedProperty(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "button", Properties: map[string]any{
		"background": map[string]any{
			"angle": float64(90),
			"stops": []any{
				map[string]any{"color": "#FF0000", "offset": float64(0)},
				map[string]any{"color": "#0000FF", "offset": float64(1)},
			},
		},
	}})

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)
	root := res.Roots[0]

	require.Len(t, root.Nested, 1)
	nested := root.Nested[0]
	assert.Equal(t, "Background", nested.Property)

	require.Len(t, nested.Els, 1)
	brush := nested.Els[0]
	assert.Equal(t, "LinearGradientBrush", brush.Name)
	require.Len(t, brush.Children, 2)
	assert.Equal(t, []emit.Attr{
		{Name: "Color", Value: "#FF0000"},
		{Name: "Offset", Value: "0"},
	}, brush.Children[0].Attrs)
}

func TestNormalizeMultilineContentBecomesInlineText(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "label", Properties: map[string]any{
		"text": "line one\nline two",
	}})

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)
	root := res.Roots[0]

	assert.Equal(t, "line one\nline two", root.InlineText)
	assert.False(t, root.HasAttr("Text"))
}

func TestNormalizeNullPropertyOmitted(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "label", Properties: map[string]any{
		"text":  "Hi",
		"color": nil,
	}})

	res, diags := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)

	// Check a null value omits the property without a diagnostic.
	assert.Equal(t, []emit.Attr{{Name: "Text", Value: "Hi"}}, res.Roots[0].Attrs)
	assert.Zero(t, diags.Count())
}

func TestNormalizeConverterFailure(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "label", Name: "bad", Properties: map[string]any{
		"color": "#XYZ",
	}})

	res, diags := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)

	// Check the property is dropped, not the node.
	assert.False(t, res.Roots[0].HasAttr("Foreground"))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "converter-failure", diags.Warnings[0].Code)
	assert.Equal(t, "bad", diags.Warnings[0].Node)
	assert.Equal(t, "color", diags.Warnings[0].Property)
}

func TestNormalizeTransformToggle(t *testing.T) {
	node := func() *scene.Node {
		return &scene.Node{Type: "panel", Properties: map[string]any{
			"transform": map[string]any{"rotation": float64(45)},
		}}
	}

	res, _ := normalizeScene(t, singleLayer(node()), options.Default())
	require.Len(t, res.Roots[0].Nested, 1)
	assert.Equal(t, "RenderTransform", res.Roots[0].Nested[0].Property)
	assert.Equal(t, "RotateTransform", res.Roots[0].Nested[0].Els[0].Name)

	opts := options.Default()
	opts.IncludeTransforms = false

	res, _ = normalizeScene(t, singleLayer(node()), opts)
	assert.Empty(t, res.Roots[0].Nested)
}

func TestNormalizeUniversalAndAliasedProperties(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "panel", Properties: map[string]any{
		"bg":      "#fff",
		"tooltip": "Hint",
	}})

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)

	// Check alias resolution and the mapped-before-universal order.
	assert.Equal(t, []emit.Attr{
		{Name: "Background", Value: "#FFFFFF"},
		{Name: "ToolTip.Tip", Value: "Hint"},
	}, res.Roots[0].Attrs)
}

func TestNormalizeAliasCollisionIsDeterministic(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "panel", Properties: map[string]any{
		"bg":         "#111111",
		"background": "#222222",
	}})

	// Check the first sorted original spelling wins on every run.
	for i := 0; i < 5; i++ {
		res, _ := normalizeScene(t, s, options.Default())
		assert.Equal(t, "#222222", res.Roots[0].AttrValue("Background"))
	}
}

func TestNormalizeStyleClassGate(t *testing.T) {
	node := func() *scene.Node {
		return &scene.Node{Type: "card"}
	}

	res, _ := normalizeScene(t, singleLayer(node()), options.Default())
	assert.Equal(t, "card", res.Roots[0].AttrValue("Classes"))

	opts := options.Default()
	opts.IncludeStyles = false

	res, _ = normalizeScene(t, singleLayer(node()), opts)
	assert.False(t, res.Roots[0].HasAttr("Classes"))
}

func TestNormalizeChildOrderAndPaths(t *testing.T) {
	s := singleLayer(&scene.Node{
		Type: "stack",
		Name: "form",
		Children: []*scene.Node{
			{Type: "heading", Properties: map[string]any{"text": "Sign in"}},
			{Type: "buton", Name: "go"},
		},
	})

	res, diags := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)
	root := res.Roots[0]

	if testing.Verbose() {
		spew.Dump(root)
	}

	require.Len(t, root.Children, 2)
	assert.Equal(t, "TextBlock", root.Children[0].Element)
	assert.Equal(t, "heading", root.Children[0].AttrValue("Classes"))

	// Check the diagnostic path is slash-joined from the root.
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "form/go", diags.Warnings[0].Node)
}

func TestNormalizeStaticAttrs(t *testing.T) {
	s := singleLayer(&scene.Node{Type: "textarea", Properties: map[string]any{
		"value": "notes",
	}})

	res, _ := normalizeScene(t, s, options.Default())
	require.Len(t, res.Roots, 1)

	assert.Equal(t, []emit.Attr{
		{Name: "Text", Value: "{Binding Notes, Mode=TwoWay}"},
		{Name: "AcceptsReturn", Value: "True"},
		{Name: "TextWrapping", Value: "Wrap"},
	}, res.Roots[0].Attrs)
	assert.Equal(t, []Binding{{Path: "Notes", Target: "Text"}}, res.Bindings)
}

func TestNormalizeDeterministicOutput(t *testing.T) {
	build := func() *scene.Scene {
		return singleLayer(&scene.Node{
			Type: "card",
			Name: "summary",
			Properties: map[string]any{
				"padding": float64(12),
				"width":   float64(320),
				"bg":      "#FAFAFA",
				"shadow":  map[string]any{"dy": float64(2), "blur": float64(8), "color": "#33000000"},
			},
		})
	}

	first, _ := normalizeScene(t, build(), options.Default())

	// Check repeated runs produce identical attribute sequences.
	for i := 0; i < 10; i++ {
		again, _ := normalizeScene(t, build(), options.Default())
		assert.Equal(t, first.Roots[0].Attrs, again.Roots[0].Attrs)
	}

	names := make([]string, 0, len(first.Roots[0].Attrs))
	for _, a := range first.Roots[0].Attrs {
		names = append(names, a.Name)
	}

	assert.Equal(t, "x:Name Classes Background BoxShadow Width Padding", strings.Join(names, " "))
}
