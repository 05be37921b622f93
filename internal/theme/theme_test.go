package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axamlforge/internal/markup"
	"axamlforge/options"
)

func TestDocumentStructure(t *testing.T) {
	doc := New(options.Default()).Document()

	assert.True(t, strings.HasPrefix(doc, markup.Preamble+"\n<Styles\n"))
	assert.True(t, strings.HasSuffix(doc, "</Styles>\n"))

	// Check one Color and one Brush per palette entry.
	assert.Equal(t, 11, strings.Count(doc, "<Color x:Key="))
	assert.Equal(t, 11, strings.Count(doc, "<SolidColorBrush x:Key="))
	assert.Contains(t, doc, `<Color x:Key="BackgroundColor">#FFFFFF</Color>`)
	assert.Contains(t, doc, `<SolidColorBrush x:Key="PrimaryBrush" Color="{StaticResource PrimaryColor}"/>`)

	// Check the fixed colors → brushes → style-catalog order.
	marks := []string{
		`<Color x:Key="BackgroundColor">`,
		`<SolidColorBrush x:Key="BackgroundBrush"`,
		`<Style Selector="Button">`,
		`<Style Selector="TextBox">`,
		`<Style Selector="ComboBox">`,
		`<Style Selector="ListBox">`,
		`<Style Selector="Border.card">`,
		`<Style Selector="TabControl">`,
		`<Style Selector="Border.unsupported">`,
	}
	last := -1
	for _, mark := range marks {
		idx := strings.Index(doc, mark)
		require.GreaterOrEqual(t, idx, 0, mark)
		assert.Greater(t, idx, last, mark)
		last = idx
	}
}

func TestDocumentIndentation(t *testing.T) {
	doc := New(options.Default()).Document()

	assert.Contains(t, doc, "    <Styles.Resources>\n")
	assert.Contains(t, doc, "        <ResourceDictionary>\n")
	assert.Contains(t, doc, "            <Color x:Key=")
	assert.Contains(t, doc, "    <Style Selector=")
	assert.Contains(t, doc, "        <Setter Property=")

	// Check a tab unit replaces the spaces wholesale.
	opts := options.Default()
	opts.UseTabs = true

	doc = New(opts).Document()
	assert.Contains(t, doc, "\t<Styles.Resources>\n")
	assert.Contains(t, doc, "\t\t\t<Color x:Key=")
	assert.NotContains(t, doc, "    <")
}

func TestDocumentFontSettings(t *testing.T) {
	doc := New(options.Default()).Document()

	assert.Contains(t, doc, `<Setter Property="FontFamily" Value="Segoe UI, Inter, sans-serif"/>`)
	assert.Contains(t, doc, `<Setter Property="FontSize" Value="14"/>`)

	// Check headings get the stepped-up size.
	assert.Contains(t, doc, `<Setter Property="FontSize" Value="20"/>`)
}

func TestDocumentDarkPalette(t *testing.T) {
	opts := options.Default()
	opts.Palette = options.DarkPalette()

	doc := New(opts).Document()

	assert.Contains(t, doc, `<Color x:Key="BackgroundColor">#1E1E1E</Color>`)
	assert.Contains(t, doc, `<Color x:Key="PrimaryColor">#4CC2FF</Color>`)
	assert.NotContains(t, doc, "#FFFFFF</Color>")
}

func TestStyleForCatalogKinds(t *testing.T) {
	g := New(options.Default())

	button := g.StyleFor("button")
	assert.True(t, strings.HasPrefix(button, `<Style Selector="Button">`))
	assert.Contains(t, button, "Button:pointerover")
	assert.Contains(t, button, "Button:pressed")
	assert.Contains(t, button, "Button.primary")

	// Check alias spellings reach the same block.
	input := g.StyleFor("text-input")
	assert.Contains(t, input, `<Style Selector="TextBox">`)
	assert.Contains(t, input, "TextBox:focus")
	assert.Contains(t, input, "TextBox.code")

	assert.Contains(t, g.StyleFor("TabControl"), "TabItem:selected")
}

func TestStyleForUnknownKind(t *testing.T) {
	g := New(options.Default())

	// Check the fallback carries only the font-family setter.
	assert.Equal(t,
		"<Style Selector=\"Gauge\">\n"+
			"    <Setter Property=\"FontFamily\" Value=\"Segoe UI, Inter, sans-serif\"/>\n"+
			"</Style>\n",
		g.StyleFor("gauge"))
}

func TestCatalog(t *testing.T) {
	kinds := Catalog()
	assert.Equal(t, []string{"button", "textinput", "dropdown", "list", "card", "tabcontrol", "unsupported"}, kinds)

	// Check the returned slice is a copy.
	kinds[0] = "mutated"
	assert.Equal(t, "button", Catalog()[0])
}

func TestDocumentDeterministic(t *testing.T) {
	first := New(options.Default()).Document()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, New(options.Default()).Document())
	}
}
