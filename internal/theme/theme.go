package theme

import (
	"strings"
	"text/template"

	"axamlforge/internal/emit"
	"axamlforge/internal/mapping"
	"axamlforge/internal/markup"
	"axamlforge/internal/naming"
	"axamlforge/options"
)

// headingSizeStep is added to the base font size for heading text.
const headingSizeStep = 6

// Generator renders AppTheme.axaml text from the palette.
type Generator struct {
	opts options.ExportOptions
}

// New returns a theme generator for the given options.
func New(opts options.ExportOptions) *Generator {
	return &Generator{opts: opts.Clamped()}
}

// styleData is the parameter set every style template sees. Colors reach the
// templates through resource references, not directly.
type styleData struct {
	FontFamily      string
	FontSize        int
	HeadingFontSize int
	// Selector is only set for the fallback block.
	Selector string
}

func (g *Generator) data() styleData {
	p := g.opts.Palette

	return styleData{
		FontFamily:      p.FontFamily,
		FontSize:        p.FontSize,
		HeadingFontSize: p.FontSize + headingSizeStep,
	}
}

// catalog is the fixed emission order of the style blocks.
var catalog = []string{
	"button",
	"textinput",
	"dropdown",
	"list",
	"card",
	"tabcontrol",
	"unsupported",
}

// Document renders the complete theme artifact.
func (g *Generator) Document() string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	b.Line(markup.Preamble)
	b.Line("<Styles")
	b.Indent()
	b.Line(`xmlns="https://github.com/avaloniaui"`)
	b.Line(`xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml">`)

	g.writeResources(b)

	data := g.data()
	for _, kind := range catalog {
		b.Blank()
		writeBlock(b, g.render(kind, data))
	}

	b.Dedent()
	b.Line("</Styles>")

	return b.String()
}

// StyleFor renders the style block for one control kind at top level. Kinds
// outside the catalog get a minimal font-family block, never an error.
func (g *Generator) StyleFor(kind string) string {
	b := emit.NewBuffer(g.opts.IndentUnit())

	key := mapping.CanonicalType(kind)
	if !inCatalog(key) {
		data := g.data()
		data.Selector = naming.Pascal(kind)
		writeBlock(b, g.render("fallback", data))

		return b.String()
	}

	writeBlock(b, g.render(key, g.data()))

	return b.String()
}

// Catalog returns the kinds with a dedicated style block, in emission order.
func Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)

	return out
}

func inCatalog(kind string) bool {
	for _, k := range catalog {
		if k == kind {
			return true
		}
	}

	return false
}

// writeResources emits the Color and SolidColorBrush declarations, colors
// first, each in palette order.
func (g *Generator) writeResources(b *emit.Buffer) {
	b.Line("<Styles.Resources>")
	b.Indent()
	b.Line("<ResourceDictionary>")
	b.Indent()

	entries := g.opts.Palette.Entries()
	for _, e := range entries {
		b.Line(`<Color x:Key="` + e.Name + `Color">` + e.Value + `</Color>`)
	}

	for _, e := range entries {
		b.Line(`<SolidColorBrush x:Key="` + e.Name + `Brush" Color="{StaticResource ` + e.Name + `Color}"/>`)
	}

	b.Dedent()
	b.Line("</ResourceDictionary>")
	b.Dedent()
	b.Line("</Styles.Resources>")
}

// render executes one named block template.
func (g *Generator) render(name string, data styleData) string {
	var sb strings.Builder
	if err := styleTemplates.ExecuteTemplate(&sb, name, data); err != nil {
		// Templates are static and parsed at init; execution cannot fail.
		panic(err)
	}

	return sb.String()
}

// writeBlock splices template output into the buffer. Template inner
// indentation is written as tabs and re-mapped to the configured unit here.
func writeBlock(b *emit.Buffer, rendered string) {
	for _, line := range strings.Split(strings.Trim(rendered, "\n"), "\n") {
		trimmed := strings.TrimLeft(line, "\t")
		for i := 0; i < len(line)-len(trimmed); i++ {
			b.Indent()
		}

		b.Line(trimmed)

		for i := 0; i < len(line)-len(trimmed); i++ {
			b.Dedent()
		}
	}
}

var styleTemplates = template.Must(template.New("styles").Parse(`
{{- define "button" -}}
<Style Selector="Button">
	<Setter Property="Background" Value="{DynamicResource SurfaceBrush}"/>
	<Setter Property="Foreground" Value="{DynamicResource TextPrimaryBrush}"/>
	<Setter Property="BorderBrush" Value="{DynamicResource BorderBrush}"/>
	<Setter Property="BorderThickness" Value="1"/>
	<Setter Property="CornerRadius" Value="4"/>
	<Setter Property="Padding" Value="12,6"/>
	<Setter Property="FontFamily" Value="{{.FontFamily}}"/>
	<Setter Property="FontSize" Value="{{.FontSize}}"/>
</Style>
<Style Selector="Button:pointerover /template/ ContentPresenter#PART_ContentPresenter">
	<Setter Property="Background" Value="{DynamicResource PrimaryHoverBrush}"/>
	<Setter Property="Foreground" Value="{DynamicResource BackgroundBrush}"/>
</Style>
<Style Selector="Button:pressed /template/ ContentPresenter#PART_ContentPresenter">
	<Setter Property="Background" Value="{DynamicResource AccentBrush}"/>
	<Setter Property="Foreground" Value="{DynamicResource BackgroundBrush}"/>
</Style>
<Style Selector="Button.primary">
	<Setter Property="Background" Value="{DynamicResource PrimaryBrush}"/>
	<Setter Property="Foreground" Value="{DynamicResource BackgroundBrush}"/>
</Style>
{{- end -}}

{{- define "textinput" -}}
<Style Selector="TextBox">
	<Setter Property="Background" Value="{DynamicResource BackgroundBrush}"/>
	<Setter Property="Foreground" Value="{DynamicResource TextPrimaryBrush}"/>
	<Setter Property="BorderBrush" Value="{DynamicResource BorderBrush}"/>
	<Setter Property="BorderThickness" Value="1"/>
	<Setter Property="CornerRadius" Value="4"/>
	<Setter Property="Padding" Value="8,6"/>
	<Setter Property="FontFamily" Value="{{.FontFamily}}"/>
	<Setter Property="FontSize" Value="{{.FontSize}}"/>
</Style>
<Style Selector="TextBox:focus">
	<Setter Property="BorderBrush" Value="{DynamicResource PrimaryBrush}"/>
</Style>
<Style Selector="TextBox.code">
	<Setter Property="FontFamily" Value="Cascadia Code, Consolas, monospace"/>
</Style>
{{- end -}}

{{- define "dropdown" -}}
<Style Selector="ComboBox">
	<Setter Property="Background" Value="{DynamicResource BackgroundBrush}"/>
	<Setter Property="Foreground" Value="{DynamicResource TextPrimaryBrush}"/>
	<Setter Property="BorderBrush" Value="{DynamicResource BorderBrush}"/>
	<Setter Property="CornerRadius" Value="4"/>
	<Setter Property="Padding" Value="8,6"/>
	<Setter Property="FontSize" Value="{{.FontSize}}"/>
</Style>
{{- end -}}

{{- define "list" -}}
<Style Selector="ListBox">
	<Setter Property="Background" Value="{DynamicResource BackgroundBrush}"/>
	<Setter Property="BorderBrush" Value="{DynamicResource BorderBrush}"/>
	<Setter Property="BorderThickness" Value="1"/>
</Style>
<Style Selector="ListBoxItem">
	<Setter Property="Foreground" Value="{DynamicResource TextPrimaryBrush}"/>
	<Setter Property="Padding" Value="8,6"/>
</Style>
<Style Selector="ListBoxItem:pointerover">
	<Setter Property="Background" Value="{DynamicResource SurfaceBrush}"/>
</Style>
<Style Selector="ListBoxItem:selected">
	<Setter Property="Background" Value="{DynamicResource PrimaryBrush}"/>
	<Setter Property="Foreground" Value="{DynamicResource BackgroundBrush}"/>
</Style>
{{- end -}}

{{- define "card" -}}
<Style Selector="Border.card">
	<Setter Property="Background" Value="{DynamicResource SurfaceBrush}"/>
	<Setter Property="BorderBrush" Value="{DynamicResource BorderBrush}"/>
	<Setter Property="BorderThickness" Value="1"/>
	<Setter Property="CornerRadius" Value="8"/>
	<Setter Property="Padding" Value="16"/>
	<Setter Property="BoxShadow" Value="0 1 4 0 #22000000"/>
</Style>
<Style Selector="TextBlock.heading">
	<Setter Property="Foreground" Value="{DynamicResource TextPrimaryBrush}"/>
	<Setter Property="FontSize" Value="{{.HeadingFontSize}}"/>
	<Setter Property="FontWeight" Value="SemiBold"/>
</Style>
<Style Selector="HeaderedContentControl.groupbox">
	<Setter Property="Background" Value="{DynamicResource SurfaceBrush}"/>
	<Setter Property="Padding" Value="12"/>
</Style>
{{- end -}}

{{- define "tabcontrol" -}}
<Style Selector="TabControl">
	<Setter Property="Background" Value="{DynamicResource BackgroundBrush}"/>
</Style>
<Style Selector="TabItem">
	<Setter Property="Foreground" Value="{DynamicResource TextSecondaryBrush}"/>
	<Setter Property="FontSize" Value="{{.FontSize}}"/>
	<Setter Property="Padding" Value="12,8"/>
</Style>
<Style Selector="TabItem:pointerover">
	<Setter Property="Foreground" Value="{DynamicResource TextPrimaryBrush}"/>
</Style>
<Style Selector="TabItem:selected">
	<Setter Property="Foreground" Value="{DynamicResource PrimaryBrush}"/>
</Style>
{{- end -}}

{{- define "unsupported" -}}
<Style Selector="Border.unsupported">
	<Setter Property="Background" Value="{DynamicResource SurfaceBrush}"/>
	<Setter Property="BorderBrush" Value="{DynamicResource ErrorBrush}"/>
	<Setter Property="BorderThickness" Value="1"/>
	<Setter Property="MinHeight" Value="24"/>
</Style>
{{- end -}}

{{- define "fallback" -}}
<Style Selector="{{.Selector}}">
	<Setter Property="FontFamily" Value="{{.FontFamily}}"/>
</Style>
{{- end -}}
`))
