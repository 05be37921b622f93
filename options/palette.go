package options

import "strings"

// Palette is the color and typography set the theme generator turns into
// resource declarations. All colors are #RRGGBB or #AARRGGBB hex literals.
type Palette struct {
	Background    string
	Surface       string
	Primary       string
	PrimaryHover  string
	TextPrimary   string
	TextSecondary string
	Border        string
	Accent        string
	Error         string
	Success       string
	Warning       string

	FontFamily string
	FontSize   int
}

// PaletteEntry is one named color for ordered emission.
type PaletteEntry struct {
	Name  string
	Value string
}

// Entries returns the colors in their fixed emission order. The order is part
// of the output contract, so it never depends on map iteration.
func (p Palette) Entries() []PaletteEntry {
	return []PaletteEntry{
		{Name: "Background", Value: p.Background},
		{Name: "Surface", Value: p.Surface},
		{Name: "Primary", Value: p.Primary},
		{Name: "PrimaryHover", Value: p.PrimaryHover},
		{Name: "TextPrimary", Value: p.TextPrimary},
		{Name: "TextSecondary", Value: p.TextSecondary},
		{Name: "Border", Value: p.Border},
		{Name: "Accent", Value: p.Accent},
		{Name: "Error", Value: p.Error},
		{Name: "Success", Value: p.Success},
		{Name: "Warning", Value: p.Warning},
	}
}

// LightPalette is the default palette.
func LightPalette() Palette {
	return Palette{
		Background:    "#FFFFFF",
		Surface:       "#F5F5F5",
		Primary:       "#0078D4",
		PrimaryHover:  "#106EBE",
		TextPrimary:   "#1A1A1A",
		TextSecondary: "#6E6E6E",
		Border:        "#D1D1D1",
		Accent:        "#005A9E",
		Error:         "#D13438",
		Success:       "#107C10",
		Warning:       "#CA5010",
		FontFamily:    "Segoe UI, Inter, sans-serif",
		FontSize:      14,
	}
}

// WithEntry returns a copy with one named color replaced. Names match the
// Entries names case-insensitively; unknown names are ignored, matching the
// rest of the configuration surface.
func (p Palette) WithEntry(name, value string) Palette {
	switch {
	case strings.EqualFold(name, "Background"):
		p.Background = value
	case strings.EqualFold(name, "Surface"):
		p.Surface = value
	case strings.EqualFold(name, "Primary"):
		p.Primary = value
	case strings.EqualFold(name, "PrimaryHover"):
		p.PrimaryHover = value
	case strings.EqualFold(name, "TextPrimary"):
		p.TextPrimary = value
	case strings.EqualFold(name, "TextSecondary"):
		p.TextSecondary = value
	case strings.EqualFold(name, "Border"):
		p.Border = value
	case strings.EqualFold(name, "Accent"):
		p.Accent = value
	case strings.EqualFold(name, "Error"):
		p.Error = value
	case strings.EqualFold(name, "Success"):
		p.Success = value
	case strings.EqualFold(name, "Warning"):
		p.Warning = value
	}
	return p
}

// ParsePalette maps a CLI/config string onto a named palette. Unrecognized
// input falls back to the light palette.
func ParsePalette(s string) Palette {
	if s == "dark" {
		return DarkPalette()
	}
	return LightPalette()
}

// DarkPalette mirrors LightPalette with inverted surfaces.
func DarkPalette() Palette {
	return Palette{
		Background:    "#1E1E1E",
		Surface:       "#2D2D2D",
		Primary:       "#4CC2FF",
		PrimaryHover:  "#73D1FF",
		TextPrimary:   "#F0F0F0",
		TextSecondary: "#A0A0A0",
		Border:        "#454545",
		Accent:        "#60CDFF",
		Error:         "#FF6B70",
		Success:       "#6CCB5F",
		Warning:       "#FCE100",
		FontFamily:    "Segoe UI, Inter, sans-serif",
		FontSize:      14,
	}
}
