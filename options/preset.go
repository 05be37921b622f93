package options

// Preset names a ready-made options bundle. Presets differ only in the
// defaults they select; every field stays adjustable afterwards.
type Preset int

const (
	// PresetDocument exports the markup document alone.
	PresetDocument Preset = iota
	// PresetWindow exports a Window with companion sources and theme.
	PresetWindow
	// PresetControl exports an embeddable UserControl with companions but
	// without an application-level theme.
	PresetControl
	// PresetProject exports a Window plus the fixed project boilerplate
	// (csproj, entry point, application class).
	PresetProject
)

func (p Preset) String() string {
	switch p {
	case PresetWindow:
		return "window"
	case PresetControl:
		return "control"
	case PresetProject:
		return "project"
	default:
		return "document"
	}
}

// ParsePreset maps a CLI/config string onto a Preset. Unrecognized input
// falls back to PresetDocument.
func ParsePreset(s string) Preset {
	switch s {
	case "window":
		return PresetWindow
	case "control":
		return PresetControl
	case "project":
		return PresetProject
	default:
		return PresetDocument
	}
}

// WithPreset returns Default adjusted for the preset.
func WithPreset(p Preset) ExportOptions {
	o := Default()
	switch p {
	case PresetDocument:
		o.IncludeCodeBehind = false
		o.IncludeViewModel = false
		o.IncludeTheme = false
	case PresetWindow:
		o.Root = RootWindow
		o.ClassName = "MainWindow"
	case PresetControl:
		o.IncludeTheme = false
	case PresetProject:
		o.Root = RootWindow
		o.ClassName = "MainWindow"
		o.IncludeProject = true
	}
	return o
}

// IsProject reports whether the preset adds the project boilerplate files.
func (p Preset) IsProject() bool {
	return p == PresetProject
}
