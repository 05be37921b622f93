// Package options holds the immutable per-export configuration surface:
// recognized flags, root kinds, presets, and the theme palette. Callers build
// a value once (usually via a preset), adjust fields, and pass it by value;
// the pipeline never mutates it.
package options

import "strings"

// RootKind selects the root element of the generated markup document.
type RootKind int

const (
	// RootUserControl emits an embeddable UserControl root.
	RootUserControl RootKind = iota
	// RootWindow emits a top-level Window root.
	RootWindow
)

// Element returns the markup element name for the root.
func (k RootKind) Element() string {
	if k == RootWindow {
		return "Window"
	}
	return "UserControl"
}

// String returns a lowercase name for logs and CLI flags.
func (k RootKind) String() string {
	if k == RootWindow {
		return "window"
	}
	return "usercontrol"
}

// ParseRootKind maps a CLI/config string onto a RootKind. Unrecognized input
// falls back to RootUserControl.
func ParseRootKind(s string) RootKind {
	if s == "window" {
		return RootWindow
	}
	return RootUserControl
}

// BindingMode is the mode applied when a bare property path is auto-wrapped
// into a binding expression.
type BindingMode int

const (
	BindTwoWay BindingMode = iota
	BindOneWay
)

// Literal returns the markup literal for the mode.
func (m BindingMode) Literal() string {
	if m == BindOneWay {
		return "OneWay"
	}
	return "TwoWay"
}

// ParseBindingMode maps a CLI/config string onto a BindingMode, ignoring
// case. Unrecognized input falls back to BindTwoWay.
func ParseBindingMode(s string) BindingMode {
	if strings.EqualFold(s, "oneway") {
		return BindOneWay
	}
	return BindTwoWay
}

// ExportOptions is the flat, enumerated configuration for one export call.
// Zero value is not useful; start from Default or a preset.
type ExportOptions struct {
	// Root selects the markup root element.
	Root RootKind
	// Namespace is the CLR namespace for x:Class and companion sources.
	Namespace string
	// ClassName names the generated view class and the output files.
	ClassName string
	// ProjectName names the csproj and root namespace for the project preset.
	ProjectName string
	// Title is emitted on Window roots when non-empty.
	Title string

	// Feature toggles. Each gates one artifact or converter family.
	IncludeCodeBehind bool
	IncludeViewModel  bool
	IncludeTheme      bool
	IncludeStyles     bool
	IncludeGradients  bool
	IncludeTransforms bool
	IncludeEffects    bool

	// IncludeProject appends the fixed project boilerplate files (csproj,
	// entry point, application class) to the exported file set.
	IncludeProject bool

	// IncludeDesignSize adds the design-time namespaces and d:DesignWidth/
	// d:DesignHeight to the root.
	IncludeDesignSize bool
	DesignWidth       int
	DesignHeight      int

	// BindingMode applies to auto-wrapped binding expressions.
	BindingMode BindingMode
	// MvvmToolkit switches the view-model idiom from classic
	// INotifyPropertyChanged to CommunityToolkit.Mvvm attributes.
	MvvmToolkit bool

	// IndentWidth is the number of spaces per indent level (ignored when
	// UseTabs is set). Out-of-range values are clamped, never an error.
	IndentWidth int
	UseTabs     bool

	// MaxDepth bounds scene recursion; exceeding it fails the export closed.
	MaxDepth int

	// Palette drives the theme generator.
	Palette Palette
}

// Indent clamping bounds. Values outside collapse to the default rather than
// erroring, matching the rest of the configuration surface.
const (
	minIndentWidth     = 1
	maxIndentWidth     = 8
	defaultIndentWidth = 4

	minMaxDepth     = 8
	defaultMaxDepth = 64
)

// Default returns the baseline options: embeddable UserControl with every
// artifact and converter family enabled.
func Default() ExportOptions {
	return ExportOptions{
		Root:              RootUserControl,
		Namespace:         "Generated.Views",
		ClassName:         "MainView",
		ProjectName:       "GeneratedApp",
		IncludeCodeBehind: true,
		IncludeViewModel:  true,
		IncludeTheme:      true,
		IncludeStyles:     true,
		IncludeGradients:  true,
		IncludeTransforms: true,
		IncludeEffects:    true,
		IncludeDesignSize: true,
		DesignWidth:       800,
		DesignHeight:      450,
		BindingMode:       BindTwoWay,
		IndentWidth:       defaultIndentWidth,
		MaxDepth:          defaultMaxDepth,
		Palette:           LightPalette(),
	}
}

// Clamped returns a copy with configuration-misuse values pulled back to safe
// defaults: indent width outside [1,8], non-positive design sizes, and a
// recursion bound below the minimum.
func (o ExportOptions) Clamped() ExportOptions {
	if o.IndentWidth < minIndentWidth || o.IndentWidth > maxIndentWidth {
		o.IndentWidth = defaultIndentWidth
	}
	if o.MaxDepth < minMaxDepth {
		o.MaxDepth = defaultMaxDepth
	}
	if o.DesignWidth <= 0 {
		o.DesignWidth = 800
	}
	if o.DesignHeight <= 0 {
		o.DesignHeight = 450
	}
	if o.ClassName == "" {
		o.ClassName = "MainView"
	}
	if o.Namespace == "" {
		o.Namespace = "Generated.Views"
	}
	if o.ProjectName == "" {
		o.ProjectName = "GeneratedApp"
	}
	return o
}

// IndentUnit returns the indentation string for one level.
func (o ExportOptions) IndentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	width := o.IndentWidth
	if width < minIndentWidth || width > maxIndentWidth {
		width = defaultIndentWidth
	}
	unit := make([]byte, width)
	for i := range unit {
		unit[i] = ' '
	}
	return string(unit)
}

// ViewModelClassName derives the view-model class name from the view class.
func (o ExportOptions) ViewModelClassName() string {
	return o.ClassName + "ViewModel"
}
