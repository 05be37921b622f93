package commands

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"axamlforge/options"
)

// defaultConfigFile is picked up from the working directory when --config
// is not given. Its absence is not an error.
const defaultConfigFile = "axamlforge.toml"

// loadOptions builds export options from three layers in precedence order:
// the preset baseline, the TOML config file, and AXAMLFORGE_* environment
// variables.
func loadOptions(configPath, preset string) (options.ExportOptions, error) {
	opts, err := presetOptions(preset)
	if err != nil {
		return opts, err
	}

	v := viper.New()
	v.SetEnvPrefix("AXAMLFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, opts)

	if configPath == "" {
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			configPath = defaultConfigFile
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return opts, errors.Wrapf(err, "reading config %s", configPath)
		}
	}

	applyConfig(v, &opts)

	return opts.Clamped(), nil
}

// presetOptions resolves the preset name, rejecting typos instead of
// silently exporting the wrong file set.
func presetOptions(preset string) (options.ExportOptions, error) {
	if preset == "" {
		return options.Default(), nil
	}

	p := options.ParsePreset(preset)
	if p.String() != preset {
		return options.Default(), errors.Newf("unknown preset %q (want document, window, control, or project)", preset)
	}

	return options.WithPreset(p), nil
}

// setDefaults registers every configuration key with its baseline value.
// Registration is what makes IsSet-free reads and AutomaticEnv work; viper
// ignores environment variables for keys it has never seen.
func setDefaults(v *viper.Viper, o options.ExportOptions) {
	v.SetDefault("root", o.Root.String())
	v.SetDefault("namespace", o.Namespace)
	v.SetDefault("class", o.ClassName)
	v.SetDefault("project", o.ProjectName)
	v.SetDefault("title", o.Title)

	v.SetDefault("codebehind", o.IncludeCodeBehind)
	v.SetDefault("viewmodel", o.IncludeViewModel)
	v.SetDefault("theme", o.IncludeTheme)
	v.SetDefault("styles", o.IncludeStyles)
	v.SetDefault("gradients", o.IncludeGradients)
	v.SetDefault("transforms", o.IncludeTransforms)
	v.SetDefault("effects", o.IncludeEffects)

	v.SetDefault("design_size", o.IncludeDesignSize)
	v.SetDefault("design_width", o.DesignWidth)
	v.SetDefault("design_height", o.DesignHeight)

	v.SetDefault("binding", o.BindingMode.Literal())
	v.SetDefault("mvvm_toolkit", o.MvvmToolkit)

	v.SetDefault("indent", o.IndentWidth)
	v.SetDefault("tabs", o.UseTabs)
	v.SetDefault("max_depth", o.MaxDepth)

	v.SetDefault("palette", "light")
	v.SetDefault("font_family", o.Palette.FontFamily)
	v.SetDefault("font_size", o.Palette.FontSize)
}

// applyConfig copies the resolved configuration back onto the options.
func applyConfig(v *viper.Viper, o *options.ExportOptions) {
	o.Root = options.ParseRootKind(v.GetString("root"))
	o.Namespace = v.GetString("namespace")
	o.ClassName = v.GetString("class")
	o.ProjectName = v.GetString("project")
	o.Title = v.GetString("title")

	o.IncludeCodeBehind = v.GetBool("codebehind")
	o.IncludeViewModel = v.GetBool("viewmodel")
	o.IncludeTheme = v.GetBool("theme")
	o.IncludeStyles = v.GetBool("styles")
	o.IncludeGradients = v.GetBool("gradients")
	o.IncludeTransforms = v.GetBool("transforms")
	o.IncludeEffects = v.GetBool("effects")

	o.IncludeDesignSize = v.GetBool("design_size")
	o.DesignWidth = v.GetInt("design_width")
	o.DesignHeight = v.GetInt("design_height")

	o.BindingMode = options.ParseBindingMode(v.GetString("binding"))
	o.MvvmToolkit = v.GetBool("mvvm_toolkit")

	o.IndentWidth = v.GetInt("indent")
	o.UseTabs = v.GetBool("tabs")
	o.MaxDepth = v.GetInt("max_depth")

	p := options.ParsePalette(v.GetString("palette"))
	for name, value := range v.GetStringMapString("colors") {
		p = p.WithEntry(name, value)
	}

	p.FontFamily = v.GetString("font_family")
	p.FontSize = v.GetInt("font_size")
	o.Palette = p
}
