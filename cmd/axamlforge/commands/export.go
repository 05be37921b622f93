package commands

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"axamlforge/export"
	"axamlforge/internal/diagnostic"
	"axamlforge/internal/mapping"
	"axamlforge/options"
	"axamlforge/scene"
)

var (
	exportOut       string
	exportPreset    string
	exportConfig    string
	exportOverlay   string
	exportClass     string
	exportNamespace string
	exportRoot      string
	exportTitle     string
	exportJSON      bool
)

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export <scene.json>",
	Short: "Convert a scene document into Avalonia artifacts",
	Long: `Convert a scene document into Avalonia UI artifacts.

The scene is normalized against the mapping registry, rendered into an
.axaml document, and written together with the companion files the preset
selects.

Presets:
  document - markup document alone
  window   - Window root with code-behind, view-model, and theme
  control  - embeddable UserControl without an application theme
  project  - window preset plus csproj, Program.cs, and the App pair

Examples:
  axamlforge export scene.json                     # UserControl + companions
  axamlforge export scene.json -o out/ -p project  # Full runnable project
  axamlforge export scene.json --json              # Machine-readable manifest`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory for generated files")
	ExportCmd.Flags().StringVarP(&exportPreset, "preset", "p", "", "Export preset: document, window, control, project")
	ExportCmd.Flags().StringVar(&exportConfig, "config", "", "Config file (default: ./axamlforge.toml if present)")
	ExportCmd.Flags().StringVar(&exportOverlay, "mappings", "", "YAML overlay file with extra component mappings")
	ExportCmd.Flags().StringVar(&exportClass, "class", "", "Generated view class name")
	ExportCmd.Flags().StringVar(&exportNamespace, "namespace", "", "CLR namespace for generated sources")
	ExportCmd.Flags().StringVar(&exportRoot, "root", "", "Root element: usercontrol or window")
	ExportCmd.Flags().StringVar(&exportTitle, "title", "", "Window title")
	ExportCmd.Flags().BoolVar(&exportJSON, "json", false, "Print a JSON manifest instead of human output")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := scene.DecodeFile(args[0])
	if err != nil {
		return err
	}

	opts, err := loadOptions(exportConfig, exportPreset)
	if err != nil {
		return err
	}

	applyExportFlags(cmd, &opts)

	reg, err := buildRegistry(exportOverlay)
	if err != nil {
		return err
	}

	res := export.NewWith(reg, log).Export(s, opts)

	if res.Success() {
		if err := export.WriteFiles(res, exportOut); err != nil {
			return err
		}
	}

	if exportJSON {
		if err := printManifest(res); err != nil {
			return err
		}

		return res.Err
	}

	printDiagnostics(res.Diagnostics)

	if !res.Success() {
		return res.Err
	}

	for _, f := range res.Files {
		pterm.Printf("  %s %s %s\n",
			pterm.LightGreen("✓"),
			f.Name,
			pterm.Gray("("+f.Kind.String()+")"))
	}

	pterm.Printf("%s %d file(s) written to %s\n",
		pterm.LightGreen("Export complete:"), len(res.Files), exportOut)

	return nil
}

// applyExportFlags lets explicit flags win over config file and environment.
func applyExportFlags(cmd *cobra.Command, opts *options.ExportOptions) {
	if cmd.Flags().Changed("class") {
		opts.ClassName = exportClass
	}

	if cmd.Flags().Changed("namespace") {
		opts.Namespace = exportNamespace
	}

	if cmd.Flags().Changed("root") {
		opts.Root = options.ParseRootKind(exportRoot)
	}

	if cmd.Flags().Changed("title") {
		opts.Title = exportTitle
	}

	*opts = opts.Clamped()
}

// buildRegistry returns the builtin registry, extended by the overlay file
// when one is given.
func buildRegistry(overlayPath string) (*mapping.Registry, error) {
	reg := mapping.NewRegistry()
	if overlayPath == "" {
		return reg, nil
	}

	of, err := mapping.LoadFile(overlayPath)
	if err != nil {
		return nil, err
	}

	if err := reg.ApplyOverlay(of); err != nil {
		return nil, err
	}

	return reg, nil
}

func printDiagnostics(diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case diagnostic.SeverityError:
			pterm.Printf("  %s %s\n", pterm.Red("✗"), d.String())
		case diagnostic.SeverityWarning:
			pterm.Printf("  %s %s\n", pterm.Yellow("!"), d.String())
		default:
			pterm.Printf("  %s %s\n", pterm.Gray("·"), d.String())
		}
	}
}

type manifestFile struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Size int    `json:"size"`
}

type manifestDiag struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Node     string `json:"node,omitempty"`
	Property string `json:"property,omitempty"`
}

type manifest struct {
	Success     bool           `json:"success"`
	Phase       string         `json:"phase"`
	Files       []manifestFile `json:"files"`
	Diagnostics []manifestDiag `json:"diagnostics,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// printManifest writes the machine-readable export summary to stdout.
// Contents stay out of the manifest; consumers read the written files.
func printManifest(res *export.Result) error {
	m := manifest{
		Success: res.Success(),
		Phase:   res.Phase.String(),
		Files:   make([]manifestFile, 0, len(res.Files)),
	}

	for _, f := range res.Files {
		m.Files = append(m.Files, manifestFile{Name: f.Name, Kind: f.Kind.String(), Size: len(f.Content)})
	}

	for _, d := range res.Diagnostics {
		m.Diagnostics = append(m.Diagnostics, manifestDiag{
			Severity: d.Severity.String(),
			Code:     d.Code,
			Message:  d.Message,
			Node:     d.Node,
			Property: d.Property,
		})
	}

	if res.Err != nil {
		m.Error = res.Err.Error()
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}
