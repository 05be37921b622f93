package commands

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"axamlforge/export"
	"axamlforge/scene"
)

var (
	previewPreset  string
	previewConfig  string
	previewOverlay string
	previewJSON    bool
)

// PreviewCmd represents the preview command
var PreviewCmd = &cobra.Command{
	Use:   "preview <scene.json>",
	Short: "Summarize what an export would produce",
	Long: `Summarize what an export would produce without generating anything.

The preview counts the scene's components, reports how many the mapping
registry can place, lists the unsupported types, and estimates the number
of output files for the chosen preset.

Examples:
  axamlforge preview scene.json
  axamlforge preview scene.json -p project
  axamlforge preview scene.json --mappings extra.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	PreviewCmd.Flags().StringVarP(&previewPreset, "preset", "p", "", "Export preset: document, window, control, project")
	PreviewCmd.Flags().StringVar(&previewConfig, "config", "", "Config file (default: ./axamlforge.toml if present)")
	PreviewCmd.Flags().StringVar(&previewOverlay, "mappings", "", "YAML overlay file with extra component mappings")
	PreviewCmd.Flags().BoolVar(&previewJSON, "json", false, "Print the summary as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := scene.DecodeFile(args[0])
	if err != nil {
		return err
	}

	opts, err := loadOptions(previewConfig, previewPreset)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(previewOverlay)
	if err != nil {
		return err
	}

	p := export.NewWith(reg, log).Preview(s, opts)

	if previewJSON {
		data, err := json.MarshalIndent(previewManifest{
			ComponentCount:     p.ComponentCount,
			SupportedCount:     p.SupportedCount,
			UnsupportedTypes:   p.UnsupportedTypes,
			EstimatedFileCount: p.EstimatedFileCount,
		}, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(data))

		return nil
	}

	unsupported := pterm.Gray("none")
	if len(p.UnsupportedTypes) > 0 {
		unsupported = pterm.Yellow(strings.Join(p.UnsupportedTypes, ", "))
	}

	pterm.Printf("  %s %s\n", pterm.Gray("Components:     "), pterm.White(fmt.Sprintf("%d", p.ComponentCount)))
	pterm.Printf("  %s %s\n", pterm.Gray("Supported:      "), pterm.LightGreen(fmt.Sprintf("%d", p.SupportedCount)))
	pterm.Printf("  %s %s\n", pterm.Gray("Unsupported:    "), unsupported)
	pterm.Printf("  %s %s\n", pterm.Gray("Estimated files:"), pterm.White(fmt.Sprintf("%d", p.EstimatedFileCount)))

	return nil
}

type previewManifest struct {
	ComponentCount     int      `json:"componentCount"`
	SupportedCount     int      `json:"supportedCount"`
	UnsupportedTypes   []string `json:"unsupportedTypes,omitempty"`
	EstimatedFileCount int      `json:"estimatedFileCount"`
}
