package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"axamlforge/internal/mapping"
)

var (
	mappingsCategory string
	mappingsOverlay  string
	mappingsJSON     bool
)

// MappingsCmd represents the mappings command
var MappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "List the component mappings in effect",
	Long: `List the component mappings the exporter resolves scene nodes against.

Every row shows a scene node type, the Avalonia element it becomes, its
category, and how many property rules it carries. An overlay file extends
or shadows the builtin set exactly as it would during an export.

Examples:
  axamlforge mappings
  axamlforge mappings --category input
  axamlforge mappings --mappings extra.yaml`,
	RunE: runMappings,
}

func init() {
	MappingsCmd.Flags().StringVar(&mappingsCategory, "category", "", "Only list one category: input, display, shape, container, navigation, media")
	MappingsCmd.Flags().StringVar(&mappingsOverlay, "mappings", "", "YAML overlay file with extra component mappings")
	MappingsCmd.Flags().BoolVar(&mappingsJSON, "json", false, "Print the listing as JSON")
}

func runMappings(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry(mappingsOverlay)
	if err != nil {
		return err
	}

	list := reg.All()
	if mappingsCategory != "" {
		c, ok := mapping.ParseCategory(mappingsCategory)
		if !ok {
			return errors.Newf("unknown category %q (want input, display, shape, container, navigation, or media)", mappingsCategory)
		}

		list = reg.ListByCategory(c)
	}

	if mappingsJSON {
		rows := make([]mappingRow, 0, len(list))
		for _, m := range list {
			rows = append(rows, mappingRow{
				Source:   m.SourceType,
				Element:  m.QualifiedTarget(),
				Category: m.Category.String(),
				Class:    m.StyleClass,
				Rules:    len(m.Rules),
			})
		}

		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(data))

		return nil
	}

	for _, m := range list {
		pterm.Printf("  %-16s %s %s %s\n",
			m.SourceType,
			pterm.Gray("→"),
			pterm.LightGreen(fmt.Sprintf("%-24s", m.QualifiedTarget())),
			pterm.Gray(fmt.Sprintf("%-11s %d rules", m.Category, len(m.Rules))))
	}

	pterm.Printf("%s %d mapping(s)\n", pterm.Gray("Total:"), len(list))

	return nil
}

type mappingRow struct {
	Source   string `json:"source"`
	Element  string `json:"element"`
	Category string `json:"category"`
	Class    string `json:"class,omitempty"`
	Rules    int    `json:"rules"`
}
