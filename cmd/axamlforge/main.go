// Package main provides the CLI entrypoint for axamlforge.
//
// axamlforge converts design-tool scene documents into Avalonia UI
// artifacts:
//   - Renders the scene tree as an .axaml markup document
//   - Generates the C# code-behind and view-model companions
//   - Derives a theme resource dictionary from the palette
//   - Optionally wraps everything into a runnable project skeleton
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"axamlforge/cmd/axamlforge/commands"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "axamlforge",
	Short: "axamlforge - design scene to Avalonia artifact converter",
	Long: `axamlforge converts design-tool scene documents into Avalonia UI artifacts.

A scene is a JSON document of layers and component nodes as exported by a
design tool. Each export produces an .axaml markup document and, depending
on the preset, a C# code-behind, a view-model, a theme resource dictionary,
and project boilerplate.

Available commands:
  export   - Convert a scene document into Avalonia artifacts
  preview  - Summarize what an export would produce
  mappings - List the component mappings in effect

Examples:
  axamlforge export scene.json                     # UserControl + companions
  axamlforge export scene.json -o out/ -p project  # Full runnable project
  axamlforge preview scene.json -p document
  axamlforge mappings --category input`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commands.InitLogger(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging of the export pipeline")

	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.PreviewCmd)
	rootCmd.AddCommand(commands.MappingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
