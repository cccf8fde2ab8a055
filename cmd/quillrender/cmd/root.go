// Package cmd wires spec.md's core pipeline into a cobra command tree,
// following the teacher pack's cc-switch layout (one file per
// subcommand, a shared rootCmd with SilenceUsage, an Execute entry
// point called from main).
package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:          "quillrender",
	Short:        "Drive the quill document-processing pipeline from the command line",
	Long:         `quillrender parses an HTML document, resolves its cascade, builds and computes a layout tree, and reports the result -- a thin CLI harness around the core pipeline spec.md describes (HTML/CSS lexing and parsing, cascade resolution, layout, URL resolution).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(diffCmd)
}
