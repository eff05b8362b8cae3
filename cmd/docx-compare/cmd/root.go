// Package cmd implements the docx-compare command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "docx-compare",
	Short: "Compare two Word documents and produce a redlined result",
	Long: `docx-compare diffs two .docx files paragraph by paragraph and word by
word, producing a redlined Word document with tracked insertions, deletions,
and (optionally) detected moves.

Examples:
  # Compare two documents and write the redline to redline.docx
  docx-compare compare original.docx modified.docx

  # Detect paragraph moves and use character-level diffing
  docx-compare compare original.docx modified.docx --detect-moves --granularity character

  # Serve the HTTP API instead
  docx-compare serve --port 8080`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
