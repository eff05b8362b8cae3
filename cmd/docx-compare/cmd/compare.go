package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vortex/docx-compare/internal/compare"
	"github.com/vortex/docx-compare/internal/config"
	"github.com/vortex/docx-compare/internal/redline"
	"github.com/vortex/docx-compare/internal/service"
	"github.com/vortex/docx-compare/internal/worddiff"
)

var (
	outputFile       string
	outputFormat     string
	detectMoves      bool
	ignoreCase       bool
	ignoreWhitespace bool
	ignoreFormatting bool
	granularity      string
	stylesFile       string
	deletionColor    string
	insertionColor   string
	moveColor        string

	compareCmd = &cobra.Command{
		Use:   "compare <original.docx> <modified.docx>",
		Short: "Compare two .docx files and write a redlined result",
		Long: `Compare reads two Word documents, aligns their paragraphs, diffs the
matched paragraphs at word, character, sentence, or paragraph granularity,
and writes a redlined .docx with tracked-change-style formatting: deletions
struck through in red, insertions in bold blue, and (with --detect-moves)
moved paragraphs marked in green.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}
)

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&outputFile, "output", "o", "redline.docx", "Output path for the redlined document")
	compareCmd.Flags().StringVar(&outputFormat, "format", "word", "Output format (only \"word\" is implemented)")
	compareCmd.Flags().BoolVar(&detectMoves, "detect-moves", false, "Detect paragraphs moved within the document")
	compareCmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "Ignore letter case when aligning paragraphs (the word diff inside a matched paragraph stays case-sensitive)")
	compareCmd.Flags().BoolVar(&ignoreWhitespace, "ignore-whitespace", true, "Collapse whitespace differences before diffing")
	compareCmd.Flags().BoolVar(&ignoreFormatting, "ignore-formatting", false, "Ignore run-formatting differences (accepted, not yet honored)")
	compareCmd.Flags().StringVar(&granularity, "granularity", "word", "Diff granularity: word, character, sentence, or paragraph")
	compareCmd.Flags().StringVar(&stylesFile, "styles", "", "YAML redline_styles override file (deletion_color/insertion_color/move_color)")
	compareCmd.Flags().StringVar(&deletionColor, "deletion-color", "", "Hex color override for deleted text (default from internal/model)")
	compareCmd.Flags().StringVar(&insertionColor, "insertion-color", "", "Hex color override for inserted text")
	compareCmd.Flags().StringVar(&moveColor, "move-color", "", "Hex color override for moved text")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if outputFormat != "word" {
		return fmt.Errorf("--format %q: %w", outputFormat, service.ErrUnsupportedOutput)
	}

	originalPath, modifiedPath := args[0], args[1]

	original, err := os.ReadFile(originalPath)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}
	modified, err := os.ReadFile(modifiedPath)
	if err != nil {
		return fmt.Errorf("read modified: %w", err)
	}

	styles := redline.Styles{
		DeletionColor:  deletionColor,
		InsertionColor: insertionColor,
		MoveColor:      moveColor,
	}
	if stylesFile != "" {
		fileStyles, err := config.LoadRedlineStylesFile(stylesFile)
		if err != nil {
			return fmt.Errorf("load styles file: %w", err)
		}
		styles = mergeStyles(fileStyles, styles)
	}

	opts := compare.DefaultOptions()
	opts.DetectMoves = detectMoves
	opts.IgnoreCase = ignoreCase
	opts.IgnoreWhitespace = ignoreWhitespace
	opts.IgnoreFormatting = ignoreFormatting
	opts.Styles = styles
	switch granularity {
	case "character":
		opts.Granularity = worddiff.Character
	case "sentence":
		opts.Granularity = worddiff.Sentence
	case "paragraph":
		opts.Granularity = worddiff.Paragraph
	}

	svc := service.NewCompareService()
	out, err := svc.Compare(original, modified, opts)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	if err := os.WriteFile(outputFile, out.RedlinedDocx, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}

	st := out.Statistics.Statistics
	fmt.Printf("Wrote %s (insertions=%d deletions=%d moves=%d unchanged=%d)\n",
		outputFile, st.Insertions, st.Deletions, st.Moves, st.Unchanged)
	return nil
}

// mergeStyles layers explicit flag overrides (override) on top of a
// styles file's values (base); a flag left at its zero value falls
// through to the file.
func mergeStyles(base, override redline.Styles) redline.Styles {
	out := base
	if override.DeletionColor != "" {
		out.DeletionColor = override.DeletionColor
	}
	if override.InsertionColor != "" {
		out.InsertionColor = override.InsertionColor
	}
	if override.MoveColor != "" {
		out.MoveColor = override.MoveColor
	}
	return out
}
