// Package compare wires the diff engine's components together: Paragraph
// Aligner (A), Inline Word Differ (W), Redline Composer (R), and Statistics
// Accumulator (X), per the data flow in spec §2:
//
//	(M_original, M_modified) -> T -> {S used by A} -> alignment trace
//	  -> for each match: W -> R -> M_redlined + X
//
// This package has no I/O: it is pure computation over two already-parsed
// Document models, matching the single-threaded, purely computational
// concurrency model of spec §5.
package compare

import (
	"github.com/vortex/docx-compare/internal/align"
	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/redline"
	"github.com/vortex/docx-compare/internal/stats"
	"github.com/vortex/docx-compare/internal/worddiff"
)

// Options mirrors spec §6's compare_options.
//
// IgnoreFormatting is accepted and threaded through to callers (CLI flag,
// HTTP form field) but not yet honored: the diff engine compares run text,
// not run formatting, so there is nothing for this flag to suppress today.
// It's kept in Options rather than dropped so a future formatting-aware
// diff pass has a call site ready.
type Options struct {
	DetectMoves      bool
	IgnoreWhitespace bool
	IgnoreCase       bool
	IgnoreFormatting bool
	Granularity      worddiff.Granularity
	Styles           redline.Styles
}

// DefaultOptions returns spec §6's defaults: ignore_whitespace=true, word
// granularity, everything else off, and the hard-coded redline colors.
func DefaultOptions() Options {
	return Options{
		IgnoreWhitespace: true,
		Granularity:      worddiff.Word,
	}
}

// Result mirrors spec §6's compare_result (minus the I/O-facing fields,
// which belong to the façade, not the core).
type Result struct {
	Document   *model.Document
	Statistics stats.Statistics
}

// Run executes the full two-stage diff: aligns original against modified
// paragraph-by-paragraph, diffs every matched pair at opts.Granularity
// (word by default), and
// composes the redlined output document. It never fails (spec §4.7): the
// core pipeline is total over well-formed Document models.
func Run(original, modified *model.Document, opts Options) Result {
	originalParas := original.ParagraphsFlat()
	modifiedParas := modified.ParagraphsFlat()

	trace := align.Align(originalParas, modifiedParas, opts.IgnoreCase)

	diffs := make([]worddiff.ParagraphDiffResult, len(trace))
	for i, entry := range trace {
		if entry.Kind == align.Matched {
			diffs[i] = worddiff.Diff(
				originalParas[entry.OriginalIndex],
				modifiedParas[entry.ModifiedIndex],
				opts.Granularity,
				opts.IgnoreWhitespace,
			)
		}
	}

	doc, st := redline.Compose(original, modified, trace, diffs, redline.Options{
		DetectMoves: opts.DetectMoves,
		Styles:      opts.Styles,
	})

	return Result{Document: doc, Statistics: st}
}
