// Package redline implements the Redline Composer (R): consumes the
// alignment trace (A) and per-match inline diffs (W) and builds the output
// document by cloning the modified document's structural scaffolding
// (numbering, styles, section properties) and emitting rewritten paragraph
// sequences whose runs carry the redline formatting (spec §4.5).
package redline

import (
	"github.com/vortex/docx-compare/internal/align"
	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/stats"
	"github.com/vortex/docx-compare/internal/text"
	"github.com/vortex/docx-compare/internal/worddiff"
)

// Styles carries the caller-overridable redline colors (spec §6
// redline_styles). A zero-value field falls back to the model package's
// DefaultDeletionColor/DefaultInsertionColor/DefaultMoveColor.
type Styles struct {
	DeletionColor  string
	InsertionColor string
	MoveColor      string
}

// Options configures the composer.
type Options struct {
	DetectMoves bool
	Styles      Styles
}

// Compose builds the redlined document. diffs must be aligned with trace:
// diffs[i] is the inline diff result for trace[i] when trace[i].Kind is
// align.Matched, and is ignored otherwise.
func Compose(original, modified *model.Document, trace []align.Entry, diffs []worddiff.ParagraphDiffResult, opts Options) (*model.Document, stats.Statistics) {
	out := &model.Document{
		Properties: modified.Properties.Clone(),
	}
	for _, n := range modified.Numberings {
		out.Numberings = append(out.Numberings, n.Clone())
	}
	for _, inst := range modified.Instances {
		out.Instances = append(out.Instances, inst.Clone())
	}
	for _, st := range modified.Styles {
		out.Styles = append(out.Styles, st.Clone())
	}

	section := &model.Section{}
	if len(modified.Sections) > 0 {
		src := modified.Sections[0]
		section.Properties = src.Properties
		section.Headers = src.Headers.Clone()
		section.Footers = src.Footers.Clone()
	}

	originalParas := original.ParagraphsFlat()
	modifiedParas := modified.ParagraphsFlat()

	records := make([]*blockRecord, 0, len(trace))
	for i, entry := range trace {
		switch entry.Kind {
		case align.Deleted:
			src := originalParas[entry.OriginalIndex]
			records = append(records, &blockRecord{
				kind:      kindDeleted,
				paragraph: src.Clone(),
				wordCount: len(text.TokenizeWords(src.PlainText())),
			})
		case align.Inserted:
			src := modifiedParas[entry.ModifiedIndex]
			records = append(records, &blockRecord{
				kind:      kindInserted,
				paragraph: src.Clone(),
				wordCount: len(text.TokenizeWords(src.PlainText())),
			})
		case align.Matched:
			src := modifiedParas[entry.ModifiedIndex]
			records = append(records, &blockRecord{
				kind:       kindMatched,
				paragraph:  composeMatchedParagraph(src, diffs[i], opts.Styles),
				diffResult: diffs[i],
			})
		}
	}

	if opts.DetectMoves {
		detectMoves(records)
	}

	var st stats.Statistics
	st.OriginalParagraphs = len(originalParas)
	st.ModifiedParagraphs = len(modifiedParas)

	section.Blocks = make([]model.Block, 0, len(records))
	for _, rec := range records {
		applyFinalFormatting(rec, opts.Styles)
		switch rec.kind {
		case kindDeleted:
			st.AddDeletedParagraph(rec.wordCount)
		case kindInserted:
			st.AddInsertedParagraph(rec.wordCount)
		case kindMatched:
			st.AddMatchedParagraph(rec.diffResult.InsertionCount, rec.diffResult.DeletionCount, rec.diffResult.UnchangedCount)
		case kindMovedFrom, kindMovedTo:
			// Counted once per pair; see countMovedPairs.
		}
		section.Blocks = append(section.Blocks, model.NewParagraphBlock(rec.paragraph))
	}
	st.Moves = countMovedPairs(records)

	out.Sections = []*model.Section{section}
	return out, st
}

type blockKind int

const (
	kindDeleted blockKind = iota
	kindInserted
	kindMatched
	kindMovedFrom
	kindMovedTo
)

type blockRecord struct {
	kind       blockKind
	paragraph  *model.Paragraph
	wordCount  int
	diffResult worddiff.ParagraphDiffResult
	normalized string // cached NormalizedText, filled lazily by detectMoves
}

// applyFinalFormatting rewrites every run's formatting according to rec's
// final (possibly move-reclassified) kind. Matched paragraphs already have
// their final per-segment formatting from composeMatchedParagraph and are
// left untouched.
func applyFinalFormatting(rec *blockRecord, styles Styles) {
	switch rec.kind {
	case kindDeleted:
		rewriteRuns(rec.paragraph, func(base model.RunFormatting) model.RunFormatting {
			return model.ForDeletion(&base, styles.DeletionColor)
		})
	case kindInserted:
		rewriteRuns(rec.paragraph, func(base model.RunFormatting) model.RunFormatting {
			return model.ForInsertion(&base, styles.InsertionColor)
		})
	case kindMovedFrom:
		rewriteRuns(rec.paragraph, func(base model.RunFormatting) model.RunFormatting {
			return model.ForMove(&base, true, styles.MoveColor)
		})
	case kindMovedTo:
		rewriteRuns(rec.paragraph, func(base model.RunFormatting) model.RunFormatting {
			return model.ForMove(&base, false, styles.MoveColor)
		})
	}
}

func rewriteRuns(p *model.Paragraph, f func(model.RunFormatting) model.RunFormatting) {
	for i := range p.Runs {
		p.Runs[i].Formatting = f(p.Runs[i].Formatting)
	}
}

// composeMatchedParagraph builds a fresh paragraph cloning the modified
// paragraph's style, numbering, and bookmark sets, with one run per
// inline-diff segment (spec §4.5, Matched case).
func composeMatchedParagraph(modifiedPara *model.Paragraph, diff worddiff.ParagraphDiffResult, styles Styles) *model.Paragraph {
	out := &model.Paragraph{
		Style:          modifiedPara.Style.Clone(),
		Numbering:      modifiedPara.Numbering.Clone(),
		BookmarkStarts: append([]string(nil), modifiedPara.BookmarkStarts...),
		BookmarkEnds:   append([]string(nil), modifiedPara.BookmarkEnds...),
	}
	for _, seg := range diff.Segments {
		if seg.Text == "" {
			continue
		}
		var f model.RunFormatting
		switch seg.Kind {
		case worddiff.Unchanged:
			f = model.RunFormatting{}
		case worddiff.Inserted:
			f = model.ForInsertion(nil, styles.InsertionColor)
		case worddiff.Deleted:
			f = model.ForDeletion(nil, styles.DeletionColor)
		}
		out.AddRun(seg.Text, f)
	}
	return out
}

func countMovedPairs(records []*blockRecord) int {
	n := 0
	for _, rec := range records {
		if rec.kind == kindMovedFrom {
			n++
		}
	}
	return n
}

func normalizedTextOf(p *model.Paragraph) string {
	return p.NormalizedText()
}
