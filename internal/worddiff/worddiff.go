// Package worddiff implements the Inline Word Differ (W): for two
// paragraphs already known to be "similar" per the similarity oracle, a
// word-level diff producing an ordered list of Unchanged/Inserted/Deleted
// segments (spec §4.4).
//
// The diff itself is delegated to github.com/sergi/go-diff/diffmatchpatch,
// using its line-mode workflow (DiffLinesToChars / DiffMain /
// DiffCharsToLines) with each whitespace-separated token treated as one
// "line" — exactly the granularity-agnostic contract spec §4.4 and §9
// describe ("a line-oriented inline differ... Myers is the usual choice").
package worddiff

import (
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/text"
)

// Granularity selects the token unit the differ operates over. Word is the
// default; Character, Sentence, and Paragraph are the other token units
// spec §4.4's "granularity-agnostic at the contract level" note calls for,
// reachable via the CLI's --granularity flag and the HTTP handler's
// granularity form field.
type Granularity int

const (
	Word Granularity = iota
	Character
	Sentence
	Paragraph
)

// SegmentKind discriminates the variants of Segment.
type SegmentKind int

const (
	Unchanged SegmentKind = iota
	Inserted
	Deleted
)

// Segment is one run of contiguous, same-kind tokens in the diff output.
type Segment struct {
	Text string
	Kind SegmentKind
}

// ParagraphDiffResult is the outcome of diffing one Matched paragraph pair.
// InsertionCount/DeletionCount/UnchangedCount count segments, not words
// (spec §4.4).
type ParagraphDiffResult struct {
	Segments         []Segment
	EntirelyDeleted  bool
	EntirelyInserted bool
	InsertionCount   int
	DeletionCount    int
	UnchangedCount   int
}

// Diff produces the inline diff of original vs. modified at the given
// granularity. When ignoreWhitespace is true (compare §6's default), both
// paragraphs' text is whitespace-normalized before tokenizing, so a run of
// extra spaces or a trailing tab never surfaces as a segment; when false,
// whitespace is tokenized like any other content and can appear as its own
// Inserted/Deleted segment.
func Diff(original, modified *model.Paragraph, granularity Granularity, ignoreWhitespace bool) ParagraphDiffResult {
	origText := original.PlainText()
	modText := modified.PlainText()
	if ignoreWhitespace {
		origText = text.NormalizedText(original)
		modText = text.NormalizedText(modified)
	}

	switch {
	case origText == "" && modText == "":
		return ParagraphDiffResult{}
	case origText == "":
		return ParagraphDiffResult{
			Segments:         []Segment{{Text: modText, Kind: Inserted}},
			EntirelyInserted: true,
			InsertionCount:   1,
		}
	case modText == "":
		return ParagraphDiffResult{
			Segments:        []Segment{{Text: origText, Kind: Deleted}},
			EntirelyDeleted: true,
			DeletionCount:   1,
		}
	}

	origTokens := tokenize(origText, granularity, ignoreWhitespace)
	modTokens := tokenize(modText, granularity, ignoreWhitespace)

	// Word (with whitespace ignored) and Sentence tokens had their
	// separating whitespace discarded at tokenization, so rejoining needs a
	// space reinserted between tokens. Character tokens, Paragraph's single
	// token, and Word tokens kept whole (ignoreWhitespace=false, whitespace
	// runs survive as their own tokens) already carry their own spacing.
	needsSpacing := granularity == Sentence || (granularity == Word && ignoreWhitespace)

	// Every token, the last one included, is terminated with "\n" so that
	// the line-mode hashing sees the same "line" for equal tokens wherever
	// they sit ("bar" at the end must equal "bar\n" in the middle).
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(strings.Join(origTokens, "\n")+"\n", strings.Join(modTokens, "\n")+"\n")
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result ParagraphDiffResult
	for _, d := range diffs {
		tokens := splitTokens(d.Text)
		if len(tokens) == 0 {
			continue
		}
		seg := Segment{Text: joinTokens(tokens, needsSpacing)}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			seg.Kind = Deleted
			result.DeletionCount++
		case diffmatchpatch.DiffInsert:
			seg.Kind = Inserted
			result.InsertionCount++
		default:
			seg.Kind = Unchanged
			result.UnchangedCount++
		}
		result.Segments = append(result.Segments, seg)
	}

	if needsSpacing && len(result.Segments) > 0 {
		// Trim the trailing space from the final segment only (spec §4.4):
		// ["foo","bar","baz"] -> "foo bar " + "baz" on concatenation.
		last := &result.Segments[len(result.Segments)-1]
		last.Text = strings.TrimSuffix(last.Text, " ")
	}

	return result
}

func joinTokens(tokens []string, needsSpacing bool) string {
	if needsSpacing {
		return strings.Join(tokens, " ") + " "
	}
	return strings.Join(tokens, "")
}

// splitTokens recovers the individual tokens diffmatchpatch packed into one
// diff chunk, tolerating both "\n"-joined multi-token chunks and a single
// trailing token with no terminator.
func splitTokens(s string) []string {
	parts := strings.Split(s, "\n")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var sentenceRE = regexp.MustCompile(`[^.!?]+[.!?]*`)

// wordOrWhitespaceRE tokenizes into alternating non-whitespace and
// whitespace runs, used instead of text.TokenizeWords when ignoreWhitespace
// is false so whitespace-only edits survive as their own tokens rather than
// being discarded by a \S+-only split.
var wordOrWhitespaceRE = regexp.MustCompile(`\S+|\s+`)

func tokenize(s string, g Granularity, ignoreWhitespace bool) []string {
	switch g {
	case Character:
		runes := []rune(s)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out
	case Sentence:
		matches := sentenceRE.FindAllString(s, -1)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			if trimmed := strings.TrimSpace(m); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case Paragraph:
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return []string{s}
	default: // Word
		if ignoreWhitespace {
			return text.TokenizeWords(s)
		}
		return wordOrWhitespaceRE.FindAllString(s, -1)
	}
}
