// Package text implements the pure text-normalization and tokenization
// functions (T) spec §4.1 defines: plain text, whitespace-normalized text,
// and word-token streams, all derived from a paragraph's runs.
package text

import (
	"regexp"
	"strings"

	"github.com/vortex/docx-compare/internal/model"
)

// PlainText concatenates run texts in order, verbatim.
func PlainText(p *model.Paragraph) string {
	return p.PlainText()
}

// NormalizedText trims PlainText and collapses every run of whitespace to a
// single space. Used by the similarity oracle (S) and by the inline word
// differ (W) when whitespace is ignored.
func NormalizedText(p *model.Paragraph) string {
	return p.NormalizedText()
}

var wordRE = regexp.MustCompile(`\S+`)

// TokenizeWords returns the ordered sequence of maximal non-whitespace runs
// in s. Whitespace itself is discarded; callers that need to reassemble
// text reinsert single spaces between tokens.
func TokenizeWords(s string) []string {
	return wordRE.FindAllString(s, -1)
}

// JoinWords joins tokens with single spaces, the canonical form the inline
// word differ (W) diffs over.
func JoinWords(tokens []string) string {
	return strings.Join(tokens, " ")
}
