// Package similarity implements the Similarity Oracle (S): a pure function
// deciding whether two paragraphs are "the same paragraph, possibly edited"
// (spec §4.2).
package similarity

import (
	"strings"

	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/text"
)

// Threshold is the Jaccard-similarity cutoff at or above which two
// paragraphs are considered similar. This is a contract value: spec §4.2
// and §8.8 fix it at 0.5 (two paragraphs with Jaccard exactly 0.5 match;
// 0.49 does not).
const Threshold = 0.5

// Similar reports whether pa and pb are "the same paragraph, possibly
// edited": both-empty pairs match, exactly-one-empty pairs never match,
// and otherwise the normalized-text Jaccard similarity must reach
// Threshold. When ignoreCase is set, text is lowercased (ASCII-invariant)
// before tokenization.
func Similar(pa, pb *model.Paragraph, ignoreCase bool) bool {
	a := text.NormalizedText(pa)
	b := text.NormalizedText(pb)

	aEmpty := a == ""
	bEmpty := b == ""
	if aEmpty && bEmpty {
		return true
	}
	if aEmpty || bEmpty {
		return false
	}
	return Score(a, b, ignoreCase) >= Threshold
}

// Score returns the Jaccard similarity of the word-token sets of a and b,
// in [0,1]. Unlike Similar, Score takes already-extracted text (normalized
// or not is the caller's choice) rather than paragraphs, so it can also
// serve as a general-purpose text similarity helper (spec §4.2
// similarity_score).
func Score(a, b string, ignoreCase bool) float64 {
	if ignoreCase {
		a = asciiLower(a)
		b = asciiLower(b)
	}
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	tokens := text.TokenizeWords(s)
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

// asciiLower lowercases only ASCII letters, matching the "ASCII-invariant
// lowercasing" spec §4.2 calls for — non-ASCII text is passed through
// unchanged rather than relying on locale-aware case folding.
func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
