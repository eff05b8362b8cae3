// Package align implements the Paragraph Aligner (A): a longest-common-
// subsequence alignment of original vs. modified paragraph sequences under
// the similarity oracle (S), producing an ordered trace of Matched/
// Inserted/Deleted entries (spec §4.3).
package align

import (
	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/similarity"
)

// EntryKind discriminates the variants of Entry.
type EntryKind int

const (
	Matched EntryKind = iota
	Inserted
	Deleted
)

// Entry is one step of the alignment trace. OriginalIndex/ModifiedIndex are
// indices into the flattened paragraph sequences passed to Align; only the
// index(es) relevant to Kind are meaningful:
//   - Matched:  OriginalIndex and ModifiedIndex both valid, Score set.
//   - Inserted: ModifiedIndex valid.
//   - Deleted:  OriginalIndex valid.
type Entry struct {
	Kind          EntryKind
	OriginalIndex int
	ModifiedIndex int
	Score         float64
}

// Align runs the LCS alignment of original against modified under the
// similarity oracle, honoring ignoreCase, and returns the alignment trace
// in document (top-to-bottom) order.
//
// Complexity is O(m*n) time and space (spec §4.3); this implementation
// builds the full DP table because documents are expected to fit in
// memory and no incremental/heuristic trimming is required.
func Align(original, modified []*model.Paragraph, ignoreCase bool) []Entry {
	m := len(original)
	n := len(modified)

	// sim[i][j] caches similarity.Similar(original[i], modified[j]) so the
	// O(m*n) DP fill and the backtrack don't each recompute it.
	sim := make([][]bool, m)
	for i := range sim {
		sim[i] = make([]bool, n)
		for j := range sim[i] {
			sim[i][j] = similarity.Similar(original[i], modified[j], ignoreCase)
		}
	}

	L := make([][]int, m+1)
	for i := range L {
		L[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if sim[i-1][j-1] {
				L[i][j] = L[i-1][j-1] + 1
			} else if L[i-1][j] >= L[i][j-1] {
				L[i][j] = L[i-1][j]
			} else {
				L[i][j] = L[i][j-1]
			}
		}
	}

	var trace []Entry
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && sim[i-1][j-1]:
			trace = append(trace, Entry{
				Kind:          Matched,
				OriginalIndex: i - 1,
				ModifiedIndex: j - 1,
				Score:         similarity.Score(original[i-1].NormalizedText(), modified[j-1].NormalizedText(), ignoreCase),
			})
			i--
			j--
		case j > 0 && (i == 0 || L[i][j-1] >= L[i-1][j]):
			trace = append(trace, Entry{Kind: Inserted, ModifiedIndex: j - 1})
			j--
		default:
			trace = append(trace, Entry{Kind: Deleted, OriginalIndex: i - 1})
			i--
		}
	}

	reverse(trace)
	return trace
}

func reverse(entries []Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
