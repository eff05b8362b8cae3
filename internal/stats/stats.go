// Package stats implements the Statistics Accumulator (X): counts of
// paragraphs, insertions, deletions, unchanged words, and the derived
// percent-changed figure (spec §4.6).
package stats

// Statistics holds the redline composer's running counts. Insertions,
// Deletions, and Unchanged are counted in the units spec §4.6 specifies:
// whole-paragraph inserts/deletes contribute word counts, while Matched
// paragraphs contribute their inline diff's segment counts.
type Statistics struct {
	Insertions int
	Deletions  int
	Moves      int
	Unchanged  int

	OriginalParagraphs int
	ModifiedParagraphs int
}

// AddDeletedParagraph records a whole deleted paragraph, contributing its
// word count to Deletions.
func (s *Statistics) AddDeletedParagraph(wordCount int) {
	s.Deletions += wordCount
}

// AddInsertedParagraph records a whole inserted paragraph, contributing its
// word count to Insertions.
func (s *Statistics) AddInsertedParagraph(wordCount int) {
	s.Insertions += wordCount
}

// AddMatchedParagraph records a matched paragraph's inline diff segment
// counts.
func (s *Statistics) AddMatchedParagraph(insertions, deletions, unchanged int) {
	s.Insertions += insertions
	s.Deletions += deletions
	s.Unchanged += unchanged
}

// AddMovedPair records one detected move (a MovedFrom/MovedTo paragraph
// pair), per spec §4.5: "the statistics increment Moves instead of
// Insertions+Deletions". Callers must not also call
// AddInsertedParagraph/AddDeletedParagraph for the same pair.
func (s *Statistics) AddMovedPair() {
	s.Moves++
}

// ChangePercentage returns 100 * (I+D+Mv) / max(1, I+D+Mv+U).
func (s *Statistics) ChangePercentage() float64 {
	changed := s.Insertions + s.Deletions + s.Moves
	total := changed + s.Unchanged
	if total < 1 {
		total = 1
	}
	return 100 * float64(changed) / float64(total)
}
