package worddiff

import (
	"strings"
	"testing"

	"github.com/vortex/docx-compare/internal/model"
)

func para(s string) *model.Paragraph {
	p := model.NewParagraph()
	if s != "" {
		p.AddRun(s, model.RunFormatting{})
	}
	return p
}

func concatSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestDiff_BothEmpty(t *testing.T) {
	got := Diff(para(""), para(""), Word, true)
	if len(got.Segments) != 0 {
		t.Errorf("want no segments for both-empty paragraphs, got %v", got.Segments)
	}
}

func TestDiff_EmptyToNonEmpty(t *testing.T) {
	got := Diff(para(""), para("X"), Word, true)
	if !got.EntirelyInserted {
		t.Error("want EntirelyInserted=true")
	}
	if len(got.Segments) != 1 || got.Segments[0].Kind != Inserted || got.Segments[0].Text != "X" {
		t.Errorf("want a single Inserted segment \"X\", got %v", got.Segments)
	}
}

func TestDiff_NonEmptyToEmpty(t *testing.T) {
	got := Diff(para("X"), para(""), Word, true)
	if !got.EntirelyDeleted {
		t.Error("want EntirelyDeleted=true")
	}
	if len(got.Segments) != 1 || got.Segments[0].Kind != Deleted || got.Segments[0].Text != "X" {
		t.Errorf("want a single Deleted segment \"X\", got %v", got.Segments)
	}
}

func TestDiff_WordAddition(t *testing.T) {
	got := Diff(para("Hello world"), para("Hello beautiful world"), Word, true)

	foundInsert := false
	for _, s := range got.Segments {
		if s.Kind == Deleted {
			t.Errorf("want no Deleted segments, got %v", got.Segments)
		}
		if s.Kind == Inserted && strings.Contains(s.Text, "beautiful") {
			foundInsert = true
		}
	}
	if !foundInsert {
		t.Errorf("want an Inserted segment containing \"beautiful\", got %v", got.Segments)
	}
}

func TestDiff_WordRemoval(t *testing.T) {
	got := Diff(para("Hello beautiful world"), para("Hello world"), Word, true)

	deletedCount := 0
	for _, s := range got.Segments {
		if s.Kind == Deleted {
			deletedCount++
			if !strings.Contains(s.Text, "beautiful") {
				t.Errorf("want the Deleted segment to contain \"beautiful\", got %q", s.Text)
			}
		}
	}
	if deletedCount != 1 {
		t.Errorf("want exactly one Deleted segment, got %d (%v)", deletedCount, got.Segments)
	}
}

func TestDiff_Replace(t *testing.T) {
	got := Diff(para("Hello world"), para("Hello universe"), Word, true)

	var hasDeleteWorld, hasInsertUniverse bool
	for _, s := range got.Segments {
		if s.Kind == Deleted && strings.Contains(s.Text, "world") {
			hasDeleteWorld = true
		}
		if s.Kind == Inserted && strings.Contains(s.Text, "universe") {
			hasInsertUniverse = true
		}
	}
	if !hasDeleteWorld {
		t.Errorf("want a Deleted segment containing \"world\", got %v", got.Segments)
	}
	if !hasInsertUniverse {
		t.Errorf("want an Inserted segment containing \"universe\", got %v", got.Segments)
	}
}

func TestDiff_ConcatenationReconstructsJoinedWords(t *testing.T) {
	got := Diff(para("foo bar"), para("foo bar baz"), Word, true)
	if concat := concatSegments(got.Segments); concat != "foo bar baz" {
		t.Errorf("concatenated segments = %q, want %q", concat, "foo bar baz")
	}
}

func TestDiff_Identity(t *testing.T) {
	p := para("The quick brown fox")
	got := Diff(p, p, Word, true)
	if got.InsertionCount != 0 || got.DeletionCount != 0 {
		t.Errorf("identity diff must have no insertions/deletions, got %+v", got)
	}
	if got.UnchangedCount == 0 {
		t.Error("identity diff must have at least one Unchanged segment")
	}
}

func TestDiff_CountsAreSegmentsNotWords(t *testing.T) {
	// Two inserted words adjacent to each other collapse into ONE segment.
	got := Diff(para("Hello world"), para("Hello beautiful amazing world"), Word, true)
	if got.InsertionCount != 1 {
		t.Errorf("want InsertionCount=1 (one contiguous run), got %d (%v)", got.InsertionCount, got.Segments)
	}
}

func TestDiff_IgnoreWhitespaceTrueHidesSpacingOnlyChange(t *testing.T) {
	got := Diff(para("Hello   world"), para("Hello world"), Word, true)
	if got.InsertionCount != 0 || got.DeletionCount != 0 {
		t.Errorf("want a spacing-only change hidden when ignoreWhitespace=true, got %+v", got.Segments)
	}
}

func TestDiff_IgnoreWhitespaceFalseSurfacesSpacingOnlyChange(t *testing.T) {
	got := Diff(para("Hello   world"), para("Hello world"), Word, false)
	if got.DeletionCount == 0 {
		t.Errorf("want a spacing-only change surfaced when ignoreWhitespace=false, got %+v", got.Segments)
	}
	// Segments: "Hello", deleted "   ", inserted " ", "world" — whitespace
	// tokens keep their own spacing, so the concatenation holds 3+1 spaces.
	if concat := concatSegments(got.Segments); concat != "Hello    world" {
		t.Errorf("concatenated segments = %q, want %q", concat, "Hello    world")
	}
}

func TestDiff_CharacterGranularityReconstructsExactText(t *testing.T) {
	got := Diff(para("Hello world"), para("Hello brave world"), Character, true)
	if concat := concatSegments(got.Segments); concat != "Hello brave world" {
		t.Errorf("concatenated segments = %q, want %q", concat, "Hello brave world")
	}
}

func TestDiff_SentenceGranularity(t *testing.T) {
	got := Diff(para("One. Two. Three."), para("One. Deux. Three."), Sentence, true)
	var hasDeleteTwo, hasInsertDeux bool
	for _, s := range got.Segments {
		if s.Kind == Deleted && strings.Contains(s.Text, "Two") {
			hasDeleteTwo = true
		}
		if s.Kind == Inserted && strings.Contains(s.Text, "Deux") {
			hasInsertDeux = true
		}
	}
	if !hasDeleteTwo || !hasInsertDeux {
		t.Errorf("want sentence-level replace of \"Two.\" with \"Deux.\", got %v", got.Segments)
	}
}

func TestDiff_ParagraphGranularityWholeParagraphReplace(t *testing.T) {
	got := Diff(para("Old text entirely."), para("New text entirely."), Paragraph, true)
	if got.InsertionCount == 0 && got.DeletionCount == 0 {
		t.Errorf("want the whole paragraph to diff as changed, got %+v", got.Segments)
	}
}
