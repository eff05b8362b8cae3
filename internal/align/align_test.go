package align

import (
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

func paras(ss ...string) []*model.Paragraph {
	out := make([]*model.Paragraph, len(ss))
	for i, s := range ss {
		out[i] = para(s)
	}
	return out
}

func kinds(entries []Entry) []EntryKind {
	out := make([]EntryKind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func countKind(entries []Entry, k EntryKind) int {
	n := 0
	for _, e := range entries {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Distinct short paragraphs sharing only the word "document" (Jaccard 1/5)
// so Similar never accidentally matches across different letters.
func TestAlign_Insertion(t *testing.T) {
	original := paras("Alpha document one", "Charlie document three")
	modified := paras("Alpha document one", "Bravo document two", "Charlie document three")

	trace := Align(original, modified, false)

	if len(trace) != 3 {
		t.Fatalf("len(trace) = %d, want 3", len(trace))
	}
	if countKind(trace, Inserted) != 1 {
		t.Errorf("want exactly one Inserted entry, got trace=%v", kinds(trace))
	}
	if countKind(trace, Matched) != 2 {
		t.Errorf("want exactly two Matched entries, got trace=%v", kinds(trace))
	}
	if countKind(trace, Deleted) != 0 {
		t.Errorf("want zero Deleted entries, got trace=%v", kinds(trace))
	}
}

func TestAlign_Deletion(t *testing.T) {
	original := paras("Alpha document one", "Bravo document two", "Charlie document three")
	modified := paras("Alpha document one", "Charlie document three")

	trace := Align(original, modified, false)

	if len(trace) != 3 {
		t.Fatalf("len(trace) = %d, want 3", len(trace))
	}
	if countKind(trace, Deleted) != 1 {
		t.Errorf("want exactly one Deleted entry, got trace=%v", kinds(trace))
	}
	if countKind(trace, Matched) != 2 {
		t.Errorf("want exactly two Matched entries, got trace=%v", kinds(trace))
	}
}

func TestAlign_Identity(t *testing.T) {
	docParas := paras("Alpha one", "Bravo two", "Charlie three")
	trace := Align(docParas, docParas, false)

	if countKind(trace, Inserted) != 0 || countKind(trace, Deleted) != 0 {
		t.Errorf("identity alignment must have no inserts/deletes, got trace=%v", kinds(trace))
	}
	if countKind(trace, Matched) != len(docParas) {
		t.Errorf("want %d matched entries, got %d", len(docParas), countKind(trace, Matched))
	}
}

func TestAlign_EmptyBothSides(t *testing.T) {
	trace := Align(nil, nil, false)
	if len(trace) != 0 {
		t.Errorf("want empty trace for empty inputs, got %v", trace)
	}
}

func TestAlign_AllInsertedWhenOriginalEmpty(t *testing.T) {
	modified := paras("a", "b")
	trace := Align(nil, modified, false)
	if len(trace) != 2 || countKind(trace, Inserted) != 2 {
		t.Errorf("want two inserted entries, got %v", kinds(trace))
	}
}

func TestAlign_AllDeletedWhenModifiedEmpty(t *testing.T) {
	original := paras("a", "b")
	trace := Align(original, nil, false)
	if len(trace) != 2 || countKind(trace, Deleted) != 2 {
		t.Errorf("want two deleted entries, got %v", kinds(trace))
	}
}

func TestAlign_TraceOrderIsTopToBottom(t *testing.T) {
	original := paras("Alpha one")
	modified := paras("Zulu inserted", "Alpha one")

	trace := Align(original, modified, false)
	if len(trace) != 2 {
		t.Fatalf("len(trace) = %d, want 2", len(trace))
	}
	if trace[0].Kind != Inserted {
		t.Errorf("want the insertion to appear before the match, got kinds=%v", kinds(trace))
	}
	if trace[1].Kind != Matched {
		t.Errorf("want the match last, got kinds=%v", kinds(trace))
	}
}
