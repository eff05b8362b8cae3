package compare

import (
	"testing"

	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/worddiff"
)

func paragraphWithText(s string) *model.Paragraph {
	p := model.NewParagraph()
	if s != "" {
		p.AddRun(s, model.RunFormatting{})
	}
	return p
}

func docOf(texts ...string) *model.Document {
	d := model.NewDocument()
	section := &model.Section{}
	for _, t := range texts {
		section.Blocks = append(section.Blocks, model.NewParagraphBlock(paragraphWithText(t)))
	}
	d.Sections = []*model.Section{section}
	return d
}

func TestRun_Identity(t *testing.T) {
	d := docOf("Alpha", "Bravo", "Charlie")
	res := Run(d, d, DefaultOptions())

	if res.Statistics.Insertions != 0 || res.Statistics.Deletions != 0 {
		t.Errorf("identity compare must report no insertions/deletions, got %+v", res.Statistics)
	}
}

func TestRun_StatisticsParagraphCounts(t *testing.T) {
	original := docOf("A", "B")
	modified := docOf("A", "B", "C")
	res := Run(original, modified, DefaultOptions())

	if res.Statistics.OriginalParagraphs != 2 {
		t.Errorf("OriginalParagraphs = %d, want 2", res.Statistics.OriginalParagraphs)
	}
	if res.Statistics.ModifiedParagraphs != 3 {
		t.Errorf("ModifiedParagraphs = %d, want 3", res.Statistics.ModifiedParagraphs)
	}
}

func TestRun_StatisticsSumMatchesSegments(t *testing.T) {
	original := docOf("Hello beautiful world")
	modified := docOf("Hello world")
	res := Run(original, modified, DefaultOptions())

	total := res.Statistics.Insertions + res.Statistics.Deletions + res.Statistics.Unchanged
	if total == 0 {
		t.Error("want a nonzero total of segment-derived statistics")
	}
	diff := worddiff.Diff(original.ParagraphsFlat()[0], modified.ParagraphsFlat()[0], worddiff.Word, true)
	if total != len(diff.Segments) {
		t.Errorf("statistics total = %d, want %d (the inline diff's segment count)", total, len(diff.Segments))
	}
}

func TestRun_IgnoreWhitespaceOption(t *testing.T) {
	original := docOf("Hello   world")
	modified := docOf("Hello world")

	opts := DefaultOptions()
	opts.IgnoreWhitespace = true
	hidden := Run(original, modified, opts)
	if hidden.Statistics.Insertions != 0 || hidden.Statistics.Deletions != 0 {
		t.Errorf("want a spacing-only change hidden with IgnoreWhitespace=true, got %+v", hidden.Statistics)
	}

	opts.IgnoreWhitespace = false
	surfaced := Run(original, modified, opts)
	if surfaced.Statistics.Deletions == 0 {
		t.Errorf("want a spacing-only change surfaced with IgnoreWhitespace=false, got %+v", surfaced.Statistics)
	}
}

func TestRun_DeterministicAcrossInvocations(t *testing.T) {
	original := docOf("Alpha one", "Bravo two", "Charlie three")
	modified := docOf("Alpha one", "Bravo 2", "Delta four")

	r1 := Run(original, modified, DefaultOptions())
	r2 := Run(original, modified, DefaultOptions())

	if r1.Statistics != r2.Statistics {
		t.Errorf("want identical statistics across runs, got %+v vs %+v", r1.Statistics, r2.Statistics)
	}
	p1 := r1.Document.ParagraphsFlat()
	p2 := r2.Document.ParagraphsFlat()
	if len(p1) != len(p2) {
		t.Fatalf("want identical paragraph counts across runs, got %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i].PlainText() != p2[i].PlainText() {
			t.Errorf("paragraph %d text differs across runs: %q vs %q", i, p1[i].PlainText(), p2[i].PlainText())
		}
	}
}
