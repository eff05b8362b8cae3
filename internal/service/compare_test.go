package service

import (
	"errors"
	"testing"

	"github.com/vortex/docx-compare/internal/compare"
	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/ooxml"
)

func sampleDocx(t *testing.T, text string) []byte {
	t.Helper()
	doc := model.NewDocument()
	p := model.NewParagraph()
	p.AddRun(text, model.RunFormatting{})
	doc.Sections = []*model.Section{{Blocks: []model.Block{model.NewParagraphBlock(p)}}}

	blob, err := ooxml.NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return blob
}

func TestCompareService_Compare(t *testing.T) {
	svc := NewCompareService()
	original := sampleDocx(t, "The quick brown fox.")
	modified := sampleDocx(t, "The quick red fox.")

	out, err := svc.Compare(original, modified, compare.DefaultOptions())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(out.RedlinedDocx) == 0 {
		t.Fatal("want non-empty redlined docx")
	}

	redlined, err := svc.Open(out.RedlinedDocx)
	if err != nil {
		t.Fatalf("Open redlined output: %v", err)
	}
	if len(redlined.ParagraphsFlat()) == 0 {
		t.Fatal("want at least one paragraph in the redlined document")
	}
}

func TestCompareService_Validate(t *testing.T) {
	svc := NewCompareService()
	data := sampleDocx(t, "Hello, world.")
	if err := svc.Validate(data); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestCompareService_Open_RejectsGarbage(t *testing.T) {
	svc := NewCompareService()
	_, err := svc.Open([]byte("garbage"))
	if err == nil {
		t.Fatal("want an error opening non-docx data")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("want error to wrap ErrParse, got %v", err)
	}
}

func TestCompareService_Compare_RejectsGarbage(t *testing.T) {
	svc := NewCompareService()
	_, err := svc.Compare([]byte("garbage"), sampleDocx(t, "x"), compare.DefaultOptions())
	if !errors.Is(err, ErrParse) {
		t.Errorf("want error to wrap ErrParse, got %v", err)
	}
}
