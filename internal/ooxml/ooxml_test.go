package ooxml

import (
	"testing"

	"github.com/vortex/docx-compare/internal/model"
)

func sampleDocument() *model.Document {
	doc := model.NewDocument()
	doc.Properties = &model.DocumentProperties{Title: strPtr("Quarterly Report")}
	doc.Numberings = []*model.NumberingDefinition{
		{ID: "1", Levels: []model.NumberingLevel{{Level: 0, Format: model.NumberingDecimal, Text: "%1."}}},
	}
	doc.Instances = []*model.NumberingInstance{
		{ID: "1", DefinitionID: "1", Overrides: map[int]model.NumberingLevelOverride{}},
	}
	doc.Styles = []*model.StyleDefinition{
		{ID: "Heading1", Type: model.StyleParagraph, Name: strPtr("Heading 1")},
	}

	p1 := model.NewParagraph()
	p1.Style.Alignment = model.AlignCenter
	p1.AddRun("Hello, ", model.RunFormatting{Bold: true})
	p1.AddRun("world.", model.RunFormatting{Italic: true, Color: strPtr("FF0000")})

	p2 := model.NewParagraph()
	p2.Numbering = &model.NumberingInfo{InstanceID: "1", Level: 0}
	p2.AddRun("A numbered item.", model.RunFormatting{})

	section := &model.Section{
		Blocks: []model.Block{
			model.NewParagraphBlock(p1),
			model.NewParagraphBlock(p2),
		},
		Properties: model.SectionProperties{
			PageWidth:  12240,
			PageHeight: 15840,
			MarginTop:  1440,
		},
	}
	doc.Sections = []*model.Section{section}
	return doc
}

func TestGenerateThenParse_RoundTrip(t *testing.T) {
	original := sampleDocument()

	blob, err := NewGenerator().Generate(original)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	parsed, err := NewParser().Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantParas := original.ParagraphsFlat()
	gotParas := parsed.ParagraphsFlat()
	if len(gotParas) != len(wantParas) {
		t.Fatalf("got %d paragraphs, want %d", len(gotParas), len(wantParas))
	}
	for i := range wantParas {
		if gotParas[i].PlainText() != wantParas[i].PlainText() {
			t.Errorf("paragraph %d text = %q, want %q", i, gotParas[i].PlainText(), wantParas[i].PlainText())
		}
	}

	if len(gotParas[0].Runs) != 2 {
		t.Fatalf("want 2 runs in first paragraph, got %d", len(gotParas[0].Runs))
	}
	if !gotParas[0].Runs[0].Formatting.Bold {
		t.Error("want first run bold after round trip")
	}
	if gotParas[0].Runs[1].Formatting.Color == nil || *gotParas[0].Runs[1].Formatting.Color != "FF0000" {
		t.Error("want second run's color preserved after round trip")
	}
	if gotParas[0].Style.Alignment != model.AlignCenter {
		t.Error("want paragraph alignment preserved after round trip")
	}

	if gotParas[1].Numbering == nil || gotParas[1].Numbering.InstanceID != "1" {
		t.Error("want numbering reference preserved after round trip")
	}

	if len(parsed.Numberings) != 1 || parsed.Numberings[0].ID != "1" {
		t.Errorf("want 1 numbering definition preserved, got %v", parsed.Numberings)
	}
	if len(parsed.Styles) != 1 || parsed.Styles[0].ID != "Heading1" {
		t.Errorf("want style definition preserved, got %v", parsed.Styles)
	}
	if parsed.Properties == nil || parsed.Properties.Title == nil || *parsed.Properties.Title != "Quarterly Report" {
		t.Errorf("want document title preserved, got %+v", parsed.Properties)
	}

	gotSection := parsed.Sections[0]
	if gotSection.Properties.PageWidth != 12240 || gotSection.Properties.MarginTop != 1440 {
		t.Errorf("want section properties preserved, got %+v", gotSection.Properties)
	}
}

func TestGenerateNumbering_OverridesAreDeterministic(t *testing.T) {
	start3, start1, start0 := 5, 2, 1
	instances := []*model.NumberingInstance{
		{
			ID:           "1",
			DefinitionID: "1",
			Overrides: map[int]model.NumberingLevelOverride{
				3: {Level: 3, StartOverride: &start3},
				0: {Level: 0, StartOverride: &start0},
				1: {Level: 1, StartOverride: &start1},
			},
		},
	}

	var first []byte
	for i := 0; i < 20; i++ {
		blob := generateNumbering(nil, instances)
		if first == nil {
			first = blob
		} else if string(blob) != string(first) {
			t.Fatalf("generateNumbering produced different output on run %d; want identical output across runs (lvlOverride emission order must not depend on map iteration)", i)
		}
	}

	parsedDefs, parsedInstances, err := parseNumbering(first)
	if err != nil {
		t.Fatalf("parseNumbering: %v", err)
	}
	if len(parsedDefs) != 0 {
		t.Fatalf("want no numbering definitions, got %d", len(parsedDefs))
	}
	if len(parsedInstances) != 1 || len(parsedInstances[0].Overrides) != 3 {
		t.Fatalf("want 1 instance with 3 overrides preserved, got %+v", parsedInstances)
	}
}

func TestParse_RejectsNonZipData(t *testing.T) {
	if _, err := NewParser().Parse([]byte("not a zip")); err == nil {
		t.Error("want an error parsing non-zip data")
	}
}

func TestGenerate_TableRoundTrip(t *testing.T) {
	doc := model.NewDocument()
	tbl := &model.Table{
		Rows: []model.Row{
			{Cells: []model.Cell{
				{Blocks: []model.Block{model.NewParagraphBlock(paragraphWithText("R1C1"))}},
				{Blocks: []model.Block{model.NewParagraphBlock(paragraphWithText("R1C2"))}},
			}},
		},
	}
	doc.Sections = []*model.Section{{Blocks: []model.Block{model.NewTableBlock(tbl)}}}

	blob, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	parsed, err := NewParser().Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	block := parsed.Sections[0].Blocks[0]
	if block.Kind != model.BlockTable {
		t.Fatalf("want a table block, got kind %v", block.Kind)
	}
	if len(block.Table.Rows) != 1 || len(block.Table.Rows[0].Cells) != 2 {
		t.Fatalf("want 1 row of 2 cells, got %+v", block.Table.Rows)
	}
	if block.Table.Rows[0].Cells[0].Blocks[0].Paragraph.PlainText() != "R1C1" {
		t.Error("want cell text preserved through table round trip")
	}
}

func paragraphWithText(s string) *model.Paragraph {
	p := model.NewParagraph()
	p.AddRun(s, model.RunFormatting{})
	return p
}

func TestGenerate_HeaderFooterRoundTrip(t *testing.T) {
	doc := model.NewDocument()
	section := &model.Section{
		Blocks: []model.Block{model.NewParagraphBlock(paragraphWithText("Body text."))},
		Headers: model.HeaderFooterSet{
			Default: []*model.Paragraph{paragraphWithText("Default header")},
			First:   []*model.Paragraph{paragraphWithText("First-page header")},
		},
		Footers: model.HeaderFooterSet{
			Default: []*model.Paragraph{paragraphWithText("Default footer")},
		},
	}
	doc.Sections = []*model.Section{section}

	blob, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	parsed, err := NewParser().Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := parsed.Sections[0]
	if len(got.Headers.Default) != 1 || got.Headers.Default[0].PlainText() != "Default header" {
		t.Errorf("want default header preserved, got %+v", got.Headers.Default)
	}
	if len(got.Headers.First) != 1 || got.Headers.First[0].PlainText() != "First-page header" {
		t.Errorf("want first-page header preserved, got %+v", got.Headers.First)
	}
	if len(got.Headers.Even) != 0 {
		t.Errorf("want no even-page header, got %+v", got.Headers.Even)
	}
	if len(got.Footers.Default) != 1 || got.Footers.Default[0].PlainText() != "Default footer" {
		t.Errorf("want default footer preserved, got %+v", got.Footers.Default)
	}
}
