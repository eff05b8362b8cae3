package ooxml

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

func readTable(tbl *etree.Element) *model.Table {
	out := &model.Table{}

	if tblPr := tbl.FindElement(qn("w:tblPr")); tblPr != nil {
		out.Properties = readTableProperties(tblPr)
	}

	for _, tr := range tbl.SelectElements(qn("w:tr")) {
		row := model.Row{}
		for _, tc := range tr.SelectElements(qn("w:tc")) {
			cell := model.Cell{}
			for _, child := range tc.ChildElements() {
				switch child.Tag {
				case "p":
					cell.Blocks = append(cell.Blocks, model.NewParagraphBlock(readParagraph(child)))
				case "tbl":
					cell.Blocks = append(cell.Blocks, model.NewTableBlock(readTable(child)))
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		out.Rows = append(out.Rows, row)
	}

	out.EnsureNonEmptyCells()
	return out
}

func readTableProperties(tblPr *etree.Element) *model.TableProperties {
	p := &model.TableProperties{}
	if w := tblPr.FindElement(qn("w:tblW")); w != nil {
		if v, err := strconv.Atoi(w.SelectAttrValue(qn("w:w"), "")); err == nil {
			p.Width = &v
		}
		switch w.SelectAttrValue(qn("w:type"), "") {
		case "dxa":
			p.WidthType = model.WidthDXA
		case "pct":
			p.WidthType = model.WidthPercent
		default:
			p.WidthType = model.WidthAuto
		}
	}
	if jc := tblPr.FindElement(qn("w:jc")); jc != nil {
		if a, ok := alignmentFromXML[jc.SelectAttrValue(qn("w:val"), "")]; ok {
			p.Alignment = a
		}
	}
	return p
}

func writeTable(parent *etree.Element, t *model.Table) {
	wtbl := newElement("w:tbl")

	if t.Properties != nil {
		tblPr := newElement("w:tblPr")
		if t.Properties.Width != nil {
			w := newElement("w:tblW")
			w.CreateAttr(qn("w:w"), strconv.Itoa(*t.Properties.Width))
			typ := "auto"
			switch t.Properties.WidthType {
			case model.WidthDXA:
				typ = "dxa"
			case model.WidthPercent:
				typ = "pct"
			}
			w.CreateAttr(qn("w:type"), typ)
			tblPr.AddChild(w)
		}
		if v, ok := alignmentXML[t.Properties.Alignment]; ok && t.Properties.Alignment != model.AlignLeft {
			appendVal(tblPr, "w:jc", v)
		}
		wtbl.AddChild(tblPr)
	}

	for _, row := range t.Rows {
		wtr := newElement("w:tr")
		for _, cell := range row.Cells {
			wtc := newElement("w:tc")
			for _, block := range cell.Blocks {
				writeBlock(wtc, block)
			}
			wtr.AddChild(wtc)
		}
		wtbl.AddChild(wtr)
	}

	parent.AddChild(wtbl)
}

func writeBlock(parent *etree.Element, b model.Block) {
	switch b.Kind {
	case model.BlockParagraph:
		writeParagraph(parent, b.Paragraph)
	case model.BlockTable:
		writeTable(parent, b.Table)
	}
}
