package ooxml

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

func readSectionProperties(sectPr *etree.Element) model.SectionProperties {
	var s model.SectionProperties

	if pgSz := sectPr.FindElement(qn("w:pgSz")); pgSz != nil {
		s.PageWidth = readIntAttr(pgSz, "w:w")
		s.PageHeight = readIntAttr(pgSz, "w:h")
		if pgSz.SelectAttrValue(qn("w:orient"), "") == "landscape" {
			s.Orientation = model.OrientationLandscape
		}
	}
	if mar := sectPr.FindElement(qn("w:pgMar")); mar != nil {
		s.MarginTop = readIntAttr(mar, "w:top")
		s.MarginBottom = readIntAttr(mar, "w:bottom")
		s.MarginLeft = readIntAttr(mar, "w:left")
		s.MarginRight = readIntAttr(mar, "w:right")
		s.HeaderDistance = readIntAttr(mar, "w:header")
		s.FooterDistance = readIntAttr(mar, "w:footer")
	}
	if typ := sectPr.FindElement(qn("w:type")); typ != nil {
		switch typ.SelectAttrValue(qn("w:val"), "") {
		case "continuous":
			s.BreakType = model.SectionContinuous
		case "evenPage":
			s.BreakType = model.SectionEvenPage
		case "oddPage":
			s.BreakType = model.SectionOddPage
		default:
			s.BreakType = model.SectionNextPage
		}
	}
	if sectPr.FindElement(qn("w:titlePg")) != nil {
		s.DifferentFirstPage = true
	}

	return s
}

func writeSectionProperties(parent *etree.Element, s model.SectionProperties) {
	sectPr := newElement("w:sectPr")

	typ := newElement("w:type")
	val := "nextPage"
	switch s.BreakType {
	case model.SectionContinuous:
		val = "continuous"
	case model.SectionEvenPage:
		val = "evenPage"
	case model.SectionOddPage:
		val = "oddPage"
	}
	typ.CreateAttr(qn("w:val"), val)
	sectPr.AddChild(typ)

	if s.PageWidth != 0 || s.PageHeight != 0 {
		pgSz := newElement("w:pgSz")
		writeIntAttr(pgSz, "w:w", s.PageWidth)
		writeIntAttr(pgSz, "w:h", s.PageHeight)
		if s.Orientation == model.OrientationLandscape {
			pgSz.CreateAttr(qn("w:orient"), "landscape")
		}
		sectPr.AddChild(pgSz)
	}

	mar := newElement("w:pgMar")
	writeIntAttr(mar, "w:top", s.MarginTop)
	writeIntAttr(mar, "w:bottom", s.MarginBottom)
	writeIntAttr(mar, "w:left", s.MarginLeft)
	writeIntAttr(mar, "w:right", s.MarginRight)
	writeIntAttr(mar, "w:header", s.HeaderDistance)
	writeIntAttr(mar, "w:footer", s.FooterDistance)
	sectPr.AddChild(mar)

	if s.DifferentFirstPage {
		sectPr.AddChild(newElement("w:titlePg"))
	}

	parent.AddChild(sectPr)
}

// readHeaderFooterSet reads the Default/First/Even header or footer parts
// from a fixed naming convention (header1/2/3.xml, footer1/2/3.xml) since
// this package does not walk the relationship graph that would otherwise
// disambiguate header/footer type.
func readHeaderFooterSet(parts archiveParts, kind string) model.HeaderFooterSet {
	var set model.HeaderFooterSet
	read := func(n int) []*model.Paragraph {
		blob, ok := parts["word/"+kind+strconv.Itoa(n)+".xml"]
		if !ok {
			return nil
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(blob); err != nil {
			return nil
		}
		var paras []*model.Paragraph
		for _, p := range doc.Root().SelectElements(qn("w:p")) {
			paras = append(paras, readParagraph(p))
		}
		return paras
	}
	set.Default = read(1)
	set.First = read(2)
	set.Even = read(3)
	return set
}
