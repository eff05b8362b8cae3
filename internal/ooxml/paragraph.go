package ooxml

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

// readParagraph builds a model.Paragraph from a <w:p> element.
func readParagraph(p *etree.Element) *model.Paragraph {
	out := model.NewParagraph()

	if pPr := p.FindElement(qn("w:pPr")); pPr != nil {
		out.Style = readParagraphStyle(pPr)
		out.Numbering = readNumberingRef(pPr)
	}
	if id := p.SelectAttrValue(qn("w14:paraId"), ""); id != "" {
		out.ID = strPtr(id)
	}

	for _, child := range p.ChildElements() {
		switch child.Tag {
		case "r":
			readRunInto(out, child)
		case "bookmarkStart":
			if id := child.SelectAttrValue(qn("w:name"), ""); id != "" {
				out.BookmarkStarts = append(out.BookmarkStarts, id)
			}
		case "bookmarkEnd":
			// bookmarkEnd only carries an id back-reference in real OOXML;
			// the name isn't repeated, so we can't recover it here. Callers
			// that round-trip through this package rely on BookmarkStarts
			// for identity and treat BookmarkEnds as a parity counter.
			out.BookmarkEnds = append(out.BookmarkEnds, "")
		}
	}

	return out
}

func readRunInto(p *model.Paragraph, r *etree.Element) {
	formatting := readRunFormatting(r.FindElement(qn("w:rPr")))
	var text string
	for _, child := range r.ChildElements() {
		switch child.Tag {
		case "t":
			text += child.Text()
		case "tab":
			text += "\t"
		case "br", "cr":
			text += "\n"
		case "noBreakHyphen":
			text += "-"
		}
	}
	p.AddRun(text, formatting)
}

// writeParagraph appends a <w:p> element to parent for p.
func writeParagraph(parent *etree.Element, p *model.Paragraph) {
	wp := newElement("w:p")
	if p.ID != nil {
		wp.CreateAttr(qn("w14:paraId"), *p.ID)
	}

	pPr := newElement("w:pPr")
	writeParagraphStyle(pPr, p.Style)
	writeNumberingRef(pPr, p.Numbering)
	if len(pPr.ChildElements()) > 0 {
		wp.AddChild(pPr)
	}

	// w:id is assigned by position, not stored on the model: bookmarkStart i
	// pairs with bookmarkEnd i, so two bookmarks in one paragraph never
	// collide on id "0".
	for i, name := range p.BookmarkStarts {
		bs := newElement("w:bookmarkStart")
		bs.CreateAttr(qn("w:id"), strconv.Itoa(i))
		bs.CreateAttr(qn("w:name"), name)
		wp.AddChild(bs)
	}

	for _, run := range p.Runs {
		wr := newElement("w:r")
		writeRunFormatting(wr, run.Formatting)
		wt := newElement("w:t")
		wt.SetText(run.Text)
		if run.Text != trimmedRunText(run.Text) {
			wt.CreateAttr("xml:space", "preserve")
		}
		wr.AddChild(wt)
		wp.AddChild(wr)
	}

	for i := range p.BookmarkEnds {
		be := newElement("w:bookmarkEnd")
		be.CreateAttr(qn("w:id"), strconv.Itoa(i))
		wp.AddChild(be)
	}

	parent.AddChild(wp)
}

func trimmedRunText(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

var alignmentXML = map[model.Alignment]string{
	model.AlignLeft:    "left",
	model.AlignCenter:  "center",
	model.AlignRight:   "right",
	model.AlignJustify: "both",
}

var alignmentFromXML = map[string]model.Alignment{
	"left":    model.AlignLeft,
	"start":   model.AlignLeft,
	"center":  model.AlignCenter,
	"right":   model.AlignRight,
	"end":     model.AlignRight,
	"both":    model.AlignJustify,
	"justify": model.AlignJustify,
}

func readParagraphStyle(pPr *etree.Element) model.ParagraphStyle {
	var s model.ParagraphStyle

	if el := pPr.FindElement(qn("w:pStyle")); el != nil {
		if v := el.SelectAttrValue(qn("w:val"), ""); v != "" {
			s.StyleID = strPtr(v)
		}
	}
	if el := pPr.FindElement(qn("w:jc")); el != nil {
		if a, ok := alignmentFromXML[el.SelectAttrValue(qn("w:val"), "")]; ok {
			s.Alignment = a
		}
	}
	if el := pPr.FindElement(qn("w:ind")); el != nil {
		s.LeftIndent = readIntAttr(el, "w:left")
		s.RightIndent = readIntAttr(el, "w:right")
		s.FirstLineIndent = readIntAttr(el, "w:firstLine")
	}
	if el := pPr.FindElement(qn("w:spacing")); el != nil {
		s.SpaceBefore = readIntAttr(el, "w:before")
		s.SpaceAfter = readIntAttr(el, "w:after")
		if v := el.SelectAttrValue(qn("w:lineRule"), ""); v != "" {
			switch v {
			case "exact":
				s.SpacingRule = model.SpacingExact
			case "atLeast":
				s.SpacingRule = model.SpacingAtLeast
			default:
				s.SpacingRule = model.SpacingAuto
			}
		}
		s.LineSpacing = readIntAttr(el, "w:line")
	}
	if pPr.FindElement(qn("w:keepNext")) != nil {
		s.KeepWithNext = true
	}
	if pPr.FindElement(qn("w:keepLines")) != nil {
		s.KeepLinesTogether = true
	}
	if pPr.FindElement(qn("w:pageBreakBefore")) != nil {
		s.PageBreakBefore = true
	}
	if el := pPr.FindElement(qn("w:outlineLvl")); el != nil {
		if v, err := strconv.Atoi(el.SelectAttrValue(qn("w:val"), "")); err == nil {
			s.OutlineLevel = &v
		}
	}

	return s
}

func writeParagraphStyle(pPr *etree.Element, s model.ParagraphStyle) {
	if s.StyleID != nil {
		appendVal(pPr, "w:pStyle", *s.StyleID)
	}
	if v, ok := alignmentXML[s.Alignment]; ok && s.Alignment != model.AlignLeft {
		appendVal(pPr, "w:jc", v)
	}
	if s.LeftIndent != 0 || s.RightIndent != 0 || s.FirstLineIndent != 0 {
		ind := newElement("w:ind")
		writeIntAttr(ind, "w:left", s.LeftIndent)
		writeIntAttr(ind, "w:right", s.RightIndent)
		writeIntAttr(ind, "w:firstLine", s.FirstLineIndent)
		pPr.AddChild(ind)
	}
	if s.SpaceBefore != 0 || s.SpaceAfter != 0 || s.LineSpacing != 0 {
		spacing := newElement("w:spacing")
		writeIntAttr(spacing, "w:before", s.SpaceBefore)
		writeIntAttr(spacing, "w:after", s.SpaceAfter)
		if s.LineSpacing != 0 {
			writeIntAttr(spacing, "w:line", s.LineSpacing)
			rule := "auto"
			switch s.SpacingRule {
			case model.SpacingExact:
				rule = "exact"
			case model.SpacingAtLeast:
				rule = "atLeast"
			}
			spacing.CreateAttr(qn("w:lineRule"), rule)
		}
		pPr.AddChild(spacing)
	}
	if s.KeepWithNext {
		pPr.AddChild(newElement("w:keepNext"))
	}
	if s.KeepLinesTogether {
		pPr.AddChild(newElement("w:keepLines"))
	}
	if s.PageBreakBefore {
		pPr.AddChild(newElement("w:pageBreakBefore"))
	}
	if s.OutlineLevel != nil {
		appendVal(pPr, "w:outlineLvl", strconv.Itoa(*s.OutlineLevel))
	}
}

func readNumberingRef(pPr *etree.Element) *model.NumberingInfo {
	numPr := pPr.FindElement(qn("w:numPr"))
	if numPr == nil {
		return nil
	}
	ilvl := 0
	if el := numPr.FindElement(qn("w:ilvl")); el != nil {
		ilvl = readIntAttr(el, "w:val")
	}
	var numID string
	if el := numPr.FindElement(qn("w:numId")); el != nil {
		numID = el.SelectAttrValue(qn("w:val"), "")
	}
	if numID == "" {
		return nil
	}
	return &model.NumberingInfo{InstanceID: numID, Level: ilvl}
}

func writeNumberingRef(pPr *etree.Element, n *model.NumberingInfo) {
	if n == nil {
		return
	}
	numPr := newElement("w:numPr")
	appendVal(numPr, "w:ilvl", strconv.Itoa(n.Level))
	appendVal(numPr, "w:numId", n.InstanceID)
	pPr.AddChild(numPr)
}

func readIntAttr(el *etree.Element, tag string) int {
	v, err := strconv.Atoi(el.SelectAttrValue(qn(tag), ""))
	if err != nil {
		return 0
	}
	return v
}

func writeIntAttr(el *etree.Element, tag string, v int) {
	if v == 0 {
		return
	}
	el.CreateAttr(qn(tag), strconv.Itoa(v))
}
