package ooxml

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

// readRunFormatting extracts a RunFormatting from a <w:rPr> element. A nil
// rPr yields the zero value, matching an unformatted run.
func readRunFormatting(rPr *etree.Element) model.RunFormatting {
	var f model.RunFormatting
	if rPr == nil {
		return f
	}

	f.Bold = onOffPresent(rPr, "w:b")
	f.Italic = onOffPresent(rPr, "w:i")
	f.Strikethrough = onOffPresent(rPr, "w:strike")
	if u := rPr.FindElement(qn("w:u")); u != nil {
		if val := u.SelectAttrValue(qn("w:val"), "single"); val != "none" {
			f.Underline = true
		}
	}
	if vAlign := rPr.FindElement(qn("w:vertAlign")); vAlign != nil {
		switch vAlign.SelectAttrValue(qn("w:val"), "") {
		case "superscript":
			f.Superscript = true
		case "subscript":
			f.Subscript = true
		}
	}
	if rFonts := rPr.FindElement(qn("w:rFonts")); rFonts != nil {
		if v := rFonts.SelectAttrValue(qn("w:ascii"), ""); v != "" {
			f.FontFamily = strPtr(v)
		}
	}
	if sz := rPr.FindElement(qn("w:sz")); sz != nil {
		if v, err := strconv.ParseFloat(sz.SelectAttrValue(qn("w:val"), ""), 64); err == nil {
			pts := v / 2
			f.FontSize = &pts
		}
	}
	if color := rPr.FindElement(qn("w:color")); color != nil {
		if v := color.SelectAttrValue(qn("w:val"), ""); v != "" && v != "auto" {
			f.Color = strPtr(v)
		}
	}
	if hl := rPr.FindElement(qn("w:highlight")); hl != nil {
		if v := hl.SelectAttrValue(qn("w:val"), ""); v != "" && v != "none" {
			f.Highlight = strPtr(v)
		}
	}
	if style := rPr.FindElement(qn("w:rStyle")); style != nil {
		if v := style.SelectAttrValue(qn("w:val"), ""); v != "" {
			f.StyleID = strPtr(v)
		}
	}

	return f
}

// writeRunFormatting appends a <w:rPr> child to run (a <w:r> element) when
// f carries any formatting, in the child order Word itself expects
// (rStyle, rFonts, b, i, strike, vertAlign, color, sz, u, highlight).
func writeRunFormatting(run *etree.Element, f model.RunFormatting) {
	rPr := newElement("w:rPr")

	if f.StyleID != nil {
		appendVal(rPr, "w:rStyle", *f.StyleID)
	}
	if f.FontFamily != nil {
		fonts := newElement("w:rFonts")
		fonts.CreateAttr(qn("w:ascii"), *f.FontFamily)
		fonts.CreateAttr(qn("w:hAnsi"), *f.FontFamily)
		rPr.AddChild(fonts)
	}
	if f.Bold {
		rPr.AddChild(newElement("w:b"))
	}
	if f.Italic {
		rPr.AddChild(newElement("w:i"))
	}
	if f.Strikethrough {
		rPr.AddChild(newElement("w:strike"))
	}
	if f.Superscript {
		appendVal(rPr, "w:vertAlign", "superscript")
	} else if f.Subscript {
		appendVal(rPr, "w:vertAlign", "subscript")
	}
	if f.Color != nil {
		appendVal(rPr, "w:color", *f.Color)
	}
	if f.FontSize != nil {
		appendVal(rPr, "w:sz", strconv.Itoa(int(*f.FontSize*2)))
	}
	if f.Underline {
		appendVal(rPr, "w:u", "single")
	}
	if f.Highlight != nil {
		appendVal(rPr, "w:highlight", *f.Highlight)
	}

	if len(rPr.ChildElements()) > 0 {
		run.AddChild(rPr)
	}
}

// onOffPresent implements OOXML's ST_OnOff shorthand: a bare <w:b/> means
// true, and <w:b w:val="0|false|off"/> means explicitly false.
func onOffPresent(parent *etree.Element, tag string) bool {
	el := parent.FindElement(qn(tag))
	if el == nil {
		return false
	}
	val := el.SelectAttrValue(qn("w:val"), "true")
	switch val {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}

func appendVal(parent *etree.Element, tag, val string) {
	el := newElement(tag)
	el.CreateAttr(qn("w:val"), val)
	parent.AddChild(el)
}

func strPtr(s string) *string { return &s }
