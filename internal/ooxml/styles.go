package ooxml

import (
	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

var styleTypeFromXML = map[string]model.StyleType{
	"paragraph": model.StyleParagraph,
	"character": model.StyleCharacter,
	"table":     model.StyleTable,
	"numbering": model.StyleNumbering,
}

var styleTypeToXML = map[model.StyleType]string{
	model.StyleParagraph: "paragraph",
	model.StyleCharacter: "character",
	model.StyleTable:     "table",
	model.StyleNumbering: "numbering",
}

// parseStyles reads styles.xml's <w:style> definitions.
func parseStyles(blob []byte) ([]*model.StyleDefinition, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return nil, err
	}

	var styles []*model.StyleDefinition
	for _, el := range doc.Root().SelectElements(qn("w:style")) {
		s := &model.StyleDefinition{
			ID:   el.SelectAttrValue(qn("w:styleId"), ""),
			Type: styleTypeFromXML[el.SelectAttrValue(qn("w:type"), "paragraph")],
		}
		if name := el.FindElement(qn("w:name")); name != nil {
			if v := name.SelectAttrValue(qn("w:val"), ""); v != "" {
				s.Name = strPtr(v)
			}
		}
		if based := el.FindElement(qn("w:basedOn")); based != nil {
			if v := based.SelectAttrValue(qn("w:val"), ""); v != "" {
				s.BasedOnID = strPtr(v)
			}
		}
		if next := el.FindElement(qn("w:next")); next != nil {
			if v := next.SelectAttrValue(qn("w:val"), ""); v != "" {
				s.NextStyleID = strPtr(v)
			}
		}
		if pPr := el.FindElement(qn("w:pPr")); pPr != nil {
			ps := readParagraphStyle(pPr)
			s.ParagraphStyle = &ps
		}
		if rPr := el.FindElement(qn("w:rPr")); rPr != nil {
			rf := readRunFormatting(rPr)
			s.RunFormatting = &rf
		}
		styles = append(styles, s)
	}

	return styles, nil
}

// generateStyles serializes style definitions back into a styles.xml blob.
func generateStyles(styles []*model.StyleDefinition) []byte {
	doc := newXMLDoc()
	root := doc.CreateElement(qn("w:styles"))

	for _, s := range styles {
		el := newElement("w:style")
		el.CreateAttr(qn("w:type"), styleTypeToXML[s.Type])
		el.CreateAttr(qn("w:styleId"), s.ID)

		if s.Name != nil {
			appendVal(el, "w:name", *s.Name)
		}
		if s.BasedOnID != nil {
			appendVal(el, "w:basedOn", *s.BasedOnID)
		}
		if s.NextStyleID != nil {
			appendVal(el, "w:next", *s.NextStyleID)
		}
		if s.ParagraphStyle != nil {
			pPr := newElement("w:pPr")
			writeParagraphStyle(pPr, *s.ParagraphStyle)
			el.AddChild(pPr)
		}
		if s.RunFormatting != nil {
			rPr := newElement("w:rPr")
			dummyRun := newElement("w:r")
			writeRunFormatting(dummyRun, *s.RunFormatting)
			if inner := dummyRun.FindElement(qn("w:rPr")); inner != nil {
				for _, c := range inner.ChildElements() {
					rPr.AddChild(c.Copy())
				}
			}
			el.AddChild(rPr)
		}

		root.AddChild(el)
	}

	blob, _ := doc.WriteToBytes()
	return blob
}
