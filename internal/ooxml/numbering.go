package ooxml

import (
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

var numberFormatFromXML = map[string]model.NumberingFormat{
	"decimal":      model.NumberingDecimal,
	"lowerLetter":  model.NumberingLowerLetter,
	"upperLetter":  model.NumberingUpperLetter,
	"lowerRoman":   model.NumberingLowerRoman,
	"upperRoman":   model.NumberingUpperRoman,
	"bullet":       model.NumberingBullet,
	"none":         model.NumberingNone,
	"ordinal":      model.NumberingOrdinal,
	"cardinalText": model.NumberingCardinalText,
	"ordinalText":  model.NumberingOrdinalText,
}

var numberFormatToXML = map[model.NumberingFormat]string{
	model.NumberingDecimal:      "decimal",
	model.NumberingLowerLetter:  "lowerLetter",
	model.NumberingUpperLetter:  "upperLetter",
	model.NumberingLowerRoman:   "lowerRoman",
	model.NumberingUpperRoman:   "upperRoman",
	model.NumberingBullet:       "bullet",
	model.NumberingNone:         "none",
	model.NumberingOrdinal:      "ordinal",
	model.NumberingCardinalText: "cardinalText",
	model.NumberingOrdinalText:  "ordinalText",
}

// parseNumbering reads numbering.xml's <w:abstractNum> definitions and
// <w:num> instances. Word keeps these as two separate indirection layers
// (abstractNumId -> numId); model.NumberingDefinition/NumberingInstance
// mirrors that split directly.
func parseNumbering(blob []byte) ([]*model.NumberingDefinition, []*model.NumberingInstance, error) {
	if len(blob) == 0 {
		return nil, nil, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return nil, nil, err
	}

	var defs []*model.NumberingDefinition
	for _, el := range doc.Root().SelectElements(qn("w:abstractNum")) {
		id := el.SelectAttrValue(qn("w:abstractNumId"), "")
		def := &model.NumberingDefinition{ID: id}
		for _, lvl := range el.SelectElements(qn("w:lvl")) {
			def.Levels = append(def.Levels, readNumberingLevel(lvl))
		}
		if len(def.Levels) > 1 {
			def.MultiLevel = true
		}
		defs = append(defs, def)
	}

	var instances []*model.NumberingInstance
	for _, el := range doc.Root().SelectElements(qn("w:num")) {
		id := el.SelectAttrValue(qn("w:numId"), "")
		inst := &model.NumberingInstance{ID: id, Overrides: map[int]model.NumberingLevelOverride{}}
		if absID := el.FindElement(qn("w:abstractNumId")); absID != nil {
			inst.DefinitionID = absID.SelectAttrValue(qn("w:val"), "")
		}
		for _, ov := range el.SelectElements(qn("w:lvlOverride")) {
			lvl := readIntAttr(ov, "w:ilvl")
			override := model.NumberingLevelOverride{Level: lvl}
			if so := ov.FindElement(qn("w:startOverride")); so != nil {
				v := readIntAttr(so, "w:val")
				override.StartOverride = &v
			}
			if lvlEl := ov.FindElement(qn("w:lvl")); lvlEl != nil {
				l := readNumberingLevel(lvlEl)
				override.LevelOverride = &l
			}
			inst.Overrides[lvl] = override
		}
		instances = append(instances, inst)
	}

	return defs, instances, nil
}

func readNumberingLevel(lvl *etree.Element) model.NumberingLevel {
	out := model.NumberingLevel{
		Level: readIntAttr(lvl, "w:ilvl"),
		Start: 1,
	}
	if start := lvl.FindElement(qn("w:start")); start != nil {
		out.Start = readIntAttr(start, "w:val")
	}
	if fmt := lvl.FindElement(qn("w:numFmt")); fmt != nil {
		out.Format = numberFormatFromXML[fmt.SelectAttrValue(qn("w:val"), "")]
	}
	if txt := lvl.FindElement(qn("w:lvlText")); txt != nil {
		out.Text = txt.SelectAttrValue(qn("w:val"), "")
	}
	if ind := lvl.FindElement(qn("w:pPr")); ind != nil {
		if i := ind.FindElement(qn("w:ind")); i != nil {
			left := readIntAttr(i, "w:left")
			hanging := readIntAttr(i, "w:hanging")
			out.Indent = &left
			out.HangingIndent = &hanging
		}
	}
	if rPr := lvl.FindElement(qn("w:rPr")); rPr != nil {
		if fonts := rPr.FindElement(qn("w:rFonts")); fonts != nil {
			if v := fonts.SelectAttrValue(qn("w:ascii"), ""); v != "" {
				out.Font = strPtr(v)
			}
		}
	}
	return out
}

// generateNumbering serializes numbering definitions/instances back into a
// numbering.xml blob.
func generateNumbering(defs []*model.NumberingDefinition, instances []*model.NumberingInstance) []byte {
	doc := newXMLDoc()
	root := doc.CreateElement(qn("w:numbering"))

	for _, def := range defs {
		abs := newElement("w:abstractNum")
		abs.CreateAttr(qn("w:abstractNumId"), def.ID)
		for _, lvl := range def.Levels {
			abs.AddChild(writeNumberingLevel(lvl))
		}
		root.AddChild(abs)
	}

	for _, inst := range instances {
		num := newElement("w:num")
		num.CreateAttr(qn("w:numId"), inst.ID)
		absRef := newElement("w:abstractNumId")
		absRef.CreateAttr(qn("w:val"), inst.DefinitionID)
		num.AddChild(absRef)
		levels := make([]int, 0, len(inst.Overrides))
		for lvl := range inst.Overrides {
			levels = append(levels, lvl)
		}
		sort.Ints(levels)
		for _, lvl := range levels {
			override := inst.Overrides[lvl]
			ov := newElement("w:lvlOverride")
			ov.CreateAttr(qn("w:ilvl"), strconv.Itoa(override.Level))
			if override.StartOverride != nil {
				so := newElement("w:startOverride")
				so.CreateAttr(qn("w:val"), strconv.Itoa(*override.StartOverride))
				ov.AddChild(so)
			}
			if override.LevelOverride != nil {
				ov.AddChild(writeNumberingLevel(*override.LevelOverride))
			}
			num.AddChild(ov)
		}
		root.AddChild(num)
	}

	blob, _ := doc.WriteToBytes()
	return blob
}

func writeNumberingLevel(lvl model.NumberingLevel) *etree.Element {
	el := newElement("w:lvl")
	el.CreateAttr(qn("w:ilvl"), strconv.Itoa(lvl.Level))

	start := newElement("w:start")
	start.CreateAttr(qn("w:val"), strconv.Itoa(lvl.Start))
	el.AddChild(start)

	numFmt := newElement("w:numFmt")
	numFmt.CreateAttr(qn("w:val"), numberFormatToXML[lvl.Format])
	el.AddChild(numFmt)

	lvlText := newElement("w:lvlText")
	lvlText.CreateAttr(qn("w:val"), lvl.Text)
	el.AddChild(lvlText)

	if lvl.Indent != nil || lvl.HangingIndent != nil {
		pPr := newElement("w:pPr")
		ind := newElement("w:ind")
		if lvl.Indent != nil {
			ind.CreateAttr(qn("w:left"), strconv.Itoa(*lvl.Indent))
		}
		if lvl.HangingIndent != nil {
			ind.CreateAttr(qn("w:hanging"), strconv.Itoa(*lvl.HangingIndent))
		}
		pPr.AddChild(ind)
		el.AddChild(pPr)
	}

	if lvl.Font != nil {
		rPr := newElement("w:rPr")
		fonts := newElement("w:rFonts")
		fonts.CreateAttr(qn("w:ascii"), *lvl.Font)
		rPr.AddChild(fonts)
		el.AddChild(rPr)
	}

	return el
}

func newXMLDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}
