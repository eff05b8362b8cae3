package ooxml

import (
	"fmt"
	"sort"

	"github.com/vortex/docx-compare/internal/model"
)

// Generator writes a model.Document back into a .docx byte stream.
type Generator struct{}

// NewGenerator returns a ready-to-use Generator.
func NewGenerator() *Generator { return &Generator{} }

// Generate serializes doc into a complete OPC package: [Content_Types].xml,
// the package and document-level .rels, docProps/core.xml,
// word/{document,styles,numbering}.xml, and any non-empty header/footer
// parts the first section carries.
func (g *Generator) Generate(doc *model.Document) ([]byte, error) {
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("ooxml: cannot generate a document with no sections")
	}
	section := doc.Sections[0]

	parts := archiveParts{
		"_rels/.rels":        []byte(packageRelsXML),
		"docProps/core.xml":  generateCoreProps(doc.Properties),
		"word/numbering.xml": generateNumbering(doc.Numberings, doc.Instances),
		"word/styles.xml":    generateStyles(doc.Styles),
	}

	docBlob, err := generateDocumentXML(section)
	if err != nil {
		return nil, err
	}
	parts["word/document.xml"] = docBlob

	writeHeaderFooterParts(parts, "header", section.Headers)
	writeHeaderFooterParts(parts, "footer", section.Footers)

	parts["[Content_Types].xml"] = generateContentTypes(parts)
	parts["word/_rels/document.xml.rels"] = generateDocumentRels(parts)

	return writeZip(parts, standardPartOrder)
}

// writeHeaderFooterParts emits header{1,2,3}.xml / footer{1,2,3}.xml for
// each non-empty slot of set, following the same fixed naming convention
// Parser.Parse reads back (1=Default, 2=First, 3=Even).
func writeHeaderFooterParts(parts archiveParts, kind string, set model.HeaderFooterSet) {
	slots := []struct {
		n     int
		paras []*model.Paragraph
	}{
		{1, set.Default},
		{2, set.First},
		{3, set.Even},
	}
	for _, slot := range slots {
		if len(slot.paras) == 0 {
			continue
		}
		parts[fmt.Sprintf("word/%s%d.xml", kind, slot.n)] = generateHeaderFooterXML(kind, slot.paras)
	}
}

func generateHeaderFooterXML(kind string, paras []*model.Paragraph) []byte {
	doc := newXMLDoc()
	rootTag := "w:hdr"
	if kind == "footer" {
		rootTag = "w:ftr"
	}
	root := doc.CreateElement(qn(rootTag))
	root.CreateAttr("xmlns:w", nsmap["w"])
	root.CreateAttr("xmlns:w14", nsmap["w14"])
	for _, p := range paras {
		writeParagraph(root, p)
	}
	blob, err := doc.WriteToBytes()
	if err != nil {
		return nil
	}
	return blob
}

// generateContentTypes builds [Content_Types].xml with an Override entry
// for every part actually present in parts.
func generateContentTypes(parts archiveParts) []byte {
	doc := newXMLDoc()
	root := doc.CreateElement("Types")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")

	def := root.CreateElement("Default")
	def.CreateAttr("Extension", "rels")
	def.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")
	def = root.CreateElement("Default")
	def.CreateAttr("Extension", "xml")
	def.CreateAttr("ContentType", "application/xml")

	for _, name := range sortedKeys(parts) {
		contentType, ok := contentTypesOverride[name]
		if !ok {
			continue
		}
		ov := root.CreateElement("Override")
		ov.CreateAttr("PartName", "/"+name)
		ov.CreateAttr("ContentType", contentType)
	}

	blob, err := doc.WriteToBytes()
	if err != nil {
		return nil
	}
	return blob
}

// generateDocumentRels builds word/_rels/document.xml.rels: the two
// always-present relationships (styles, numbering) plus one relationship
// per header/footer part actually present in parts.
func generateDocumentRels(parts archiveParts) []byte {
	doc := newXMLDoc()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")

	rID := 1
	addRel := func(relType, target string) {
		rel := root.CreateElement("Relationship")
		rel.CreateAttr("Id", fmt.Sprintf("rId%d", rID))
		rel.CreateAttr("Type", relType)
		rel.CreateAttr("Target", target)
		rID++
	}

	addRel(documentRelTarget["styles.xml"], "styles.xml")
	addRel(documentRelTarget["numbering.xml"], "numbering.xml")

	for _, name := range sortedKeys(parts) {
		target, ok := trimWordPrefix(name)
		if !ok {
			continue
		}
		if relType, ok := headerFooterRelType[target]; ok {
			addRel(relType, target)
		}
	}

	blob, err := doc.WriteToBytes()
	if err != nil {
		return nil
	}
	return blob
}

func trimWordPrefix(partName string) (string, bool) {
	const prefix = "word/"
	if len(partName) <= len(prefix) || partName[:len(prefix)] != prefix {
		return "", false
	}
	return partName[len(prefix):], true
}

func sortedKeys(parts archiveParts) []string {
	keys := make([]string, 0, len(parts))
	for k := range parts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func generateDocumentXML(section *model.Section) ([]byte, error) {
	doc := newXMLDoc()
	root := doc.CreateElement(qn("w:document"))
	root.CreateAttr("xmlns:w", nsmap["w"])
	root.CreateAttr("xmlns:r", nsmap["r"])
	root.CreateAttr("xmlns:w14", nsmap["w14"])
	body := newElement("w:body")

	for _, block := range section.Blocks {
		writeBlock(body, block)
	}

	writeSectionProperties(body, section.Properties)
	root.AddChild(body)

	return doc.WriteToBytes()
}
