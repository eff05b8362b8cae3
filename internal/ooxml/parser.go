package ooxml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

// Parser reads a .docx byte stream into a model.Document.
type Parser struct{}

// NewParser returns a ready-to-use Parser. Parser holds no state; the
// constructor exists for symmetry with Generator and to leave room for
// future options (strict-mode, size limits) without breaking callers.
func NewParser() *Parser { return &Parser{} }

// Parse unpacks the archive and builds a Document out of document.xml,
// styles.xml, numbering.xml, and core.xml.
func (p *Parser) Parse(data []byte) (*model.Document, error) {
	parts, err := readZip(data)
	if err != nil {
		return nil, err
	}

	docBlob, ok := parts["word/document.xml"]
	if !ok {
		return nil, fmt.Errorf("ooxml: archive has no word/document.xml")
	}

	docXML := etree.NewDocument()
	if err := docXML.ReadFromBytes(docBlob); err != nil {
		return nil, fmt.Errorf("ooxml: parsing word/document.xml: %w", err)
	}

	body := docXML.Root().FindElement(qn("w:body"))
	if body == nil {
		return nil, fmt.Errorf("ooxml: word/document.xml has no <w:body>")
	}

	out := model.NewDocument()
	out.Properties = parseCoreProps(parts["docProps/core.xml"])

	numDefs, numInstances, err := parseNumbering(parts["word/numbering.xml"])
	if err != nil {
		return nil, fmt.Errorf("ooxml: parsing word/numbering.xml: %w", err)
	}
	out.Numberings = numDefs
	out.Instances = numInstances

	styles, err := parseStyles(parts["word/styles.xml"])
	if err != nil {
		return nil, fmt.Errorf("ooxml: parsing word/styles.xml: %w", err)
	}
	out.Styles = styles

	section := &model.Section{
		Headers: readHeaderFooterSet(parts, "header"),
		Footers: readHeaderFooterSet(parts, "footer"),
	}

	// Interior section breaks (a <w:sectPr> nested in a paragraph's <w:pPr>)
	// are not modeled as separate sections here: the compare engine aligns
	// paragraphs document-wide regardless of section boundaries, so every
	// paragraph and table in the body collapses into one Section carrying
	// the document's final (outermost) sectPr.
	for _, child := range body.ChildElements() {
		switch child.Tag {
		case "p":
			section.Blocks = append(section.Blocks, model.NewParagraphBlock(readParagraph(child)))
		case "tbl":
			section.Blocks = append(section.Blocks, model.NewTableBlock(readTable(child)))
		case "sectPr":
			section.Properties = readSectionProperties(child)
		}
	}

	out.Sections = []*model.Section{section}
	return out, nil
}
