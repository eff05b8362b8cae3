package ooxml

import (
	"github.com/beevik/etree"

	"github.com/vortex/docx-compare/internal/model"
)

// parseCoreProps reads docProps/core.xml's Dublin Core metadata.
func parseCoreProps(blob []byte) *model.DocumentProperties {
	props := &model.DocumentProperties{}
	if len(blob) == 0 {
		return props
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return props
	}
	root := doc.Root()
	if root == nil {
		return props
	}
	assign := func(tag string, dst **string) {
		if el := root.FindElement(qn(tag)); el != nil {
			if v := el.Text(); v != "" {
				*dst = strPtr(v)
			}
		}
	}
	assign("dc:title", &props.Title)
	assign("dc:creator", &props.Creator)
	assign("dc:subject", &props.Subject)
	assign("dc:description", &props.Description)
	assign("cp:keywords", &props.Keywords)
	assign("dcterms:created", &props.Created)
	assign("dcterms:modified", &props.Modified)
	assign("cp:lastModifiedBy", &props.LastModifiedBy)
	return props
}

// generateCoreProps serializes DocumentProperties back into core.xml.
func generateCoreProps(props *model.DocumentProperties) []byte {
	doc := newXMLDoc()
	root := doc.CreateElement(qn("cp:coreProperties"))
	root.CreateAttr("xmlns:cp", nsmap["cp"])
	root.CreateAttr("xmlns:dc", nsmap["dc"])
	root.CreateAttr("xmlns:dcterms", nsmap["dcterms"])

	if props == nil {
		blob, _ := doc.WriteToBytes()
		return blob
	}

	set := func(tag string, v *string) {
		if v == nil || *v == "" {
			return
		}
		el := newElement(tag)
		el.SetText(*v)
		root.AddChild(el)
	}
	set("dc:title", props.Title)
	set("dc:creator", props.Creator)
	set("dc:subject", props.Subject)
	set("dc:description", props.Description)
	set("cp:keywords", props.Keywords)
	set("dcterms:created", props.Created)
	set("dcterms:modified", props.Modified)
	set("cp:lastModifiedBy", props.LastModifiedBy)

	blob, _ := doc.WriteToBytes()
	return blob
}
