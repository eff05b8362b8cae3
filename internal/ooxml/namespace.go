package ooxml

import "strings"

// nsmap maps namespace prefixes to their URIs, the subset this package
// actually emits or recognizes. Grounded on the teacher's oxml.Nsmap, pared
// down to the prefixes a redline comparison touches.
var nsmap = map[string]string{
	"cp":   "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
	"dc":   "http://purl.org/dc/elements/1.1/",
	"dcterms": "http://purl.org/dc/terms/",
	"r":    "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"w":    "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	"w14":  "http://schemas.microsoft.com/office/word/2010/wordml",
	"xml":  "http://www.w3.org/XML/1998/namespace",
}

// qn converts a namespace-prefixed tag ("w:p") to Clark notation
// ("{http://.../main}p"). Unknown prefixes pass through unchanged since
// etree also accepts bare local names for attribute lookups.
func qn(tag string) string {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return tag
	}
	uri, known := nsmap[prefix]
	if !known {
		return tag
	}
	return "{" + uri + "}" + local
}

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>
`

// contentTypesOverride is one <Override> entry of [Content_Types].xml,
// keyed by the fixed part names this package knows how to emit.
var contentTypesOverride = map[string]string{
	"word/document.xml":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml",
	"word/styles.xml":     "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml",
	"word/numbering.xml":  "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml",
	"docProps/core.xml":   "application/vnd.openxmlformats-package.core-properties+xml",
	"word/header1.xml":    "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml",
	"word/header2.xml":    "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml",
	"word/header3.xml":    "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml",
	"word/footer1.xml":    "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml",
	"word/footer2.xml":    "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml",
	"word/footer3.xml":    "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml",
}

// documentRelTarget is one <Relationship> entry of word/_rels/document.xml.rels
// for a fixed, always-present part.
var documentRelTarget = map[string]string{
	"styles.xml":    "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles",
	"numbering.xml": "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering",
}

// headerFooterRelType maps a fixed header/footer part name to its
// relationship type, for parts generateDocumentRels emits conditionally.
var headerFooterRelType = map[string]string{
	"header1.xml": "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header",
	"header2.xml": "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header",
	"header3.xml": "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header",
	"footer1.xml": "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer",
	"footer2.xml": "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer",
	"footer3.xml": "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer",
}
