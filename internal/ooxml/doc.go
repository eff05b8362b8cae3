// Package ooxml implements the Parser/Generator collaborator: it translates
// between the OOXML (ISO/IEC 29500) WordprocessingML package format — a
// ZIP archive of XML parts — and the structural model in internal/model.
//
// Unlike a full OPC reader, this package does not walk an arbitrary
// relationship graph; it reads and writes exactly the fixed set of parts a
// redline comparison needs (document.xml, styles.xml, numbering.xml,
// core.xml, headers, footers). Everything else in the archive is ignored on
// read and is not written back.
package ooxml

import "github.com/beevik/etree"

// newElement creates a detached element with the given Clark-notation tag
// already resolved via qn.
func newElement(tag string) *etree.Element {
	return etree.NewElement(qn(tag))
}
