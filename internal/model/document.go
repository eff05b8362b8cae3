package model

// Document owns an ordered list of Sections, document-properties metadata,
// and the numbering/style side tables referenced by paragraphs (spec §3).
//
// Invariant: every NumberingInfo on a paragraph ought to reference a
// NumberingInstance by id, and every NumberingInstance a NumberingDefinition
// by id. Dangling references are tolerated on input (the parser does not
// reject them) but the redline composer never produces new ones — it only
// forwards NumberingInfo it already found on a kept paragraph.
type Document struct {
	Sections   []*Section
	Properties *DocumentProperties
	Numberings []*NumberingDefinition
	Instances  []*NumberingInstance
	Styles     []*StyleDefinition
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Properties: &DocumentProperties{}}
}

// Clone returns a deep copy of d. No sub-object is shared with d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Properties: d.Properties.Clone()}
	if d.Sections != nil {
		out.Sections = make([]*Section, len(d.Sections))
		for i, s := range d.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	if d.Numberings != nil {
		out.Numberings = make([]*NumberingDefinition, len(d.Numberings))
		for i, n := range d.Numberings {
			out.Numberings[i] = n.Clone()
		}
	}
	if d.Instances != nil {
		out.Instances = make([]*NumberingInstance, len(d.Instances))
		for i, n := range d.Instances {
			out.Instances[i] = n.Clone()
		}
	}
	if d.Styles != nil {
		out.Styles = make([]*StyleDefinition, len(d.Styles))
		for i, s := range d.Styles {
			out.Styles[i] = s.Clone()
		}
	}
	return out
}

// ParagraphsFlat returns every paragraph in the document across all
// sections, in document order. This is the flattening enumeration the
// paragraph aligner (A) operates over (spec §4.3).
func (d *Document) ParagraphsFlat() []*Paragraph {
	if d == nil {
		return nil
	}
	var out []*Paragraph
	for _, s := range d.Sections {
		out = append(out, s.Paragraphs()...)
	}
	return out
}

// NumberingDefinitionByID looks up a numbering definition by id, or returns
// nil when absent.
func (d *Document) NumberingDefinitionByID(id string) *NumberingDefinition {
	for _, n := range d.Numberings {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// NumberingInstanceByID looks up a numbering instance by id, or returns nil
// when absent.
func (d *Document) NumberingInstanceByID(id string) *NumberingInstance {
	for _, n := range d.Instances {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// StyleByID looks up a style definition by id, or returns nil when absent.
func (d *Document) StyleByID(id string) *StyleDefinition {
	for _, s := range d.Styles {
		if s.ID == id {
			return s
		}
	}
	return nil
}
