package model

// StyleType classifies a StyleDefinition.
type StyleType int

const (
	StyleParagraph StyleType = iota
	StyleCharacter
	StyleTable
	StyleNumbering
)

// StyleDefinition is a named, reusable bundle of paragraph and/or run
// formatting.
type StyleDefinition struct {
	ID          string
	Name        *string
	Type        StyleType
	BasedOnID   *string
	NextStyleID *string

	ParagraphStyle *ParagraphStyle
	RunFormatting  *RunFormatting
}

// Clone returns a deep copy of s.
func (s *StyleDefinition) Clone() *StyleDefinition {
	if s == nil {
		return nil
	}
	out := &StyleDefinition{
		ID:          s.ID,
		Name:        clonePtr(s.Name),
		Type:        s.Type,
		BasedOnID:   clonePtr(s.BasedOnID),
		NextStyleID: clonePtr(s.NextStyleID),
	}
	if s.ParagraphStyle != nil {
		v := s.ParagraphStyle.Clone()
		out.ParagraphStyle = &v
	}
	if s.RunFormatting != nil {
		v := s.RunFormatting.Clone()
		out.RunFormatting = &v
	}
	return out
}

// DocumentProperties holds document-level metadata (Dublin Core style),
// all optional.
type DocumentProperties struct {
	Title       *string
	Author      *string
	Subject     *string
	Description *string
	Keywords    *string
	Created     *string
	Modified    *string
	Creator     *string
	LastModifiedBy *string

	DefaultFont     *string
	DefaultFontSize *float64
}

// Clone returns a deep copy of p (or nil, for a nil receiver).
func (p *DocumentProperties) Clone() *DocumentProperties {
	if p == nil {
		return nil
	}
	return &DocumentProperties{
		Title:           clonePtr(p.Title),
		Author:          clonePtr(p.Author),
		Subject:         clonePtr(p.Subject),
		Description:     clonePtr(p.Description),
		Keywords:        clonePtr(p.Keywords),
		Created:         clonePtr(p.Created),
		Modified:        clonePtr(p.Modified),
		Creator:         clonePtr(p.Creator),
		LastModifiedBy:  clonePtr(p.LastModifiedBy),
		DefaultFont:     clonePtr(p.DefaultFont),
		DefaultFontSize: clonePtr(p.DefaultFontSize),
	}
}
