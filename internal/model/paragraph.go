package model

import "strings"

// Alignment is a paragraph's horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// SpacingRule controls how ParagraphStyle.LineSpacing is interpreted.
type SpacingRule int

const (
	SpacingAuto SpacingRule = iota
	SpacingExact
	SpacingAtLeast
)

// ParagraphStyle carries the paragraph-level formatting of a Paragraph.
// Twip fields follow spec §3: 1/1440 inch. A negative FirstLineIndent
// encodes a hanging indent.
type ParagraphStyle struct {
	StyleID      *string
	HeadingLevel *int // 1..9

	Alignment Alignment

	LeftIndent      int
	RightIndent     int
	FirstLineIndent int

	SpaceBefore int
	SpaceAfter  int
	LineSpacing int
	SpacingRule SpacingRule

	KeepWithNext      bool
	KeepLinesTogether bool
	PageBreakBefore   bool
	OutlineLevel      *int // 0..8
}

// Clone returns a deep copy of s.
func (s ParagraphStyle) Clone() ParagraphStyle {
	out := s
	out.StyleID = clonePtr(s.StyleID)
	out.HeadingLevel = clonePtr(s.HeadingLevel)
	out.OutlineLevel = clonePtr(s.OutlineLevel)
	return out
}

// NumberingInfo associates a Paragraph with a numbering instance and level.
type NumberingInfo struct {
	InstanceID string
	Level      int // 0..8
}

// Clone returns a deep copy of n (or nil, for a nil receiver).
func (n *NumberingInfo) Clone() *NumberingInfo {
	if n == nil {
		return nil
	}
	out := *n
	return &out
}

// Paragraph is an ordered sequence of Runs plus paragraph-level formatting.
type Paragraph struct {
	Runs      []Run
	Style     ParagraphStyle
	Numbering *NumberingInfo

	BookmarkStarts []string
	BookmarkEnds   []string

	ID *string // stable id, when the source format supplies one (e.g. w:paraId)
}

// NewParagraph returns an empty paragraph with default style.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// PlainText concatenates the text of every run in order, verbatim.
func (p *Paragraph) PlainText() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// NormalizedText returns PlainText trimmed, with every run of whitespace
// collapsed to a single space. Used by the similarity oracle (S), the
// aligner's match score, the inline differ when whitespace is ignored, and
// move detection.
func (p *Paragraph) NormalizedText() string {
	return normalizeWhitespace(p.PlainText())
}

func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// Clone returns a deep copy of p.
func (p *Paragraph) Clone() *Paragraph {
	if p == nil {
		return nil
	}
	out := &Paragraph{
		Style:     p.Style.Clone(),
		Numbering: p.Numbering.Clone(),
		ID:        clonePtr(p.ID),
	}
	if p.Runs != nil {
		out.Runs = make([]Run, len(p.Runs))
		for i, r := range p.Runs {
			out.Runs[i] = r.Clone()
		}
	}
	if p.BookmarkStarts != nil {
		out.BookmarkStarts = append([]string(nil), p.BookmarkStarts...)
	}
	if p.BookmarkEnds != nil {
		out.BookmarkEnds = append([]string(nil), p.BookmarkEnds...)
	}
	return out
}

// AddRun appends a run with the given text and formatting.
func (p *Paragraph) AddRun(text string, f RunFormatting) *Run {
	p.Runs = append(p.Runs, Run{Text: text, Formatting: f})
	return &p.Runs[len(p.Runs)-1]
}
