package model

// Run is a maximal span of text sharing one formatting record inside a
// paragraph. Leading/trailing spaces in Text are significant and must be
// preserved verbatim by any serializer.
type Run struct {
	Text       string
	Formatting RunFormatting
}

// Clone returns a deep copy of r.
func (r Run) Clone() Run {
	return Run{Text: r.Text, Formatting: r.Formatting.Clone()}
}

// RunFormatting holds the character-level formatting of a Run. All fields
// are optional; a zero value means "inherit from the paragraph/style".
type RunFormatting struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Superscript   bool
	Subscript     bool

	FontFamily *string
	FontSize   *float64 // points
	Color      *string  // 6-hex-digit RGB, no leading "#"
	Highlight  *string  // 6-hex-digit RGB, no leading "#"
	StyleID    *string
}

// Clone returns a deep copy of f; pointer fields are independently owned.
func (f RunFormatting) Clone() RunFormatting {
	out := f
	out.FontFamily = clonePtr(f.FontFamily)
	out.FontSize = clonePtr(f.FontSize)
	out.Color = clonePtr(f.Color)
	out.Highlight = clonePtr(f.Highlight)
	out.StyleID = clonePtr(f.StyleID)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func strPtr(s string) *string { return &s }

// Redline formatting contract (spec §3 "Run" / §8.9-§8.12). These hex,
// bold, and strikethrough choices are part of the contract: test suites
// assert exactly them, and CompareOptions.Styles (redline_styles) can
// override the colors at the call site.

// DefaultDeletionColor is the fallback color ForDeletion applies.
const DefaultDeletionColor = "FF0000"

// DefaultInsertionColor is the fallback color ForInsertion applies.
const DefaultInsertionColor = "0000FF"

// DefaultMoveColor is the fallback color ForMove applies.
const DefaultMoveColor = "008000"

// ForDeletion returns a clone of base (or an empty RunFormatting when base
// is nil) with strikethrough set and color set to deletionColor (falls back
// to DefaultDeletionColor when empty).
func ForDeletion(base *RunFormatting, deletionColor string) RunFormatting {
	out := baseOrEmpty(base)
	out.Strikethrough = true
	out.Color = strPtr(orDefault(deletionColor, DefaultDeletionColor))
	return out
}

// ForInsertion returns a clone of base (or an empty RunFormatting when base
// is nil) with bold set and color set to insertionColor (falls back to
// DefaultInsertionColor when empty).
func ForInsertion(base *RunFormatting, insertionColor string) RunFormatting {
	out := baseOrEmpty(base)
	out.Bold = true
	out.Color = strPtr(orDefault(insertionColor, DefaultInsertionColor))
	return out
}

// ForMove returns a clone of base (or an empty RunFormatting when base is
// nil) with color set to moveColor (falls back to DefaultMoveColor); when
// isSource is true strikethrough is also set, marking the paragraph at its
// original (pre-move) location.
func ForMove(base *RunFormatting, isSource bool, moveColor string) RunFormatting {
	out := baseOrEmpty(base)
	out.Color = strPtr(orDefault(moveColor, DefaultMoveColor))
	if isSource {
		out.Strikethrough = true
	}
	return out
}

func baseOrEmpty(base *RunFormatting) RunFormatting {
	if base == nil {
		return RunFormatting{}
	}
	return base.Clone()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
