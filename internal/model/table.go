package model

// WidthType classifies how Table/Cell width values are interpreted.
type WidthType int

const (
	WidthAuto WidthType = iota
	WidthDXA            // twips
	WidthPercent
)

// TableProperties holds optional table-level layout properties.
type TableProperties struct {
	Width     *int
	WidthType WidthType
	Alignment Alignment
}

// Clone returns a deep copy of p (or nil, for a nil receiver).
func (p *TableProperties) Clone() *TableProperties {
	if p == nil {
		return nil
	}
	out := *p
	out.Width = clonePtr(p.Width)
	return &out
}

// Cell is one cell of a table row; it contains an ordered list of Blocks.
// Every cell that is emitted must contain at least one paragraph (spec §3).
type Cell struct {
	Blocks []Block
}

// Clone returns a deep copy of c.
func (c Cell) Clone() Cell {
	out := Cell{}
	if c.Blocks != nil {
		out.Blocks = make([]Block, len(c.Blocks))
		for i, b := range c.Blocks {
			out.Blocks[i] = b.Clone()
		}
	}
	return out
}

// Row is an ordered list of Cells.
type Row struct {
	Cells []Cell
}

// Clone returns a deep copy of r.
func (r Row) Clone() Row {
	out := Row{}
	if r.Cells != nil {
		out.Cells = make([]Cell, len(r.Cells))
		for i, c := range r.Cells {
			out.Cells[i] = c.Clone()
		}
	}
	return out
}

// Table is an ordered list of Rows plus optional layout properties. Table
// bodies are treated as opaque during paragraph alignment (spec §1): cell
// text contributes paragraphs to the flattened enumeration, but structure
// is not preserved through a diff involving table content (spec §9).
type Table struct {
	Rows       []Row
	Properties *TableProperties
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Properties: t.Properties.Clone()}
	if t.Rows != nil {
		out.Rows = make([]Row, len(t.Rows))
		for i, r := range t.Rows {
			out.Rows[i] = r.Clone()
		}
	}
	return out
}

// EnsureNonEmptyCells guarantees every cell in the table has at least one
// paragraph, inserting an empty placeholder paragraph where needed (spec §3
// "Table"). The OOXML reader (internal/ooxml readTable) invokes this after
// building each table.
func (t *Table) EnsureNonEmptyCells() {
	if t == nil {
		return
	}
	for ri := range t.Rows {
		for ci := range t.Rows[ri].Cells {
			cell := &t.Rows[ri].Cells[ci]
			if len(cell.Blocks) == 0 {
				cell.Blocks = append(cell.Blocks, NewParagraphBlock(NewParagraph()))
			}
		}
	}
}
