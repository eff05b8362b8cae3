package model

// BlockKind discriminates the variants of Block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockTable
)

// Block is a tagged variant {Paragraph | Table}: a top-level element inside
// a Section or table Cell. Exactly one of Paragraph/Table is non-nil,
// selected by Kind. Consumers switch on Kind rather than relying on virtual
// dispatch (spec §9 "Variant block type").
type Block struct {
	Kind      BlockKind
	Paragraph *Paragraph
	Table     *Table
}

// NewParagraphBlock wraps p as a Block.
func NewParagraphBlock(p *Paragraph) Block {
	return Block{Kind: BlockParagraph, Paragraph: p}
}

// NewTableBlock wraps t as a Block.
func NewTableBlock(t *Table) Block {
	return Block{Kind: BlockTable, Table: t}
}

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	switch b.Kind {
	case BlockParagraph:
		return NewParagraphBlock(b.Paragraph.Clone())
	case BlockTable:
		return NewTableBlock(b.Table.Clone())
	default:
		return Block{}
	}
}

// FlattenParagraphs returns every paragraph reachable from blocks, in
// document order: each top-level paragraph block as it is encountered, and
// for a table block, all paragraphs in every row/cell, row-major then
// cell-major then block-order within the cell (spec §4.3).
func FlattenParagraphs(blocks []Block) []*Paragraph {
	var out []*Paragraph
	for _, b := range blocks {
		switch b.Kind {
		case BlockParagraph:
			out = append(out, b.Paragraph)
		case BlockTable:
			if b.Table == nil {
				continue
			}
			for _, row := range b.Table.Rows {
				for _, cell := range row.Cells {
					out = append(out, FlattenParagraphs(cell.Blocks)...)
				}
			}
		}
	}
	return out
}
