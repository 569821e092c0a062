package main

import "fmt"

// heightFill is the share of the text height given to the grid rows. The
// remainder keeps rounding and borders from spilling onto a new page.
const heightFill = 0.99

// ElementKind distinguishes placed cells from row breaks.
type ElementKind int

const (
	ElementCell ElementKind = iota
	ElementBreak
)

// Element is one entry of a page, in output order.
type Element struct {
	Kind ElementKind `json:"kind"`
	Row  int         `json:"row"`
	Col  int         `json:"col"`
	// Width and Height are fractions of the page text width and height.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Block  *Block  `json:"block,omitempty"`
}

// IsBreak reports whether e ends a grid row.
func (e Element) IsBreak() bool {
	return e.Kind == ElementBreak
}

// Page places blocks on a rows × cols grid in row-major order.
type Page struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	Elements []Element `json:"elements"`

	row, col int
	placed   int
}

// NewPage returns an empty page. Both dimensions must be positive.
func NewPage(rows, cols int) (*Page, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	return &Page{Rows: rows, Cols: cols}, nil
}

// Place puts b in the next free cell, emitting a row break first when the
// current row is complete.
func (p *Page) Place(b Block) error {
	if p.placed == p.Rows*p.Cols {
		return fmt.Errorf("%w: %dx%d", ErrPageFull, p.Rows, p.Cols)
	}
	if p.col == p.Cols {
		p.Elements = append(p.Elements, Element{Kind: ElementBreak, Row: p.row})
		p.col = 0
		p.row++
	}
	p.Elements = append(p.Elements, Element{
		Kind:   ElementCell,
		Row:    p.row,
		Col:    p.col,
		Width:  1 / float64(p.Cols),
		Height: heightFill / float64(p.Rows),
		Block:  &b,
	})
	p.col++
	p.placed++
	return nil
}

// Len returns the number of placed cells.
func (p *Page) Len() int {
	return p.placed
}

// Cells returns the placed cells, skipping row breaks.
func (p *Page) Cells() []Element {
	cells := make([]Element, 0, p.placed)
	for _, e := range p.Elements {
		if e.Kind == ElementCell {
			cells = append(cells, e)
		}
	}
	return cells
}
