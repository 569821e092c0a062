package main

import (
	"strconv"
	"strings"
)

// BlockRow is one row of a Block: either Width one-character cells or a
// horizontal rule spanning the block.
type BlockRow struct {
	Cells []string `json:"cells,omitempty"`
	Rule  bool     `json:"rule,omitempty"`
}

// Block is a problem typeset on a fixed-width character grid. Blank cells
// hold a single space.
type Block struct {
	Op    Operation  `json:"op"`
	Width int        `json:"width"`
	Rows  []BlockRow `json:"rows"`
}

// RenderProblem lays out p as a vertical problem: top operand, operator and
// bottom operand, a rule, and the solution when showSolution is set. The
// width always accounts for the solution so both sides of a worksheet align.
func RenderProblem(p Problem, showSolution bool) Block {
	top := strconv.Itoa(p.Top)
	bottom := strconv.Itoa(p.Bottom)
	solution := strconv.Itoa(p.Solution())

	opWidth := max(len(top), len(bottom)) + 1
	width := max(opWidth, len(solution))

	opRow := make([]string, 0, width)
	for range width - opWidth {
		opRow = append(opRow, " ")
	}
	opRow = append(opRow, p.Op.Symbol())
	opRow = append(opRow, rightJustify(bottom, opWidth-1)...)

	rows := []BlockRow{
		{Cells: rightJustify(top, width)},
		{Cells: opRow},
		{Rule: true},
	}
	if showSolution {
		rows = append(rows, BlockRow{Cells: rightJustify(solution, width)})
	}
	return Block{Op: p.Op, Width: width, Rows: rows}
}

// rightJustify left-pads s with spaces to width and splits it into
// one-character cells. It panics if s is longer than width.
func rightJustify(s string, width int) []string {
	padded := strings.Repeat(" ", width-len(s)) + s
	return strings.Split(padded, "")
}

// Lines returns the block as plain text, one string per row, with the rule
// drawn as dashes.
func (b Block) Lines() []string {
	lines := make([]string, len(b.Rows))
	for i, row := range b.Rows {
		if row.Rule {
			lines[i] = strings.Repeat("-", b.Width)
			continue
		}
		lines[i] = strings.Join(row.Cells, "")
	}
	return lines
}

// IsOperator reports whether cell holds the block's operator glyph.
func (b Block) IsOperator(cell string) bool {
	return cell == b.Op.Symbol()
}
