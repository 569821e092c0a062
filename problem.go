package main

import (
	"fmt"
	"strconv"
)

// Operation is the arithmetic performed by a problem.
type Operation int

const (
	Multiply Operation = iota
	Add
	Subtract
)

var operationNames = map[Operation]string{
	Multiply: "multiply",
	Add:      "add",
	Subtract: "subtract",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "Operation(" + strconv.Itoa(int(o)) + ")"
}

// Symbol is the glyph printed left of the bottom operand.
func (o Operation) Symbol() string {
	switch o {
	case Multiply:
		return "×"
	case Add:
		return "+"
	default:
		return "-"
	}
}

// TeX is the math-mode symbol used in LaTeX output.
func (o Operation) TeX() string {
	switch o {
	case Multiply:
		return `\times`
	case Add:
		return "+"
	default:
		return "-"
	}
}

// Solve applies the operation to the displayed operands.
func (o Operation) Solve(top, bottom int) int {
	switch o {
	case Multiply:
		return top * bottom
	case Add:
		return top + bottom
	default:
		return top - bottom
	}
}

func (o Operation) MarshalText() ([]byte, error) {
	name, ok := operationNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown operation %d", int(o))
	}
	return []byte(name), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	for op, name := range operationNames {
		if name == string(text) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("unknown operation %q", text)
}

// Problem is one exercise as it is displayed: Top over Bottom.
type Problem struct {
	Op     Operation `json:"op"`
	Top    int       `json:"top"`
	Bottom int       `json:"bottom"`
}

// NewProblem builds a problem from two drawn operands. Subtraction shows
// first+second over second, so its solution is first and never negative.
func NewProblem(op Operation, first, second int) Problem {
	if op == Subtract {
		return Problem{Op: op, Top: first + second, Bottom: second}
	}
	return Problem{Op: op, Top: first, Bottom: second}
}

// Solution returns the answer of the problem.
func (p Problem) Solution() int {
	return p.Op.Solve(p.Top, p.Bottom)
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d = %d", p.Top, p.Op.Symbol(), p.Bottom, p.Solution())
}
