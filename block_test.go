package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProblemProductWiderThanOperands(t *testing.T) {
	b := RenderProblem(NewProblem(Multiply, 314, 57), true)

	assert.Equal(t, 5, b.Width)
	require.Len(t, b.Rows, 4)
	assert.Equal(t, []string{" ", " ", "3", "1", "4"}, b.Rows[0].Cells)
	assert.Equal(t, []string{" ", "×", " ", "5", "7"}, b.Rows[1].Cells)
	assert.True(t, b.Rows[2].Rule)
	assert.Equal(t, []string{"1", "7", "8", "9", "8"}, b.Rows[3].Cells)

	assert.Equal(t, []string{"  314", " × 57", "-----", "17898"}, b.Lines())
}

func TestRenderProblemWithoutSolution(t *testing.T) {
	b := RenderProblem(NewProblem(Multiply, 314, 57), false)

	assert.Equal(t, 5, b.Width, "width still reserves room for the solution")
	require.Len(t, b.Rows, 3)
	assert.True(t, b.Rows[2].Rule)
}

func TestRenderProblemEqualLengthOperands(t *testing.T) {
	b := RenderProblem(NewProblem(Add, 123, 456), true)

	assert.Equal(t, 4, b.Width)
	assert.Equal(t, []string{" 123", "+456", "----", " 579"}, b.Lines())
}

func TestRenderProblemShortBottom(t *testing.T) {
	b := RenderProblem(NewProblem(Add, 5, 3), true)

	assert.Equal(t, 2, b.Width)
	assert.Equal(t, []string{" 5", "+3", "--", " 8"}, b.Lines())
}

func TestRenderProblemSubtraction(t *testing.T) {
	b := RenderProblem(NewProblem(Subtract, 7, 95), true)

	// 102 - 95 = 7
	assert.Equal(t, []string{" 102", "- 95", "----", "   7"}, b.Lines())
	assert.True(t, b.IsOperator(b.Rows[1].Cells[0]))
}

func TestRenderProblemRowsMatchWidth(t *testing.T) {
	f, err := NewFactory(Config{FirstDigits: 4, SecondDigits: 3, Operation: "?"}, NewRNG(11))
	require.NoError(t, err)

	problems, _ := f.Generate(200)
	for _, p := range problems {
		b := RenderProblem(p, true)
		for _, row := range b.Rows {
			if !row.Rule {
				require.Len(t, row.Cells, b.Width, "%v", p)
			}
		}
	}
}

func TestRightJustify(t *testing.T) {
	assert.Equal(t, []string{" ", " ", "4", "2"}, rightJustify("42", 4))
	assert.Equal(t, []string{"4", "2"}, rightJustify("42", 2))
	assert.Panics(t, func() { rightJustify("12345", 3) })
}
