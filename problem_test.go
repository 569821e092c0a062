package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblemSubtractionIsNonNegative(t *testing.T) {
	p := NewProblem(Subtract, 12, 47)

	assert.Equal(t, 59, p.Top, "top should be first+second")
	assert.Equal(t, 47, p.Bottom)
	assert.Equal(t, 12, p.Solution(), "solution should be the first drawn operand")
}

func TestNewProblemKeepsOperands(t *testing.T) {
	mul := NewProblem(Multiply, 314, 57)
	assert.Equal(t, Problem{Op: Multiply, Top: 314, Bottom: 57}, mul)
	assert.Equal(t, 17898, mul.Solution())

	add := NewProblem(Add, 314, 57)
	assert.Equal(t, Problem{Op: Add, Top: 314, Bottom: 57}, add)
	assert.Equal(t, 371, add.Solution())
}

func TestOperationSymbols(t *testing.T) {
	assert.Equal(t, "×", Multiply.Symbol())
	assert.Equal(t, "+", Add.Symbol())
	assert.Equal(t, "-", Subtract.Symbol())
	assert.Equal(t, `\times`, Multiply.TeX())
	assert.Equal(t, "subtract", Subtract.String())
	assert.Equal(t, "Operation(7)", Operation(7).String())
}

func TestProblemJSON(t *testing.T) {
	data, err := json.Marshal(NewProblem(Subtract, 5, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"subtract","top":8,"bottom":3}`, string(data))

	var p Problem
	require.NoError(t, json.Unmarshal([]byte(`{"op":"add","top":1,"bottom":2}`), &p))
	assert.Equal(t, Add, p.Op)

	err = json.Unmarshal([]byte(`{"op":"divide","top":1,"bottom":2}`), &p)
	assert.Error(t, err, "unknown operation names must be rejected")
}

func TestProblemString(t *testing.T) {
	assert.Equal(t, "314 × 57 = 17898", NewProblem(Multiply, 314, 57).String())
}
