package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorksheet(t *testing.T, rows, cols int, op string) *Worksheet {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Operation = op
	ws, err := NewWorksheet(WorksheetRequest{Rows: rows, Cols: cols, Seed: 1, Config: cfg})
	require.NoError(t, err)
	return ws
}

func TestBuildDocumentPages(t *testing.T) {
	ws := testWorksheet(t, 5, 4, "?")
	doc, err := ws.Document()
	require.NoError(t, err)

	require.Len(t, doc.Pages, 2)
	problems, solutions := doc.Pages[0], doc.Pages[1]
	assert.Equal(t, 20, problems.Len())
	assert.Equal(t, 20, solutions.Len())

	pc, sc := problems.Cells(), solutions.Cells()
	for i := range pc {
		assert.Len(t, pc[i].Block.Rows, 3, "problem cells have no solution row")
		assert.Len(t, sc[i].Block.Rows, 4, "solution cells show the solution")
		assert.Equal(t, pc[i].Block.Width, sc[i].Block.Width)
		assert.Equal(t, pc[i].Row, sc[i].Row)
		assert.Equal(t, pc[i].Col, sc[i].Col)
	}
}

func TestBuildDocumentTooManyProblems(t *testing.T) {
	problems := make([]Problem, 5)
	_, err := BuildDocument("", 2, 2, problems)
	assert.ErrorIs(t, err, ErrPageFull)
}

func TestBuildDocumentInvalidGrid(t *testing.T) {
	_, err := BuildDocument("", 0, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewWorksheetInvalid(t *testing.T) {
	_, err := NewWorksheet(WorksheetRequest{Rows: 0, Cols: 4, Config: DefaultConfig()})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewWorksheet(WorksheetRequest{Rows: 2, Cols: 2, Config: Config{FirstDigits: 0, SecondDigits: 2, Operation: "*"}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// rows × cols would wrap around to 1.
	_, err = NewWorksheet(WorksheetRequest{Rows: 274177, Cols: 67280421310721, Config: DefaultConfig()})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewWorksheet(WorksheetRequest{Rows: math.MaxInt, Cols: 2, Config: DefaultConfig()})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestWorksheetSolutions(t *testing.T) {
	ws := testWorksheet(t, 2, 2, "-")
	sol := ws.Solutions()
	require.Len(t, sol, 4)
	for i, p := range ws.Problems {
		assert.Equal(t, p.Top-p.Bottom, sol[i])
	}
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Multiplication Worksheet", DefaultTitle("*"))
	assert.Equal(t, "Subtraction Worksheet", DefaultTitle("-"))
	assert.Equal(t, "Mixed Practice Worksheet", DefaultTitle("?"))
	assert.Equal(t, "Arithmetic Worksheet", DefaultTitle("/"))
}
