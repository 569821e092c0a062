package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxCells bounds worksheets requested over HTTP.
const maxCells = 200

// Worksheet is a generated set of problems. Regenerating from Seed, Rows,
// Cols and Config yields the same Problems.
type Worksheet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Seed      uint64    `json:"seed"`
	Config    Config    `json:"config"`
	Problems  []Problem `json:"problems"`
	CreatedAt time.Time `json:"created_at"`
}

// WorksheetRequest describes a worksheet to generate.
type WorksheetRequest struct {
	Title string `json:"title"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Seed  uint64 `json:"seed"`
	Config
}

// NewRNG returns the random source for a seed. It is seeded exactly once.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewWorksheet validates req and draws Rows × Cols problems. An empty title
// leaves the pages without a heading.
func NewWorksheet(req WorksheetRequest) (*Worksheet, error) {
	if req.Rows < 1 || req.Cols < 1 || req.Rows > math.MaxInt/req.Cols {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfiguration, req.Rows, req.Cols)
	}
	factory, err := NewFactory(req.Config, NewRNG(req.Seed))
	if err != nil {
		return nil, err
	}
	problems, err := factory.Generate(req.Rows * req.Cols)
	if err != nil {
		return nil, err
	}

	return &Worksheet{
		Title:    req.Title,
		Rows:     req.Rows,
		Cols:     req.Cols,
		Seed:     req.Seed,
		Config:   req.Config,
		Problems: problems,
	}, nil
}

var selectorNouns = map[string]string{
	SelectMultiply: "multiplication",
	SelectAdd:      "addition",
	SelectSubtract: "subtraction",
	SelectRandom:   "mixed practice",
}

// DefaultTitle names a worksheet after its operation selector.
func DefaultTitle(selector string) string {
	noun, ok := selectorNouns[selector]
	if !ok {
		noun = "arithmetic"
	}
	return cases.Title(language.English).String(noun + " worksheet")
}

// Document lays out the worksheet's problems and solutions.
func (w *Worksheet) Document() (*Document, error) {
	return BuildDocument(w.Title, w.Rows, w.Cols, w.Problems)
}

// Solutions returns the answer key in row-major order.
func (w *Worksheet) Solutions() []int {
	out := make([]int, len(w.Problems))
	for i, p := range w.Problems {
		out[i] = p.Solution()
	}
	return out
}
