package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestScore(t *testing.T) {
	ws := &Worksheet{
		ID: "abc",
		Problems: []Problem{
			NewProblem(Multiply, 314, 57),
			NewProblem(Add, 12, 30),
			NewProblem(Subtract, 8, 5),
		},
	}

	g := Score(ws, []*int{intp(17898), intp(41), nil})
	assert.Equal(t, "abc", g.WorksheetID)
	assert.Equal(t, 3, g.Total)
	assert.Equal(t, 1, g.Correct)
	require.Len(t, g.Results, 3)
	assert.True(t, g.Results[0].Correct)
	assert.False(t, g.Results[1].Correct)
	assert.Equal(t, 42, g.Results[1].Expected)
	assert.Nil(t, g.Results[2].Answer)
	assert.Equal(t, 8, g.Results[2].Expected)
}

func TestScoreShortAndLongAnswerLists(t *testing.T) {
	ws := &Worksheet{Problems: []Problem{NewProblem(Add, 1, 1), NewProblem(Add, 2, 2)}}

	g := Score(ws, []*int{intp(2)})
	assert.Equal(t, 1, g.Correct, "missing answers count as wrong")

	g = Score(ws, []*int{intp(2), intp(4), intp(99)})
	assert.Equal(t, 2, g.Correct, "extra answers are ignored")
	assert.Len(t, g.Results, 2)
}

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers(`{"answers":[12, null, 7]}`)
	require.NoError(t, err)
	require.Len(t, answers, 3)
	assert.Equal(t, 12, *answers[0])
	assert.Nil(t, answers[1])

	_, err = parseAnswers("not json")
	assert.Error(t, err)

	_, err = parseAnswers(`{"other": 1}`)
	assert.Error(t, err)
}
