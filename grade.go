package main

// ProblemResult is the outcome for one cell of a graded worksheet.
type ProblemResult struct {
	Index    int  `json:"index"`
	Expected int  `json:"expected"`
	Answer   *int `json:"answer"`
	Correct  bool `json:"correct"`
}

// Grade scores a set of answers against a worksheet's answer key.
type Grade struct {
	WorksheetID string          `json:"worksheet_id"`
	Correct     int             `json:"correct"`
	Total       int             `json:"total"`
	Results     []ProblemResult `json:"results"`
}

// Score compares answers, in row-major order, with the solutions of ws.
// Missing or nil answers are wrong; answers beyond the last problem are ignored.
func Score(ws *Worksheet, answers []*int) Grade {
	g := Grade{
		WorksheetID: ws.ID,
		Total:       len(ws.Problems),
		Results:     make([]ProblemResult, len(ws.Problems)),
	}
	for i, expected := range ws.Solutions() {
		res := ProblemResult{Index: i, Expected: expected}
		if i < len(answers) && answers[i] != nil {
			res.Answer = answers[i]
			res.Correct = *answers[i] == expected
		}
		if res.Correct {
			g.Correct++
		}
		g.Results[i] = res
	}
	return g
}
