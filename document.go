package main

// Document is the typeset form of a worksheet: the problems page followed
// by the solutions page.
type Document struct {
	Title string  `json:"title,omitempty"`
	Pages []*Page `json:"pages"`
}

// BuildDocument lays out problems on a problems page and a solutions page
// of rows × cols cells, one cell per problem on each page.
func BuildDocument(title string, rows, cols int, problems []Problem) (*Document, error) {
	problemPage, err := NewPage(rows, cols)
	if err != nil {
		return nil, err
	}
	solutionPage, _ := NewPage(rows, cols)

	for _, p := range problems {
		if err := problemPage.Place(RenderProblem(p, false)); err != nil {
			return nil, err
		}
		if err := solutionPage.Place(RenderProblem(p, true)); err != nil {
			return nil, err
		}
	}
	return &Document{Title: title, Pages: []*Page{problemPage, solutionPage}}, nil
}
