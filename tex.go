package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
)

const texSource = `\documentclass{article}
\usepackage[margin=0.5in]{geometry}
\usepackage{kpfonts}
\setlength{\parindent}{0pt}
\pagestyle{empty}
\begin{document}
{{- range $i, $page := .Pages}}
{{- if $i}}
\linebreak
{{- end}}
\begin{minipage}{\textwidth}
{{- if $.Title}}
\begin{center}\textbf{ {{- escape $.Title -}} }\end{center}
{{- end}}
{{- range $page.Elements}}
{{- if .IsBreak}}
\linebreak
{{- else}}
{{- $block := .Block}}
\begin{minipage}[t][{{dim .Height}}\textheight][t]{ {{- dim .Width}}\textwidth}
\centering\LARGE
\begin{tabular}{ {{- colspec .Block.Width -}} }
{{- range .Block.Rows}}
{{- if .Rule}}
\hline
{{- else}}
{{tabrow $block .Cells}} \\
{{- end}}
{{- end}}
\end{tabular}
\end{minipage}
{{- end}}
{{- end}}
\end{minipage}
{{- end}}
\end{document}
`

var texEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`, `%`, `\%`, `$`, `\$`, `#`, `\#`,
	`_`, `\_`, `{`, `\{`, `}`, `\}`,
	`~`, `\textasciitilde{}`, `^`, `\textasciicircum{}`,
)

// TeXRenderer writes documents as LaTeX markup, the intermediate form a
// TeX toolchain would typeset.
type TeXRenderer struct {
	tpl *template.Template
}

// NewTeXRenderer parses the document template.
func NewTeXRenderer() *TeXRenderer {
	return &TeXRenderer{tpl: template.Must(template.New("worksheet.tex").Funcs(template.FuncMap{
		"escape":  texEscaper.Replace,
		"dim":     func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
		"colspec": func(n int) string { return strings.Repeat("p{1pt}", n) },
		"tabrow":  texRow,
	}).Parse(texSource))}
}

func (r *TeXRenderer) Extension() string { return ".tex" }

// Render writes doc as a LaTeX document to w.
func (r *TeXRenderer) Render(w io.Writer, doc *Document) error {
	if err := r.tpl.Execute(w, doc); err != nil {
		return fmt.Errorf("write tex: %w", err)
	}
	return nil
}

// texRow joins a block row into tabular cells, setting the operator in math
// mode and leaving padding cells empty.
func texRow(b *Block, cells []string) string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		switch {
		case b.IsOperator(cell):
			out[i] = "$" + b.Op.TeX() + "$"
		case strings.TrimSpace(cell) == "":
			out[i] = ""
		default:
			out[i] = texEscaper.Replace(cell)
		}
	}
	return strings.Join(out, " & ")
}
