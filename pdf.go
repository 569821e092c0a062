package main

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

// Renderer writes a Document in one output format.
type Renderer interface {
	// Extension is appended to the output base path, dot included.
	Extension() string
	Render(w io.Writer, doc *Document) error
}

// pageSizes are the fpdf page formats accepted by PDFConfig.PageSize.
var pageSizes = map[string]bool{
	"A3":     true,
	"A4":     true,
	"A5":     true,
	"Letter": true,
	"Legal":  true,
}

// PDFConfig controls page geometry and type for PDF output. Lengths are in
// millimetres, font sizes in points.
type PDFConfig struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
	FontSize   float64
	// Pitch is the column width of one character cell.
	Pitch      float64
	LineHeight float64
}

// DefaultPDFConfig uses half-inch margins and a large monospace face.
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		PageSize:   "Letter",
		MarginsMM:  12.7,
		FontFamily: "Courier",
		FontSize:   20,
		Pitch:      5,
		LineHeight: 8,
	}
}

const (
	titleFontSize = 16
	titleHeight   = 12
	// ruleGap is the vertical space taken by a rule, as a share of the line height.
	ruleGap = 0.2
)

// PDFRenderer typesets documents with fpdf, one PDF page per document page.
type PDFRenderer struct {
	cfg PDFConfig
}

// NewPDFRenderer checks cfg and returns a renderer for it.
func NewPDFRenderer(cfg PDFConfig) (*PDFRenderer, error) {
	if !pageSizes[cfg.PageSize] {
		return nil, fmt.Errorf("%w: page size %q", ErrInvalidConfiguration, cfg.PageSize)
	}
	if cfg.FontSize <= 0 || cfg.Pitch <= 0 || cfg.LineHeight <= 0 || cfg.MarginsMM < 0 {
		return nil, fmt.Errorf("%w: non-positive PDF dimensions", ErrInvalidConfiguration)
	}
	return &PDFRenderer{cfg: cfg}, nil
}

func (r *PDFRenderer) Extension() string { return ".pdf" }

// Render writes doc as PDF to w.
func (r *PDFRenderer) Render(w io.Writer, doc *Document) error {
	pdf := fpdf.New("P", "mm", r.cfg.PageSize, "")
	pdf.SetMargins(r.cfg.MarginsMM, r.cfg.MarginsMM, r.cfg.MarginsMM)
	pdf.SetAutoPageBreak(false, r.cfg.MarginsMM)
	pdf.SetCreator("mathsheet", false)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		r.drawPage(pdf, tr, doc.Title, page)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (r *PDFRenderer) drawPage(pdf *fpdf.Fpdf, tr func(string) string, title string, page *Page) {
	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := pdf.GetMargins()
	areaW := pageW - left - right
	areaH := pageH - top - bottom

	if title != "" {
		pdf.SetFont(r.cfg.FontFamily, "B", titleFontSize)
		pdf.SetXY(left, top)
		pdf.CellFormat(areaW, titleHeight, tr(title), "", 1, "C", false, 0, "")
		top += titleHeight
		areaH -= titleHeight
	}

	for _, e := range page.Elements {
		if e.Kind != ElementCell {
			continue
		}
		cellW := e.Width * areaW
		cellH := e.Height * areaH
		r.drawBlock(pdf, tr, e.Block, left+float64(e.Col)*cellW, top+float64(e.Row)*cellH, cellW)
	}
}

// drawBlock draws b centred horizontally in a cell of width cellW whose
// top-left corner is (x, y). Narrow cells shrink the pitch and font.
func (r *PDFRenderer) drawBlock(pdf *fpdf.Fpdf, tr func(string) string, b *Block, x, y, cellW float64) {
	pitch := r.cfg.Pitch
	if fit := 0.9 * cellW / float64(b.Width); fit < pitch {
		pitch = fit
	}
	scale := pitch / r.cfg.Pitch
	lineH := r.cfg.LineHeight * scale
	pdf.SetFont(r.cfg.FontFamily, "", r.cfg.FontSize*scale)
	pdf.SetLineWidth(0.3 * scale)

	x0 := x + (cellW-float64(b.Width)*pitch)/2
	for _, row := range b.Rows {
		if row.Rule {
			pdf.Line(x0, y+lineH*ruleGap/2, x0+float64(b.Width)*pitch, y+lineH*ruleGap/2)
			y += lineH * ruleGap
			continue
		}
		for i, cell := range row.Cells {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			pdf.SetXY(x0+float64(i)*pitch, y)
			pdf.CellFormat(pitch, lineH, tr(cell), "", 0, "C", false, 0, "")
		}
		y += lineH
	}
}
