package report

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// FPDFCanvas draws onto an A4 PDF document using the core Helvetica fonts.
type FPDFCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	// size of the current font, used as the text line height
	size float64
}

// NewFPDFCanvas creates an empty A4 portrait document measured in points.
// Page breaks are left to the layout.
func NewFPDFCanvas() *FPDFCanvas {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetFont(fontFamily, "", profileFont.Size)
	return &FPDFCanvas{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		size: profileFont.Size,
	}
}

// NewPDFCanvas is a Canvas factory for NewRenderer.
func NewPDFCanvas() Canvas {
	return NewFPDFCanvas()
}

func (c *FPDFCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *FPDFCanvas) PageSize() (float64, float64) {
	return c.pdf.GetPageSize()
}

func (c *FPDFCanvas) SetFont(f Font) {
	style := ""
	if f.Bold {
		style += "B"
	}
	if f.Underline {
		style += "U"
	}
	c.pdf.SetFont(fontFamily, style, f.Size)
	c.size = f.Size
}

func (c *FPDFCanvas) Text(x, y, width float64, align Align, s string) {
	s = c.tr(s)
	if width <= 0 {
		width = c.pdf.GetStringWidth(s)
		align = AlignLeft
	}
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(width, c.size, s, "", 0, alignString(align)+"T", false, 0, "")
}

func (c *FPDFCanvas) Rect(x, y, w, h float64) {
	c.pdf.Rect(x, y, w, h, "D")
}

// WrapLines greedily packs whole words; a single word wider than width gets its own line.
func (c *FPDFCanvas) WrapLines(s string, width float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && c.pdf.GetStringWidth(c.tr(candidate)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func (c *FPDFCanvas) Output(w io.Writer) error {
	if err := c.pdf.Error(); err != nil {
		return err
	}
	return c.pdf.Output(w)
}

func alignString(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	}
	return "L"
}

var _ Canvas = (*FPDFCanvas)(nil)
