package report

import "io"

// Align is the horizontal alignment of text inside its box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font selects the Helvetica face used for subsequent text.
type Font struct {
	Size      float64
	Bold      bool
	Underline bool
}

// Canvas is the drawing surface the GA 31 layout is written onto.
// Coordinates are points from the top-left corner of the current page.
type Canvas interface {
	AddPage()
	PageSize() (width, height float64)
	SetFont(f Font)
	// Text draws s with its top edge at y. With a positive width the text is
	// aligned inside [x, x+width]; with zero width it starts at x.
	Text(x, y, width float64, align Align, s string)
	Rect(x, y, w, h float64)
	// WrapLines breaks s into lines no wider than width in the current font.
	WrapLines(s string, width float64) []string
	Output(w io.Writer) error
}

// Cursor is the layout position: the 1-based page being drawn and the vertical offset on it.
type Cursor struct {
	Page int
	Y    float64
}

// Down returns the cursor moved dy points down the same page.
func (c Cursor) Down(dy float64) Cursor {
	c.Y += dy
	return c
}

// ensureRoom starts a new page when h more points would run into the bottom reserve.
func ensureRoom(canvas Canvas, cur Cursor, h float64) Cursor {
	_, pageHeight := canvas.PageSize()
	if cur.Y+h <= pageHeight-bottomReserve {
		return cur
	}
	canvas.AddPage()
	return Cursor{Page: cur.Page + 1, Y: continuationTop}
}
