package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Page geometry in points (A4 portrait).
const (
	pageMargin      = 40.0
	bottomReserve   = 100.0
	continuationTop = 50.0

	formCodeY   = 40.0
	titleY      = 57.0
	subtitleY   = 74.0
	profileY    = 100.0
	profileStep = 14.0
	tableTopY   = 180.0

	headerHeight  = 32.0
	rowHeight     = 18.0
	rowTextInset  = 5.0
	summaryGap    = 15.0
	lineSpacing   = 1.16
	paragraphGap  = 3.0
	signatureGap  = 19.0
	signatureWide = 160.0
)

// DefaultOrganization is printed above the form title.
const DefaultOrganization = "SOUTH CENTRAL RAILWAY"

const (
	formCode  = "G.A 31"
	formTitle = "TRAVELLING ALLOWANCE JOURNAL"
)

var (
	profileFont   = Font{Size: 9}
	headerFont    = Font{Size: 8, Bold: true}
	rowFont       = Font{Size: 7.5}
	summaryFont   = Font{Size: 9, Bold: true}
	certTitleFont = Font{Size: 9, Bold: true, Underline: true}
	certFont      = Font{Size: 8}
	signatureFont = Font{Size: 9}
)

type column struct {
	width      float64
	inset      float64
	align      Align
	value      func(domain.ReportRow) string
	headerPad  float64
	headerText string
}

var columns = []column{
	{width: 55, inset: 3, align: AlignLeft, headerPad: 5, headerText: "DATE", value: func(r domain.ReportRow) string { return r.Date }},
	{width: 45, inset: 3, align: AlignCenter, headerPad: 2, headerText: "TRAIN\nNO.", value: func(r domain.ReportRow) string { return r.TrainNo }},
	{width: 40, inset: 2, align: AlignCenter, headerPad: 2, headerText: "DEP", value: func(r domain.ReportRow) string { return r.Dep }},
	{width: 40, inset: 2, align: AlignCenter, headerPad: 2, headerText: "ARR", value: func(r domain.ReportRow) string { return r.Arr }},
	{width: 45, inset: 2, align: AlignCenter, headerPad: 2, headerText: "from", value: func(r domain.ReportRow) string { return r.From }},
	{width: 45, inset: 2, align: AlignCenter, headerPad: 2, headerText: "To", value: func(r domain.ReportRow) string { return r.To }},
	{width: 35, inset: 2, align: AlignCenter, headerPad: 2, headerText: "DAY\nS", value: func(r domain.ReportRow) string { return r.Days }},
	{width: 40, inset: 2, align: AlignCenter, headerPad: 2, headerText: "RATE", value: func(r domain.ReportRow) string { return r.Rate }},
	{width: 150, inset: 3, align: AlignLeft, headerPad: 5, headerText: "OBJECT OF JOURNEY", value: func(r domain.ReportRow) string { return r.Object }},
}

// headerGroups spans columns under a shared super-header; ungrouped columns take the full header height.
var headerGroups = map[int]struct {
	label string
	span  int
}{
	2: {label: "TIME", span: 2},
	4: {label: "STATION", span: 2},
}

// TableWidth is the total width of the journal table.
func TableWidth() float64 {
	total := 0.0
	for _, col := range columns {
		total += col.width
	}
	return total
}

// Renderer lays out a MonthlyReport as a GA 31 form.
type Renderer struct {
	newCanvas    func() Canvas
	organization string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithOrganization overrides the railway name printed in the header.
func WithOrganization(name string) RendererOption {
	return func(r *Renderer) {
		if name != "" {
			r.organization = name
		}
	}
}

// NewRenderer creates a Renderer drawing on canvases produced by newCanvas.
func NewRenderer(newCanvas func() Canvas, opts ...RendererOption) *Renderer {
	r := &Renderer{newCanvas: newCanvas, organization: DefaultOrganization}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the report on a fresh canvas and writes the document to w.
func (r *Renderer) Render(rep domain.MonthlyReport, w io.Writer) error {
	canvas := r.newCanvas()
	r.Draw(canvas, rep)
	if err := canvas.Output(w); err != nil {
		return fmt.Errorf("failed to write GA 31 document: %w", err)
	}
	return nil
}

// Draw lays out every block of the form and returns the final cursor.
func (r *Renderer) Draw(canvas Canvas, rep domain.MonthlyReport) Cursor {
	canvas.AddPage()
	cur := Cursor{Page: 1, Y: formCodeY}

	cur = r.drawTitle(canvas, cur)
	cur = drawProfile(canvas, cur, rep)
	end := drawTable(canvas, cur, rep.Rows)
	cur = drawSummary(canvas, end.Down(summaryGap), rep.Summary)
	cur = drawCertificate(canvas, cur, rep.User.FullName)
	return drawSignatures(canvas, cur)
}

func (r *Renderer) drawTitle(canvas Canvas, cur Cursor) Cursor {
	pageWidth, _ := canvas.PageSize()
	contentWidth := pageWidth - 2*pageMargin

	canvas.SetFont(Font{Size: 9})
	canvas.Text(pageMargin, cur.Y, contentWidth, AlignRight, formCode)

	canvas.SetFont(Font{Size: 14, Bold: true})
	canvas.Text(pageMargin, titleY, contentWidth, AlignCenter, r.organization)

	canvas.SetFont(Font{Size: 12, Bold: true})
	canvas.Text(pageMargin, subtitleY, contentWidth, AlignCenter, formTitle)

	return Cursor{Page: cur.Page, Y: profileY}
}

func drawProfile(canvas Canvas, cur Cursor, rep domain.MonthlyReport) Cursor {
	pageWidth, _ := canvas.PageSize()
	col1X := pageMargin
	col2X := pageWidth/2 + 20
	u := rep.User

	canvas.SetFont(profileFont)
	y := cur.Y
	canvas.Text(col1X, y, 0, AlignLeft, "Name: "+upper.String(u.FullName))
	canvas.Text(col2X, y, 0, AlignLeft, "T.No.: ")
	canvas.Text(col2X+100, y, 0, AlignLeft, "Bill Unit No: "+u.BillUnitNo)

	y += profileStep
	canvas.Text(col1X, y, 0, AlignLeft, "Headquarters: "+u.Headquarters)
	canvas.Text(col2X, y, 0, AlignLeft, "Designation: "+u.Designation)
	canvas.Text(col2X+150, y, 0, AlignLeft, "P.F.No: "+u.PFNumber)

	y += profileStep
	canvas.Text(col1X, y, 0, AlignLeft, "Rate Of Pay: "+optionalAmount(u.RateOfPay))
	canvas.Text(col2X, y, 0, AlignLeft, "Month: "+rep.DisplayMonth)
	canvas.Text(col2X+150, y, 0, AlignLeft, "Division: "+u.Division)

	return Cursor{Page: cur.Page, Y: tableTopY}
}

// drawTable draws the grouped header then one row per entry, breaking pages before a row
// that would cross the bottom reserve. It returns the cursor just below the last row.
func drawTable(canvas Canvas, cur Cursor, rows []domain.ReportRow) Cursor {
	pageWidth, _ := canvas.PageSize()
	startX := (pageWidth - TableWidth()) / 2

	cur = drawTableHeader(canvas, cur, startX)

	canvas.SetFont(rowFont)
	for _, row := range rows {
		cur = ensureRoom(canvas, cur, rowHeight)
		x := startX
		for _, col := range columns {
			canvas.Rect(x, cur.Y, col.width, rowHeight)
			canvas.Text(x+col.inset, cur.Y+rowTextInset, col.width-2*col.inset, col.align, col.value(row))
			x += col.width
		}
		cur = cur.Down(rowHeight)
	}
	return cur
}

func drawTableHeader(canvas Canvas, cur Cursor, startX float64) Cursor {
	half := headerHeight / 2
	canvas.SetFont(headerFont)
	canvas.Rect(startX, cur.Y, TableWidth(), headerHeight)

	x := startX
	for i := 0; i < len(columns); {
		if group, ok := headerGroups[i]; ok {
			groupWidth := 0.0
			for _, col := range columns[i : i+group.span] {
				groupWidth += col.width
			}
			canvas.Rect(x, cur.Y, groupWidth, half)
			canvas.Text(x, cur.Y+4, groupWidth, AlignCenter, group.label)

			subX := x
			for _, col := range columns[i : i+group.span] {
				canvas.Rect(subX, cur.Y+half, col.width, half)
				canvas.Text(subX+col.headerPad, cur.Y+half+4, col.width-2*col.headerPad, AlignCenter, col.headerText)
				subX += col.width
			}
			x += groupWidth
			i += group.span
			continue
		}

		col := columns[i]
		canvas.Rect(x, cur.Y, col.width, headerHeight)
		lines := strings.Split(col.headerText, "\n")
		labelY := cur.Y + 12
		if len(lines) > 1 {
			labelY = cur.Y + 6
		}
		for _, line := range lines {
			canvas.Text(x+col.headerPad, labelY, col.width-2*col.headerPad, AlignCenter, line)
			labelY += headerFont.Size * lineSpacing
		}
		x += col.width
		i++
	}
	return cur.Down(headerHeight)
}

func drawSummary(canvas Canvas, cur Cursor, s domain.ReportSummary) Cursor {
	lines := []string{
		fmt.Sprintf("Total No. of Working Days = %d Days", s.PaidDays),
		fmt.Sprintf("100%% TA Work = %d Days x %s = %s /-", s.PaidDays, s.TARate.String(), s.TotalAmount.String()),
		fmt.Sprintf("Total Amount = %s/-", s.TotalAmount.String()),
		fmt.Sprintf("Total Amount in Words = %s RUPEES ONLY.", s.AmountInWords),
	}

	step := summaryFont.Size * lineSpacing
	cur = ensureRoom(canvas, cur, step*float64(len(lines)))
	canvas.SetFont(summaryFont)
	for _, line := range lines {
		canvas.Text(pageMargin, cur.Y, 0, AlignLeft, line)
		cur = cur.Down(step)
	}
	return cur
}

// optionalAmount prints an unset profile amount as blank.
func optionalAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func certificateStatements(fullName string) []string {
	return []string{
		"Certified that no TA/DA or any other remuneration has been drawn from any other source in respect of journeys performed on duty pass and also for the halts for which TA/DA has been claimed in this bill.",
		"Certified that the officer was actually and not merely constructively in camp on Sunday/Holiday.",
		"Certified that the officer/staff was absent on duty from H.Q. Station during the period.",
		"Competent Authority's sanction has been obtained for performing journey.",
		"Certified that the expenses have actually been incurred in the discharge of railway duties and the amount has been spent in the interest of administration.",
		fmt.Sprintf("I hereby certify that the above-mentioned %s was absent on duty from his headquarters station during the period charged for in the on-Railway Premises.", fullName),
	}
}

func drawCertificate(canvas Canvas, cur Cursor, fullName string) Cursor {
	pageWidth, _ := canvas.PageSize()
	contentWidth := pageWidth - 2*pageMargin

	titleStep := certTitleFont.Size * lineSpacing
	cur = ensureRoom(canvas, cur.Down(titleStep), titleStep)
	canvas.SetFont(certTitleFont)
	canvas.Text(pageMargin, cur.Y, 0, AlignLeft, "CERTIFICATE")
	cur = cur.Down(titleStep + paragraphGap)

	canvas.SetFont(certFont)
	step := certFont.Size * lineSpacing
	for _, statement := range certificateStatements(fullName) {
		lines := canvas.WrapLines("• "+statement, contentWidth)
		cur = ensureRoom(canvas, cur, step*float64(len(lines)))
		for _, line := range lines {
			canvas.Text(pageMargin, cur.Y, 0, AlignLeft, line)
			cur = cur.Down(step)
		}
		cur = cur.Down(paragraphGap)
	}
	return cur
}

func drawSignatures(canvas Canvas, cur Cursor) Cursor {
	pageWidth, _ := canvas.PageSize()
	step := signatureFont.Size * lineSpacing

	cur = ensureRoom(canvas, cur.Down(signatureGap), step)
	canvas.SetFont(signatureFont)
	canvas.Text(pageMargin, cur.Y, 0, AlignLeft, "Controlling Officer")
	canvas.Text(pageWidth/2-30, cur.Y, 0, AlignLeft, "Head Office")
	canvas.Text(pageWidth-pageMargin-signatureWide, cur.Y, 0, AlignLeft, "Signature of Employee Claiming TA")
	return cur.Down(step)
}
