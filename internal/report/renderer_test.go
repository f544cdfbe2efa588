package report_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	a4Width  = 595.28
	a4Height = 841.89
)

type textOp struct {
	page  int
	x, y  float64
	width float64
	align report.Align
	font  report.Font
	text  string
}

type rectOp struct {
	page       int
	x, y, w, h float64
}

// recordingCanvas keeps every drawing call so layouts can be asserted without a PDF.
type recordingCanvas struct {
	pages int
	font  report.Font
	texts []textOp
	rects []rectOp
}

func (c *recordingCanvas) AddPage()                      { c.pages++ }
func (c *recordingCanvas) PageSize() (float64, float64) { return a4Width, a4Height }
func (c *recordingCanvas) SetFont(f report.Font)         { c.font = f }

func (c *recordingCanvas) Text(x, y, width float64, align report.Align, s string) {
	c.texts = append(c.texts, textOp{page: c.pages, x: x, y: y, width: width, align: align, font: c.font, text: s})
}

func (c *recordingCanvas) Rect(x, y, w, h float64) {
	c.rects = append(c.rects, rectOp{page: c.pages, x: x, y: y, w: w, h: h})
}

// WrapLines splits every 100 characters.
func (c *recordingCanvas) WrapLines(s string, width float64) []string {
	var lines []string
	for len(s) > 100 {
		lines = append(lines, s[:100])
		s = s[100:]
	}
	return append(lines, s)
}

func (c *recordingCanvas) Output(w io.Writer) error {
	_, err := io.WriteString(w, fmt.Sprintf("pages=%d", c.pages))
	return err
}

func (c *recordingCanvas) find(text string) (textOp, bool) {
	for _, op := range c.texts {
		if op.text == text {
			return op, true
		}
	}
	return textOp{}, false
}

func (c *recordingCanvas) findPrefix(prefix string) (textOp, bool) {
	for _, op := range c.texts {
		if strings.HasPrefix(op.text, prefix) {
			return op, true
		}
	}
	return textOp{}, false
}

func sampleReport(rows int) domain.MonthlyReport {
	month := domain.NewMonthYear(2025, 11)
	entries := make([]domain.JournalEntry, 0, rows)
	for i := 0; i < rows; i++ {
		entries = append(entries, domain.JournalEntry{
			Date:            day(1 + i%28),
			ObjectOfJourney: "Maintenance",
			TARate:          domain.DefaultTARate,
			Detail:          domain.Journey{TrainNo: "12721", DepTime: "05:05", ArrTime: "15:00", FromStation: "NED", ToStation: "WIRR"},
		})
	}
	user := domain.User{
		FullName: "ravi kumar",
		UserProfile: domain.UserProfile{
			Designation:  "SSE",
			Headquarters: "NED",
			RateOfPay:    decimal.NewFromInt(35400),
			PFNumber:     "PF123",
			BillUnitNo:   "0042",
			Division:     "NED",
		},
	}
	return report.BuildMonthlyReport(user, domain.MonthlyJournal{
		MonthYear:    month,
		DisplayMonth: month.DisplayLabel(),
		Entries:      entries,
	})
}

func TestRenderer_HeaderAndProfile(t *testing.T) {
	canvas := &recordingCanvas{}
	report.NewRenderer(func() report.Canvas { return canvas }).Draw(canvas, sampleReport(1))

	op, ok := canvas.find("G.A 31")
	require.True(t, ok)
	assert.Equal(t, report.AlignRight, op.align)

	op, ok = canvas.find(report.DefaultOrganization)
	require.True(t, ok)
	assert.Equal(t, report.AlignCenter, op.align)
	assert.True(t, op.font.Bold)
	assert.Equal(t, 14.0, op.font.Size)

	op, ok = canvas.find("TRAVELLING ALLOWANCE JOURNAL")
	require.True(t, ok)
	assert.Equal(t, 12.0, op.font.Size)

	name, ok := canvas.find("Name: RAVI KUMAR")
	require.True(t, ok)
	assert.Equal(t, 40.0, name.x)

	month, ok := canvas.find("Month: NOVEMBER-2025")
	require.True(t, ok)
	assert.InDelta(t, a4Width/2+20, month.x, 0.001)
	assert.InDelta(t, name.y+28, month.y, 0.001)

	pf, ok := canvas.find("P.F.No: PF123")
	require.True(t, ok)
	assert.InDelta(t, a4Width/2+20+150, pf.x, 0.001)

	_, ok = canvas.find("Bill Unit No: 0042")
	assert.True(t, ok)
	_, ok = canvas.find("Rate Of Pay: 35400")
	assert.True(t, ok)
}

func TestRenderer_TableIsCenteredWithGroupedHeader(t *testing.T) {
	canvas := &recordingCanvas{}
	report.NewRenderer(func() report.Canvas { return canvas }).Draw(canvas, sampleReport(1))

	assert.Equal(t, 495.0, report.TableWidth())
	startX := (a4Width - report.TableWidth()) / 2

	outer := canvas.rects[0]
	assert.InDelta(t, startX, outer.x, 0.001)
	assert.Equal(t, 495.0, outer.w)
	assert.Equal(t, 32.0, outer.h)

	timeLabel, ok := canvas.find("TIME")
	require.True(t, ok)
	assert.Equal(t, 80.0, timeLabel.width)

	station, ok := canvas.find("STATION")
	require.True(t, ok)
	assert.Equal(t, 90.0, station.width)

	dep, ok := canvas.find("DEP")
	require.True(t, ok)
	assert.Greater(t, dep.y, timeLabel.y)

	for _, label := range []string{"DATE", "TRAIN", "NO.", "ARR", "from", "To", "DAY", "S", "RATE", "OBJECT OF JOURNEY"} {
		_, ok := canvas.find(label)
		assert.True(t, ok, label)
	}

	cell, ok := canvas.find("12721")
	require.True(t, ok)
	assert.Equal(t, 7.5, cell.font.Size)
	assert.Equal(t, report.AlignCenter, cell.align)
}

func TestRenderer_ZeroEntries(t *testing.T) {
	canvas := &recordingCanvas{}
	rep := sampleReport(0)

	var buf bytes.Buffer
	err := report.NewRenderer(func() report.Canvas { return canvas }).Render(rep, &buf)

	require.NoError(t, err)
	assert.Equal(t, 1, canvas.pages)
	assert.Equal(t, "pages=1", buf.String())

	_, ok := canvas.find("Total No. of Working Days = 0 Days")
	assert.True(t, ok)
	_, ok = canvas.find("100% TA Work = 0 Days x 0 = 0 /-")
	assert.True(t, ok)
	_, ok = canvas.find("Total Amount in Words = ZERO RUPEES ONLY.")
	assert.True(t, ok)
}

func TestRenderer_SummaryFollowsTable(t *testing.T) {
	canvas := &recordingCanvas{}
	report.NewRenderer(func() report.Canvas { return canvas }).Draw(canvas, sampleReport(2))

	total, ok := canvas.find("Total No. of Working Days = 2 Days")
	require.True(t, ok)
	assert.True(t, total.font.Bold)
	// table top 180 + header 32 + two rows of 18 + gap 15
	assert.InDelta(t, 180+32+36+15, total.y, 0.001)

	_, ok = canvas.find("100% TA Work = 2 Days x 1000 = 2000 /-")
	assert.True(t, ok)
	_, ok = canvas.find("Total Amount = 2000/-")
	assert.True(t, ok)
	_, ok = canvas.find("Total Amount in Words = TWO THOUSAND RUPEES ONLY.")
	assert.True(t, ok)
}

func TestRenderer_PaginatesRows(t *testing.T) {
	canvas := &recordingCanvas{}
	cur := report.NewRenderer(func() report.Canvas { return canvas }).Draw(canvas, sampleReport(60))

	// rows fit while y+18 <= 741.89: 212, 230, ... 716 gives 29 rows on page one
	firstPageRows, secondPageRows := 0, 0
	for _, op := range canvas.texts {
		if op.text != "12721" {
			continue
		}
		switch op.page {
		case 1:
			firstPageRows++
		case 2:
			secondPageRows++
			assert.GreaterOrEqual(t, op.y, 50.0+5)
		}
	}
	assert.Equal(t, 29, firstPageRows)
	assert.Equal(t, 31, secondPageRows)

	for _, r := range canvas.rects {
		assert.LessOrEqual(t, r.y+r.h, a4Height-100+0.001)
	}

	assert.GreaterOrEqual(t, cur.Page, 2)
	assert.Equal(t, canvas.pages, cur.Page)
}

func TestRenderer_CertificateAndSignatures(t *testing.T) {
	canvas := &recordingCanvas{}
	report.NewRenderer(func() report.Canvas { return canvas }).Draw(canvas, sampleReport(1))

	heading, ok := canvas.find("CERTIFICATE")
	require.True(t, ok)
	assert.True(t, heading.font.Underline)

	bullets := 0
	for _, op := range canvas.texts {
		if strings.HasPrefix(op.text, "• ") {
			bullets++
		}
	}
	assert.Equal(t, 6, bullets)

	// the name is split across wrapped lines only if the statement is long, so look at the joined text
	var joined strings.Builder
	for _, op := range canvas.texts {
		joined.WriteString(op.text)
	}
	assert.Contains(t, joined.String(), "above-mentioned ravi kumar was absent")

	controlling, ok := canvas.find("Controlling Officer")
	require.True(t, ok)
	head, ok := canvas.find("Head Office")
	require.True(t, ok)
	employee, ok := canvas.findPrefix("Signature of Employee")
	require.True(t, ok)

	assert.Equal(t, 40.0, controlling.x)
	assert.InDelta(t, a4Width/2-30, head.x, 0.001)
	assert.InDelta(t, a4Width-40-160, employee.x, 0.001)
	assert.Equal(t, controlling.y, head.y)
	assert.Equal(t, controlling.y, employee.y)
	assert.Greater(t, controlling.y, heading.y)
}

func TestRenderer_WithOrganization(t *testing.T) {
	canvas := &recordingCanvas{}
	report.NewRenderer(func() report.Canvas { return canvas }, report.WithOrganization("EAST COAST RAILWAY")).Draw(canvas, sampleReport(0))

	_, ok := canvas.find("EAST COAST RAILWAY")
	assert.True(t, ok)
	_, ok = canvas.find(report.DefaultOrganization)
	assert.False(t, ok)
}

func TestFPDFCanvas_ProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	err := report.NewRenderer(report.NewPDFCanvas).Render(sampleReport(40), &buf)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestFPDFCanvas_WrapLines(t *testing.T) {
	c := report.NewFPDFCanvas()
	c.AddPage()
	c.SetFont(report.Font{Size: 8})

	lines := c.WrapLines(strings.Repeat("word ", 200), 515.28)

	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.False(t, strings.HasPrefix(l, " "))
	}
	assert.Empty(t, c.WrapLines("   ", 100))
}
