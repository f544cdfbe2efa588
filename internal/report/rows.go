// Package report turns a month's journal into the GA 31 Travelling Allowance claim form.
package report

import (
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
)

const (
	rowDateLayout = "02-01-06"
	stayDepMarker = "Stay"
	stayArrMarker = "At"
	unpaidMarker  = "-"
)

// BuildRow converts one entry into its printed table row.
// Stay entries blank the train and destination cells and print "Stay"/"At" in the time cells.
func BuildRow(e domain.JournalEntry) domain.ReportRow {
	row := domain.ReportRow{
		Date:   e.Date.Format(rowDateLayout),
		From:   e.Location(),
		Object: e.ObjectOfJourney,
		Days:   unpaidMarker,
		Rate:   unpaidMarker,
	}

	if e.IsStay() {
		row.Dep = stayDepMarker
		row.Arr = stayArrMarker
	} else if j, ok := e.Journey(); ok {
		row.TrainNo = j.TrainNo
		row.Dep = j.DepTime
		row.Arr = j.ArrTime
		row.To = j.ToStation
	}

	if e.IsPaid() {
		row.Days = "1"
		row.Rate = e.TARate.String()
	}
	return row
}

// BuildRows converts entries in order.
func BuildRows(entries []domain.JournalEntry) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, BuildRow(e))
	}
	return rows
}
