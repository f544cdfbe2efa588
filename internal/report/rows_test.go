package report_test

import (
	"testing"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildRow_Journey(t *testing.T) {
	entry := domain.JournalEntry{
		EntryID:         "e1",
		Date:            day(5),
		ObjectOfJourney: "Maintenance",
		TARate:          domain.DefaultTARate,
		Detail: domain.Journey{
			TrainNo:     "12721",
			DepTime:     "05:05",
			ArrTime:     "15:00",
			FromStation: "NED",
			ToStation:   "WIRR",
		},
	}

	assert.Equal(t, domain.ReportRow{
		Date:    "05-11-25",
		TrainNo: "12721",
		Dep:     "05:05",
		Arr:     "15:00",
		From:    "NED",
		To:      "WIRR",
		Days:    "1",
		Rate:    "1000",
		Object:  "Maintenance",
	}, report.BuildRow(entry))
}

func TestBuildRow_Stay(t *testing.T) {
	entry := domain.JournalEntry{
		EntryID:         "e2",
		Date:            day(6),
		ObjectOfJourney: "Site visit",
		TARate:          domain.DefaultTARate,
		Detail:          domain.Stay{Location: "NED"},
	}

	assert.Equal(t, domain.ReportRow{
		Date:    "06-11-25",
		TrainNo: "",
		Dep:     "Stay",
		Arr:     "At",
		From:    "NED",
		To:      "",
		Days:    "1",
		Rate:    "1000",
		Object:  "Site visit",
	}, report.BuildRow(entry))
}

func TestBuildRow_JourneyNeverUsesStayMarkers(t *testing.T) {
	entry := domain.JournalEntry{
		Date:   day(7),
		Detail: domain.Journey{FromStation: "Stay", ToStation: "At"},
	}

	row := report.BuildRow(entry)

	assert.Equal(t, "", row.Dep)
	assert.Equal(t, "", row.Arr)
	assert.Equal(t, "Stay", row.From)
	assert.Equal(t, "At", row.To)
}

func TestBuildRow_UnpaidEntry(t *testing.T) {
	row := report.BuildRow(domain.JournalEntry{
		Date:   day(8),
		TARate: decimal.Zero,
		Detail: domain.Journey{FromStation: "NED"},
	})

	assert.Equal(t, "-", row.Days)
	assert.Equal(t, "-", row.Rate)
}

func TestBuildRow_FractionalRate(t *testing.T) {
	row := report.BuildRow(domain.JournalEntry{
		Date:   day(9),
		TARate: decimal.RequireFromString("612.50"),
		Detail: domain.Stay{Location: "KZJ"},
	})

	assert.Equal(t, "1", row.Days)
	assert.Equal(t, "612.5", row.Rate)
}

func TestBuildRows_PreservesOrder(t *testing.T) {
	entries := []domain.JournalEntry{
		{Date: day(20), Detail: domain.Stay{Location: "A"}},
		{Date: day(3), Detail: domain.Stay{Location: "B"}},
	}

	rows := report.BuildRows(entries)

	assert.Len(t, rows, 2)
	assert.Equal(t, "20-11-25", rows[0].Date)
	assert.Equal(t, "03-11-25", rows[1].Date)
	assert.Empty(t, report.BuildRows(nil))
}
