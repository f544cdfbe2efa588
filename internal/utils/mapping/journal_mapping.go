package mapping

import (
	"database/sql"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/models"
)

// ToModelJournal converts a domain MonthlyJournal to a model MonthlyJournal
func ToModelJournal(d domain.MonthlyJournal) models.MonthlyJournal {
	return models.MonthlyJournal{
		JournalID:    d.JournalID,
		UserID:       d.UserID,
		MonthYear:    d.MonthYear.String(),
		DisplayMonth: d.DisplayMonth,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model MonthlyJournal and its entry rows to a domain MonthlyJournal.
// entries must already be in seq order.
func ToDomainJournal(m models.MonthlyJournal, entries []models.JournalEntry) (domain.MonthlyJournal, error) {
	month, err := domain.ParseMonthYear(m.MonthYear)
	if err != nil {
		return domain.MonthlyJournal{}, err
	}
	d := domain.MonthlyJournal{
		JournalID:    m.JournalID,
		UserID:       m.UserID,
		MonthYear:    month,
		DisplayMonth: m.DisplayMonth,
		Entries:      make([]domain.JournalEntry, len(entries)),
		Status:       domain.JournalStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	for i, e := range entries {
		d.Entries[i] = ToDomainEntry(e)
	}
	return d, nil
}

// ToModelEntry flattens a domain entry into its row shape.
func ToModelEntry(d domain.JournalEntry, journalID string) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:         d.EntryID,
		JournalID:       journalID,
		EntryDate:       d.Date,
		ObjectOfJourney: d.ObjectOfJourney,
		TARate:          d.TARate,
	}
	switch v := d.Detail.(type) {
	case domain.Journey:
		m.TrainNo = v.TrainNo
		m.DepTime = nullString(v.DepTime)
		m.ArrTime = nullString(v.ArrTime)
		m.FromStation = v.FromStation
		m.ToStation = v.ToStation
	case domain.Stay:
		m.IsStay = true
		m.FromStation = v.Location
	}
	return m
}

// ToDomainEntry rebuilds the Journey or Stay variant from a flat row.
// A row flagged as a stay is always a Stay whatever its train columns hold.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:         m.EntryID,
		Date:            m.EntryDate.UTC(),
		ObjectOfJourney: m.ObjectOfJourney,
		TARate:          m.TARate,
	}
	if m.IsStay {
		d.Detail = domain.Stay{Location: m.FromStation}
		return d
	}
	d.Detail = domain.Journey{
		TrainNo:     m.TrainNo,
		DepTime:     m.DepTime.String,
		ArrTime:     m.ArrTime.String,
		FromStation: m.FromStation,
		ToStation:   m.ToStation,
	}
	return d
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
