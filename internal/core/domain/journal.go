package domain

import "github.com/shopspring/decimal"

// JournalStatus indicates the state of a monthly journal.
type JournalStatus string

const (
	Draft     JournalStatus = "Draft"
	Submitted JournalStatus = "Submitted"
)

// MonthlyJournal is one user's TA journal for one calendar month.
// There is at most one per (UserID, MonthYear).
type MonthlyJournal struct {
	JournalID    string         `json:"journalID"`
	UserID       string         `json:"userID"`
	MonthYear    MonthYear      `json:"monthYear"`
	DisplayMonth string         `json:"displayMonth"`
	Entries      []JournalEntry `json:"entries"` // append order
	Status       JournalStatus  `json:"status"`
	AuditFields
}

// JournalSummary holds the derived figures shown with a month's journal.
type JournalSummary struct {
	TotalWorkingDays int             `json:"totalWorkingDays"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	RateApplied      decimal.Decimal `json:"rateApplied"`
	ClaimedAmount    decimal.Decimal `json:"claimedAmount"`
}

// EntryByID returns the entry with the given id.
func (j *MonthlyJournal) EntryByID(entryID string) (JournalEntry, bool) {
	for _, e := range j.Entries {
		if e.EntryID == entryID {
			return e, true
		}
	}
	return JournalEntry{}, false
}

// Summarize counts every entry as a working day at dailyRate.
// ClaimedAmount is the sum of each entry's own rate.
func (j *MonthlyJournal) Summarize(dailyRate decimal.Decimal) JournalSummary {
	days := len(j.Entries)
	claimed := decimal.Zero
	for _, e := range j.Entries {
		claimed = claimed.Add(e.TARate)
	}
	return JournalSummary{
		TotalWorkingDays: days,
		TotalAmount:      dailyRate.Mul(decimal.NewFromInt(int64(days))),
		RateApplied:      dailyRate,
		ClaimedAmount:    claimed,
	}
}
