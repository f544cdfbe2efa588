package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyJournal is a row of the monthly_journals table, unique on (user_id, month_year).
type MonthlyJournal struct {
	JournalID    string `db:"journal_id"`
	UserID       string `db:"user_id"`
	MonthYear    string `db:"month_year"` // YYYY-MM
	DisplayMonth string `db:"display_month"`
	Status       string `db:"status"`
	AuditFields
}

// JournalEntry is a row of the journal_entries table in its flat shape.
// Stay rows keep the location in FromStation and leave the train columns empty.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`
	JournalID       string          `db:"journal_id"`
	Seq             int64           `db:"seq"`
	EntryDate       time.Time       `db:"entry_date"`
	TrainNo         string          `db:"train_no"`
	DepTime         sql.NullString  `db:"dep_time"`
	ArrTime         sql.NullString  `db:"arr_time"`
	FromStation     string          `db:"from_station"`
	ToStation       string          `db:"to_station"`
	ObjectOfJourney string          `db:"object_of_journey"`
	IsStay          bool            `db:"is_stay"`
	TARate          decimal.Decimal `db:"ta_rate"`
}
