package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTARate is the daily TA rate applied to an entry created without one.
var DefaultTARate = decimal.NewFromInt(1000)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// EntryDetail is the variant part of a JournalEntry: either a Journey or a Stay.
type EntryDetail interface {
	isEntryDetail()
}

// Journey is a day spent travelling by train.
type Journey struct {
	TrainNo     string `json:"trainNo"`
	DepTime     string `json:"depTime"` // HH:MM, optional
	ArrTime     string `json:"arrTime"` // HH:MM, optional
	FromStation string `json:"fromStation"`
	ToStation   string `json:"toStation"`
}

// Stay is a day spent stationary away from headquarters.
type Stay struct {
	Location string `json:"location"`
}

func (Journey) isEntryDetail() {}
func (Stay) isEntryDetail()    {}

// JournalEntry is one calendar day's record inside a MonthlyJournal.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	Date            time.Time       `json:"date"`
	ObjectOfJourney string          `json:"objectOfJourney"`
	TARate          decimal.Decimal `json:"taRate"`
	Detail          EntryDetail     `json:"detail"`
}

// IsStay reports whether the entry is a stay day.
func (e JournalEntry) IsStay() bool {
	_, ok := e.Detail.(Stay)
	return ok
}

// Journey returns the journey detail and true, or a zero Journey and false for a stay.
func (e JournalEntry) Journey() (Journey, bool) {
	j, ok := e.Detail.(Journey)
	return j, ok
}

// Location is where the day started: the departure station of a journey or the stay location.
func (e JournalEntry) Location() string {
	switch d := e.Detail.(type) {
	case Journey:
		return d.FromStation
	case Stay:
		return d.Location
	}
	return ""
}

// IsPaid reports whether the entry carries a non-zero TA rate.
func (e JournalEntry) IsPaid() bool {
	return !e.TARate.IsZero()
}

// Validate checks required-field presence and the time-of-day format.
func (e JournalEntry) Validate() error {
	if e.Date.IsZero() {
		return fieldError("date is required")
	}
	if e.Detail == nil {
		return fieldError("entry must be either a journey or a stay")
	}
	if strings.TrimSpace(e.Location()) == "" && strings.TrimSpace(e.ObjectOfJourney) == "" {
		return fieldError("fromStation or objectOfJourney is required")
	}
	if e.TARate.IsNegative() {
		return fieldError("taRate cannot be negative")
	}
	if j, ok := e.Journey(); ok {
		for _, t := range []string{j.DepTime, j.ArrTime} {
			if t != "" && !timeOfDayPattern.MatchString(t) {
				return fieldError("time " + t + " is not in HH:MM format")
			}
		}
	}
	return nil
}

// EntryUpdate carries the replacement fields for an existing entry.
// A nil TARate keeps the stored rate.
type EntryUpdate struct {
	EntryID         string
	Date            time.Time
	ObjectOfJourney string
	Detail          EntryDetail
	TARate          *decimal.Decimal
}

// Entry returns the update as an entry for validation, using rate when TARate is nil.
func (u EntryUpdate) Entry(rate decimal.Decimal) JournalEntry {
	if u.TARate != nil {
		rate = *u.TARate
	}
	return JournalEntry{
		EntryID:         u.EntryID,
		Date:            u.Date,
		ObjectOfJourney: u.ObjectOfJourney,
		TARate:          rate,
		Detail:          u.Detail,
	}
}

// EntryValidationError describes an entry that failed validation.
type EntryValidationError struct {
	Reason string
}

func (e *EntryValidationError) Error() string {
	return e.Reason
}

func fieldError(reason string) error {
	return &EntryValidationError{Reason: reason}
}
