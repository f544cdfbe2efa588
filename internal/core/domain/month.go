package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MonthYear is a calendar month in a specific year, the natural key of a MonthlyJournal.
type MonthYear time.Time

var upper = cases.Upper(language.English)

// NewMonthYear returns a new MonthYear.
func NewMonthYear(year int, month time.Month) MonthYear {
	return MonthYear(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthYearOf returns the MonthYear in which a date falls.
func MonthYearOf(t time.Time) MonthYear {
	year, month, _ := t.Date()
	return NewMonthYear(year, month)
}

// ParseMonthYear parses a "YYYY-MM" string.
func ParseMonthYear(s string) (MonthYear, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthYear{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return MonthYearOf(t), nil
}

// String returns the canonical "YYYY-MM" key.
func (m MonthYear) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// DisplayLabel returns the printed label, e.g. "NOVEMBER-2025".
func (m MonthYear) DisplayLabel() string {
	return upper.String(fmt.Sprintf("%s-%04d", time.Time(m).Month().String(), time.Time(m).Year()))
}

// IsZero reports if the month is the zero value.
func (m MonthYear) IsZero() bool {
	return time.Time(m).IsZero()
}

// MarshalJSON writes the canonical key.
func (m MonthYear) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON reads a "YYYY-MM" key.
func (m *MonthYear) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}
	parsed, err := ParseMonthYear(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan reads the key back from a text column.
func (m *MonthYear) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into MonthYear", value)
	}
	parsed, err := ParseMonthYear(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value stores the month as its "YYYY-MM" key.
func (m MonthYear) Value() (driver.Value, error) {
	return m.String(), nil
}

var calendarDateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// ParseCalendarDate accepts "YYYY-MM-DD" or an RFC 3339 timestamp and returns midnight UTC of that day.
func ParseCalendarDate(s string) (time.Time, error) {
	for _, layout := range calendarDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			year, month, day := t.Date()
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}
