package dto

import (
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// taRate and totals are numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// JournalEntryRequest is the flat entry shape accepted by add and update.
// For a stay, fromStation carries the location and the train fields are ignored.
type JournalEntryRequest struct {
	Date            string           `json:"date" binding:"required,calendardate" example:"2025-11-05"`
	TrainNo         string           `json:"trainNo" example:"12721"`
	DepTime         *string          `json:"depTime" binding:"omitempty,timeofday" example:"05:05"`
	ArrTime         *string          `json:"arrTime" binding:"omitempty,timeofday" example:"15:00"`
	FromStation     string           `json:"fromStation" example:"NED"`
	ToStation       string           `json:"toStation" example:"WIRR"`
	ObjectOfJourney string           `json:"objectOfJourney" example:"Maintenance"`
	IsStay          bool             `json:"isStay"`
	TARate          *decimal.Decimal `json:"taRate,omitempty" swaggertype:"number" example:"1000"`
}

// ParsedDate returns the entry date as midnight UTC.
func (r JournalEntryRequest) ParsedDate() (time.Time, error) {
	return domain.ParseCalendarDate(r.Date)
}

// Detail converts the flat fields into a Journey or a Stay.
func (r JournalEntryRequest) Detail() domain.EntryDetail {
	if r.IsStay {
		return domain.Stay{Location: r.FromStation}
	}
	return domain.Journey{
		TrainNo:     r.TrainNo,
		DepTime:     deref(r.DepTime),
		ArrTime:     deref(r.ArrTime),
		FromStation: r.FromStation,
		ToStation:   r.ToStation,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// JournalEntryResponse is the flat entry shape returned to clients.
type JournalEntryResponse struct {
	EntryID         string          `json:"_id"`
	Date            time.Time       `json:"date"`
	TrainNo         string          `json:"trainNo"`
	DepTime         *string         `json:"depTime"`
	ArrTime         *string         `json:"arrTime"`
	FromStation     string          `json:"fromStation"`
	ToStation       string          `json:"toStation"`
	ObjectOfJourney string          `json:"objectOfJourney"`
	IsStay          bool            `json:"isStay"`
	TARate          decimal.Decimal `json:"taRate" swaggertype:"number"`
}

// JournalResponse is a monthly journal with its entries.
type JournalResponse struct {
	JournalID    string                 `json:"_id"`
	UserID       string                 `json:"userId"`
	MonthYear    string                 `json:"monthYear" example:"2025-11"`
	DisplayMonth string                 `json:"displayMonth" example:"NOVEMBER-2025"`
	Entries      []JournalEntryResponse `json:"entries"`
	Status       string                 `json:"status" example:"Draft"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// JournalSummaryResponse carries the derived monthly figures.
type JournalSummaryResponse struct {
	TotalWorkingDays int             `json:"totalWorkingDays"`
	TotalAmount      decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	RateApplied      decimal.Decimal `json:"rateApplied" swaggertype:"number"`
	ClaimedAmount    decimal.Decimal `json:"claimedAmount" swaggertype:"number"`
}

// AddEntryResponse is returned after an entry is appended.
type AddEntryResponse struct {
	Message string          `json:"message"`
	Journal JournalResponse `json:"journal"`
}

// JournalMonthResponse is returned for a month lookup.
type JournalMonthResponse struct {
	Journal JournalResponse        `json:"journal"`
	Summary JournalSummaryResponse `json:"summary"`
}

// EntryMutationResponse is returned by update and delete.
type EntryMutationResponse struct {
	Status  bool             `json:"status"`
	Message string           `json:"message"`
	Data    *JournalResponse `json:"data,omitempty"`
}

// MessageResponse is a bare message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToJournalEntryResponse flattens an entry for the wire.
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:         e.EntryID,
		Date:            e.Date,
		ObjectOfJourney: e.ObjectOfJourney,
		TARate:          e.TARate,
	}
	switch d := e.Detail.(type) {
	case domain.Journey:
		resp.TrainNo = d.TrainNo
		resp.DepTime = optional(d.DepTime)
		resp.ArrTime = optional(d.ArrTime)
		resp.FromStation = d.FromStation
		resp.ToStation = d.ToStation
	case domain.Stay:
		resp.IsStay = true
		resp.FromStation = d.Location
	}
	return resp
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToJournalResponse converts a domain.MonthlyJournal to JournalResponse DTO.
func ToJournalResponse(j *domain.MonthlyJournal) JournalResponse {
	entries := make([]JournalEntryResponse, len(j.Entries))
	for i, e := range j.Entries {
		entries[i] = ToJournalEntryResponse(e)
	}
	return JournalResponse{
		JournalID:    j.JournalID,
		UserID:       j.UserID,
		MonthYear:    j.MonthYear.String(),
		DisplayMonth: j.DisplayMonth,
		Entries:      entries,
		Status:       string(j.Status),
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.LastUpdatedAt,
	}
}

// ToJournalSummaryResponse converts a domain.JournalSummary.
func ToJournalSummaryResponse(s domain.JournalSummary) JournalSummaryResponse {
	return JournalSummaryResponse{
		TotalWorkingDays: s.TotalWorkingDays,
		TotalAmount:      s.TotalAmount,
		RateApplied:      s.RateApplied,
		ClaimedAmount:    s.ClaimedAmount,
	}
}
