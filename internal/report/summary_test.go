package report_test

import (
	"testing"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_NoEntries(t *testing.T) {
	s := report.Summarize(nil)

	assert.Equal(t, 0, s.PaidDays)
	assert.True(t, s.TARate.IsZero())
	assert.True(t, s.TotalAmount.IsZero())
	assert.Equal(t, "ZERO", s.AmountInWords)
}

func TestSummarize_SamplesFirstPaidRate(t *testing.T) {
	entries := []domain.JournalEntry{
		{TARate: decimal.Zero},
		{TARate: decimal.NewFromInt(1000)},
		{TARate: decimal.NewFromInt(800)},
	}

	s := report.Summarize(entries)

	assert.Equal(t, 2, s.PaidDays)
	assert.True(t, decimal.NewFromInt(1000).Equal(s.TARate))
	assert.True(t, decimal.NewFromInt(2000).Equal(s.TotalAmount))
	assert.Equal(t, "TWO THOUSAND", s.AmountInWords)
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "ONE THOUSAND", report.AmountInWords(decimal.NewFromInt(1000)))
	assert.Equal(t, "ONE THOUSAND", report.AmountInWords(decimal.RequireFromString("1000.75")))
}

func TestBuildMonthlyReport(t *testing.T) {
	month := domain.NewMonthYear(2025, 11)
	journal := domain.MonthlyJournal{
		MonthYear:    month,
		DisplayMonth: month.DisplayLabel(),
		Entries: []domain.JournalEntry{
			{Date: day(5), TARate: domain.DefaultTARate, Detail: domain.Stay{Location: "NED"}},
		},
	}
	user := domain.User{UserID: "u1", FullName: "ravi kumar"}

	rep := report.BuildMonthlyReport(user, journal)

	assert.Equal(t, "NOVEMBER-2025", rep.DisplayMonth)
	assert.Equal(t, month, rep.MonthYear)
	assert.Len(t, rep.Rows, 1)
	assert.Equal(t, 1, rep.Summary.PaidDays)
	assert.Equal(t, "u1", rep.User.UserID)
}
