package report

import (
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.English)

// Summarize computes the printed totals: paid days times the first non-zero entry rate.
// Entries with differing rates are not summed individually.
func Summarize(entries []domain.JournalEntry) domain.ReportSummary {
	paidDays := 0
	rate := decimal.Zero
	for _, e := range entries {
		if !e.IsPaid() {
			continue
		}
		paidDays++
		if rate.IsZero() {
			rate = e.TARate
		}
	}

	total := rate.Mul(decimal.NewFromInt(int64(paidDays)))
	return domain.ReportSummary{
		PaidDays:      paidDays,
		TARate:        rate,
		TotalAmount:   total,
		AmountInWords: AmountInWords(total),
	}
}

// AmountInWords spells the whole-rupee part of amount in upper case, e.g. "TWO THOUSAND".
func AmountInWords(amount decimal.Decimal) string {
	return upper.String(num2words.Convert(int(amount.IntPart())))
}

// BuildMonthlyReport assembles the renderer input from a journal and its owner.
func BuildMonthlyReport(user domain.User, journal domain.MonthlyJournal) domain.MonthlyReport {
	return domain.MonthlyReport{
		User:         user,
		MonthYear:    journal.MonthYear,
		DisplayMonth: journal.DisplayMonth,
		Rows:         BuildRows(journal.Entries),
		Summary:      Summarize(journal.Entries),
	}
}
