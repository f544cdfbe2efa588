package domain

import (
	"github.com/shopspring/decimal"
)

// ReportRow is one printed line of the GA 31 journal table. Every cell is final text.
type ReportRow struct {
	Date    string `json:"date"`
	TrainNo string `json:"trainNo"`
	Dep     string `json:"dep"`
	Arr     string `json:"arr"`
	From    string `json:"from"`
	To      string `json:"to"`
	Days    string `json:"days"`
	Rate    string `json:"rate"`
	Object  string `json:"object"`
}

// ReportSummary holds the totals printed below the GA 31 table.
type ReportSummary struct {
	PaidDays      int             `json:"paidDays"`
	TARate        decimal.Decimal `json:"taRate"` // first non-zero entry rate
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AmountInWords string          `json:"amountInWords"`
}

// MonthlyReport is everything the GA 31 renderer needs for one month.
type MonthlyReport struct {
	User         User
	MonthYear    MonthYear
	DisplayMonth string
	Rows         []ReportRow
	Summary      ReportSummary
}
