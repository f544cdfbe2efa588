package domain

import "github.com/shopspring/decimal"

// User represents a railway employee who claims TA.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	UserProfile
	IsProfileComplete bool `json:"isProfileComplete"`
	AuditFields
}

// UserProfile holds the service particulars printed on the GA 31 form.
type UserProfile struct {
	Designation  string          `json:"designation"`
	Headquarters string          `json:"headquarters"`
	RateOfPay    decimal.Decimal `json:"rateOfPay"`
	Rate         decimal.Decimal `json:"rate"` // per-day TA rate
	PFNumber     string          `json:"pfNumber"`
	BillUnitNo   string          `json:"billUnitNo"`
	Division     string          `json:"division"`
	RailwayZone  string          `json:"railwayZone"`
}
