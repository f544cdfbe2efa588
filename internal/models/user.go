package models

import (
	"github.com/shopspring/decimal"
)

// User is a row of the users table.
// Profile amounts are NULL until the profile is filled in.
type User struct {
	UserID            string              `db:"user_id"`
	FullName          string              `db:"full_name"`
	Email             string              `db:"email"`
	PasswordHash      string              `db:"password_hash"`
	Designation       string              `db:"designation"`
	Headquarters      string              `db:"headquarters"`
	RateOfPay         decimal.NullDecimal `db:"rate_of_pay"`
	Rate              decimal.NullDecimal `db:"rate"`
	PFNumber          string              `db:"pf_number"`
	BillUnitNo        string              `db:"bill_unit_no"`
	Division          string              `db:"division"`
	RailwayZone       string              `db:"railway_zone"`
	IsProfileComplete bool                `db:"is_profile_complete"`
	AuditFields
}
