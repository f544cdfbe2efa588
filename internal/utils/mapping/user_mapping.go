package mapping

import (
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:            d.UserID,
		FullName:          d.FullName,
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		Designation:       d.Designation,
		Headquarters:      d.Headquarters,
		RateOfPay:         nullableAmount(d.RateOfPay),
		Rate:              nullableAmount(d.Rate),
		PFNumber:          d.PFNumber,
		BillUnitNo:        d.BillUnitNo,
		Division:          d.Division,
		RailwayZone:       d.RailwayZone,
		IsProfileComplete: d.IsProfileComplete,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		FullName:     m.FullName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		UserProfile: domain.UserProfile{
			Designation:  m.Designation,
			Headquarters: m.Headquarters,
			RateOfPay:    m.RateOfPay.Decimal,
			Rate:         m.Rate.Decimal,
			PFNumber:     m.PFNumber,
			BillUnitNo:   m.BillUnitNo,
			Division:     m.Division,
			RailwayZone:  m.RailwayZone,
		},
		IsProfileComplete: m.IsProfileComplete,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

func nullableAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: !d.IsZero()}
}
