package dto

import (
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterUserRequest defines the data needed to create an account.
type RegisterUserRequest struct {
	FullName string `json:"fullName" binding:"required,min=3" example:"Ravi Kumar"`
	Email    string `json:"email" binding:"required,email" example:"ravi@example.com"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest holds email and password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the service particulars. Omitted fields keep their stored value.
type UpdateProfileRequest struct {
	PFNumber     *string          `json:"pfNumber"`
	BillUnitNo   *string          `json:"billUnitNo"`
	Designation  *string          `json:"designation"`
	Headquarters *string          `json:"headquarters"`
	Division     *string          `json:"division"`
	RateOfPay    *decimal.Decimal `json:"rateOfPay" swaggertype:"number"`
	Rate         *decimal.Decimal `json:"rate" swaggertype:"number"`
	RailwayZone  *string          `json:"railwayZone"`
}

// Apply returns profile with the request's fields written over it.
func (r UpdateProfileRequest) Apply(profile domain.UserProfile) domain.UserProfile {
	setString(&profile.PFNumber, r.PFNumber)
	setString(&profile.BillUnitNo, r.BillUnitNo)
	setString(&profile.Designation, r.Designation)
	setString(&profile.Headquarters, r.Headquarters)
	setString(&profile.Division, r.Division)
	setString(&profile.RailwayZone, r.RailwayZone)
	if r.RateOfPay != nil {
		profile.RateOfPay = *r.RateOfPay
	}
	if r.Rate != nil {
		profile.Rate = *r.Rate
	}
	return profile
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// UserResponse is the user document returned to clients. The password hash is never included.
type UserResponse struct {
	UserID            string          `json:"_id"`
	FullName          string          `json:"fullName"`
	Email             string          `json:"email"`
	Designation       string          `json:"designation"`
	Headquarters      string          `json:"headquarters"`
	RateOfPay         decimal.Decimal `json:"rateOfPay" swaggertype:"number"`
	Rate              decimal.Decimal `json:"rate" swaggertype:"number"`
	PFNumber          string          `json:"pfNumber"`
	BillUnitNo        string          `json:"billUnitNo"`
	Division          string          `json:"division"`
	RailwayZone       string          `json:"railwayZone"`
	IsProfileComplete bool            `json:"isProfileComplete"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// LoginUser is the user summary sent with a token.
type LoginUser struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	IsProfileComplete bool   `json:"isProfileComplete"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    UserResponse `json:"data"`
}

// ProfileUpdateResponse is returned after a profile update.
type ProfileUpdateResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// StatusResponse is the {status, message} body used for failures.
type StatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:            u.UserID,
		FullName:          u.FullName,
		Email:             u.Email,
		Designation:       u.Designation,
		Headquarters:      u.Headquarters,
		RateOfPay:         u.RateOfPay,
		Rate:              u.Rate,
		PFNumber:          u.PFNumber,
		BillUnitNo:        u.BillUnitNo,
		Division:          u.Division,
		RailwayZone:       u.RailwayZone,
		IsProfileComplete: u.IsProfileComplete,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.LastUpdatedAt,
	}
}

// ToLoginUser builds the summary returned with a login token.
func ToLoginUser(u *domain.User) LoginUser {
	return LoginUser{
		ID:                u.UserID,
		Name:              u.FullName,
		Email:             u.Email,
		IsProfileComplete: u.IsProfileComplete,
	}
}
