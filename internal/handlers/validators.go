package handlers

import (
	"regexp"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// registerValidators adds the binding tags used by the request DTOs:
// calendardate (YYYY-MM-DD or RFC 3339), timeofday (HH:MM) and monthyear (YYYY-MM).
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCalendarDate(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return timeOfDayPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("monthyear", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMonthYear(fl.Field().String())
		return err == nil
	})
}

// monthYearURI binds the :monthYear path segment.
type monthYearURI struct {
	MonthYear string `uri:"monthYear" binding:"required,monthyear"`
}

func (u monthYearURI) month() domain.MonthYear {
	m, _ := domain.ParseMonthYear(u.MonthYear)
	return m
}
