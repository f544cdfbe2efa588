package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportingFixture(t *testing.T) (*MockUserRepository, *MockJournalRepository, domain.MonthYear) {
	t.Helper()
	userRepo := new(MockUserRepository)
	journalRepo := new(MockJournalRepository)
	t.Cleanup(func() {
		userRepo.AssertExpectations(t)
		journalRepo.AssertExpectations(t)
	})
	return userRepo, journalRepo, domain.NewMonthYear(2025, time.November)
}

func novemberJournal(month domain.MonthYear) *domain.MonthlyJournal {
	return &domain.MonthlyJournal{
		MonthYear:    month,
		DisplayMonth: month.DisplayLabel(),
		Entries: []domain.JournalEntry{
			{
				Date:            time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
				ObjectOfJourney: "Maintenance",
				TARate:          decimal.NewFromInt(1000),
				Detail:          domain.Journey{TrainNo: "12721", FromStation: "NED", ToStation: "WIRR"},
			},
			{
				Date:            time.Date(2025, time.November, 6, 0, 0, 0, 0, time.UTC),
				ObjectOfJourney: "Stay",
				TARate:          decimal.NewFromInt(1000),
				Detail:          domain.Stay{Location: "WIRR"},
			},
		},
	}
}

func TestReportingService_MonthlyReport(t *testing.T) {
	ctx := context.Background()
	userRepo, journalRepo, month := reportingFixture(t)
	user := &domain.User{UserID: "u1", FullName: "ravi kumar"}
	userRepo.On("FindUserByID", ctx, "u1").Return(user, nil).Once()
	journalRepo.On("FindJournalByMonth", ctx, "u1", month).Return(novemberJournal(month), nil).Once()

	svc := services.NewReportingService(userRepo, journalRepo, report.NewRenderer(report.NewPDFCanvas))
	rep, err := svc.MonthlyReport(ctx, "u1", month)

	require.NoError(t, err)
	assert.Equal(t, "NOVEMBER-2025", rep.DisplayMonth)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 2, rep.Summary.PaidDays)
	assert.True(t, rep.Summary.TotalAmount.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "TWO THOUSAND", rep.Summary.AmountInWords)
}

func TestReportingService_GenerateJournalPDF(t *testing.T) {
	ctx := context.Background()
	userRepo, journalRepo, month := reportingFixture(t)
	userRepo.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1", FullName: "ravi kumar"}, nil).Once()
	journalRepo.On("FindJournalByMonth", ctx, "u1", month).Return(novemberJournal(month), nil).Once()

	svc := services.NewReportingService(userRepo, journalRepo, report.NewRenderer(report.NewPDFCanvas))
	pdf, err := svc.GenerateJournalPDF(ctx, "u1", month)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestReportingService_MissingData(t *testing.T) {
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		userRepo, journalRepo, month := reportingFixture(t)
		userRepo.On("FindUserByID", ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()

		svc := services.NewReportingService(userRepo, journalRepo, report.NewRenderer(report.NewPDFCanvas))
		pdf, err := svc.GenerateJournalPDF(ctx, "u1", month)

		assert.Nil(t, pdf)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("journal not found", func(t *testing.T) {
		userRepo, journalRepo, month := reportingFixture(t)
		userRepo.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1"}, nil).Once()
		journalRepo.On("FindJournalByMonth", ctx, "u1", month).Return(nil, apperrors.ErrNotFound).Once()

		svc := services.NewReportingService(userRepo, journalRepo, report.NewRenderer(report.NewPDFCanvas))
		pdf, err := svc.GenerateJournalPDF(ctx, "u1", month)

		assert.Nil(t, pdf)
		assert.ErrorIs(t, err, apperrors.ErrJournalNotFound)
	})
}
