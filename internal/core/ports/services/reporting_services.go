package services

import (
	"context"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
)

// ReportingService defines operations for generating GA 31 reports
type ReportingService interface {
	// MonthlyReport builds the row and summary data for a user's month.
	MonthlyReport(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyReport, error)

	// GenerateJournalPDF renders the month as a GA 31 PDF document.
	GenerateJournalPDF(ctx context.Context, userID string, month domain.MonthYear) ([]byte, error)
}
