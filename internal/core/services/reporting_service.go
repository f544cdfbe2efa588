package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/report"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	userRepo    portsrepo.UserReader
	journalRepo portsrepo.JournalReader
	renderer    *report.Renderer
}

// NewReportingService creates a new reporting service drawing with renderer.
func NewReportingService(userRepo portsrepo.UserReader, journalRepo portsrepo.JournalReader, renderer *report.Renderer) portssvc.ReportingService {
	return &reportingService{
		userRepo:    userRepo,
		journalRepo: journalRepo,
		renderer:    renderer,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) MonthlyReport(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyReport, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user for report: %w", err)
	}

	journal, err := s.journalRepo.FindJournalByMonth(ctx, userID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrJournalNotFound
		}
		return nil, fmt.Errorf("failed to load journal for report: %w", err)
	}

	rep := report.BuildMonthlyReport(*user, *journal)
	return &rep, nil
}

// GenerateJournalPDF renders the whole document before returning, so a failure leaves nothing written.
func (s *reportingService) GenerateJournalPDF(ctx context.Context, userID string, month domain.MonthYear) ([]byte, error) {
	rep, err := s.MonthlyReport(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(*rep, &buf); err != nil {
		s.LogError(ctx, err, "Failed to render journal PDF",
			slog.String("user_id", userID), slog.String("month_year", month.String()))
		return nil, fmt.Errorf("failed to render journal pdf: %w", err)
	}

	s.LogInfo(ctx, "Journal PDF generated",
		slog.String("month_year", month.String()), slog.Int("rows", len(rep.Rows)), slog.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
