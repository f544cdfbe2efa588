package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// journalService maintains the monthly TA journals.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	dailyRate   decimal.Decimal
	now         func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithDailyRate sets the rate given to entries created without one and used for month summaries.
func WithDailyRate(rate decimal.Decimal) JournalServiceOption {
	return func(s *journalService) {
		s.dailyRate = rate
	}
}

// WithClock replaces time.Now for audit timestamps.
func WithClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		dailyRate:   domain.DefaultTARate,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func entryError(err error) error {
	var vErr *domain.EntryValidationError
	if errors.As(err, &vErr) {
		return apperrors.Validationf("%s", vErr.Reason)
	}
	return err
}

// AddEntry appends to the journal of the month containing the entry date.
func (s *journalService) AddEntry(ctx context.Context, userID string, req dto.JournalEntryRequest) (*domain.MonthlyJournal, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, apperrors.Validationf("invalid date %q", req.Date)
	}

	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		Date:            date,
		ObjectOfJourney: req.ObjectOfJourney,
		TARate:          s.dailyRate,
		Detail:          req.Detail(),
	}
	if req.TARate != nil {
		entry.TARate = *req.TARate
	}
	if err := entry.Validate(); err != nil {
		return nil, entryError(err)
	}

	month := domain.MonthYearOf(date)
	now := s.now().UTC()
	draft := domain.MonthlyJournal{
		JournalID:    uuid.NewString(),
		UserID:       userID,
		MonthYear:    month,
		DisplayMonth: month.DisplayLabel(),
		Status:       domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	journal, err := s.journalRepo.EnsureJournalAndAppendEntry(ctx, draft, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append journal entry",
			slog.String("user_id", userID), slog.String("month_year", month.String()))
		return nil, fmt.Errorf("failed to add entry in service: %w", err)
	}

	s.LogInfo(ctx, "Journal entry added",
		slog.String("journal_id", journal.JournalID), slog.String("entry_id", entry.EntryID))
	return journal, nil
}

func (s *journalService) GetMonth(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyJournal, domain.JournalSummary, error) {
	journal, err := s.journalRepo.FindJournalByMonth(ctx, userID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.JournalSummary{}, apperrors.ErrJournalNotFound
		}
		return nil, domain.JournalSummary{}, fmt.Errorf("failed to get journal for %s: %w", month, err)
	}
	return journal, journal.Summarize(s.dailyRate), nil
}

// UpdateEntry rewrites the entry in place; it stays in its journal even if the new date is in another month.
func (s *journalService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.JournalEntryRequest) (*domain.MonthlyJournal, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, apperrors.Validationf("invalid date %q", req.Date)
	}

	update := domain.EntryUpdate{
		EntryID:         entryID,
		Date:            date,
		ObjectOfJourney: req.ObjectOfJourney,
		Detail:          req.Detail(),
		TARate:          req.TARate,
	}
	if err := update.Entry(decimal.Zero).Validate(); err != nil {
		return nil, entryError(err)
	}

	journal, err := s.journalRepo.UpdateEntry(ctx, userID, update)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry in service: %w", err)
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	return journal, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, userID string, entryID string) (*domain.MonthlyJournal, error) {
	journal, err := s.journalRepo.DeleteEntry(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to delete entry in service: %w", err)
	}

	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return journal, nil
}
