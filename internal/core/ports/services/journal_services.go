package services

import (
	"context"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetMonth returns the user's journal for a month with its summary.
	GetMonth(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyJournal, domain.JournalSummary, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// AddEntry appends an entry, creating the month's journal on first write.
	AddEntry(ctx context.Context, userID string, req dto.JournalEntryRequest) (*domain.MonthlyJournal, error)

	// UpdateEntry replaces an entry's fields in place.
	UpdateEntry(ctx context.Context, userID string, entryID string, req dto.JournalEntryRequest) (*domain.MonthlyJournal, error)

	// DeleteEntry removes an entry from its journal.
	DeleteEntry(ctx context.Context, userID string, entryID string) (*domain.MonthlyJournal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
