package repositories

import (
	"context"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
)

// JournalReader defines read operations for monthly journals
type JournalReader interface {
	// FindJournalByMonth retrieves a user's journal for one month, entries in append order.
	FindJournalByMonth(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyJournal, error)
}

// JournalWriter defines write operations on journal entries.
// Every method is a single atomic operation against one journal.
type JournalWriter interface {
	// EnsureJournalAndAppendEntry creates the (UserID, MonthYear) journal described by draft
	// when none exists, then appends entry to it. An existing journal keeps its id and displayMonth.
	EnsureJournalAndAppendEntry(ctx context.Context, draft domain.MonthlyJournal, entry domain.JournalEntry) (*domain.MonthlyJournal, error)

	// UpdateEntry replaces the fields of the user's entry in place.
	UpdateEntry(ctx context.Context, userID string, update domain.EntryUpdate) (*domain.MonthlyJournal, error)

	// DeleteEntry removes the user's entry and returns the owning journal.
	DeleteEntry(ctx context.Context, userID string, entryID string) (*domain.MonthlyJournal, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
