package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/models"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const journalColumns = `journal_id, user_id, month_year, display_month, status, created_at, last_updated_at`

const entryColumns = `entry_id, journal_id, seq, entry_date, train_no, dep_time, arr_time,
	from_station, to_station, object_of_journey, is_stay, ta_rate`

type SQLiteJournalRepository struct {
	BaseRepository
}

func newSQLiteJournalRepository(db *sqlx.DB) portsrepo.JournalRepositoryFacade {
	return &SQLiteJournalRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*SQLiteJournalRepository)(nil)

func (r *SQLiteJournalRepository) FindJournalByMonth(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyJournal, error) {
	return loadJournal(ctx, r.DB, "user_id = ? AND month_year = ?", userID, month.String())
}

// EnsureJournalAndAppendEntry inserts the journal unless (user_id, month_year) exists, re-selects it and appends the entry.
func (r *SQLiteJournalRepository) EnsureJournalAndAppendEntry(ctx context.Context, draft domain.MonthlyJournal, entry domain.JournalEntry) (*domain.MonthlyJournal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	if draft.JournalID == "" {
		draft.JournalID = uuid.NewString()
	}
	j := mapping.ToModelJournal(draft)

	insertJournal := `INSERT INTO monthly_journals (` + journalColumns + `)
		VALUES (:journal_id, :user_id, :month_year, :display_month, :status, :created_at, :last_updated_at)
		ON CONFLICT (user_id, month_year) DO NOTHING`
	if _, err := tx.NamedExecContext(ctx, insertJournal, j); err != nil {
		return nil, fmt.Errorf("failed to ensure journal for %s/%s: %w", j.UserID, j.MonthYear, err)
	}

	var journalID string
	if err := tx.GetContext(ctx, &journalID,
		`SELECT journal_id FROM monthly_journals WHERE user_id = ? AND month_year = ?`, j.UserID, j.MonthYear,
	); err != nil {
		return nil, fmt.Errorf("failed to re-select journal for %s/%s: %w", j.UserID, j.MonthYear, err)
	}

	e := mapping.ToModelEntry(entry, journalID)
	insertEntry := `INSERT INTO journal_entries (entry_id, journal_id, entry_date, train_no, dep_time, arr_time,
			from_station, to_station, object_of_journey, is_stay, ta_rate)
		VALUES (:entry_id, :journal_id, :entry_date, :train_no, :dep_time, :arr_time,
			:from_station, :to_station, :object_of_journey, :is_stay, :ta_rate)`
	if _, err := tx.NamedExecContext(ctx, insertEntry, e); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("entry %s: %w", e.EntryID, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to append entry to journal %s: %w", journalID, err)
	}

	return r.touchAndCommit(ctx, tx, journalID, j.LastUpdatedAt)
}

func (r *SQLiteJournalRepository) UpdateEntry(ctx context.Context, userID string, update domain.EntryUpdate) (*domain.MonthlyJournal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	journalID, err := ownedEntryJournal(ctx, tx, userID, update.EntryID)
	if err != nil {
		return nil, err
	}

	e := mapping.ToModelEntry(update.Entry(decimal.Zero), journalID)
	rate := decimal.NullDecimal{}
	if update.TARate != nil {
		rate = decimal.NewNullDecimal(*update.TARate)
	}

	query := `UPDATE journal_entries SET
			entry_date = ?, train_no = ?, dep_time = ?, arr_time = ?,
			from_station = ?, to_station = ?, object_of_journey = ?, is_stay = ?,
			ta_rate = COALESCE(?, ta_rate)
		WHERE entry_id = ?`
	if _, err := tx.ExecContext(ctx, query,
		e.EntryDate, e.TrainNo, e.DepTime, e.ArrTime,
		e.FromStation, e.ToStation, e.ObjectOfJourney, e.IsStay, rate, e.EntryID,
	); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", e.EntryID, err)
	}

	return r.touchAndCommit(ctx, tx, journalID, time.Now().UTC())
}

func (r *SQLiteJournalRepository) DeleteEntry(ctx context.Context, userID string, entryID string) (*domain.MonthlyJournal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	journalID, err := ownedEntryJournal(ctx, tx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE entry_id = ?`, entryID); err != nil {
		return nil, fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	return r.touchAndCommit(ctx, tx, journalID, time.Now().UTC())
}

func (r *SQLiteJournalRepository) touchAndCommit(ctx context.Context, tx *sqlx.Tx, journalID string, at time.Time) (*domain.MonthlyJournal, error) {
	if _, err := tx.ExecContext(ctx, `UPDATE monthly_journals SET last_updated_at = ? WHERE journal_id = ?`, at, journalID); err != nil {
		return nil, fmt.Errorf("failed to touch journal %s: %w", journalID, err)
	}
	journal, err := loadJournal(ctx, tx, "journal_id = ?", journalID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(tx); err != nil {
		return nil, err
	}
	return journal, nil
}

// ownedEntryJournal returns the id of the user's journal holding the entry.
func ownedEntryJournal(ctx context.Context, tx *sqlx.Tx, userID, entryID string) (string, error) {
	query := `SELECT e.journal_id
		FROM journal_entries e
		JOIN monthly_journals j ON j.journal_id = e.journal_id
		WHERE e.entry_id = ? AND j.user_id = ?`

	var journalID string
	if err := tx.GetContext(ctx, &journalID, query, entryID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return journalID, nil
}

// loadJournal reads one journal selected by where and its entries in seq order.
func loadJournal(ctx context.Context, q sqlx.QueryerContext, where string, args ...any) (*domain.MonthlyJournal, error) {
	var j models.MonthlyJournal
	if err := sqlx.GetContext(ctx, q, &j, `SELECT `+journalColumns+` FROM monthly_journals WHERE `+where, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}

	entries := make([]models.JournalEntry, 0)
	if err := sqlx.SelectContext(ctx, q, &entries,
		`SELECT `+entryColumns+` FROM journal_entries WHERE journal_id = ? ORDER BY seq`, j.JournalID,
	); err != nil {
		return nil, fmt.Errorf("failed to load entries of journal %s: %w", j.JournalID, err)
	}

	journal, err := mapping.ToDomainJournal(j, entries)
	if err != nil {
		return nil, err
	}
	return &journal, nil
}
