package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/models"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const journalColumns = `journal_id, user_id, month_year, display_month, status, created_at, last_updated_at`

const entryColumns = `entry_id, journal_id, seq, entry_date, train_no, dep_time, arr_time,
	from_station, to_station, object_of_journey, is_stay, ta_rate`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for monthly journals and their entries.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func (r *PgxJournalRepository) FindJournalByMonth(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyJournal, error) {
	return loadJournal(ctx, r.Pool, "user_id = $1 AND month_year = $2", userID, month.String())
}

// EnsureJournalAndAppendEntry upserts the journal row on (user_id, month_year) and inserts the entry in one transaction.
func (r *PgxJournalRepository) EnsureJournalAndAppendEntry(ctx context.Context, draft domain.MonthlyJournal, entry domain.JournalEntry) (*domain.MonthlyJournal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	if draft.JournalID == "" {
		draft.JournalID = uuid.NewString()
	}
	j := mapping.ToModelJournal(draft)

	// The no-op SET makes RETURNING yield the existing row on conflict; display_month keeps its first value.
	upsert := `INSERT INTO monthly_journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, month_year) DO UPDATE SET last_updated_at = EXCLUDED.last_updated_at
		RETURNING journal_id`

	var journalID string
	if err := tx.QueryRow(ctx, upsert,
		j.JournalID, j.UserID, j.MonthYear, j.DisplayMonth, j.Status, j.CreatedAt, j.LastUpdatedAt,
	).Scan(&journalID); err != nil {
		return nil, fmt.Errorf("failed to ensure journal for %s/%s: %w", j.UserID, j.MonthYear, err)
	}

	e := mapping.ToModelEntry(entry, journalID)
	insert := `INSERT INTO journal_entries (entry_id, journal_id, entry_date, train_no, dep_time, arr_time,
			from_station, to_station, object_of_journey, is_stay, ta_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := tx.Exec(ctx, insert,
		e.EntryID, e.JournalID, e.EntryDate, e.TrainNo, e.DepTime, e.ArrTime,
		e.FromStation, e.ToStation, e.ObjectOfJourney, e.IsStay, e.TARate,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("entry %s: %w", e.EntryID, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to append entry to journal %s: %w", journalID, err)
	}

	journal, err := loadJournal(ctx, tx, "journal_id = $1", journalID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return journal, nil
}

func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, userID string, update domain.EntryUpdate) (*domain.MonthlyJournal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	journalID, err := lockOwnedEntry(ctx, tx, userID, update.EntryID)
	if err != nil {
		return nil, err
	}

	e := mapping.ToModelEntry(update.Entry(decimal.Zero), journalID)
	rate := decimal.NullDecimal{}
	if update.TARate != nil {
		rate = decimal.NewNullDecimal(*update.TARate)
	}

	query := `UPDATE journal_entries SET
			entry_date = $2, train_no = $3, dep_time = $4, arr_time = $5,
			from_station = $6, to_station = $7, object_of_journey = $8, is_stay = $9,
			ta_rate = COALESCE($10, ta_rate)
		WHERE entry_id = $1`
	if _, err := tx.Exec(ctx, query,
		e.EntryID, e.EntryDate, e.TrainNo, e.DepTime, e.ArrTime,
		e.FromStation, e.ToStation, e.ObjectOfJourney, e.IsStay, rate,
	); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", e.EntryID, err)
	}

	return r.touchAndCommit(ctx, tx, journalID)
}

func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, userID string, entryID string) (*domain.MonthlyJournal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `DELETE FROM journal_entries e
		USING monthly_journals j
		WHERE e.journal_id = j.journal_id AND e.entry_id = $1 AND j.user_id = $2
		RETURNING e.journal_id`

	var journalID string
	if err := tx.QueryRow(ctx, query, entryID, userID).Scan(&journalID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	return r.touchAndCommit(ctx, tx, journalID)
}

func (r *PgxJournalRepository) touchAndCommit(ctx context.Context, tx pgx.Tx, journalID string) (*domain.MonthlyJournal, error) {
	if _, err := tx.Exec(ctx, `UPDATE monthly_journals SET last_updated_at = $2 WHERE journal_id = $1`, journalID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to touch journal %s: %w", journalID, err)
	}
	journal, err := loadJournal(ctx, tx, "journal_id = $1", journalID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return journal, nil
}

// lockOwnedEntry returns the journal holding the user's entry, locking the entry row.
func lockOwnedEntry(ctx context.Context, tx pgx.Tx, userID, entryID string) (string, error) {
	query := `SELECT e.journal_id
		FROM journal_entries e
		JOIN monthly_journals j ON j.journal_id = e.journal_id
		WHERE e.entry_id = $1 AND j.user_id = $2
		FOR UPDATE OF e`

	var journalID string
	if err := tx.QueryRow(ctx, query, entryID, userID).Scan(&journalID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return journalID, nil
}

// loadJournal reads one journal selected by where and its entries in seq order.
func loadJournal(ctx context.Context, q querier, where string, args ...any) (*domain.MonthlyJournal, error) {
	var j models.MonthlyJournal
	err := q.QueryRow(ctx, `SELECT `+journalColumns+` FROM monthly_journals WHERE `+where, args...).Scan(
		&j.JournalID, &j.UserID, &j.MonthYear, &j.DisplayMonth, &j.Status, &j.CreatedAt, &j.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE journal_id = $1 ORDER BY seq`, j.JournalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries of journal %s: %w", j.JournalID, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.EntryID, &e.JournalID, &e.Seq, &e.EntryDate, &e.TrainNo, &e.DepTime, &e.ArrTime,
			&e.FromStation, &e.ToStation, &e.ObjectOfJourney, &e.IsStay, &e.TARate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry of journal %s: %w", j.JournalID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries of journal %s: %w", j.JournalID, err)
	}

	journal, err := mapping.ToDomainJournal(j, entries)
	if err != nil {
		return nil, err
	}
	return &journal, nil
}
