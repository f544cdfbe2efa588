package sqlite

import (
	"database/sql"

	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

// NewRepositoryProvider wires the SQLite repositories over an open modernc database.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
	x := sqlx.NewDb(db, "sqlite")
	return portsrepo.RepositoryProvider{
		UserRepo:    newSQLiteUserRepository(x),
		JournalRepo: newSQLiteJournalRepository(x),
	}
}
