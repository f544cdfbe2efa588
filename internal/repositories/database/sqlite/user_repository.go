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
	"github.com/jmoiron/sqlx"
)

const userColumns = `user_id, full_name, email, password_hash, designation, headquarters, rate_of_pay, rate,
	pf_number, bill_unit_no, division, railway_zone, is_profile_complete, created_at, last_updated_at`

type SQLiteUserRepository struct {
	BaseRepository
}

func newSQLiteUserRepository(db *sqlx.DB) portsrepo.UserRepositoryFacade {
	return &SQLiteUserRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UserRepositoryFacade = (*SQLiteUserRepository)(nil)

func (r *SQLiteUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `INSERT INTO users (` + userColumns + `)
		VALUES (:user_id, :full_name, :email, :password_hash, :designation, :headquarters, :rate_of_pay, :rate,
			:pf_number, :bill_unit_no, :division, :railway_zone, :is_profile_complete, :created_at, :last_updated_at)`

	if _, err := r.DB.NamedExecContext(ctx, query, m); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

func (r *SQLiteUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id = ?", userID)
}

func (r *SQLiteUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email = ?", email)
}

func (r *SQLiteUserRepository) UpdateProfile(ctx context.Context, userID string, profile domain.UserProfile, updatedAt time.Time) (*domain.User, error) {
	m := mapping.ToModelUser(domain.User{UserProfile: profile})
	query := `UPDATE users SET
			designation = ?, headquarters = ?, rate_of_pay = ?, rate = ?,
			pf_number = ?, bill_unit_no = ?, division = ?, railway_zone = ?,
			is_profile_complete = 1, last_updated_at = ?
		WHERE user_id = ?`

	res, err := r.DB.ExecContext(ctx, query,
		m.Designation, m.Headquarters, m.RateOfPay, m.Rate,
		m.PFNumber, m.BillUnitNo, m.Division, m.RailwayZone, updatedAt.UTC(), userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindUserByID(ctx, userID)
}

func (r *SQLiteUserRepository) findUser(ctx context.Context, where string, arg string) (*domain.User, error) {
	var m models.User
	if err := r.DB.GetContext(ctx, &m, `SELECT `+userColumns+` FROM users WHERE `+where, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
