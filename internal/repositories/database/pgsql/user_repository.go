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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, full_name, email, password_hash, designation, headquarters, rate_of_pay, rate,
	pf_number, bill_unit_no, division, railway_zone, is_profile_complete, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.FullName, m.Email, m.PasswordHash,
		m.Designation, m.Headquarters, m.RateOfPay, m.Rate,
		m.PFNumber, m.BillUnitNo, m.Division, m.RailwayZone,
		m.IsProfileComplete, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email = $1", email)
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, userID string, profile domain.UserProfile, updatedAt time.Time) (*domain.User, error) {
	m := mapping.ToModelUser(domain.User{UserProfile: profile})
	query := `UPDATE users SET
			designation = $2, headquarters = $3, rate_of_pay = $4, rate = $5,
			pf_number = $6, bill_unit_no = $7, division = $8, railway_zone = $9,
			is_profile_complete = TRUE, last_updated_at = $10
		WHERE user_id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.Pool.QueryRow(ctx, query,
		userID, m.Designation, m.Headquarters, m.RateOfPay, m.Rate,
		m.PFNumber, m.BillUnitNo, m.Division, m.RailwayZone, updatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) findUser(ctx context.Context, where string, arg string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.FullName, &m.Email, &m.PasswordHash,
		&m.Designation, &m.Headquarters, &m.RateOfPay, &m.Rate,
		&m.PFNumber, &m.BillUnitNo, &m.Division, &m.RailwayZone,
		&m.IsProfileComplete, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
