package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/dto"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// normalize trims and lower-cases names and emails as they are stored.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	fullName := normalize(req.FullName)
	if len([]rune(fullName)) < 3 {
		return nil, apperrors.Validationf("fullName must have at least 3 characters")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		FullName:     fullName,
		Email:        normalize(req.Email),
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Registration for existing email", slog.String("email", user.Email))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	current, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := req.Apply(current.UserProfile)
	if profile.RateOfPay.IsNegative() || profile.Rate.IsNegative() {
		return nil, apperrors.Validationf("rates cannot be negative")
	}

	updated, err := s.userRepo.UpdateProfile(ctx, userID, profile, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update profile in service: %w", err)
	}

	s.LogInfo(ctx, "Profile updated", slog.String("user_id", userID))
	return updated, nil
}

// AuthenticateUser returns apperrors.ErrUnauthorized for an unknown email or a wrong password.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalize(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
