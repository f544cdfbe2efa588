package services

import (
	"context"
	"fmt"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/platform/config"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/utils"
)

// tokenService implements the TokenSvcFacade for signing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	subject := utils.TokenSubject{
		UserID:            user.UserID,
		FullName:          user.FullName,
		IsProfileComplete: user.IsProfileComplete,
	}
	accessToken, err := utils.GenerateJWT(subject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}
