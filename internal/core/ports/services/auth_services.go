package services

import (
	"context"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a bearer token for the user and returns its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
