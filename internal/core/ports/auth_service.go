package ports

import (
	"context"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns a signed session token.
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
