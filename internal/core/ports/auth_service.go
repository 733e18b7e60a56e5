package ports

import (
	"context"

	"github.com/justicebuddy/backend/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (string, *domain.Admin, error)
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
	// ResolveAdmin returns the current Admin record for a token subject.
	// Tokens referencing a deleted admin must not authorize anything.
	ResolveAdmin(ctx context.Context, id string) (*domain.Admin, error)
}
