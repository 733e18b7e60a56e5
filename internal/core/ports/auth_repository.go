package ports

import (
	"context"

	"github.com/justicebuddy/backend/internal/core/domain"
)

// AuthRepository defines the interface for admin credential persistence.
type AuthRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
}
