package ports

import (
	"context"

	"github.com/justicebuddy/backend/internal/core/domain"
)

// BlogService defines use-case operations for blog posts. Write operations
// take the acting admin's username; any authenticated admin may edit or
// delete any post, authorship is not an edit precondition.
type BlogService interface {
	List(ctx context.Context) ([]*domain.BlogPost, error)
	Create(ctx context.Context, title, content, createdBy string) (*domain.BlogPost, error)
	Update(ctx context.Context, id, title, content string) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}
