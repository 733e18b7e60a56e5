package ports

import (
	"context"

	"github.com/justicebuddy/backend/internal/core/domain"
)

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	// List returns all posts, newest-first by creation time.
	List(ctx context.Context) ([]*domain.BlogPost, error)
	// Update replaces title and content of the post with the given id and
	// refreshes updated_at. created_by and created_at are left untouched.
	Update(ctx context.Context, id, title, content string) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}
