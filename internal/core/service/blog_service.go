package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/justicebuddy/backend/internal/api/metrics"
	"github.com/justicebuddy/backend/internal/core/domain"
	"github.com/justicebuddy/backend/internal/core/ports"
)

type BlogService struct {
	repo   ports.BlogRepository
	logger zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, logger: logger}
}

func (s *BlogService) List(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.repo.List(ctx)
}

// Create persists a new post. createdBy comes from the verified token
// identity, never from the request body.
func (s *BlogService) Create(ctx context.Context, title, content, createdBy string) (*domain.BlogPost, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, domain.ErrEmptyFields
	}

	now := time.Now().UTC()
	post := &domain.BlogPost{
		Title:     title,
		Content:   content,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create blog post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("id", created.ID).Str("created_by", createdBy).Msg("blog post created")
	return created, nil
}

func (s *BlogService) Update(ctx context.Context, id, title, content string) (*domain.BlogPost, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, domain.ErrEmptyFields
	}

	updated, err := s.repo.Update(ctx, id, title, content)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("blog post updated")
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("blog post deleted")
	return nil
}
