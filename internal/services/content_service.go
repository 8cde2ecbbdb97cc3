package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/domain"
	"github.com/bilacert/bilacert-api/internal/repo"
)

// DefaultCategoryLimit caps ListByCategory when no limit is given.
const DefaultCategoryLimit = 3

// ContentService reads blog posts, authors and testimonials for the public site.
type ContentService struct {
	DB *gorm.DB
}

// ListPosts returns published posts newest first; limit <= 0 returns all.
func (s *ContentService) ListPosts(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	return repo.ListPublishedBlogPosts(ctx, s.DB, limit)
}

// GetPost returns a published post or ErrBlogPostNotFound.
func (s *ContentService) GetPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	p, err := repo.GetBlogPostBySlug(ctx, s.DB, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrBlogPostNotFound
	}
	return p, err
}

// ListByCategory returns related posts in category.
func (s *ContentService) ListByCategory(ctx context.Context, category string, limit int) ([]domain.BlogPost, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return []domain.BlogPost{}, nil
	}
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}
	return repo.ListBlogPostsByCategory(ctx, s.DB, category, limit)
}

// PostSlugs returns the slug of every published post.
func (s *ContentService) PostSlugs(ctx context.Context) ([]string, error) {
	return repo.ListPublishedBlogSlugs(ctx, s.DB)
}

// Testimonials returns every testimonial newest first.
func (s *ContentService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return repo.ListTestimonials(ctx, s.DB)
}

// GetAuthor returns the author named name or ErrAuthorNotFound.
func (s *ContentService) GetAuthor(ctx context.Context, name string) (*domain.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAuthorNotFound
	}
	a, err := repo.GetAuthorByName(ctx, s.DB, name)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrAuthorNotFound
	}
	return a, err
}
