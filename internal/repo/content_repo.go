package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/domain"
)

// ListPublishedBlogPosts returns published posts, newest publication first.
// A limit <= 0 means no limit.
func ListPublishedBlogPosts(ctx context.Context, db *gorm.DB, limit int) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	q := db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at desc").
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetBlogPostBySlug fetches a published post by slug or ErrNotFound.
func GetBlogPostBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListBlogPostsByCategory returns up to limit published posts in category.
func ListBlogPostsByCategory(ctx context.Context, db *gorm.DB, category string, limit int) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	err := db.WithContext(ctx).
		Where("published = ? AND category = ?", true, category).
		Order("published_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListPublishedBlogSlugs returns the slugs of every published post.
func ListPublishedBlogSlugs(ctx context.Context, db *gorm.DB) ([]string, error) {
	var out []string
	err := db.WithContext(ctx).
		Model(&domain.BlogPost{}).
		Where("published = ?", true).
		Order("published_at desc").
		Pluck("slug", &out).Error
	return out, err
}

// ListTestimonials returns every testimonial, newest first.
func ListTestimonials(ctx context.Context, db *gorm.DB) ([]domain.Testimonial, error) {
	var out []domain.Testimonial
	err := db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

// GetAuthorByName fetches the author whose name matches exactly, or ErrNotFound.
func GetAuthorByName(ctx context.Context, db *gorm.DB, name string) (*domain.Author, error) {
	var a domain.Author
	if err := db.WithContext(ctx).Where("name = ?", name).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
