package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/domain"
)

// GetServiceByID fetches a service by primary key regardless of publication.
func GetServiceByID(ctx context.Context, db *gorm.DB, id string) (*domain.Service, error) {
	var s domain.Service
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetServiceBySlug fetches a service by slug regardless of publication.
func GetServiceBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Service, error) {
	var s domain.Service
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListPublishedServices returns published services by order_index ascending.
func ListPublishedServices(ctx context.Context, db *gorm.DB) ([]domain.Service, error) {
	var out []domain.Service
	err := db.WithContext(ctx).
		Where("published = ?", true).
		Order("order_index asc").
		Order("title asc").
		Find(&out).Error
	return out, err
}

// ListFeaturedServices returns up to limit published services flagged featured.
func ListFeaturedServices(ctx context.Context, db *gorm.DB, limit int) ([]domain.Service, error) {
	var out []domain.Service
	err := db.WithContext(ctx).
		Where("published = ? AND featured = ?", true, true).
		Order("order_index asc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListPublishedServiceSlugs returns the slugs of every published service.
func ListPublishedServiceSlugs(ctx context.Context, db *gorm.DB) ([]string, error) {
	var out []string
	err := db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("published = ?", true).
		Order("order_index asc").
		Pluck("slug", &out).Error
	return out, err
}
