// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/domain"
)

// ServicesStats returns the number of published services and the greatest
// UpdatedAt among them. With no rows the count is 0 and maxUpdatedAt is nil.
func ServicesStats(ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Service{}).Where("published = ?", true)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Latest row instead of MAX(), which SQLite returns as TEXT.
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
