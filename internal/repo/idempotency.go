package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/domain"
)

// GetIdempotency returns a non-expired record for (scope, key) or ErrNotFound.
func GetIdempotency(ctx context.Context, db *gorm.DB, scope, key string, now time.Time) (*domain.Idempotency, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.Idempotency
	err := db.WithContext(ctx).
		Where("scope = ? AND key = ? AND expires_at > ?", scope, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateIdempotency records that key produced submissionID within scope.
// A live record for the same (scope, key) yields ErrDuplicate; an expired
// one is replaced.
func CreateIdempotency(ctx context.Context, db *gorm.DB, scope, key, submissionID string, ttl time.Duration) (*domain.Idempotency, error) {
	now := time.Now().UTC()
	if err := db.WithContext(ctx).
		Where("scope = ? AND key = ? AND expires_at <= ?", scope, key, now).
		Delete(&domain.Idempotency{}).Error; err != nil {
		return nil, err
	}
	rec := &domain.Idempotency{
		ID:           uuid.NewString(),
		Scope:        scope,
		Key:          key,
		SubmissionID: submissionID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
	if err := translate(db.WithContext(ctx).Create(rec).Error); err != nil {
		return nil, err
	}
	return rec, nil
}

// PurgeExpiredIdempotency deletes records whose TTL has passed and reports
// how many rows went away.
func PurgeExpiredIdempotency(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&domain.Idempotency{})
	return res.RowsAffected, res.Error
}
