// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for intake rows:
// form_submissions and the legacy contacts table.
//
// All functions are context-aware and accept a *gorm.DB handle, so callers
// may pass a transaction. They follow the thin repository approach: no
// validation or business rules, only persistence.
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

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound so callers can match either.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates a unique constraint rejected the insert.
var ErrDuplicate = errors.New("duplicate")

// CreateFormSubmission inserts s, assigning a UUID when ID is empty and
// timestamps in UTC. Status defaults to pending.
func CreateFormSubmission(ctx context.Context, db *gorm.DB, s *domain.FormSubmission) error {
	now := time.Now().UTC()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = domain.StatusPending
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = s.CreatedAt
	return translate(db.WithContext(ctx).Create(s).Error)
}

// CreateContact inserts c into the legacy contacts table.
func CreateContact(ctx context.Context, db *gorm.DB, c *domain.Contact) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now().UTC()
	}
	return translate(db.WithContext(ctx).Create(c).Error)
}

// GetFormSubmission fetches one submission by primary key or ErrNotFound.
func GetFormSubmission(ctx context.Context, db *gorm.DB, id string) (*domain.FormSubmission, error) {
	var s domain.FormSubmission
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// translate maps unique violations to ErrDuplicate and passes others through.
// glebarez/sqlite sometimes reports them as plain text only.
func translate(err error) error {
	if err == nil {
		return nil
	}
	low := strings.ToLower(err.Error())
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key value") {
		return ErrDuplicate
	}
	return err
}
