package repo

import (
	"context"
	"testing"
	"time"

	"github.com/bilacert/bilacert-api/internal/domain"
)

func TestGetIdempotency_BlankKey_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	rec, err := GetIdempotency(context.Background(), db, "contacts", "   ", time.Now().UTC())
	if rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank key, got (%v, %v)", rec, err)
	}
}

func TestGetIdempotency_ExpiredMissingAndLive(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []domain.Idempotency{
		{ID: "expired", Scope: "form_submissions", Key: "k1", SubmissionID: "s0", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)},
		{ID: "live", Scope: "form_submissions", Key: "k2", SubmissionID: "s1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if rec, err := GetIdempotency(ctx, db, "form_submissions", "k1", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expired record should be invisible, got (%v, %v)", rec, err)
	}
	if rec, err := GetIdempotency(ctx, db, "contacts", "k2", now); rec != nil || err != ErrNotFound {
		t.Fatalf("other scope should not match, got (%v, %v)", rec, err)
	}
	rec, err := GetIdempotency(ctx, db, "form_submissions", "k2", now)
	if err != nil || rec.SubmissionID != "s1" {
		t.Fatalf("expected live record, got (%+v, %v)", rec, err)
	}
}

func TestCreateIdempotency_SuccessDuplicateAndExpiredReuse(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	ctx := context.Background()
	start := time.Now().UTC()

	rec, err := CreateIdempotency(ctx, db, "contacts", "k9", "s9", 90*time.Minute)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || rec.Scope != "contacts" || rec.SubmissionID != "s9" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !(rec.ExpiresAt.After(start) && rec.ExpiresAt.Before(start.Add(2*time.Hour))) {
		t.Fatalf("unexpected ExpiresAt: %v", rec.ExpiresAt)
	}

	if _, err := CreateIdempotency(ctx, db, "contacts", "k9", "sX", time.Hour); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Force expiry, then the key can be claimed again.
	if err := db.Model(&domain.Idempotency{}).Where("id = ?", rec.ID).
		Update("expires_at", start.Add(-time.Minute)).Error; err != nil {
		t.Fatalf("expire: %v", err)
	}
	again, err := CreateIdempotency(ctx, db, "contacts", "k9", "s10", time.Hour)
	if err != nil || again.SubmissionID != "s10" {
		t.Fatalf("expired key should be reusable, got (%+v, %v)", again, err)
	}
}

func TestCreateIdempotency_Error_NoTable(t *testing.T) {
	db := newTestDB(t)
	if _, err := CreateIdempotency(context.Background(), db, "contacts", "k", "s", time.Minute); err == nil {
		t.Fatalf("expected error when table is missing")
	}
}

func TestPurgeExpiredIdempotency(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()
	seed := []domain.Idempotency{
		{ID: "a", Scope: "s", Key: "1", SubmissionID: "x", ExpiresAt: now.Add(-time.Minute)},
		{ID: "b", Scope: "s", Key: "2", SubmissionID: "y", ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := PurgeExpiredIdempotency(context.Background(), db, now)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 purged row, got %d (%v)", n, err)
	}
}
