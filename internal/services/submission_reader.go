package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/auth"
	"github.com/bilacert/bilacert-api/internal/domain"
	"github.com/bilacert/bilacert-api/internal/metrics"
	"github.com/bilacert/bilacert-api/internal/repo"
)

// SubmissionReader serves the staff read path for a single submission.
type SubmissionReader struct {
	DB *gorm.DB
}

// Get returns the full row for id. Checks run in a fixed order so that
// existence is never revealed to a caller who may not see it:
//
//  1. nil session → ErrUnauthorized
//  2. no profile, inactive profile, or role other than admin → ErrForbidden
//  3. no row → ErrSubmissionNotFound
//
// Storage failures come back as *PersistenceError.
func (r *SubmissionReader) Get(ctx context.Context, sess *auth.Session, id string) (*domain.FormSubmission, error) {
	ctx, span := otel.Tracer("services/SubmissionReader").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("submission.id", id)),
	)
	defer span.End()

	sub, outcome, err := r.get(ctx, sess, id)
	metrics.RecordAdminRead(outcome)
	if err != nil {
		span.SetAttributes(attribute.String("outcome", outcome))
	}
	return sub, err
}

func (r *SubmissionReader) get(ctx context.Context, sess *auth.Session, id string) (*domain.FormSubmission, string, error) {
	if sess == nil || sess.AuthID == "" {
		return nil, "unauthorized", ErrUnauthorized
	}

	user, err := repo.GetUserByAuthID(ctx, r.DB, sess.AuthID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil, "forbidden", ErrForbidden
	case err != nil:
		return nil, "error", &PersistenceError{Op: "load staff profile", Err: err}
	}
	if user.Role != domain.RoleAdmin || !user.IsActive {
		return nil, "forbidden", ErrForbidden
	}

	sub, err := repo.GetFormSubmission(ctx, r.DB, id)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil, "not_found", ErrSubmissionNotFound
	case err != nil:
		return nil, "error", &PersistenceError{Op: "load submission", Err: err}
	}
	return sub, "ok", nil
}
