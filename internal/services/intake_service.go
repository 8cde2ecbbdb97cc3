// Package services – IntakeService
//
// IntakeService is the write side of the intake pipeline. It takes a
// Submission already accepted by Validate, resolves the referenced service
// for the name snapshot, and performs exactly one insert into the policy's
// destination table. With an Idempotency-Key the insert and the key record
// share a transaction, so a retried request returns the first id instead of
// creating a second row.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/domain"
	"github.com/bilacert/bilacert-api/internal/metrics"
	"github.com/bilacert/bilacert-api/internal/repo"
)

// DefaultIdempotencyTTL applies when IntakeService.IdempotencyTTL is zero.
const DefaultIdempotencyTTL = 24 * time.Hour

// IntakeService persists validated submissions.
type IntakeService struct {
	DB             *gorm.DB
	IdempotencyTTL time.Duration
}

// Receipt identifies the stored row. Replayed is true when the id came from
// an earlier request carrying the same Idempotency-Key.
type Receipt struct {
	ID       string
	Replayed bool
}

// Submit writes sub to its destination and returns the new row's id.
// idemKey is optional; when empty every call inserts a fresh row.
//
// Errors:
//   - *ValidationError if sub is nil or lacks its destination.
//   - *PersistenceError for any storage failure.
func (s *IntakeService) Submit(ctx context.Context, sub *Submission, idemKey string) (*Receipt, error) {
	if sub == nil || sub.Destination == "" {
		return nil, &ValidationError{Invalid: []string{"destination"}}
	}

	tr := otel.Tracer("services/IntakeService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("intake.destination", string(sub.Destination)),
			attribute.String("intake.form_type", string(sub.FormType)),
			attribute.Bool("intake.idempotent", idemKey != ""),
		),
	)
	defer span.End()

	idemKey = strings.TrimSpace(idemKey)
	scope := string(sub.Destination)

	if idemKey != "" {
		rec, err := repo.GetIdempotency(ctx, s.DB, scope, idemKey, time.Now().UTC())
		switch {
		case err == nil:
			metrics.RecordReplay(scope)
			span.SetAttributes(attribute.Bool("intake.replayed", true))
			return &Receipt{ID: rec.SubmissionID, Replayed: true}, nil
		case !errors.Is(err, repo.ErrNotFound):
			return nil, s.fail(span, scope, "lookup idempotency key", err)
		}
	}

	if sub.Destination == DestinationSubmissions && sub.ServiceID != nil {
		s.resolveService(ctx, sub)
	}

	id := uuid.NewString()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.insert(ctx, tx, id, sub); err != nil {
			return err
		}
		if idemKey == "" {
			return nil
		}
		_, err := repo.CreateIdempotency(ctx, tx, scope, idemKey, id, s.ttl())
		return err
	})
	if errors.Is(err, repo.ErrDuplicate) && idemKey != "" {
		// Lost a race with a concurrent request using the same key.
		if rec, gerr := repo.GetIdempotency(ctx, s.DB, scope, idemKey, time.Now().UTC()); gerr == nil {
			metrics.RecordReplay(scope)
			return &Receipt{ID: rec.SubmissionID, Replayed: true}, nil
		}
	}
	if err != nil {
		return nil, s.fail(span, scope, "insert "+scope, err)
	}

	metrics.RecordSubmission(scope, formKind(sub))
	loggerFrom(ctx).Info().
		Str("submission_id", id).
		Str("destination", scope).
		Str("form_type", formKind(sub)).
		Str("email", sub.Email).
		Msg("intake submission stored")
	span.SetAttributes(attribute.String("intake.submission_id", id))

	return &Receipt{ID: id}, nil
}

func (s *IntakeService) insert(ctx context.Context, tx *gorm.DB, id string, sub *Submission) error {
	switch sub.Destination {
	case DestinationContacts:
		c := &domain.Contact{
			ID:      id,
			Name:    sub.FullName,
			Email:   sub.Email,
			Phone:   sub.Phone,
			Service: sub.Service,
		}
		if sub.Message != nil {
			c.Message = *sub.Message
		}
		return repo.CreateContact(ctx, tx, c)
	case DestinationSubmissions:
		return repo.CreateFormSubmission(ctx, tx, &domain.FormSubmission{
			ID:          id,
			FormType:    sub.FormType,
			Status:      domain.StatusPending,
			ServiceID:   sub.ServiceID,
			ServiceName: sub.ServiceName,
			FullName:    sub.FullName,
			Email:       sub.Email,
			Phone:       sub.Phone,
			Company:     sub.Company,
			Industry:    sub.Industry,
			Details:     sub.Details,
		})
	default:
		return errors.New("unknown destination " + string(sub.Destination))
	}
}

// resolveService replaces the client's serviceId and serviceName with the
// catalog's id and title when the reference matches by id or slug. A miss
// leaves both as the client sent them.
func (s *IntakeService) resolveService(ctx context.Context, sub *Submission) {
	ref := *sub.ServiceID
	svc, err := repo.GetServiceByID(ctx, s.DB, ref)
	if errors.Is(err, repo.ErrNotFound) {
		svc, err = repo.GetServiceBySlug(ctx, s.DB, ref)
	}
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			loggerFrom(ctx).Warn().Err(err).Str("service_ref", ref).Msg("service lookup failed; storing reference as given")
		}
		return
	}
	id, title := svc.ID, svc.Title
	sub.ServiceID = &id
	sub.ServiceName = &title
}

func (s *IntakeService) fail(span trace.Span, scope, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, op)
	metrics.RecordRejection(scope, "persistence")
	return &PersistenceError{Op: op, Err: err}
}

func (s *IntakeService) ttl() time.Duration {
	if s.IdempotencyTTL > 0 {
		return s.IdempotencyTTL
	}
	return DefaultIdempotencyTTL
}

// formKind labels a submission for logs and metrics.
func formKind(sub *Submission) string {
	if sub.Destination == DestinationContacts {
		return string(domain.FormTypeContact)
	}
	return string(sub.FormType)
}

// loggerFrom returns the request logger stored in ctx, or the global one.
func loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}
