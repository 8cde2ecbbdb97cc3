package handlers

import (
	"context"
	"time"

	"github.com/bilacert/bilacert-api/internal/auth"
	"github.com/bilacert/bilacert-api/internal/domain"
	"github.com/bilacert/bilacert-api/internal/services"
)

//
// Service contracts (context-aware)
//

// IntakeService stores an already validated submission.
type IntakeService interface {
	Submit(ctx context.Context, sub *services.Submission, idemKey string) (*services.Receipt, error)
}

// SubmissionReader loads one submission on behalf of a staff session.
type SubmissionReader interface {
	Get(ctx context.Context, sess *auth.Session, id string) (*domain.FormSubmission, error)
}

// CatalogService serves the service catalog.
type CatalogService interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Service, error)
	ListPublished(ctx context.Context) ([]domain.Service, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Service, error)
	PublishedSlugs(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (int64, *time.Time, error)
	Search(ctx context.Context, q string, limit int) ([]domain.Service, error)
}

// ContentService serves blog posts, authors and testimonials.
type ContentService interface {
	ListPosts(ctx context.Context, limit int) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*domain.BlogPost, error)
	GetAuthor(ctx context.Context, name string) (*domain.Author, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]domain.BlogPost, error)
	PostSlugs(ctx context.Context) ([]string, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
}

// Handlers groups every API endpoint behind the service interfaces above.
type Handlers struct {
	intake  IntakeService
	reader  SubmissionReader
	catalog CatalogService
	content ContentService
}

// New binds handlers to their services.
func New(intake IntakeService, reader SubmissionReader, catalog CatalogService, content ContentService) *Handlers {
	return &Handlers{intake: intake, reader: reader, catalog: catalog, content: content}
}
