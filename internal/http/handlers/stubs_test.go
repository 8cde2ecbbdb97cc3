package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bilacert/bilacert-api/internal/auth"
	"github.com/bilacert/bilacert-api/internal/domain"
	"github.com/bilacert/bilacert-api/internal/http/middleware"
	"github.com/bilacert/bilacert-api/internal/services"
)

type stubIntake struct {
	got     *services.Submission
	gotKey  string
	receipt *services.Receipt
	err     error
}

func (s *stubIntake) Submit(_ context.Context, sub *services.Submission, key string) (*services.Receipt, error) {
	s.got, s.gotKey = sub, key
	if s.err != nil {
		return nil, s.err
	}
	if s.receipt != nil {
		return s.receipt, nil
	}
	return &services.Receipt{ID: "sub-1"}, nil
}

type stubReader struct {
	gotSess *auth.Session
	gotID   string
	row     *domain.FormSubmission
	err     error
}

func (s *stubReader) Get(_ context.Context, sess *auth.Session, id string) (*domain.FormSubmission, error) {
	s.gotSess, s.gotID = sess, id
	return s.row, s.err
}

type stubCatalog struct {
	services  []domain.Service
	bySlug    map[string]*domain.Service
	slugs     []string
	count     int64
	updated   *time.Time
	statsErr  error
	listErr   error
	listCalls int
	gotLimit  int
	gotQuery  string
}

func (s *stubCatalog) GetBySlug(_ context.Context, slug string) (*domain.Service, error) {
	if svc, ok := s.bySlug[slug]; ok {
		return svc, nil
	}
	return nil, services.ErrServiceNotFound
}

func (s *stubCatalog) ListPublished(context.Context) ([]domain.Service, error) {
	s.listCalls++
	return s.services, s.listErr
}

func (s *stubCatalog) ListFeatured(_ context.Context, limit int) ([]domain.Service, error) {
	s.gotLimit = limit
	return s.services, s.listErr
}

func (s *stubCatalog) PublishedSlugs(context.Context) ([]string, error) {
	return s.slugs, s.listErr
}

func (s *stubCatalog) Stats(context.Context) (int64, *time.Time, error) {
	return s.count, s.updated, s.statsErr
}

func (s *stubCatalog) Search(_ context.Context, q string, limit int) ([]domain.Service, error) {
	s.gotQuery, s.gotLimit = q, limit
	return s.services, s.listErr
}

type stubContent struct {
	posts       []domain.BlogPost
	bySlug      map[string]*domain.BlogPost
	authors     map[string]*domain.Author
	slugs       []string
	testimonies []domain.Testimonial
	err         error
	gotCategory string
	gotLimit    int
}

func (s *stubContent) ListPosts(_ context.Context, limit int) ([]domain.BlogPost, error) {
	s.gotLimit = limit
	return s.posts, s.err
}

func (s *stubContent) GetPost(_ context.Context, slug string) (*domain.BlogPost, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.bySlug[slug]; ok {
		return p, nil
	}
	return nil, services.ErrBlogPostNotFound
}

func (s *stubContent) GetAuthor(_ context.Context, name string) (*domain.Author, error) {
	if s.err != nil {
		return nil, s.err
	}
	if a, ok := s.authors[name]; ok {
		return a, nil
	}
	return nil, services.ErrAuthorNotFound
}

func (s *stubContent) ListByCategory(_ context.Context, category string, limit int) ([]domain.BlogPost, error) {
	s.gotCategory, s.gotLimit = category, limit
	return s.posts, s.err
}

func (s *stubContent) PostSlugs(context.Context) ([]string, error) { return s.slugs, s.err }

func (s *stubContent) Testimonials(context.Context) ([]domain.Testimonial, error) {
	return s.testimonies, s.err
}

// newTestRouter mounts every handler the way the real router does, minus
// the cross-cutting middleware that has its own tests.
func newTestRouter(h *Handlers, sess *auth.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(func(c *gin.Context) {
		if sess != nil {
			c.Set("session", sess)
		}
		c.Next()
	})
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{
		Scope: func(c *gin.Context) string {
			switch c.FullPath() {
			case "/submissions":
				return string(services.DestinationSubmissions)
			case "/contacts":
				return string(services.DestinationContacts)
			}
			return ""
		},
	}, nil))

	r.POST("/submissions", h.CreateSubmission)
	r.POST("/contacts", h.CreateContact)
	r.GET("/submissions", h.FindSubmission)
	r.GET("/submissions/:id", h.GetSubmission)
	r.GET("/services", h.ListServices)
	r.GET("/services/featured", h.ListFeaturedServices)
	r.GET("/services/slugs", h.ListServiceSlugs)
	r.GET("/services/search", h.SearchServices)
	r.GET("/services/:slug", h.GetService)
	r.GET("/blog/posts", h.ListBlogPosts)
	r.GET("/blog/posts/:slug", h.GetBlogPost)
	r.GET("/blog/authors/:name", h.GetBlogAuthor)
	r.GET("/blog/slugs", h.ListBlogSlugs)
	r.GET("/testimonials", h.ListTestimonials)
	return r
}
