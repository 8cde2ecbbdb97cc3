package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/domain"
	"github.com/bilacert/bilacert-api/internal/repo"
	"github.com/bilacert/bilacert-api/internal/search"
)

// DefaultFeaturedLimit is how many featured services the home page shows.
const DefaultFeaturedLimit = 4

// Search result bounds.
const (
	DefaultSearchLimit = 5
	MaxSearchLimit     = 20
)

// CatalogService reads the service catalog. It never writes.
type CatalogService struct {
	DB *gorm.DB

	mu    sync.Mutex
	index *catalogIndex
}

// catalogIndex is a search index over one snapshot of the published
// catalog, identified by the same stats that build the list ETag.
type catalogIndex struct {
	count  int64
	stamp  time.Time
	idx    search.Index
	bySlug map[string]domain.Service
}

// GetBySlug returns the service with slug whether or not it is published.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	svc, err := repo.GetServiceBySlug(ctx, s.DB, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	return svc, err
}

// ListPublished returns published services by display order.
func (s *CatalogService) ListPublished(ctx context.Context) ([]domain.Service, error) {
	return repo.ListPublishedServices(ctx, s.DB)
}

// ListFeatured returns at most limit featured services; limit outside
// 1..DefaultFeaturedLimit is clamped to DefaultFeaturedLimit.
func (s *CatalogService) ListFeatured(ctx context.Context, limit int) ([]domain.Service, error) {
	if limit <= 0 || limit > DefaultFeaturedLimit {
		limit = DefaultFeaturedLimit
	}
	return repo.ListFeaturedServices(ctx, s.DB, limit)
}

// PublishedSlugs returns the slug of every published service.
func (s *CatalogService) PublishedSlugs(ctx context.Context) ([]string, error) {
	return repo.ListPublishedServiceSlugs(ctx, s.DB)
}

// Stats returns the published count and latest update for ETag building.
func (s *CatalogService) Stats(ctx context.Context) (int64, *time.Time, error) {
	return repo.ServicesStats(ctx, s.DB)
}

// Search ranks published services against q and returns at most limit of
// them, best first. limit outside 1..MaxSearchLimit means
// DefaultSearchLimit. A blank query returns nothing.
func (s *CatalogService) Search(ctx context.Context, q string, limit int) ([]domain.Service, error) {
	if strings.TrimSpace(q) == "" {
		return nil, nil
	}
	if limit <= 0 || limit > MaxSearchLimit {
		limit = DefaultSearchLimit
	}
	ci, err := s.currentIndex(ctx)
	if err != nil {
		return nil, err
	}
	hits := ci.idx.TopK(q, limit)
	out := make([]domain.Service, 0, len(hits))
	for _, h := range hits {
		out = append(out, ci.bySlug[h.ID])
	}
	return out, nil
}

// currentIndex returns the cached index, rebuilding it when the published
// count or latest update time has moved.
func (s *CatalogService) currentIndex(ctx context.Context) (*catalogIndex, error) {
	count, maxTS, err := repo.ServicesStats(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	var stamp time.Time
	if maxTS != nil {
		stamp = *maxTS
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ci := s.index; ci != nil && ci.count == count && ci.stamp.Equal(stamp) {
		return ci, nil
	}

	rows, err := repo.ListPublishedServices(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, 0, len(rows))
	bySlug := make(map[string]domain.Service, len(rows))
	for _, r := range rows {
		docs = append(docs, search.Document{ID: r.Slug, Title: r.Title, Text: serviceText(r)})
		bySlug[r.Slug] = r
	}
	s.index = &catalogIndex{count: count, stamp: stamp, idx: search.NewIndex(docs), bySlug: bySlug}
	return s.index, nil
}

func serviceText(svc domain.Service) string {
	parts := []string{}
	for _, p := range []*string{svc.Category, svc.ShortDescription, svc.Description, svc.SEOKeywords} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	if svc.Content != nil {
		parts = append(parts, search.PlainText(*svc.Content))
	}
	for _, list := range []datatypes.JSON{svc.Features, svc.Requirements, svc.Includes} {
		var items []string
		if len(list) > 0 && json.Unmarshal(list, &items) == nil {
			parts = append(parts, items...)
		}
	}
	return strings.Join(parts, "\n")
}
