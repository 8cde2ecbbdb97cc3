package repo

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bilacert/bilacert-api/internal/domain"
)

func TestBlogQueries(t *testing.T) {
	db := newTestDB(t, &domain.BlogPost{})
	ctx := context.Background()

	day := func(d int) *time.Time {
		v := time.Date(2025, 3, d, 9, 0, 0, 0, time.UTC)
		return &v
	}
	posts := []domain.BlogPost{
		{ID: "p1", Slug: "icasa-basics", Title: "ICASA basics", Content: "c", Category: strp("compliance"), Published: true, PublishedAt: day(1)},
		{ID: "p2", Slug: "nrcs-guide", Title: "NRCS guide", Content: "c", Category: strp("compliance"), Published: true, PublishedAt: day(5)},
		{ID: "p3", Slug: "vhf-tips", Title: "VHF tips", Content: "c", Category: strp("marine"), Published: true, PublishedAt: day(3)},
		{ID: "p4", Slug: "draft", Title: "Draft", Content: "c", Category: strp("compliance"), Published: false},
	}
	if err := db.Create(&posts).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := ListPublishedBlogPosts(ctx, db, 0)
	if err != nil {
		t.Fatalf("ListPublishedBlogPosts: %v", err)
	}
	var ids []string
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	if !reflect.DeepEqual(ids, []string{"p2", "p3", "p1"}) {
		t.Fatalf("newest first expected, got %v", ids)
	}
	if two, _ := ListPublishedBlogPosts(ctx, db, 2); len(two) != 2 {
		t.Fatalf("limit not applied: %d", len(two))
	}

	cat, err := ListBlogPostsByCategory(ctx, db, "compliance", 3)
	if err != nil || len(cat) != 2 || cat[0].ID != "p2" {
		t.Fatalf("category = %+v (%v)", cat, err)
	}

	if _, err := GetBlogPostBySlug(ctx, db, "draft"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("drafts must not be readable by slug, got %v", err)
	}
	if p, err := GetBlogPostBySlug(ctx, db, "vhf-tips"); err != nil || p.ID != "p3" {
		t.Fatalf("GetBlogPostBySlug = (%+v, %v)", p, err)
	}

	slugs, err := ListPublishedBlogSlugs(ctx, db)
	if err != nil || !reflect.DeepEqual(slugs, []string{"nrcs-guide", "vhf-tips", "icasa-basics"}) {
		t.Fatalf("slugs = %v (%v)", slugs, err)
	}
}

func TestListTestimonials_NewestFirst(t *testing.T) {
	db := newTestDB(t, &domain.Testimonial{})
	older := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	rows := []domain.Testimonial{
		{ID: "t1", PostURL: "https://www.linkedin.com/embed/1", CreatedAt: older},
		{ID: "t2", PostURL: "https://www.linkedin.com/embed/2", CreatedAt: newer},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := ListTestimonials(context.Background(), db)
	if err != nil || len(got) != 2 || got[0].ID != "t2" {
		t.Fatalf("testimonials = %+v (%v)", got, err)
	}
}

func TestGetAuthorByName(t *testing.T) {
	db := newTestDB(t, &domain.Author{})
	ctx := context.Background()
	if err := db.Create(&domain.Author{ID: "a1", Name: "Thandi Mokoena", Bio: strp("Type approval specialist")}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	a, err := GetAuthorByName(ctx, db, "Thandi Mokoena")
	if err != nil || a.ID != "a1" || a.Bio == nil || *a.Bio != "Type approval specialist" {
		t.Fatalf("GetAuthorByName = (%+v, %v)", a, err)
	}
	if _, err := GetAuthorByName(ctx, db, "Thandi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("partial name must not match, got %v", err)
	}
}
