package repo

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bilacert/bilacert-api/internal/domain"
)

func TestServiceQueries(t *testing.T) {
	db := newTestDB(t, &domain.Service{})
	ctx := context.Background()

	t1 := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	rows := []domain.Service{
		{ID: "s1", Slug: "nrcs-loa", Title: "NRCS LOA", OrderIndex: 2, Published: true, Featured: true, CreatedAt: t1, UpdatedAt: t1},
		{ID: "s2", Slug: "radio-dealer", Title: "Radio Dealer", OrderIndex: 1, Published: true, CreatedAt: t1, UpdatedAt: t2},
		{ID: "s3", Slug: "ski-boat-vhf", Title: "Ski Boat VHF", OrderIndex: 3, Published: true, Featured: true, CreatedAt: t1, UpdatedAt: t1},
		{ID: "s4", Slug: "draft", Title: "Draft", OrderIndex: 0, Published: false, Featured: true, CreatedAt: t1, UpdatedAt: t1},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if s, err := GetServiceByID(ctx, db, "s4"); err != nil || s.Slug != "draft" {
		t.Fatalf("GetServiceByID should ignore publication, got (%+v, %v)", s, err)
	}
	if s, err := GetServiceBySlug(ctx, db, "draft"); err != nil || s.ID != "s4" {
		t.Fatalf("GetServiceBySlug should ignore publication, got (%+v, %v)", s, err)
	}
	if _, err := GetServiceBySlug(ctx, db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := GetServiceByID(ctx, db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	pub, err := ListPublishedServices(ctx, db)
	if err != nil {
		t.Fatalf("ListPublishedServices: %v", err)
	}
	var ids []string
	for _, s := range pub {
		ids = append(ids, s.ID)
	}
	if !reflect.DeepEqual(ids, []string{"s2", "s1", "s3"}) {
		t.Fatalf("published order = %v", ids)
	}

	feat, err := ListFeaturedServices(ctx, db, 1)
	if err != nil || len(feat) != 1 || feat[0].ID != "s1" {
		t.Fatalf("featured = %+v (%v)", feat, err)
	}

	slugs, err := ListPublishedServiceSlugs(ctx, db)
	if err != nil || !reflect.DeepEqual(slugs, []string{"radio-dealer", "nrcs-loa", "ski-boat-vhf"}) {
		t.Fatalf("slugs = %v (%v)", slugs, err)
	}

	count, maxAt, err := ServicesStats(ctx, db)
	if err != nil || count != 3 || maxAt == nil || !maxAt.Equal(t2) {
		t.Fatalf("stats = (%d, %v, %v)", count, maxAt, err)
	}
}

func TestServicesStats_ZeroRowsAndNoTable(t *testing.T) {
	db := newTestDB(t, &domain.Service{})
	count, maxAt, err := ServicesStats(context.Background(), db)
	if err != nil || count != 0 || maxAt != nil {
		t.Fatalf("expected (0, nil, nil), got (%d, %v, %v)", count, maxAt, err)
	}

	t.Run("no table", func(t *testing.T) {
		bare := newTestDB(t)
		if _, _, err := ServicesStats(context.Background(), bare); err == nil {
			t.Fatalf("expected error due to missing services table")
		}
	})
}
