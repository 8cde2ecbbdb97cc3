package domain

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		FormSubmission{}.TableName(): "form_submissions",
		Contact{}.TableName():        "contacts",
		Service{}.TableName():        "services",
		User{}.TableName():           "users",
		BlogPost{}.TableName():       "blog_posts",
		Testimonial{}.TableName():    "testimonials",
		Idempotency{}.TableName():    "idempotency",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestFormType_Valid(t *testing.T) {
	for _, ft := range FormTypes {
		if !ft.Valid() {
			t.Fatalf("%q should be valid", ft)
		}
	}
	if len(FormTypes) != 8 {
		t.Fatalf("expected 8 form types, got %d", len(FormTypes))
	}
	for _, bad := range []FormType{"", "Contact", "newsletter"} {
		if bad.Valid() {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleEditor, RoleViewer} {
		if !r.Valid() {
			t.Fatalf("%q should be valid", r)
		}
	}
	if Role("user").Valid() {
		t.Fatalf("legacy role 'user' is not part of the canonical set")
	}
}

func TestMigrations_Columns_AndNulls(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&FormSubmission{}, &Contact{}, &Service{}, &User{}, &BlogPost{}, &Testimonial{}, &Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	for _, col := range []string{
		"id", "form_type", "status", "service_id", "service_name", "full_name", "email",
		"phone", "company", "industry", "details", "internal_notes", "assigned_to",
		"created_at", "updated_at", "completed_at",
	} {
		if !m.HasColumn(&FormSubmission{}, col) {
			t.Fatalf("form_submissions missing column %q", col)
		}
	}
	for _, col := range []string{"id", "name", "email", "phone", "service", "message", "submitted_at"} {
		if !m.HasColumn(&Contact{}, col) {
			t.Fatalf("contacts missing column %q", col)
		}
	}
	if m.HasColumn(&Contact{}, "status") {
		t.Fatalf("contacts must not carry a status column")
	}
	for _, col := range []string{"seo_title", "seo_description", "seo_keywords", "pricing_plans", "process_steps", "success_story"} {
		if !m.HasColumn(&Service{}, col) {
			t.Fatalf("services missing column %q", col)
		}
	}
	if !m.HasIndex(&Idempotency{}, "ux_idem_scope_key") {
		t.Fatalf("expected unique index ux_idem_scope_key")
	}

	// Nil pointers and empty JSON are stored as NULL.
	now := time.Now().UTC()
	fs := &FormSubmission{ID: "s1", FormType: FormTypeContact, Status: StatusPending, FullName: "A", Email: "a@b.c", CreatedAt: now, UpdatedAt: now}
	if err := db.Create(fs).Error; err != nil {
		t.Fatalf("insert submission: %v", err)
	}
	var row map[string]any
	if err := db.Table("form_submissions").Where("id = ?", "s1").Take(&row).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	for _, col := range []string{"phone", "company", "industry", "details", "service_id", "service_name"} {
		if row[col] != nil {
			t.Fatalf("column %q should be NULL, got %#v", col, row[col])
		}
	}

	// Idempotency (scope,key) is unique.
	idem := &Idempotency{ID: "i1", Scope: "contacts", Key: "k", SubmissionID: "s1", ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(idem).Error; err != nil {
		t.Fatalf("insert idempotency: %v", err)
	}
	dup := &Idempotency{ID: "i2", Scope: "contacts", Key: "k", SubmissionID: "s2", ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected unique violation on (scope, key)")
	}
	other := &Idempotency{ID: "i3", Scope: "form_submissions", Key: "k", SubmissionID: "s3", ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("same key in another scope should be allowed: %v", err)
	}
}
