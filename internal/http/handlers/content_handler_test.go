package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/bilacert/bilacert-api/internal/domain"
)

func TestListBlogPosts(t *testing.T) {
	content := &stubContent{posts: []domain.BlogPost{{ID: "p1", Slug: "icasa-101", Title: "ICASA 101", Published: true}}}
	r := newTestRouter(New(nil, nil, nil, content), nil)

	w := get(t, r, "/blog/posts?limit=5", nil)
	if w.Code != 200 || !strings.Contains(w.Body.String(), `"slug":"icasa-101"`) {
		t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
	}
	if content.gotLimit != 5 || content.gotCategory != "" {
		t.Fatalf("want ListPosts(5), got category=%q limit=%d", content.gotCategory, content.gotLimit)
	}

	get(t, r, "/blog/posts?category=Compliance", nil)
	if content.gotCategory != "Compliance" || content.gotLimit != 3 {
		t.Fatalf("want ListByCategory(Compliance, 3), got %q %d", content.gotCategory, content.gotLimit)
	}

	get(t, r, "/blog/posts?category=Compliance&limit=500", nil)
	if content.gotLimit != 50 {
		t.Fatalf("category limit should cap at 50, got %d", content.gotLimit)
	}
}

func TestGetBlogPost(t *testing.T) {
	content := &stubContent{bySlug: map[string]*domain.BlogPost{"hello": {ID: "p1", Slug: "hello", Title: "Hello"}}}
	r := newTestRouter(New(nil, nil, nil, content), nil)

	if w := get(t, r, "/blog/posts/hello", nil); w.Code != 200 || !strings.Contains(w.Body.String(), `"title":"Hello"`) {
		t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
	}
	if w := get(t, r, "/blog/posts/nope", nil); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}

	content.err = errors.New("db down")
	if w := get(t, r, "/blog/posts/hello", nil); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestGetBlogAuthor(t *testing.T) {
	bio := "Type approval specialist"
	content := &stubContent{authors: map[string]*domain.Author{"Thandi Mokoena": {ID: "a1", Name: "Thandi Mokoena", Bio: &bio}}}
	r := newTestRouter(New(nil, nil, nil, content), nil)

	w := get(t, r, "/blog/authors/Thandi%20Mokoena", nil)
	if w.Code != 200 || !strings.Contains(w.Body.String(), `"bio":"Type approval specialist"`) {
		t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
	}
	if w := get(t, r, "/blog/authors/Nobody", nil); w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"code":"not_found"`) {
		t.Fatalf("want 404 not_found, got %d %s", w.Code, w.Body.String())
	}

	content.err = errors.New("db down")
	if w := get(t, r, "/blog/authors/Thandi%20Mokoena", nil); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestBlogSlugsAndTestimonials(t *testing.T) {
	content := &stubContent{
		testimonies: []domain.Testimonial{{ID: "t1", PostURL: "https://www.linkedin.com/posts/1"}},
	}
	r := newTestRouter(New(nil, nil, nil, content), nil)

	if w := get(t, r, "/blog/slugs", nil); w.Code != 200 || !strings.Contains(w.Body.String(), `"slugs":[]`) {
		t.Fatalf("nil slugs should encode as []: %d %s", w.Code, w.Body.String())
	}
	w := get(t, r, "/testimonials", nil)
	if w.Code != 200 || !strings.Contains(w.Body.String(), `"postUrl":"https://www.linkedin.com/posts/1"`) {
		t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
	}

	content.err = errors.New("db down")
	for _, p := range []string{"/blog/posts", "/blog/slugs", "/testimonials"} {
		if w := get(t, r, p, nil); w.Code != http.StatusInternalServerError {
			t.Fatalf("%s: want 500, got %d", p, w.Code)
		}
	}
}
