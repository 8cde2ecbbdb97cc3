package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bilacert/bilacert-api/internal/services"
	"github.com/bilacert/bilacert-api/internal/utils"
)

const maxCategoryPosts = 50

// ListPostsResponse wraps a list of posts.
type ListPostsResponse struct {
	Posts []BlogPostDTO `json:"posts"`
}

// ListTestimonialsResponse wraps testimonials, newest first.
type ListTestimonialsResponse struct {
	Testimonials []TestimonialDTO `json:"testimonials"`
}

// ListBlogPosts godoc
// @ID          listBlogPosts
// @Summary     List published blog posts
// @Description Newest first. With category, returns that category's posts (default limit 3).
// @Tags        Content
// @Produce     json
//
// @Param       category  query  string  false  "Category filter"  example(Compliance)
// @Param       limit     query  int     false  "Max items, 0 for all"
//
// @Success     200  {object}  handlers.ListPostsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /blog/posts [get]
func (h *Handlers) ListBlogPosts(c *gin.Context) {
	ctx := c.Request.Context()
	limit := utils.AtoiDefault(c.Query("limit"), 0)

	var err error
	var posts []BlogPostDTO
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		items, e := h.content.ListByCategory(ctx, cat, utils.ClampLimit(limit, services.DefaultCategoryLimit, maxCategoryPosts))
		posts, err = toBlogPostDTOs(items), e
	} else {
		items, e := h.content.ListPosts(ctx, limit)
		posts, err = toBlogPostDTOs(items), e
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to list posts")
		return
	}
	ok(c, http.StatusOK, ListPostsResponse{Posts: posts})
}

// GetBlogPost godoc
// @ID          getBlogPost
// @Summary     Get a published blog post
// @Tags        Content
// @Produce     json
// @Param       slug  path  string  true  "Post slug"
// @Success     200  {object}  handlers.BlogPostDTO
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /blog/posts/{slug} [get]
func (h *Handlers) GetBlogPost(c *gin.Context) {
	p, err := h.content.GetPost(c.Request.Context(), c.Param("slug"))
	switch {
	case err == nil:
		ok(c, http.StatusOK, toBlogPostDTO(p))
	case errors.Is(err, services.ErrBlogPostNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to load post")
	}
}

// GetBlogAuthor godoc
// @ID          getBlogAuthor
// @Summary     Get a blog author by name
// @Tags        Content
// @Produce     json
// @Param       name  path  string  true  "Author name, matched exactly"  example(Thandi Mokoena)
// @Success     200  {object}  handlers.AuthorDTO
// @Failure     404  {object}  handlers.ErrorResponse  "Author not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /blog/authors/{name} [get]
func (h *Handlers) GetBlogAuthor(c *gin.Context) {
	a, err := h.content.GetAuthor(c.Request.Context(), c.Param("name"))
	switch {
	case err == nil:
		ok(c, http.StatusOK, toAuthorDTO(a))
	case errors.Is(err, services.ErrAuthorNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "author not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to load author")
	}
}

// ListBlogSlugs godoc
// @ID          listBlogSlugs
// @Summary     List published blog slugs
// @Tags        Content
// @Produce     json
// @Success     200  {object}  handlers.SlugsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /blog/slugs [get]
func (h *Handlers) ListBlogSlugs(c *gin.Context) {
	slugs, err := h.content.PostSlugs(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to list post slugs")
		return
	}
	if slugs == nil {
		slugs = []string{}
	}
	ok(c, http.StatusOK, SlugsResponse{Slugs: slugs})
}

// ListTestimonials godoc
// @ID          listTestimonials
// @Summary     List testimonials
// @Tags        Content
// @Produce     json
// @Success     200  {object}  handlers.ListTestimonialsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /testimonials [get]
func (h *Handlers) ListTestimonials(c *gin.Context) {
	items, err := h.content.Testimonials(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to list testimonials")
		return
	}
	ok(c, http.StatusOK, ListTestimonialsResponse{Testimonials: toTestimonialDTOs(items)})
}
