// Catalog HTTP handlers.
//
//   - GET /services            (published, weak ETag)
//   - GET /services/featured   (home page selection, weak ETag)
//   - GET /services/slugs      (static path generation)
//   - GET /services/search     (ranked free-text search)
//   - GET /services/{slug}     (single entry, published or not)
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bilacert/bilacert-api/internal/services"
	"github.com/bilacert/bilacert-api/internal/utils"
)

// ListServicesResponse wraps the published catalog.
type ListServicesResponse struct {
	Services []ServiceDTO `json:"services"`
}

// SearchServicesResponse lists matches best first.
type SearchServicesResponse struct {
	Query    string       `json:"query" example:"type approval"`
	Services []ServiceDTO `json:"services"`
}

// notModified sets a weak ETag derived from the catalog stats and reports
// whether the client's copy is current. Stats failures skip the ETag and
// the list is served normally.
func (h *Handlers) notModified(c *gin.Context, scope string) bool {
	count, maxTS, err := h.catalog.Stats(c.Request.Context())
	if err != nil {
		return false
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.UnixNano()
	}
	etag := fmt.Sprintf(`W/"%s:%d:%d"`, scope, count, ts)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}

// ListServices godoc
// @ID          listServices
// @Summary     List published services
// @Description Returns published services by display order. Supports weak ETag via If-None-Match.
// @Tags        Catalog
// @Produce     json
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"  example(W/\"services:8:1717171717\")
//
// @Success     200  {object}  handlers.ListServicesResponse
// @Header      200  {string}  ETag  "Weak ETag for current catalog"
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /services [get]
func (h *Handlers) ListServices(c *gin.Context) {
	if h.notModified(c, "services") {
		return
	}
	items, err := h.catalog.ListPublished(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to list services")
		return
	}
	ok(c, http.StatusOK, ListServicesResponse{Services: toServiceDTOs(items)})
}

// ListFeaturedServices godoc
// @ID          listFeaturedServices
// @Summary     List featured services
// @Tags        Catalog
// @Produce     json
//
// @Param       limit  query  int  false  "Max items"  minimum(1)  maximum(4)  default(4)
//
// @Success     200  {object}  handlers.ListServicesResponse
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /services/featured [get]
func (h *Handlers) ListFeaturedServices(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), services.DefaultFeaturedLimit)
	if h.notModified(c, fmt.Sprintf("featured-%d", limit)) {
		return
	}
	items, err := h.catalog.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to list featured services")
		return
	}
	ok(c, http.StatusOK, ListServicesResponse{Services: toServiceDTOs(items)})
}

// ListServiceSlugs godoc
// @ID          listServiceSlugs
// @Summary     List published service slugs
// @Tags        Catalog
// @Produce     json
// @Success     200  {object}  handlers.SlugsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /services/slugs [get]
func (h *Handlers) ListServiceSlugs(c *gin.Context) {
	slugs, err := h.catalog.PublishedSlugs(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to list service slugs")
		return
	}
	if slugs == nil {
		slugs = []string{}
	}
	ok(c, http.StatusOK, SlugsResponse{Slugs: slugs})
}

// SearchServices godoc
// @ID          searchServices
// @Summary     Search published services
// @Description Ranks published services by word overlap with q across title, descriptions, content and feature lists.
// @Tags        Catalog
// @Produce     json
//
// @Param       q      query  string  true   "Search text"  example(type approval)
// @Param       limit  query  int     false  "Max items"    minimum(1)  maximum(20)  default(5)
//
// @Success     200  {object}  handlers.SearchServicesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing q"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /services/search [get]
func (h *Handlers) SearchServices(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "q is required")
		return
	}
	limit := utils.AtoiDefault(c.Query("limit"), services.DefaultSearchLimit)
	items, err := h.catalog.Search(c.Request.Context(), q, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to search services")
		return
	}
	ok(c, http.StatusOK, SearchServicesResponse{Query: q, Services: toServiceDTOs(items)})
}

// GetService godoc
// @ID          getService
// @Summary     Get a service by slug
// @Tags        Catalog
// @Produce     json
//
// @Param       slug  path  string  true  "Service slug"  example(icasa-type-approvals)
//
// @Success     200  {object}  handlers.ServiceDTO
// @Failure     404  {object}  handlers.ErrorResponse  "Service not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /services/{slug} [get]
func (h *Handlers) GetService(c *gin.Context) {
	svc, err := h.catalog.GetBySlug(c.Request.Context(), c.Param("slug"))
	switch {
	case err == nil:
		ok(c, http.StatusOK, toServiceDTO(svc))
	case errors.Is(err, services.ErrServiceNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "service not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to load service")
	}
}
