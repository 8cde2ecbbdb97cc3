package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bilacert/bilacert-api/internal/http/middleware"
	"github.com/bilacert/bilacert-api/internal/services"
)

// GetSubmission godoc
// @ID          getSubmission
// @Summary     Read one submission (staff only)
// @Description Returns the full form submission to an active admin. The session comes from a Bearer token or the session cookie.
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Submission ID"  format(uuid)
//
// @Success     200  {object}  handlers.SubmissionDTO
// @Failure     401  {object}  handlers.ErrorResponse  "No session"
// @Failure     403  {object}  handlers.ErrorResponse  "Not an active admin"
// @Failure     404  {object}  handlers.ErrorResponse  "No such submission"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /submissions/{id} [get]
func (h *Handlers) GetSubmission(c *gin.Context) {
	h.readSubmission(c, c.Param("id"))
}

// FindSubmission godoc
// @ID          findSubmission
// @Summary     Read one submission by query (staff only)
// @Description Query-string form of getSubmission kept for existing admin clients.
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
//
// @Param       submissionId  query  string  true  "Submission ID"  format(uuid)
//
// @Success     200  {object}  handlers.SubmissionDTO
// @Failure     400  {object}  handlers.ErrorResponse  "submissionId missing"
// @Failure     401  {object}  handlers.ErrorResponse  "No session"
// @Failure     403  {object}  handlers.ErrorResponse  "Not an active admin"
// @Failure     404  {object}  handlers.ErrorResponse  "No such submission"
// @Router      /submissions [get]
func (h *Handlers) FindSubmission(c *gin.Context) {
	id := strings.TrimSpace(c.Query("submissionId"))
	if id == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "submissionId is required")
		return
	}
	h.readSubmission(c, id)
}

func (h *Handlers) readSubmission(c *gin.Context, id string) {
	sub, err := h.reader.Get(c.Request.Context(), middleware.SessionFrom(c), id)
	switch {
	case err == nil:
		ok(c, http.StatusOK, toSubmissionDTO(sub))
	case errors.Is(err, services.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
	case errors.Is(err, services.ErrForbidden):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "admin role required")
	case errors.Is(err, services.ErrSubmissionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "submission not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
