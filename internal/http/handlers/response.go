// Package handlers provides the HTTP handlers for the public intake API, the
// admin submission read, and the read-only catalog and content endpoints.
//
// Every error goes through fail() so the envelope shape and 5xx logging stay
// uniform:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "error": "submission not found"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilacert/bilacert-api/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go)
	Code string `json:"code" example:"validation_failed"`
	// Human-readable message, safe to show to users
	Error string `json:"error" example:"missing required fields: email"`
	// Required fields that were absent or blank
	Missing []string `json:"missing,omitempty" example:"email"`
	// Fields present with an unusable value
	Invalid []string `json:"invalid,omitempty" example:"formType"`
}

// fail aborts with the error envelope. 5xx responses are logged with the
// request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	failWith(c, status, ErrorResponse{Code: code, Error: msg})
}

func failWith(c *gin.Context, status int, resp ErrorResponse) {
	resp.RequestID = middleware.RequestIDFrom(c)
	if resp.RequestID == "" {
		resp.RequestID = c.Writer.Header().Get("X-Request-ID")
	}
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", resp.Code).
			Str("error", middleware.Redact(resp.Error)).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail, used by the router for 404/405.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
