// Package middleware contains the Gin middleware shared by every route:
// correlation ids, redacted access logs, panic recovery, session attachment,
// idempotency key validation, rate limiting, metrics and security headers.
//
// Error bodies written here use the same envelope as the handlers package:
//
//	{"request_id": "...", "code": "too_many_requests", "error": "rate limit exceeded"}
package middleware

import (
	"net/http"
	"regexp"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey    = "requestID"
	loggerKey       = "logger"
	requestIDHeader = "X-Request-ID"
)

// Incoming ids are echoed into logs and headers, so only plain tokens pass.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._\-]{1,128}$`)

// RequestID reuses a well-formed X-Request-ID from the client or mints a
// UUID, then stores it in the context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if !requestIDPattern.MatchString(rid) {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	v, _ := c.Get(requestIDKey)
	s, _ := v.(string)
	return s
}

// Recovery turns a panic into a 500 envelope and logs the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFrom(c).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				if c.Writer.Written() {
					c.AbortWithStatus(http.StatusInternalServerError)
					return
				}
				abortJSON(c, http.StatusInternalServerError, "internal_error", "internal server error")
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger attached by RedactingLogger,
// or a copy of the global logger carrying the request id.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Str("request_id", RequestIDFrom(c)).Logger()
	return &l
}

// abortJSON writes the shared error envelope and stops the chain.
func abortJSON(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": RequestIDFrom(c),
		"code":       code,
		"error":      msg,
	})
}
