package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RedactOptions lists extra headers to mask on top of Authorization, Cookie
// and Set-Cookie.
type RedactOptions struct {
	MaskHeaders []string
}

var (
	// UUIDs go first so the phone pattern cannot eat their digit groups.
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// Redact scrubs ids, emails and phone numbers out of s.
func Redact(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// RedactingLogger attaches a request-scoped zerolog.Logger to both the gin
// context and the request context, then writes one access log line per
// request with query and header values scrubbed. Bodies are never logged;
// intake payloads carry names, emails and phone numbers.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	masked := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		l := log.With().Str("request_id", RequestIDFrom(c)).Logger()
		c.Set(loggerKey, &l)
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		headers := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := masked[strings.ToLower(k)]; ok {
				headers[k] = "[REDACTED]"
				continue
			}
			headers[k] = Redact(strings.Join(vv, ", "))
		}

		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		var ev *zerolog.Event
		switch {
		case len(c.Errors) > 0 || status >= 500:
			ev = l.Error()
			if len(c.Errors) > 0 {
				ev = ev.Str("errors", Redact(c.Errors.String()))
			}
		case status >= 400:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		if s := SessionFrom(c); s != nil {
			ev = ev.Str("auth_id", s.AuthID)
		}
		ev.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", Redact(c.Request.URL.RawQuery)).
			Str("remote_ip", c.ClientIP()).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", headers).
			Msg("http_request")
	}
}
