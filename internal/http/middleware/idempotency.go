package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey carries the client's retry token on intake POSTs.
const HeaderIdempotencyKey = "Idempotency-Key"

const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay"
)

var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// IdempotencyOptions configures IdempotencyValidator.
type IdempotencyOptions struct {
	// MaxLen caps the key length; <= 0 means 200, the column width.
	MaxLen int
	// Pattern restricts characters; nil means ^[A-Za-z0-9._~\-:]+$.
	Pattern *regexp.Regexp
	// Scope maps a request to the table its key is recorded against. An
	// empty result means the route does not take keys and the header is
	// ignored.
	Scope func(*gin.Context) string
}

// IdempotencyLookup reports whether a live record exists for (scope, key).
// Errors are treated as "no record" so a lookup failure never blocks intake.
type IdempotencyLookup func(ctx context.Context, scope, key string, now time.Time) (bool, error)

// IdempotencyValidator validates Idempotency-Key on POST requests whose
// route has a scope, stashes it for the handler, and marks known replays so
// the rate limiter lets them through. It never serves the replay itself;
// the intake service returns the original id.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || c.Request.Method != http.MethodPost || opts.Scope == nil {
			c.Next()
			return
		}
		scope := opts.Scope(c)
		if scope == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			abortJSON(c, http.StatusBadRequest, "bad_request", "invalid Idempotency-Key")
			return
		}

		c.Set(ctxKeyIdemKey, key)
		if lookup != nil {
			if exists, _ := lookup(c.Request.Context(), scope, key, time.Now().UTC()); exists {
				c.Set(ctxKeyIdemReplay, true)
			}
		}
		c.Next()
	}
}

// GetIdempotencyKey returns the validated key, if the request carried one.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, _ := c.Get(ctxKeyIdemKey)
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the key already has a stored submission. Rate
// limiters let such requests through.
func IsReplay(c *gin.Context) bool {
	return c.GetBool(ctxKeyIdemReplay)
}
