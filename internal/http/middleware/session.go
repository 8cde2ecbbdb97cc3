package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/bilacert/bilacert-api/internal/auth"
)

const sessionKey = "session"

// SessionVerifier checks a raw token. *auth.Verifier satisfies it.
type SessionVerifier interface {
	Verify(token string) (*auth.Session, error)
}

// Session attaches the caller's verified session, if any. It never rejects:
// public routes ignore the session and the admin read path turns its absence
// into 401 itself.
func Session(v SessionVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := auth.TokenFromRequest(c.Request, cookieName); tok != "" && v != nil {
			if s, err := v.Verify(tok); err == nil {
				c.Set(sessionKey, s)
			} else {
				LoggerFrom(c).Debug().Err(err).Msg("session token rejected")
			}
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by Session, or nil.
func SessionFrom(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*auth.Session)
	return s
}
