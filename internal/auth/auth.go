// Package auth issues and verifies staff session tokens. Sessions are HS256
// JWTs whose subject is the staff member's auth id; the matching users row
// decides what the holder may read.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession means the request carried no token at all.
	ErrNoSession = errors.New("no session")
	// ErrInvalidToken covers bad signatures, wrong issuer, expiry and
	// malformed tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Session is the verified identity behind a request.
type Session struct {
	AuthID    string
	Email     string
	ExpiresAt time.Time
}

// Claims is the JWT payload.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs session tokens.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer. An empty secret yields an Issuer whose Issue
// always fails.
func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue returns a signed token for authID valid for the configured TTL.
func (i *Issuer) Issue(authID, email string) (string, error) {
	if len(i.secret) == 0 {
		return "", errors.New("auth: signing secret not configured")
	}
	if strings.TrimSpace(authID) == "" {
		return "", errors.New("auth: empty auth id")
	}
	now := i.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   authID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verifier checks session tokens.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewVerifier returns a Verifier. With an empty secret every token is
// rejected, which leaves admin reads permanently unauthorized.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Verify parses token and returns its Session. Empty input is ErrNoSession;
// anything else that fails is ErrInvalidToken.
func (v *Verifier) Verify(token string) (*Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrNoSession
	}
	if len(v.secret) == 0 {
		return nil, ErrInvalidToken
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidToken
	}
	return &Session{
		AuthID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// TokenFromRequest reads a bearer token from the Authorization header,
// falling back to the named cookie.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil {
			return c.Value
		}
	}
	return ""
}
