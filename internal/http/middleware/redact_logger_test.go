package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bilacert/bilacert-api/internal/auth"
)

func lastLogLine(t *testing.T, raw string) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &m); err != nil {
		t.Fatalf("decode log line %q: %v", lines[len(lines)-1], err)
	}
	return m
}

func TestRedact(t *testing.T) {
	in := "mail thandi@example.co.za call +27 82 555 1234 row 123e4567-e89b-12d3-a456-426614174000"
	out := Redact(in)
	for _, leak := range []string{"thandi@example.co.za", "555 1234", "123e4567"} {
		if strings.Contains(out, leak) {
			t.Fatalf("%q leaked in %q", leak, out)
		}
	}
	for _, tag := range []string{"[REDACTED:email]", "[REDACTED:phone]", "[REDACTED:id]"} {
		if !strings.Contains(out, tag) {
			t.Fatalf("missing %s in %q", tag, out)
		}
	}
	if Redact("") != "" {
		t.Fatal("empty input should stay empty")
	}
}

func TestRedactingLogger_MasksAndScopes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(RedactingLogger(RedactOptions{MaskHeaders: []string{"X-Api-Key"}}))
	r.GET("/services/:slug", func(c *gin.Context) {
		if zerolog.Ctx(c.Request.Context()).GetLevel() == zerolog.Disabled {
			t.Error("request context has no logger")
		}
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet,
		"/services/icasa?email=a.b@example.com&id=123e4567-e89b-12d3-a456-426614174000", nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Cookie", "bilacert_session=topsecret")
	req.Header.Set("X-Api-Key", "shhh")
	req.Header.Set("X-Custom", "reach me at a@b.com")
	req.Header.Set(requestIDHeader, "rid-log")
	r.ServeHTTP(httptest.NewRecorder(), req)

	raw := buf.String()
	for _, leak := range []string{"secret", "topsecret", "shhh", "a.b@example.com", "a@b.com", "123e4567"} {
		if strings.Contains(raw, leak) {
			t.Fatalf("%q leaked into log: %s", leak, raw)
		}
	}
	m := lastLogLine(t, raw)
	if m["level"] != "info" || m["path"] != "/services/:slug" || m["request_id"] != "rid-log" {
		t.Fatalf("unexpected log line: %v", m)
	}
}

func TestRedactingLogger_Levels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		status int
		ginErr bool
		want   string
	}{
		{"ok", http.StatusOK, false, "info"},
		{"client error", http.StatusNotFound, false, "warn"},
		{"server error", http.StatusInternalServerError, false, "error"},
		{"gin error", http.StatusBadRequest, true, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureLogger(t)
			r := gin.New()
			r.Use(RedactingLogger(RedactOptions{}))
			r.GET("/x", func(c *gin.Context) {
				if tc.ginErr {
					_ = c.Error(http.ErrBodyNotAllowed)
				}
				c.Status(tc.status)
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

			if got := lastLogLine(t, buf.String())["level"]; got != tc.want {
				t.Fatalf("want level %s, got %v", tc.want, got)
			}
		})
	}
}

func TestRedactingLogger_UnmatchedPathAndAuthID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{}))
	r.Use(func(c *gin.Context) {
		c.Set(sessionKey, &auth.Session{AuthID: "staff-1"})
		c.Next()
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	m := lastLogLine(t, buf.String())
	if m["path"] != "/nowhere" {
		t.Fatalf("want raw path for unmatched route, got %v", m["path"])
	}
	if m["auth_id"] != "staff-1" {
		t.Fatalf("want auth_id staff-1, got %v", m["auth_id"])
	}
}
