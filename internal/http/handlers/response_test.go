package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error envelope %q: %v", w.Body.String(), err)
	}
	return er
}

func Test_fail_500_LogsAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r.Use(func(c *gin.Context) {
		c.Set("requestID", "rid-500")
		c.Set("logger", &logger)
		c.Next()
	})
	r.GET("/boom", func(c *gin.Context) {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "insert contacts: disk full for jane@example.com")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	er := decodeError(t, w)
	if er.RequestID != "rid-500" || er.Code != ErrCodeInternal || !strings.Contains(er.Error, "disk full") {
		t.Fatalf("unexpected envelope: %+v", er)
	}
	logs := buf.String()
	if !strings.Contains(logs, "api error") {
		t.Fatalf("5xx not logged: %s", logs)
	}
	if strings.Contains(logs, "jane@example.com") {
		t.Fatalf("email leaked into log: %s", logs)
	}
}

func Test_fail_4xx_NoLogAndHeaderFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-hdr")
		c.Set("logger", &logger)
		c.Next()
	})
	r.GET("/missing", func(c *gin.Context) { Fail(c, http.StatusNotFound, ErrCodeNotFound, "nope") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	er := decodeError(t, w)
	if w.Code != http.StatusNotFound || er.RequestID != "rid-hdr" || er.Code != ErrCodeNotFound {
		t.Fatalf("unexpected %d %+v", w.Code, er)
	}
	if buf.Len() != 0 {
		t.Fatalf("4xx should not log: %s", buf.String())
	}
	if strings.Contains(w.Body.String(), `"missing"`) {
		t.Fatalf("empty missing list should be omitted: %s", w.Body.String())
	}
}
