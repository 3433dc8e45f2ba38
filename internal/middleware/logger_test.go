package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpager/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

// captureLogs points the global logger at a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	logger.InitWithOutput(&buf)
	t.Cleanup(logger.Init)
	return &buf
}

func TestRequestLogger_LevelAndFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		path       string
		handler    gin.HandlerFunc
		wantStatus int
		wantLevel  string
		wantErrors string
	}{
		{
			name:       "ok",
			path:       "/ok",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "pong") },
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name: "unbound link",
			path: "/links/9",
			handler: func(c *gin.Context) {
				AbortWithError(c, http.StatusNotFound, "link not found", errors.New("link 9 is not bound"))
			},
			wantStatus: http.StatusNotFound,
			wantLevel:  "warn",
			wantErrors: "link 9 is not bound",
		},
		{
			name:       "attached error",
			path:       "/boom",
			handler:    func(c *gin.Context) { _ = c.Error(errors.New("db down")) },
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "error",
			wantErrors: "db down",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureLogs(t)

			r := gin.New()
			r.Use(RequestID(), RequestLogger(), ErrorHandler)
			r.GET(tc.path, tc.handler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", w.Code, tc.wantStatus)
			}

			var entry map[string]any
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
				t.Fatalf("log line is not one json object: %v (%q)", err, buf.String())
			}
			if entry["message"] != "http_request" || entry["level"] != tc.wantLevel {
				t.Fatalf("unexpected entry %v", entry)
			}
			if entry["path"] != tc.path || entry["status"] != float64(tc.wantStatus) {
				t.Fatalf("unexpected path/status in %v", entry)
			}
			if entry["request_id"] != w.Header().Get(RequestIDHeader) {
				t.Fatalf("request_id %v does not match header %q", entry["request_id"], w.Header().Get(RequestIDHeader))
			}
			errs, _ := entry["errors"].(string)
			if tc.wantErrors == "" && errs != "" || !strings.Contains(errs, tc.wantErrors) {
				t.Fatalf("errors field %q, want %q", errs, tc.wantErrors)
			}
		})
	}
}

func TestErrorHandler_WritesErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusBadGateway)
		_ = c.Error(errors.New("upstream unreachable"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status %d, want 502", w.Code)
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "Internal server error" || body.Error != "upstream unreachable" {
		t.Fatalf("unexpected body %+v", body)
	}
}
