package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/odutech/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ======================================================
// AUTH
// ======================================================

func authEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/private", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	return r
}

func TestAuthMiddlewareAcceptsIssuedToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}

	token, err := IssueToken(cfg, 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := serve(authEngine(cfg), req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"user_id":42`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	expiredToken, _ := expired.SignedString([]byte(cfg.JWTSecret))

	otherKey, _ := IssueToken(&config.Config{JWTSecret: "outra"}, 1)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubToken, _ := noSub.SignedString([]byte(cfg.JWTSecret))

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc"},
		{"expired", "Bearer " + expiredToken},
		{"wrong key", "Bearer " + otherKey},
		{"without sub", "Bearer " + noSubToken},
	}

	r := authEngine(cfg)
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		if w := serve(r, req); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d", tt.name, w.Code)
		}
	}
}

// ======================================================
// CORS
// ======================================================

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := serve(r, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allowed origin header = %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(got, "Content-Disposition") {
		t.Errorf("expose headers = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unknown origin got %q", got)
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("unknown origin status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	if w := serve(r, req); w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Errorf("request without origin status = %d", w.Code)
	}
}

func TestCORSAllowAllSkipsCredentials(t *testing.T) {
	for _, origins := range [][]string{nil, {"*"}} {
		r := gin.New()
		r.Use(CORSMiddleware(origins))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://qualquer.example.com")
		w := serve(r, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("%v: allow origin = %q", origins, got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
			t.Errorf("%v: credentials must not be sent, got %q", origins, got)
		}
	}
}

// ======================================================
// LIMITS
// ======================================================

type stubLimiter struct {
	allow bool
	err   error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allow, s.err
}

func TestLoginRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limiter stubLimiter
		want    int
	}{
		{"allowed", stubLimiter{allow: true}, http.StatusOK},
		{"blocked", stubLimiter{allow: false}, http.StatusTooManyRequests},
		{"backend down", stubLimiter{err: errors.New("redis down")}, http.StatusOK},
	}

	for _, tt := range tests {
		r := gin.New()
		r.POST("/login", LoginRateLimit(tt.limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(r, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}

func TestMaxBodySize(t *testing.T) {
	r := gin.New()
	r.POST("/up", MaxBodySize(8), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/up", strings.NewReader("0123456789")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversized: status = %d", w.Code)
	}

	w = serve(r, httptest.NewRequest(http.MethodPost, "/up", strings.NewReader("0123")))
	if w.Code != http.StatusOK {
		t.Errorf("small: status = %d", w.Code)
	}
}
