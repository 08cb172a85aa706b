package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"altquery/internal/auth"
	"altquery/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionRouter(production bool) *gin.Engine {
	h := NewSessionHandler(auth.NewJWTManager("test-secret", auth.TokenTTL), production)
	r := gin.New()
	r.POST("/jwt", h.Issue)
	r.GET("/logout", h.Logout)
	return r
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.TokenCookie {
			return ck
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

func TestIssueSetsDevCookiePolicy(t *testing.T) {
	r := newSessionRouter(false)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	ck := tokenCookie(t, w)
	if ck.Value == "" {
		t.Fatal("empty token value")
	}
	if !ck.HttpOnly {
		t.Fatal("cookie must be HttpOnly")
	}
	if ck.Secure {
		t.Fatal("dev cookie must not be Secure")
	}
	if ck.SameSite != http.SameSiteStrictMode {
		t.Fatalf("dev SameSite = %v, want Strict", ck.SameSite)
	}
}

func TestIssueSetsProductionCookiePolicy(t *testing.T) {
	r := newSessionRouter(true)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	ck := tokenCookie(t, w)
	if !ck.Secure {
		t.Fatal("production cookie must be Secure")
	}
	if ck.SameSite != http.SameSiteNoneMode {
		t.Fatalf("production SameSite = %v, want None", ck.SameSite)
	}
}

func TestIssueRequiresEmail(t *testing.T) {
	r := newSessionRouter(false)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	r := newSessionRouter(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	ck := tokenCookie(t, w)
	if ck.Value != "" {
		t.Fatalf("cookie value should be cleared, got %q", ck.Value)
	}
	if ck.MaxAge >= 0 {
		t.Fatalf("MaxAge = %d, want negative", ck.MaxAge)
	}
}
