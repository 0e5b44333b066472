package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"timeline-to-calendar/config"
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/pkg/log"
)

type stubAuthUC struct {
	auth.UseCase
	out   auth.VerifyOutput
	err   error
	calls int
}

func (s *stubAuthUC) Verify(_ context.Context, token string) (auth.VerifyOutput, error) {
	s.calls++
	if s.err != nil {
		return auth.VerifyOutput{}, s.err
	}
	return s.out, nil
}

func newAuthRouter(stub *stubAuthUC) (*gin.Engine, Middleware) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), stub, &config.Config{})

	r := gin.New()
	r.GET("/profile", mw.Auth(), func(c *gin.Context) {
		user, _ := UserFromContext(c)
		c.String(http.StatusOK, user.ID)
	})
	r.POST("/logout", mw.Auth(), mw.InvalidateSession(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, mw
}

func doAuthed(r *gin.Engine, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthRequiresBearer(t *testing.T) {
	r, _ := newAuthRouter(&stubAuthUC{})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token should 401, got %d", w.Code)
	}
}

func TestAuthCachesVerify(t *testing.T) {
	stub := &stubAuthUC{out: auth.VerifyOutput{User: auth.User{ID: "u1"}, SessionID: "s1"}}
	r, _ := newAuthRouter(stub)

	for i := 0; i < 3; i++ {
		if code := doAuthed(r, http.MethodGet, "/profile", "tok-1"); code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, code)
		}
	}
	if stub.calls != 1 {
		t.Errorf("verify called %d times, want 1 (cached)", stub.calls)
	}
}

func TestLogoutInvalidatesVerifyCache(t *testing.T) {
	stub := &stubAuthUC{out: auth.VerifyOutput{User: auth.User{ID: "u1"}, SessionID: "s1"}}
	r, _ := newAuthRouter(stub)

	if code := doAuthed(r, http.MethodGet, "/profile", "tok-1"); code != http.StatusOK {
		t.Fatalf("initial request: got %d", code)
	}
	if code := doAuthed(r, http.MethodPost, "/logout", "tok-1"); code != http.StatusOK {
		t.Fatalf("logout: got %d", code)
	}

	// The session store now rejects the token; the cache must not
	// keep serving the old verification.
	stub.err = errors.New("session revoked")
	if code := doAuthed(r, http.MethodGet, "/profile", "tok-1"); code != http.StatusUnauthorized {
		t.Errorf("revoked session still authenticated: got %d", code)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Basic abc", ""},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := bearerToken(tt.header); got != tt.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
