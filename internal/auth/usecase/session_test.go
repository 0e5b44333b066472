package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/pkg/googleauth"
	"timeline-to-calendar/pkg/log"
	"timeline-to-calendar/pkg/scope"
)

// memAuthRepo is an in-memory user/session store.
type memAuthRepo struct {
	users    map[string]auth.User
	sessions map[string]auth.Session
}

func newMemAuthRepo() *memAuthRepo {
	return &memAuthRepo{users: map[string]auth.User{}, sessions: map[string]auth.Session{}}
}

func (m *memAuthRepo) SaveUser(_ context.Context, user auth.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memAuthRepo) GetUser(_ context.Context, id string) (auth.User, error) {
	return m.users[id], nil
}

func (m *memAuthRepo) SaveSession(_ context.Context, session auth.Session) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *memAuthRepo) GetSession(_ context.Context, id string) (auth.Session, error) {
	return m.sessions[id], nil
}

func (m *memAuthRepo) DeleteSession(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memAuthRepo) DeleteExpiredSessions(_ context.Context) (int, error) {
	n := 0
	for id, s := range m.sessions {
		if s.Expired() {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// mockOAuth fakes the Google consent flow.
type mockOAuth struct {
	token *oauth2.Token
	info  *googleauth.UserInfo

	exchangeErr error
}

func (m *mockOAuth) AuthURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (m *mockOAuth) Exchange(context.Context, string) (*oauth2.Token, error) {
	if m.exchangeErr != nil {
		return nil, m.exchangeErr
	}
	return m.token, nil
}

func (m *mockOAuth) FetchUserInfo(context.Context, *oauth2.Token) (*googleauth.UserInfo, error) {
	return m.info, nil
}

func (m *mockOAuth) TokenSource(_ context.Context, token *oauth2.Token) oauth2.TokenSource {
	return oauth2.StaticTokenSource(token)
}

func validOAuth() *mockOAuth {
	return &mockOAuth{
		token: &oauth2.Token{AccessToken: "ya29.test", RefreshToken: "refresh", Expiry: time.Now().Add(time.Hour)},
		info:  &googleauth.UserInfo{ID: "google-1", Email: "user@example.com", Name: "Test User", VerifiedEmail: true},
	}
}

func newAuthTestUseCase(repo *memAuthRepo, oauth *mockOAuth) *implUseCase {
	return New(repo, oauth, scope.NewManager("test-secret"), Config{
		SessionHours: 24,
		FrontendURL:  "https://app.example.com",
	}, log.NewNop())
}

func TestHandleCallback(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())

	out, err := uc.HandleCallback(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("HandleCallback error: %v", err)
	}

	if !strings.HasPrefix(out.RedirectURL, "https://app.example.com/?token=") {
		t.Errorf("redirect got %q", out.RedirectURL)
	}

	user := repo.users["google-1"]
	if user.Email != "user@example.com" || user.GoogleToken == nil {
		t.Errorf("user not upserted: %+v", user)
	}
	if len(repo.sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(repo.sessions))
	}

	// The redirect token verifies against the new session.
	token := strings.TrimPrefix(out.RedirectURL, "https://app.example.com/?token=")
	verified, err := uc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify of issued token failed: %v", err)
	}
	if verified.User.ID != "google-1" {
		t.Errorf("verified wrong user %q", verified.User.ID)
	}
}

func TestHandleCallbackEmptyCode(t *testing.T) {
	uc := newAuthTestUseCase(newMemAuthRepo(), validOAuth())

	if _, err := uc.HandleCallback(context.Background(), ""); !errors.Is(err, auth.ErrCallbackCodeEmpty) {
		t.Errorf("expected ErrCallbackCodeEmpty, got %v", err)
	}
}

func TestHandleCallbackReturningUser(t *testing.T) {
	repo := newMemAuthRepo()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.users["google-1"] = auth.User{
		ID:           "google-1",
		Email:        "user@example.com",
		SystemPrompt: "Alice is alice@example.com",
		CreatedAt:    created,
	}
	uc := newAuthTestUseCase(repo, validOAuth())

	if _, err := uc.HandleCallback(context.Background(), "auth-code"); err != nil {
		t.Fatalf("HandleCallback error: %v", err)
	}

	user := repo.users["google-1"]
	if user.SystemPrompt != "Alice is alice@example.com" {
		t.Errorf("system prompt lost on re-login")
	}
	if !user.CreatedAt.Equal(created) {
		t.Errorf("creation time rewritten on re-login")
	}
	if user.LastLogin.Equal(created) {
		t.Errorf("last login not bumped")
	}
}

func TestVerify(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())
	ctx := context.Background()

	repo.users["u1"] = auth.User{ID: "u1", Email: "user@example.com"}
	session := auth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	repo.sessions["s1"] = session

	token, err := uc.issueToken(repo.users["u1"], session)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	out, err := uc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if out.User.ID != "u1" || out.SessionID != "s1" {
		t.Errorf("Verify got %+v", out)
	}
}

func TestVerifyRevokedSession(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())

	repo.users["u1"] = auth.User{ID: "u1"}
	session := auth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	token, _ := uc.issueToken(repo.users["u1"], session)

	// Session never stored: token is structurally valid but revoked.
	if _, err := uc.Verify(context.Background(), token); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyExpiredSessionCleanedUp(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())

	repo.users["u1"] = auth.User{ID: "u1"}
	session := auth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)}
	repo.sessions["s1"] = session

	// Token itself outlives the session in this construction.
	token, _ := uc.jwt.Issue(scope.Payload{SessionID: "s1", UserID: "u1"}, time.Now().Add(time.Hour))

	if _, err := uc.Verify(context.Background(), token); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
	if _, ok := repo.sessions["s1"]; ok {
		t.Errorf("expired session not deleted on sight")
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	uc := newAuthTestUseCase(newMemAuthRepo(), validOAuth())

	if _, err := uc.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, auth.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())

	repo.sessions["s1"] = auth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	if err := uc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, ok := repo.sessions["s1"]; ok {
		t.Errorf("session survived logout")
	}
}

func TestProfile(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())

	if _, err := uc.Profile(context.Background(), "missing"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	repo.users["u1"] = auth.User{ID: "u1", Email: "user@example.com"}
	user, err := uc.Profile(context.Background(), "u1")
	if err != nil || user.Email != "user@example.com" {
		t.Errorf("Profile got %+v, %v", user, err)
	}
}

func TestSystemPromptRoundTrip(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())
	ctx := context.Background()

	repo.users["u1"] = auth.User{ID: "u1"}

	if err := uc.SaveSystemPrompt(ctx, "u1", "Budi is budi@example.com"); err != nil {
		t.Fatalf("SaveSystemPrompt error: %v", err)
	}
	got, err := uc.GetSystemPrompt(ctx, "u1")
	if err != nil || got != "Budi is budi@example.com" {
		t.Errorf("GetSystemPrompt got %q, %v", got, err)
	}

	// Empty prompt clears the saved one.
	if err := uc.SaveSystemPrompt(ctx, "u1", ""); err != nil {
		t.Fatalf("SaveSystemPrompt clear error: %v", err)
	}
	if got, _ := uc.GetSystemPrompt(ctx, "u1"); got != "" {
		t.Errorf("prompt not cleared, got %q", got)
	}

	if err := uc.SaveSystemPrompt(ctx, "missing", "x"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCalendarStatus(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())
	ctx := context.Background()

	repo.users["no-token"] = auth.User{ID: "no-token"}
	repo.users["expired"] = auth.User{ID: "expired", GoogleToken: &oauth2.Token{
		AccessToken: "stale", Expiry: time.Now().Add(-time.Hour),
	}}
	repo.users["refreshable"] = auth.User{ID: "refreshable", GoogleToken: &oauth2.Token{
		AccessToken: "stale", RefreshToken: "refresh", Expiry: time.Now().Add(-time.Hour),
	}}
	repo.users["active"] = auth.User{ID: "active", GoogleToken: &oauth2.Token{
		AccessToken: "fresh", Expiry: time.Now().Add(time.Hour),
	}}

	tests := []struct {
		userID      string
		wantAccess  bool
		wantExpired bool
		wantReauth  bool
	}{
		{"no-token", false, false, true},
		{"expired", false, true, true},
		{"refreshable", true, true, false},
		{"active", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			out, err := uc.CalendarStatus(ctx, tt.userID)
			if err != nil {
				t.Fatalf("CalendarStatus error: %v", err)
			}
			if out.HasCalendarAccess != tt.wantAccess || out.TokenExpired != tt.wantExpired || out.NeedsReauth != tt.wantReauth {
				t.Errorf("got %+v", out)
			}
		})
	}

	if _, err := uc.CalendarStatus(ctx, "missing"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCredentials(t *testing.T) {
	repo := newMemAuthRepo()
	uc := newAuthTestUseCase(repo, validOAuth())
	ctx := context.Background()

	if _, err := uc.Credentials(ctx, "missing"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	repo.users["no-token"] = auth.User{ID: "no-token"}
	if _, err := uc.Credentials(ctx, "no-token"); !errors.Is(err, auth.ErrNoGoogleToken) {
		t.Errorf("expected ErrNoGoogleToken, got %v", err)
	}

	repo.users["u1"] = auth.User{ID: "u1", GoogleToken: &oauth2.Token{
		AccessToken: "ya29.current", Expiry: time.Now().Add(time.Hour),
	}}
	ts, err := uc.Credentials(ctx, "u1")
	if err != nil {
		t.Fatalf("Credentials error: %v", err)
	}
	tok, err := ts.Token()
	if err != nil || tok.AccessToken != "ya29.current" {
		t.Errorf("Token got %+v, %v", tok, err)
	}
}
