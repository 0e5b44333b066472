package file

import (
	"context"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/pkg/log"
)

func TestUserPersistence(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := New(dir, log.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	user := auth.User{
		ID:            "google-1",
		Email:         "user@example.com",
		Name:          "Test User",
		EmailVerified: true,
		SystemPrompt:  "Alice is alice@example.com",
		GoogleToken: &oauth2.Token{
			AccessToken:  "ya29.test",
			RefreshToken: "refresh",
			Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
		},
		CreatedAt: time.Now().Truncate(time.Second),
		LastLogin: time.Now().Truncate(time.Second),
	}
	if err := store.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser error: %v", err)
	}

	// A fresh store on the same dir sees the saved user.
	reopened, err := New(dir, log.NewNop())
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	got, err := reopened.GetUser(ctx, "google-1")
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got.Email != user.Email || got.SystemPrompt != user.SystemPrompt {
		t.Errorf("user fields lost: %+v", got)
	}
	if got.GoogleToken == nil || got.GoogleToken.RefreshToken != "refresh" {
		t.Errorf("google token lost: %+v", got.GoogleToken)
	}
}

func TestGetUserMissing(t *testing.T) {
	store, err := New(t.TempDir(), log.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got, err := store.GetUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero user, got %+v", got)
	}
}

func TestSessionLifecycle(t *testing.T) {
	store, err := New(t.TempDir(), log.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	ctx := context.Background()

	session := auth.Session{
		ID:        "s1",
		UserID:    "u1",
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
		CreatedAt: time.Now().Truncate(time.Second),
	}
	if err := store.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession error: %v", err)
	}

	got, err := store.GetSession(ctx, "s1")
	if err != nil || got.UserID != "u1" {
		t.Fatalf("GetSession got %+v, %v", got, err)
	}

	if err := store.DeleteSession(ctx, "s1"); err != nil {
		t.Fatalf("DeleteSession error: %v", err)
	}
	got, _ = store.GetSession(ctx, "s1")
	if got.ID != "" {
		t.Errorf("session survived delete")
	}

	// Deleting again is a no-op.
	if err := store.DeleteSession(ctx, "s1"); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	store, err := New(t.TempDir(), log.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	ctx := context.Background()

	store.SaveSession(ctx, auth.Session{ID: "live", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)})
	store.SaveSession(ctx, auth.Session{ID: "stale", UserID: "u1", ExpiresAt: time.Now().Add(-time.Hour)})

	n, err := store.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions error: %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d sessions, want 1", n)
	}
	if got, _ := store.GetSession(ctx, "live"); got.ID == "" {
		t.Errorf("live session removed")
	}
	if got, _ := store.GetSession(ctx, "stale"); got.ID != "" {
		t.Errorf("stale session kept")
	}
}
