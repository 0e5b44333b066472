package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/auth/repository"
	"timeline-to-calendar/pkg/log"
)

const (
	usersFile    = "users.json"
	sessionsFile = "sessions.json"
)

// Store is a file-backed auth repository. All records live in two JSON
// files under the data dir; every mutation rewrites the affected file.
type Store struct {
	mu       sync.RWMutex
	dir      string
	l        log.Logger
	users    map[string]userRecord
	sessions map[string]sessionRecord
}

var _ repository.Repository = (*Store)(nil)

// New opens (or creates) the file store under dir.
func New(dir string, l log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		dir:      dir,
		l:        l,
		users:    make(map[string]userRecord),
		sessions: make(map[string]sessionRecord),
	}

	if err := loadJSON(filepath.Join(dir, usersFile), &s.users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if err := loadJSON(filepath.Join(dir, sessionsFile), &s.sessions); err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	return s, nil
}

// SaveUser creates or overwrites a user record.
func (s *Store) SaveUser(ctx context.Context, user auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = newUserRecord(user)
	return s.persistUsers()
}

// GetUser returns the user with the given id, or a zero User.
func (s *Store) GetUser(ctx context.Context, id string) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[id]
	if !ok {
		return auth.User{}, nil
	}
	return rec.toUser(), nil
}

// SaveSession creates or overwrites a session record.
func (s *Store) SaveSession(ctx context.Context, session auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = sessionRecord{
		ID:        session.ID,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	return s.persistSessions()
}

// GetSession returns the session with the given id, or a zero Session.
func (s *Store) GetSession(ctx context.Context, id string) (auth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[id]
	if !ok {
		return auth.Session{}, nil
	}
	return auth.Session(rec), nil
}

// DeleteSession removes a session. Deleting a missing session is a no-op.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return nil
	}
	delete(s.sessions, id)
	return s.persistSessions()
}

// DeleteExpiredSessions drops all sessions past expiry and returns the count.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, rec := range s.sessions {
		if now.After(rec.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persistSessions()
}

func (s *Store) persistUsers() error {
	return writeJSON(filepath.Join(s.dir, usersFile), s.users)
}

func (s *Store) persistSessions() error {
	return writeJSON(filepath.Join(s.dir, sessionsFile), s.sessions)
}

// --- file records ---

type userRecord struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	Name          string        `json:"name"`
	Picture       string        `json:"picture,omitempty"`
	EmailVerified bool          `json:"email_verified"`
	SystemPrompt  string        `json:"system_prompt,omitempty"`
	GoogleToken   *oauth2.Token `json:"google_token,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	LastLogin     time.Time     `json:"last_login"`
}

func newUserRecord(u auth.User) userRecord {
	return userRecord{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Picture:       u.Picture,
		EmailVerified: u.EmailVerified,
		SystemPrompt:  u.SystemPrompt,
		GoogleToken:   u.GoogleToken,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}

func (r userRecord) toUser() auth.User {
	return auth.User{
		ID:            r.ID,
		Email:         r.Email,
		Name:          r.Name,
		Picture:       r.Picture,
		EmailVerified: r.EmailVerified,
		SystemPrompt:  r.SystemPrompt,
		GoogleToken:   r.GoogleToken,
		CreatedAt:     r.CreatedAt,
		LastLogin:     r.LastLogin,
	}
}

type sessionRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// --- helpers ---

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes via a temp file and rename so a crash mid-write
// cannot truncate the store.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
