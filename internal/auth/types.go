package auth

import (
	"time"

	"golang.org/x/oauth2"
)

// User is the core user entity. Google is the identity provider; the
// stored OAuth token grants Calendar/Tasks access on the user's behalf.
type User struct {
	ID            string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool

	// SystemPrompt is the user's free-text grounding for LLM parsing
	// (contacts, locations, abbreviations). Overwritten wholesale.
	SystemPrompt string

	GoogleToken *oauth2.Token

	CreatedAt time.Time
	LastLogin time.Time
}

// Session is one authenticated login. The JWT handed to the client
// references it by ID; the session row is the revocation point.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// --- UseCase Outputs ---

type CallbackOutput struct {
	RedirectURL string
}

type VerifyOutput struct {
	User      User
	SessionID string
}

type CalendarStatusOutput struct {
	HasCalendarAccess bool
	TokenExpired      bool
	NeedsReauth       bool
	Message           string
}
