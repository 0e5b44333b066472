package repository

import (
	"context"

	"timeline-to-calendar/internal/auth"
)

// Repository persists users and sessions. Implementations return zero
// values (not errors) for lookups that find nothing.
//
//go:generate mockery --name Repository
type Repository interface {
	// Users
	SaveUser(ctx context.Context, user auth.User) error
	GetUser(ctx context.Context, id string) (auth.User, error)

	// Sessions
	SaveSession(ctx context.Context, session auth.Session) error
	GetSession(ctx context.Context, id string) (auth.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
