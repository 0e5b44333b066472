package auth

import (
	"context"

	"golang.org/x/oauth2"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// OAuth login flow
	LoginURL(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, code string) (CallbackOutput, error)

	// Session lifecycle
	Verify(ctx context.Context, token string) (VerifyOutput, error)
	Profile(ctx context.Context, userID string) (User, error)
	Logout(ctx context.Context, sessionID string) error

	// System prompt
	GetSystemPrompt(ctx context.Context, userID string) (string, error)
	SaveSystemPrompt(ctx context.Context, userID, prompt string) error

	// Google access
	CalendarStatus(ctx context.Context, userID string) (CalendarStatusOutput, error)
	Credentials(ctx context.Context, userID string) (oauth2.TokenSource, error)
}
