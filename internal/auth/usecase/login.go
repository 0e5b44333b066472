package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"timeline-to-calendar/internal/auth"
)

// LoginURL returns the Google consent-screen URL.
func (uc *implUseCase) LoginURL(ctx context.Context) (string, error) {
	return uc.oauth.AuthURL(uuid.NewString()), nil
}

// HandleCallback finishes the OAuth flow: exchanges the code, upserts the
// user, opens a session and returns the frontend redirect carrying the JWT.
func (uc *implUseCase) HandleCallback(ctx context.Context, code string) (auth.CallbackOutput, error) {
	if code == "" {
		return auth.CallbackOutput{}, auth.ErrCallbackCodeEmpty
	}

	token, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback Exchange: %v", err)
		return auth.CallbackOutput{}, err
	}

	info, err := uc.oauth.FetchUserInfo(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback FetchUserInfo: %v", err)
		return auth.CallbackOutput{}, err
	}

	now := time.Now()
	user := auth.User{
		ID:            info.ID,
		Email:         info.Email,
		Name:          info.Name,
		Picture:       info.Picture,
		EmailVerified: info.VerifiedEmail,
		GoogleToken:   token,
		CreatedAt:     now,
		LastLogin:     now,
	}
	if user.Name == "" {
		user.Name = user.Email
	}

	// Returning users keep their system prompt and creation time.
	existing, err := uc.repo.GetUser(ctx, info.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback GetUser: %v", err)
		return auth.CallbackOutput{}, err
	}
	if existing.ID != "" {
		user.SystemPrompt = existing.SystemPrompt
		user.CreatedAt = existing.CreatedAt
	}

	if err := uc.repo.SaveUser(ctx, user); err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback SaveUser: %v", err)
		return auth.CallbackOutput{}, err
	}

	session := auth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Duration(uc.cfg.SessionHours) * time.Hour),
		CreatedAt: now,
	}
	if err := uc.repo.SaveSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback SaveSession: %v", err)
		return auth.CallbackOutput{}, err
	}

	jwt, err := uc.issueToken(user, session)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback issueToken: %v", err)
		return auth.CallbackOutput{}, err
	}

	uc.l.Infof(ctx, "user %s logged in, session %s", user.ID, session.ID)

	return auth.CallbackOutput{
		RedirectURL: fmt.Sprintf("%s/?token=%s", uc.cfg.FrontendURL, url.QueryEscape(jwt)),
	}, nil
}
