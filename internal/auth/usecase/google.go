package usecase

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/auth"
)

// CalendarStatus reports whether the user's stored Google token can
// still reach the Calendar and Tasks APIs.
func (uc *implUseCase) CalendarStatus(ctx context.Context, userID string) (auth.CalendarStatusOutput, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalendarStatus GetUser: %v", err)
		return auth.CalendarStatusOutput{}, err
	}
	if user.ID == "" {
		return auth.CalendarStatusOutput{}, auth.ErrUserNotFound
	}

	if user.GoogleToken == nil || user.GoogleToken.AccessToken == "" {
		return auth.CalendarStatusOutput{
			HasCalendarAccess: false,
			NeedsReauth:       true,
			Message:           "No Google credentials on file. Sign in with Google again.",
		}, nil
	}

	expired := !user.GoogleToken.Expiry.IsZero() && user.GoogleToken.Expiry.Before(time.Now())
	if expired && user.GoogleToken.RefreshToken == "" {
		return auth.CalendarStatusOutput{
			HasCalendarAccess: false,
			TokenExpired:      true,
			NeedsReauth:       true,
			Message:           "Google access expired and cannot be refreshed. Sign in with Google again.",
		}, nil
	}

	return auth.CalendarStatusOutput{
		HasCalendarAccess: true,
		TokenExpired:      expired,
		Message:           "Google Calendar access is active.",
	}, nil
}

// Credentials returns a refreshing token source for the user's Google
// account. Refreshed tokens are persisted so the refresh only happens
// once per expiry.
func (uc *implUseCase) Credentials(ctx context.Context, userID string) (oauth2.TokenSource, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Credentials GetUser: %v", err)
		return nil, err
	}
	if user.ID == "" {
		return nil, auth.ErrUserNotFound
	}
	if user.GoogleToken == nil || user.GoogleToken.AccessToken == "" {
		return nil, auth.ErrNoGoogleToken
	}

	src := uc.oauth.TokenSource(ctx, user.GoogleToken)
	return &persistingTokenSource{
		ctx:  ctx,
		uc:   uc,
		user: user,
		src:  src,
		last: user.GoogleToken,
	}, nil
}

// persistingTokenSource saves refreshed tokens back to the user record.
type persistingTokenSource struct {
	ctx  context.Context
	uc   *implUseCase
	user auth.User
	src  oauth2.TokenSource
	last *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != s.last.AccessToken {
		s.user.GoogleToken = tok
		if saveErr := s.uc.repo.SaveUser(s.ctx, s.user); saveErr != nil {
			s.uc.l.Warnf(s.ctx, "persist refreshed token: %v", saveErr)
		}
		s.last = tok
	}
	return tok, nil
}
