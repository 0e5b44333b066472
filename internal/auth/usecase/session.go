package usecase

import (
	"context"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/pkg/scope"
)

func (uc *implUseCase) issueToken(user auth.User, session auth.Session) (string, error) {
	return uc.jwt.Issue(scope.Payload{
		SessionID: session.ID,
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
	}, session.ExpiresAt)
}

// Verify checks a JWT against the session store and returns the user.
// Expired sessions are cleaned up on sight.
func (uc *implUseCase) Verify(ctx context.Context, token string) (auth.VerifyOutput, error) {
	payload, err := uc.jwt.Verify(token)
	if err != nil {
		return auth.VerifyOutput{}, auth.ErrTokenInvalid
	}

	session, err := uc.repo.GetSession(ctx, payload.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Verify GetSession: %v", err)
		return auth.VerifyOutput{}, err
	}
	if session.ID == "" {
		return auth.VerifyOutput{}, auth.ErrTokenInvalid
	}
	if session.Expired() {
		if delErr := uc.repo.DeleteSession(ctx, session.ID); delErr != nil {
			uc.l.Warnf(ctx, "uc.Verify DeleteSession: %v", delErr)
		}
		return auth.VerifyOutput{}, auth.ErrTokenInvalid
	}

	user, err := uc.repo.GetUser(ctx, session.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Verify GetUser: %v", err)
		return auth.VerifyOutput{}, err
	}
	if user.ID == "" {
		return auth.VerifyOutput{}, auth.ErrTokenInvalid
	}

	return auth.VerifyOutput{User: user, SessionID: session.ID}, nil
}

// Profile returns the user record behind an authenticated request.
func (uc *implUseCase) Profile(ctx context.Context, userID string) (auth.User, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile GetUser: %v", err)
		return auth.User{}, err
	}
	if user.ID == "" {
		return auth.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

// Logout revokes the session behind the presented token.
func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "uc.Logout DeleteSession: %v", err)
		return err
	}
	uc.l.Infof(ctx, "session %s revoked", sessionID)
	return nil
}
