package usecase

import (
	"context"

	"timeline-to-calendar/internal/auth"
)

func (uc *implUseCase) GetSystemPrompt(ctx context.Context, userID string) (string, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetSystemPrompt GetUser: %v", err)
		return "", err
	}
	if user.ID == "" {
		return "", auth.ErrUserNotFound
	}
	return user.SystemPrompt, nil
}

// SaveSystemPrompt stores the user's prompt prefix. An empty prompt
// clears any previously saved one.
func (uc *implUseCase) SaveSystemPrompt(ctx context.Context, userID, prompt string) error {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveSystemPrompt GetUser: %v", err)
		return err
	}
	if user.ID == "" {
		return auth.ErrUserNotFound
	}

	user.SystemPrompt = prompt
	if err := uc.repo.SaveUser(ctx, user); err != nil {
		uc.l.Errorf(ctx, "uc.SaveSystemPrompt SaveUser: %v", err)
		return err
	}
	return nil
}
