package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/auth/repository"
	"timeline-to-calendar/pkg/googleauth"
	"timeline-to-calendar/pkg/log"
	"timeline-to-calendar/pkg/scope"
)

// OAuthService is the slice of pkg/googleauth used by this use case.
type OAuthService interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleauth.UserInfo, error)
	TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource
}

// Config carries the non-dependency knobs.
type Config struct {
	SessionHours int
	FrontendURL  string
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo  repository.Repository
	oauth OAuthService
	jwt   scope.Manager
	cfg   Config
	l     log.Logger
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, oauth OAuthService, jwt scope.Manager, cfg Config, l log.Logger) *implUseCase {
	if cfg.SessionHours <= 0 {
		cfg.SessionHours = 24
	}
	return &implUseCase{
		repo:  repo,
		oauth: oauth,
		jwt:   jwt,
		cfg:   cfg,
		l:     l,
	}
}
