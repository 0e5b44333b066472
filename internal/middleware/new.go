package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"timeline-to-calendar/config"
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/pkg/log"
)

const verifyCacheTTL = 30 * time.Second

type Middleware struct {
	l           log.Logger
	authUC      auth.UseCase
	config      *config.Config
	verifyCache *expirable.LRU[string, auth.VerifyOutput]
}

func New(l log.Logger, authUC auth.UseCase, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		authUC:      authUC,
		config:      cfg,
		verifyCache: expirable.NewLRU[string, auth.VerifyOutput](256, nil, verifyCacheTTL),
	}
}
