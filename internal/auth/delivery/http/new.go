package http

import (
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c interface{})
	Callback(c interface{})
	Verify(c interface{})
	Profile(c interface{})
	Logout(c interface{})
	GetSystemPrompt(c interface{})
	SaveSystemPrompt(c interface{})
	CalendarStatus(c interface{})
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
