package http

import (
	"timeline-to-calendar/internal/timeline"
	"timeline-to-calendar/pkg/log"
)

// Handler is the public interface for the timeline HTTP delivery layer.
type Handler interface {
	Providers(c interface{})
	Preview(c interface{})
	CreateEvents(c interface{})
}

type handler struct {
	l  log.Logger
	uc timeline.UseCase
}

// New creates a new HTTP handler for the timeline domain.
func New(l log.Logger, uc timeline.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
