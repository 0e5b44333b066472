package http

import (
	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/pkg/log"
)

// Handler is the public interface for the apikeys HTTP delivery layer.
type Handler interface {
	Providers(c interface{})
	List(c interface{})
	Save(c interface{})
	Remove(c interface{})
	Test(c interface{})
	Models(c interface{})
}

type handler struct {
	l  log.Logger
	uc apikeys.UseCase
}

// New creates a new HTTP handler for the apikeys domain.
func New(l log.Logger, uc apikeys.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
