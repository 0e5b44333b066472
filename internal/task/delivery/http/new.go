package http

import (
	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	ListLists(c interface{})
	CreateList(c interface{})
	ListTasks(c interface{})
	CreateTask(c interface{})
	UpdateTask(c interface{})
	DeleteTask(c interface{})
	Parse(c interface{})
	Sync(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
