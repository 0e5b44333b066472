package repository

import (
	"context"

	"timeline-to-calendar/internal/task"
)

// Repository is the local task store. Google Tasks is the remote system
// of record; this cache serves reads and carries priority, which the
// remote API cannot store. Getters return zero values for not-found.
type Repository interface {
	SaveList(ctx context.Context, list task.TaskList) error
	GetList(ctx context.Context, userID, listID string) (task.TaskList, error)
	ListLists(ctx context.Context, userID string) ([]task.TaskList, error)

	SaveTask(ctx context.Context, t task.Task) error
	GetTask(ctx context.Context, userID, taskID string) (task.Task, error)
	ListTasks(ctx context.Context, userID, listID string) ([]task.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}
