package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task lists
	ListLists(ctx context.Context, userID string) ([]TaskList, error)
	CreateList(ctx context.Context, input CreateListInput) (TaskList, error)

	// Tasks
	ListTasks(ctx context.Context, input ListTasksInput) ([]Task, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (Task, error)
	DeleteTask(ctx context.Context, userID, listID, taskID string) error

	// Parse creates tasks straight from timeline text, one remote
	// insert per parsed task.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Sync pulls lists and tasks from Google Tasks into the local store.
	Sync(ctx context.Context, userID string) (SyncOutput, error)
}
