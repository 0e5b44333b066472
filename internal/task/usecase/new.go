package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/internal/task/repository"
	"timeline-to-calendar/pkg/gtasks"
	"timeline-to-calendar/pkg/llmprovider"
	"timeline-to-calendar/pkg/log"
)

// TasksClient is the slice of pkg/gtasks used by this use case.
type TasksClient interface {
	ListTaskLists(ctx context.Context) ([]gtasks.TaskList, error)
	CreateTaskList(ctx context.Context, title string) (*gtasks.TaskList, error)
	ListTasks(ctx context.Context, listID string, includeCompleted bool) ([]gtasks.Task, error)
	CreateTask(ctx context.Context, listID string, in gtasks.CreateTaskInput) (*gtasks.Task, error)
	UpdateTask(ctx context.Context, listID, taskID string, in gtasks.UpdateTaskInput) (*gtasks.Task, error)
	DeleteTask(ctx context.Context, listID, taskID string) error
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo      repository.Repository
	authUC    auth.UseCase
	apiKeysUC apikeys.UseCase
	l         log.Logger

	// factories, swapped out in tests
	newProvider func(name, apiKey, model string) (llmprovider.Provider, error)
	newTasks    func(ctx context.Context, ts oauth2.TokenSource) (TasksClient, error)
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
func New(repo repository.Repository, authUC auth.UseCase, apiKeysUC apikeys.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		authUC:      authUC,
		apiKeysUC:   apiKeysUC,
		l:           l,
		newProvider: llmprovider.New,
		newTasks: func(ctx context.Context, ts oauth2.TokenSource) (TasksClient, error) {
			return gtasks.NewClient(ctx, ts)
		},
	}
}

// tasksClient builds a Google Tasks client with the user's credentials.
func (uc *implUseCase) tasksClient(ctx context.Context, userID string) (TasksClient, error) {
	ts, err := uc.authUC.Credentials(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.newTasks(ctx, ts)
}
