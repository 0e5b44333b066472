package usecase

import (
	"context"
	"strings"
	"time"

	"timeline-to-calendar/internal/task"
)

// ListLists serves task lists from the local store. An empty store is
// hydrated from Google first so a fresh login sees their lists.
func (uc *implUseCase) ListLists(ctx context.Context, userID string) ([]task.TaskList, error) {
	lists, err := uc.repo.ListLists(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLists repo.ListLists: %v", err)
		return nil, err
	}
	if len(lists) > 0 {
		return lists, nil
	}

	if _, err := uc.Sync(ctx, userID); err != nil {
		uc.l.Warnf(ctx, "uc.ListLists initial sync: %v", err)
		return lists, nil
	}
	return uc.repo.ListLists(ctx, userID)
}

// CreateList creates the list in Google Tasks and mirrors it locally.
func (uc *implUseCase) CreateList(ctx context.Context, input task.CreateListInput) (task.TaskList, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.TaskList{}, task.ErrTitleEmpty
	}

	client, err := uc.tasksClient(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList tasksClient: %v", err)
		return task.TaskList{}, err
	}

	created, err := client.CreateTaskList(ctx, input.Title)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList CreateTaskList: %v", err)
		return task.TaskList{}, err
	}

	now := time.Now()
	list := task.TaskList{
		ID:        created.ID,
		UserID:    input.UserID,
		Title:     created.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.SaveList(ctx, list); err != nil {
		uc.l.Errorf(ctx, "uc.CreateList SaveList: %v", err)
		return task.TaskList{}, err
	}

	uc.l.Infof(ctx, "created task list %s for user %s", list.ID, input.UserID)
	return list, nil
}
