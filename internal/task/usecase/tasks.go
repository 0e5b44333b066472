package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/pkg/gtasks"
)

const defaultListID = "@default"

// ListTasks serves tasks from the local store, optionally hiding
// completed ones.
func (uc *implUseCase) ListTasks(ctx context.Context, input task.ListTasksInput) ([]task.Task, error) {
	listID := input.ListID
	if listID == "" {
		listID = defaultListID
	}

	tasks, err := uc.repo.ListTasks(ctx, input.UserID, listID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks repo.ListTasks: %v", err)
		return nil, err
	}

	if input.IncludeCompleted {
		return tasks, nil
	}
	open := tasks[:0]
	for _, t := range tasks {
		if t.Status != task.StatusCompleted {
			open = append(open, t)
		}
	}
	return open, nil
}

// CreateTask creates the task in Google Tasks and mirrors it locally
// with the priority, which only the local store can hold.
func (uc *implUseCase) CreateTask(ctx context.Context, input task.CreateTaskInput) (task.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.Task{}, task.ErrTitleEmpty
	}
	if input.Priority != "" && !validPriority(input.Priority) {
		return task.Task{}, task.ErrPriorityInvalid
	}

	listID := input.ListID
	if listID == "" {
		listID = defaultListID
	}

	due, err := composeDue(input.DueDate, input.DueTime)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateTask composeDue: %v", err)
		due = nil
	}

	client, err := uc.tasksClient(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask tasksClient: %v", err)
		return task.Task{}, err
	}

	created, err := client.CreateTask(ctx, listID, gtasks.CreateTaskInput{
		Title:  input.Title,
		Notes:  input.Notes,
		Due:    due,
		Parent: input.ParentTask,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask CreateTask: %v", err)
		return task.Task{}, err
	}

	now := time.Now()
	t := task.Task{
		ID:          created.ID,
		UserID:      input.UserID,
		ListID:      listID,
		Title:       created.Title,
		Notes:       created.Notes,
		Status:      created.Status,
		Due:         due,
		Priority:    input.Priority,
		Parent:      input.ParentTask,
		WebViewLink: created.WebViewLink,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.SaveTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask SaveTask: %v", err)
		return task.Task{}, err
	}

	uc.l.Infof(ctx, "created task %s in list %s for user %s", t.ID, listID, input.UserID)
	return t, nil
}

// UpdateTask applies a partial update, remote first, then local. A
// Completed pointer toggles status both ways.
func (uc *implUseCase) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (task.Task, error) {
	existing, err := uc.repo.GetTask(ctx, input.UserID, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask GetTask: %v", err)
		return task.Task{}, err
	}
	if existing.ID == "" {
		return task.Task{}, task.ErrTaskNotFound
	}
	if input.Priority != nil && *input.Priority != "" && !validPriority(*input.Priority) {
		return task.Task{}, task.ErrPriorityInvalid
	}

	listID := input.ListID
	if listID == "" {
		listID = existing.ListID
	}

	remote := gtasks.UpdateTaskInput{
		Title: input.Title,
		Notes: input.Notes,
	}

	if input.DueDate != nil {
		dueTime := ""
		if input.DueTime != nil {
			dueTime = *input.DueTime
		}
		due, err := composeDue(*input.DueDate, dueTime)
		if err != nil {
			uc.l.Warnf(ctx, "uc.UpdateTask composeDue: %v", err)
		} else {
			remote.Due = due
			existing.Due = due
		}
	}

	now := time.Now()
	if input.Completed != nil {
		if *input.Completed {
			status := task.StatusCompleted
			remote.Status = &status
			existing.Status = task.StatusCompleted
			existing.Completed = &now
		} else {
			status := task.StatusNeedsAction
			remote.Status = &status
			existing.Status = task.StatusNeedsAction
			existing.Completed = nil
		}
	}

	client, err := uc.tasksClient(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask tasksClient: %v", err)
		return task.Task{}, err
	}

	updated, err := client.UpdateTask(ctx, listID, input.TaskID, remote)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask UpdateTask: %v", err)
		return task.Task{}, err
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Notes != nil {
		existing.Notes = *input.Notes
	}
	if input.Priority != nil {
		existing.Priority = *input.Priority
	}
	existing.WebViewLink = updated.WebViewLink
	existing.UpdatedAt = now

	if err := uc.repo.SaveTask(ctx, existing); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask SaveTask: %v", err)
		return task.Task{}, err
	}

	return existing, nil
}

// DeleteTask removes the task remotely and locally.
func (uc *implUseCase) DeleteTask(ctx context.Context, userID, listID, taskID string) error {
	existing, err := uc.repo.GetTask(ctx, userID, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask GetTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if listID == "" {
		listID = existing.ListID
	}

	client, err := uc.tasksClient(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask tasksClient: %v", err)
		return err
	}
	if err := client.DeleteTask(ctx, listID, taskID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask DeleteTask: %v", err)
		return err
	}

	if err := uc.repo.DeleteTask(ctx, userID, taskID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask repo.DeleteTask: %v", err)
		return err
	}

	uc.l.Infof(ctx, "deleted task %s for user %s", taskID, userID)
	return nil
}

func validPriority(p string) bool {
	switch p {
	case task.PriorityHigh, task.PriorityMedium, task.PriorityLow:
		return true
	}
	return false
}

// composeDue builds a due timestamp from a date and optional clock.
// A date without a clock means end of that day.
func composeDue(dueDate, dueTime string) (*time.Time, error) {
	if dueDate == "" {
		return nil, nil
	}
	clock := dueTime
	if clock == "" {
		clock = "23:59:59"
	} else if len(clock) == 5 {
		clock += ":00"
	}
	due, err := time.Parse("2006-01-02T15:04:05", fmt.Sprintf("%sT%s", dueDate, clock))
	if err != nil {
		return nil, err
	}
	return &due, nil
}
