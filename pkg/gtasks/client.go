package gtasks

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks API service for one user.
type Client struct {
	service *tasks.Service
}

// NewClient creates a Tasks client from a per-user OAuth token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTaskLists returns all of the user's task lists.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.service.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	lists := make([]TaskList, 0, len(result.Items))
	for _, item := range result.Items {
		lists = append(lists, TaskList{
			ID:      item.Id,
			Title:   item.Title,
			Updated: parseRFC3339(item.Updated),
		})
	}
	return lists, nil
}

// CreateTaskList creates a new task list.
func (c *Client) CreateTaskList(ctx context.Context, title string) (*TaskList, error) {
	created, err := c.service.Tasklists.Insert(&tasks.TaskList{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task list: %w", err)
	}
	return &TaskList{
		ID:      created.Id,
		Title:   created.Title,
		Updated: parseRFC3339(created.Updated),
	}, nil
}

// ListTasks returns tasks in a list. listID "@default" targets the
// user's default list.
func (c *Client) ListTasks(ctx context.Context, listID string, includeCompleted bool) ([]Task, error) {
	call := c.service.Tasks.List(listID).
		ShowCompleted(includeCompleted).
		ShowHidden(includeCompleted).
		Context(ctx)

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]Task, 0, len(result.Items))
	for _, item := range result.Items {
		out = append(out, newTask(item))
	}
	return out, nil
}

// CreateTask inserts a task into a list.
func (c *Client) CreateTask(ctx context.Context, listID string, in CreateTaskInput) (*Task, error) {
	body := &tasks.Task{
		Title: in.Title,
		Notes: in.Notes,
	}
	if in.Due != nil {
		body.Due = in.Due.Format(time.RFC3339)
	}

	call := c.service.Tasks.Insert(listID, body).Context(ctx)
	if in.Parent != "" {
		call = call.Parent(in.Parent)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	t := newTask(created)
	return &t, nil
}

// UpdateTask patches a task. Only non-nil fields are sent.
func (c *Client) UpdateTask(ctx context.Context, listID, taskID string, in UpdateTaskInput) (*Task, error) {
	body := &tasks.Task{Id: taskID}
	if in.Title != nil {
		body.Title = *in.Title
	}
	if in.Notes != nil {
		body.Notes = *in.Notes
	}
	if in.Due != nil {
		body.Due = in.Due.Format(time.RFC3339)
	}
	if in.Status != nil {
		body.Status = *in.Status
		if *in.Status == "needsAction" {
			// Clearing completion requires the field to be sent explicitly.
			body.Completed = nil
			body.ForceSendFields = append(body.ForceSendFields, "Completed")
		}
	}

	updated, err := c.service.Tasks.Patch(listID, taskID, body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	t := newTask(updated)
	return &t, nil
}

// DeleteTask removes a task from a list.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func newTask(item *tasks.Task) Task {
	t := Task{
		ID:          item.Id,
		Title:       item.Title,
		Notes:       item.Notes,
		Status:      item.Status,
		Parent:      item.Parent,
		Position:    item.Position,
		WebViewLink: item.WebViewLink,
		Updated:     parseRFC3339(item.Updated),
	}
	if item.Due != "" {
		if due := parseRFC3339(item.Due); !due.IsZero() {
			t.Due = &due
		}
	}
	if item.Completed != nil && *item.Completed != "" {
		if done := parseRFC3339(*item.Completed); !done.IsZero() {
			t.Completed = &done
		}
	}
	return t
}

func parseRFC3339(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
