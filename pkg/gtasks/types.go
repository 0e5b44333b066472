package gtasks

import "time"

// TaskList is a simplified view of a Google Tasks list.
type TaskList struct {
	ID      string
	Title   string
	Updated time.Time
}

// Task is a simplified view of a Google Task.
type Task struct {
	ID          string
	Title       string
	Notes       string
	Status      string // "needsAction" or "completed"
	Due         *time.Time
	Completed   *time.Time
	Parent      string
	Position    string
	WebViewLink string
	Updated     time.Time
}

// CreateTaskInput is the input for creating a task.
type CreateTaskInput struct {
	Title  string
	Notes  string
	Due    *time.Time
	Parent string
}

// UpdateTaskInput carries the fields of a task update. Nil pointers leave
// the remote value unchanged.
type UpdateTaskInput struct {
	Title  *string
	Notes  *string
	Due    *time.Time
	Status *string
}
