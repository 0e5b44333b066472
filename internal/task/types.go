package task

import "time"

// Task statuses, matching the Google Tasks API vocabulary.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Priorities. Google Tasks has no priority field, so this lives only in
// the local store.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// TaskList mirrors a Google Tasks list, cached locally.
type TaskList struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a task item. Google Tasks is the remote system of record;
// the local copy adds priority and serves reads.
type Task struct {
	ID          string
	UserID      string
	ListID      string
	Title       string
	Notes       string
	Status      string // needsAction or completed
	Due         *time.Time
	Completed   *time.Time
	Priority    string
	Parent      string
	WebViewLink string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs/Outputs ---

type CreateListInput struct {
	UserID string
	Title  string
}

type ListTasksInput struct {
	UserID           string
	ListID           string
	IncludeCompleted bool
}

type CreateTaskInput struct {
	UserID     string
	ListID     string
	Title      string
	Notes      string
	DueDate    string // YYYY-MM-DD
	DueTime    string // HH:MM
	Priority   string
	ParentTask string
}

// UpdateTaskInput carries a partial update. Nil pointers leave the
// field unchanged; Completed toggles the status both ways.
type UpdateTaskInput struct {
	UserID    string
	ListID    string
	TaskID    string
	Title     *string
	Notes     *string
	DueDate   *string
	DueTime   *string
	Priority  *string
	Completed *bool
}

type ParseInput struct {
	UserID       string
	ListID       string
	TimelineText string
	Provider     string
	Model        string
}

// ParseOutput accounts the created-from-text batch.
type ParseOutput struct {
	Success          bool
	CreatedCount     int
	TotalCount       int
	Tasks            []Task
	ProviderUsed     string
	ModelUsed        string
	ProcessingTimeMs int64
}

type SyncOutput struct {
	SyncedLists int
	SyncedTasks int
}
