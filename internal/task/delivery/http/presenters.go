package http

import (
	"time"

	"timeline-to-calendar/internal/task"
)

// --- Request DTOs ---

type createListReq struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

func (r createListReq) validate() error { return nil }

type createTaskReq struct {
	Title      string `json:"title" binding:"required,min=1,max=1024"`
	Notes      string `json:"notes"`
	DueDate    string `json:"due_date"`
	DueTime    string `json:"due_time"`
	Priority   string `json:"priority" binding:"omitempty,oneof=high medium low"`
	ParentTask string `json:"parent_task"`
}

func (r createTaskReq) validate() error { return nil }

func (r createTaskReq) toInput(userID, listID string) task.CreateTaskInput {
	return task.CreateTaskInput{
		UserID:     userID,
		ListID:     listID,
		Title:      r.Title,
		Notes:      r.Notes,
		DueDate:    r.DueDate,
		DueTime:    r.DueTime,
		Priority:   r.Priority,
		ParentTask: r.ParentTask,
	}
}

type updateTaskReq struct {
	Title     *string `json:"title"`
	Notes     *string `json:"notes"`
	DueDate   *string `json:"due_date"`
	DueTime   *string `json:"due_time"`
	Priority  *string `json:"priority"`
	Completed *bool   `json:"completed"`
}

func (r updateTaskReq) validate() error { return nil }

func (r updateTaskReq) toInput(userID, listID, taskID string) task.UpdateTaskInput {
	return task.UpdateTaskInput{
		UserID:    userID,
		ListID:    listID,
		TaskID:    taskID,
		Title:     r.Title,
		Notes:     r.Notes,
		DueDate:   r.DueDate,
		DueTime:   r.DueTime,
		Priority:  r.Priority,
		Completed: r.Completed,
	}
}

type parseReq struct {
	TimelineText string `json:"timeline_text" binding:"required"`
	ListID       string `json:"list_id"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput(userID, listID string) task.ParseInput {
	// Path param wins over the body list_id.
	if listID == "" {
		listID = r.ListID
	}
	return task.ParseInput{
		UserID:       userID,
		ListID:       listID,
		TimelineText: r.TimelineText,
		Provider:     r.Provider,
		Model:        r.Model,
	}
}

// --- Response DTOs ---

type taskListResp struct {
	ListID    string    `json:"list_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskListResp(l task.TaskList) taskListResp {
	return taskListResp{
		ListID:    l.ID,
		Title:     l.Title,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type taskResp struct {
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"`
	Status      string     `json:"status"`
	Due         *time.Time `json:"due,omitempty"`
	Completed   *time.Time `json:"completed,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Parent      string     `json:"parent,omitempty"`
	WebViewLink string     `json:"web_view_link,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		TaskID:      t.ID,
		Title:       t.Title,
		Notes:       t.Notes,
		Status:      t.Status,
		Due:         t.Due,
		Completed:   t.Completed,
		Priority:    t.Priority,
		Parent:      t.Parent,
		WebViewLink: t.WebViewLink,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskResps(tasks []task.Task) []taskResp {
	resps := make([]taskResp, len(tasks))
	for i, t := range tasks {
		resps[i] = newTaskResp(t)
	}
	return resps
}

type parseResp struct {
	Success          bool       `json:"success"`
	CreatedCount     int        `json:"created_count"`
	TotalCount       int        `json:"total_count"`
	Tasks            []taskResp `json:"tasks"`
	ProviderUsed     string     `json:"provider_used"`
	ModelUsed        string     `json:"model_used"`
	ProcessingTimeMs int64      `json:"processing_time_ms"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{
		Success:          out.Success,
		CreatedCount:     out.CreatedCount,
		TotalCount:       out.TotalCount,
		Tasks:            newTaskResps(out.Tasks),
		ProviderUsed:     out.ProviderUsed,
		ModelUsed:        out.ModelUsed,
		ProcessingTimeMs: out.ProcessingTimeMs,
	}
}

type syncResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
