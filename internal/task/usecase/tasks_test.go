package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/pkg/gtasks"
	"timeline-to-calendar/pkg/llmprovider"
	"timeline-to-calendar/pkg/log"
)

// memRepo is an in-memory task repository.
type memRepo struct {
	lists map[string]task.TaskList // key userID/listID
	tasks map[string]task.Task     // key userID/taskID
}

func newMemRepo() *memRepo {
	return &memRepo{lists: map[string]task.TaskList{}, tasks: map[string]task.Task{}}
}

func (m *memRepo) SaveList(_ context.Context, list task.TaskList) error {
	m.lists[list.UserID+"/"+list.ID] = list
	return nil
}

func (m *memRepo) GetList(_ context.Context, userID, listID string) (task.TaskList, error) {
	return m.lists[userID+"/"+listID], nil
}

func (m *memRepo) ListLists(_ context.Context, userID string) ([]task.TaskList, error) {
	var out []task.TaskList
	for _, l := range m.lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memRepo) SaveTask(_ context.Context, t task.Task) error {
	m.tasks[t.UserID+"/"+t.ID] = t
	return nil
}

func (m *memRepo) GetTask(_ context.Context, userID, taskID string) (task.Task, error) {
	return m.tasks[userID+"/"+taskID], nil
}

func (m *memRepo) ListTasks(_ context.Context, userID, listID string) ([]task.Task, error) {
	var out []task.Task
	for _, t := range m.tasks {
		if t.UserID == userID && t.ListID == listID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) DeleteTask(_ context.Context, userID, taskID string) error {
	delete(m.tasks, userID+"/"+taskID)
	return nil
}

// mockTasksClient is a fake Google Tasks backend.
type mockTasksClient struct {
	lists     []gtasks.TaskList
	tasks     map[string][]gtasks.Task // by listID
	nextID    int
	createErr error
	deleted   []string
}

func newMockTasksClient() *mockTasksClient {
	return &mockTasksClient{tasks: map[string][]gtasks.Task{}}
}

func (m *mockTasksClient) ListTaskLists(context.Context) ([]gtasks.TaskList, error) {
	return m.lists, nil
}

func (m *mockTasksClient) CreateTaskList(_ context.Context, title string) (*gtasks.TaskList, error) {
	m.nextID++
	list := gtasks.TaskList{ID: fmt.Sprintf("list-%d", m.nextID), Title: title}
	m.lists = append(m.lists, list)
	return &list, nil
}

func (m *mockTasksClient) ListTasks(_ context.Context, listID string, _ bool) ([]gtasks.Task, error) {
	return m.tasks[listID], nil
}

func (m *mockTasksClient) CreateTask(_ context.Context, listID string, in gtasks.CreateTaskInput) (*gtasks.Task, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	t := gtasks.Task{
		ID:     fmt.Sprintf("task-%d", m.nextID),
		Title:  in.Title,
		Notes:  in.Notes,
		Status: task.StatusNeedsAction,
		Due:    in.Due,
		Parent: in.Parent,
	}
	m.tasks[listID] = append(m.tasks[listID], t)
	return &t, nil
}

func (m *mockTasksClient) UpdateTask(_ context.Context, listID, taskID string, in gtasks.UpdateTaskInput) (*gtasks.Task, error) {
	t := gtasks.Task{ID: taskID}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	return &t, nil
}

func (m *mockTasksClient) DeleteTask(_ context.Context, listID, taskID string) error {
	m.deleted = append(m.deleted, listID+"/"+taskID)
	return nil
}

// taskAuthUC covers the slice of auth.UseCase this domain touches.
type taskAuthUC struct {
	auth.UseCase
}

func (taskAuthUC) GetSystemPrompt(context.Context, string) (string, error) { return "", nil }

func (taskAuthUC) Credentials(context.Context, string) (oauth2.TokenSource, error) {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test"}), nil
}

// taskKeysUC returns a fixed plaintext key.
type taskKeysUC struct {
	apikeys.UseCase

	err error
}

func (m taskKeysUC) PlaintextKey(context.Context, string, string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "key-0123456789", nil
}

func newTaskTestUseCase(repo *memRepo, client *mockTasksClient) *implUseCase {
	uc := New(repo, taskAuthUC{}, taskKeysUC{}, log.NewNop())
	uc.newTasks = func(context.Context, oauth2.TokenSource) (TasksClient, error) {
		return client, nil
	}
	return uc
}

func TestComposeDue(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    string // RFC3339 without zone, empty when nil
		wantErr bool
	}{
		{name: "No date", date: "", clock: "10:00", want: ""},
		{name: "Date only defaults to end of day", date: "2026-09-05", want: "2026-09-05T23:59:59"},
		{name: "Date and clock", date: "2026-09-05", clock: "14:30", want: "2026-09-05T14:30:00"},
		{name: "Clock with seconds", date: "2026-09-05", clock: "14:30:15", want: "2026-09-05T14:30:15"},
		{name: "Bad date", date: "05-09-2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := composeDue(tt.date, tt.clock)
			if (err != nil) != tt.wantErr {
				t.Fatalf("composeDue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected nil due, got %v", got)
				}
				return
			}
			if got == nil || got.Format("2006-01-02T15:04:05") != tt.want {
				t.Errorf("composeDue() = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestCreateTask(t *testing.T) {
	repo := newMemRepo()
	client := newMockTasksClient()
	uc := newTaskTestUseCase(repo, client)

	created, err := uc.CreateTask(context.Background(), task.CreateTaskInput{
		UserID:   "u1",
		Title:    "Submit report",
		DueDate:  "2026-09-05",
		Priority: task.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	if created.ListID != "@default" {
		t.Errorf("empty list should default to @default, got %q", created.ListID)
	}
	if created.Priority != task.PriorityHigh {
		t.Errorf("priority not kept locally, got %q", created.Priority)
	}
	if created.Status != task.StatusNeedsAction {
		t.Errorf("new task status got %q", created.Status)
	}

	// Remote got the task, local mirror holds it too.
	if len(client.tasks["@default"]) != 1 {
		t.Errorf("remote did not receive the task")
	}
	stored, _ := repo.GetTask(context.Background(), "u1", created.ID)
	if stored.ID == "" {
		t.Errorf("task not mirrored locally")
	}
}

func TestCreateTaskValidation(t *testing.T) {
	uc := newTaskTestUseCase(newMemRepo(), newMockTasksClient())

	if _, err := uc.CreateTask(context.Background(), task.CreateTaskInput{UserID: "u1", Title: "  "}); !errors.Is(err, task.ErrTitleEmpty) {
		t.Errorf("expected ErrTitleEmpty, got %v", err)
	}
	if _, err := uc.CreateTask(context.Background(), task.CreateTaskInput{
		UserID: "u1", Title: "ok", Priority: "urgent",
	}); !errors.Is(err, task.ErrPriorityInvalid) {
		t.Errorf("expected ErrPriorityInvalid, got %v", err)
	}
}

func TestListTasksFiltersCompleted(t *testing.T) {
	repo := newMemRepo()
	uc := newTaskTestUseCase(repo, newMockTasksClient())
	ctx := context.Background()

	repo.SaveTask(ctx, task.Task{ID: "t1", UserID: "u1", ListID: "@default", Title: "open", Status: task.StatusNeedsAction})
	repo.SaveTask(ctx, task.Task{ID: "t2", UserID: "u1", ListID: "@default", Title: "done", Status: task.StatusCompleted})

	all, err := uc.ListTasks(ctx, task.ListTasksInput{UserID: "u1", IncludeCompleted: true})
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d tasks with completed, want 2", len(all))
	}

	open, err := uc.ListTasks(ctx, task.ListTasksInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if len(open) != 1 || open[0].Status != task.StatusNeedsAction {
		t.Errorf("completed tasks not filtered: %+v", open)
	}
}

func TestUpdateTaskCompletedToggle(t *testing.T) {
	repo := newMemRepo()
	uc := newTaskTestUseCase(repo, newMockTasksClient())
	ctx := context.Background()

	repo.SaveTask(ctx, task.Task{ID: "t1", UserID: "u1", ListID: "@default", Title: "chore", Status: task.StatusNeedsAction})

	done := true
	updated, err := uc.UpdateTask(ctx, task.UpdateTaskInput{UserID: "u1", TaskID: "t1", Completed: &done})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}
	if updated.Status != task.StatusCompleted || updated.Completed == nil {
		t.Errorf("completing did not set status and timestamp: %+v", updated)
	}

	undone := false
	updated, err = uc.UpdateTask(ctx, task.UpdateTaskInput{UserID: "u1", TaskID: "t1", Completed: &undone})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}
	if updated.Status != task.StatusNeedsAction || updated.Completed != nil {
		t.Errorf("reopening did not clear status and timestamp: %+v", updated)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	uc := newTaskTestUseCase(newMemRepo(), newMockTasksClient())

	title := "renamed"
	if _, err := uc.UpdateTask(context.Background(), task.UpdateTaskInput{
		UserID: "u1", TaskID: "missing", Title: &title,
	}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newMemRepo()
	client := newMockTasksClient()
	uc := newTaskTestUseCase(repo, client)
	ctx := context.Background()

	repo.SaveTask(ctx, task.Task{ID: "t1", UserID: "u1", ListID: "list-1", Title: "chore"})

	if err := uc.DeleteTask(ctx, "u1", "", "t1"); err != nil {
		t.Fatalf("DeleteTask error: %v", err)
	}
	// List falls back to the stored task's list.
	if len(client.deleted) != 1 || client.deleted[0] != "list-1/t1" {
		t.Errorf("remote delete got %v", client.deleted)
	}
	if stored, _ := repo.GetTask(ctx, "u1", "t1"); stored.ID != "" {
		t.Errorf("local copy not removed")
	}

	if err := uc.DeleteTask(ctx, "u1", "", "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestCreateList(t *testing.T) {
	repo := newMemRepo()
	client := newMockTasksClient()
	uc := newTaskTestUseCase(repo, client)

	if _, err := uc.CreateList(context.Background(), task.CreateListInput{UserID: "u1", Title: " "}); !errors.Is(err, task.ErrTitleEmpty) {
		t.Errorf("expected ErrTitleEmpty, got %v", err)
	}

	list, err := uc.CreateList(context.Background(), task.CreateListInput{UserID: "u1", Title: "Errands"})
	if err != nil {
		t.Fatalf("CreateList error: %v", err)
	}
	if list.Title != "Errands" || list.ID == "" {
		t.Errorf("unexpected list %+v", list)
	}

	lists, _ := repo.ListLists(context.Background(), "u1")
	if len(lists) != 1 {
		t.Errorf("list not mirrored locally")
	}
}

func TestSync(t *testing.T) {
	repo := newMemRepo()
	client := newMockTasksClient()
	uc := newTaskTestUseCase(repo, client)
	ctx := context.Background()

	// Local copy carries a priority the remote cannot store.
	repo.SaveTask(ctx, task.Task{
		ID: "t1", UserID: "u1", ListID: "list-1", Title: "old title",
		Priority: task.PriorityHigh, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	client.lists = []gtasks.TaskList{{ID: "list-1", Title: "Inbox"}}
	client.tasks["list-1"] = []gtasks.Task{
		{ID: "t1", Title: "new title", Status: task.StatusNeedsAction},
		{ID: "t2", Title: "fresh remote", Status: task.StatusCompleted},
	}

	out, err := uc.Sync(ctx, "u1")
	if err != nil {
		t.Fatalf("Sync error: %v", err)
	}
	if out.SyncedLists != 1 || out.SyncedTasks != 2 {
		t.Fatalf("got %d lists / %d tasks, want 1/2", out.SyncedLists, out.SyncedTasks)
	}

	t1, _ := repo.GetTask(ctx, "u1", "t1")
	if t1.Title != "new title" {
		t.Errorf("remote title not applied, got %q", t1.Title)
	}
	if t1.Priority != task.PriorityHigh {
		t.Errorf("local priority lost in sync, got %q", t1.Priority)
	}
	if t1.CreatedAt.Year() != 2026 || t1.CreatedAt.Month() != time.January {
		t.Errorf("local CreatedAt lost in sync, got %v", t1.CreatedAt)
	}

	t2, _ := repo.GetTask(ctx, "u1", "t2")
	if t2.ID == "" || t2.Status != task.StatusCompleted {
		t.Errorf("new remote task not stored: %+v", t2)
	}
}

func TestListListsHydratesWhenEmpty(t *testing.T) {
	repo := newMemRepo()
	client := newMockTasksClient()
	client.lists = []gtasks.TaskList{{ID: "list-1", Title: "Inbox"}}
	uc := newTaskTestUseCase(repo, client)

	lists, err := uc.ListLists(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListLists error: %v", err)
	}
	if len(lists) != 1 || lists[0].Title != "Inbox" {
		t.Errorf("empty store should hydrate from remote, got %+v", lists)
	}
}

func TestParse(t *testing.T) {
	repo := newMemRepo()
	client := newMockTasksClient()
	uc := newTaskTestUseCase(repo, client)
	uc.newProvider = func(name, apiKey, model string) (llmprovider.Provider, error) {
		return taskStubProvider{text: `{"tasks": [
			{"title": "Call client", "notes": "urgent", "due_date": "2026-09-05"},
			{"title": "Buy groceries"}
		]}`}, nil
	}

	out, err := uc.Parse(context.Background(), task.ParseInput{UserID: "u1", TimelineText: "call client urgently, buy groceries"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !out.Success || out.CreatedCount != 2 || out.TotalCount != 2 {
		t.Fatalf("got %d/%d created, want 2/2", out.CreatedCount, out.TotalCount)
	}
	if out.ProviderUsed != llmprovider.ProviderGemini {
		t.Errorf("default provider got %q", out.ProviderUsed)
	}
	if out.Tasks[0].Priority != task.PriorityHigh {
		t.Errorf("urgency keyword should infer high priority, got %q", out.Tasks[0].Priority)
	}
	if len(client.tasks["@default"]) != 2 {
		t.Errorf("remote received %d tasks", len(client.tasks["@default"]))
	}
}

func TestParseSkipsFailedCreates(t *testing.T) {
	client := newMockTasksClient()
	client.createErr = errors.New("quota exceeded")
	uc := newTaskTestUseCase(newMemRepo(), client)
	uc.newProvider = func(name, apiKey, model string) (llmprovider.Provider, error) {
		return taskStubProvider{text: `{"tasks": [{"title": "Doomed"}]}`}, nil
	}

	out, err := uc.Parse(context.Background(), task.ParseInput{UserID: "u1", TimelineText: "text"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if out.CreatedCount != 0 || out.TotalCount != 1 {
		t.Errorf("got %d/%d, want 0/1", out.CreatedCount, out.TotalCount)
	}
}

func TestParseValidation(t *testing.T) {
	uc := newTaskTestUseCase(newMemRepo(), newMockTasksClient())

	if _, err := uc.Parse(context.Background(), task.ParseInput{UserID: "u1", TimelineText: " "}); !errors.Is(err, task.ErrTextEmpty) {
		t.Errorf("expected ErrTextEmpty, got %v", err)
	}
	if _, err := uc.Parse(context.Background(), task.ParseInput{UserID: "u1", TimelineText: "text", Provider: "claude"}); !errors.Is(err, task.ErrProviderUnknown) {
		t.Errorf("expected ErrProviderUnknown, got %v", err)
	}

	noKey := New(newMemRepo(), taskAuthUC{}, taskKeysUC{err: apikeys.ErrKeyNotFound}, log.NewNop())
	if _, err := noKey.Parse(context.Background(), task.ParseInput{UserID: "u1", TimelineText: "text"}); !errors.Is(err, task.ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

// taskStubProvider feeds canned parse output.
type taskStubProvider struct {
	text string
}

func (s taskStubProvider) GenerateContent(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Text: s.text}, nil
}

func (s taskStubProvider) ListModels(context.Context) ([]string, error) { return nil, nil }
func (s taskStubProvider) Name() string                                 { return "stub" }
func (s taskStubProvider) Model() string                                { return "stub-model" }
