package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/internal/task/repository"
	"timeline-to-calendar/pkg/log"
)

const (
	listsFile = "task_lists.json"
	tasksFile = "tasks.json"
)

// Store is a file-backed task repository mirroring Google Tasks state
// plus local-only fields.
type Store struct {
	mu    sync.RWMutex
	dir   string
	l     log.Logger
	lists map[string]map[string]listRecord // userID -> listID -> record
	tasks map[string]map[string]taskRecord // userID -> taskID -> record
}

var _ repository.Repository = (*Store)(nil)

// New opens (or creates) the file store under dir.
func New(dir string, l log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		dir:   dir,
		l:     l,
		lists: make(map[string]map[string]listRecord),
		tasks: make(map[string]map[string]taskRecord),
	}

	if err := loadJSON(filepath.Join(dir, listsFile), &s.lists); err != nil {
		return nil, fmt.Errorf("failed to load task lists: %w", err)
	}
	if err := loadJSON(filepath.Join(dir, tasksFile), &s.tasks); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return s, nil
}

// SaveList creates or overwrites a list record.
func (s *Store) SaveList(ctx context.Context, list task.TaskList) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lists[list.UserID] == nil {
		s.lists[list.UserID] = make(map[string]listRecord)
	}
	s.lists[list.UserID][list.ID] = newListRecord(list)
	return s.persistLists()
}

// GetList returns the list with the given id, or a zero TaskList.
func (s *Store) GetList(ctx context.Context, userID, listID string) (task.TaskList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.lists[userID][listID]
	if !ok {
		return task.TaskList{}, nil
	}
	return rec.toList(userID), nil
}

// ListLists returns all lists for a user, oldest first.
func (s *Store) ListLists(ctx context.Context, userID string) ([]task.TaskList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := make([]task.TaskList, 0, len(s.lists[userID]))
	for _, rec := range s.lists[userID] {
		lists = append(lists, rec.toList(userID))
	}
	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.Before(lists[j].CreatedAt)
	})
	return lists, nil
}

// SaveTask creates or overwrites a task record.
func (s *Store) SaveTask(ctx context.Context, t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks[t.UserID] == nil {
		s.tasks[t.UserID] = make(map[string]taskRecord)
	}
	s.tasks[t.UserID][t.ID] = newTaskRecord(t)
	return s.persistTasks()
}

// GetTask returns the task with the given id, or a zero Task.
func (s *Store) GetTask(ctx context.Context, userID, taskID string) (task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tasks[userID][taskID]
	if !ok {
		return task.Task{}, nil
	}
	return rec.toTask(userID), nil
}

// ListTasks returns the tasks of one list, oldest first.
func (s *Store) ListTasks(ctx context.Context, userID, listID string) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]task.Task, 0)
	for _, rec := range s.tasks[userID] {
		if rec.ListID == listID {
			tasks = append(tasks, rec.toTask(userID))
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// DeleteTask removes a task. Deleting a missing task is a no-op.
func (s *Store) DeleteTask(ctx context.Context, userID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[userID][taskID]; !ok {
		return nil
	}
	delete(s.tasks[userID], taskID)
	return s.persistTasks()
}

func (s *Store) persistLists() error {
	return writeJSON(filepath.Join(s.dir, listsFile), s.lists)
}

func (s *Store) persistTasks() error {
	return writeJSON(filepath.Join(s.dir, tasksFile), s.tasks)
}

// --- file records ---

type listRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newListRecord(l task.TaskList) listRecord {
	return listRecord{
		ID:        l.ID,
		Title:     l.Title,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (r listRecord) toList(userID string) task.TaskList {
	return task.TaskList{
		ID:        r.ID,
		UserID:    userID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type taskRecord struct {
	ID          string     `json:"id"`
	ListID      string     `json:"list_id"`
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

func newTaskRecord(t task.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		ListID:      t.ListID,
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

func (r taskRecord) toTask(userID string) task.Task {
	return task.Task{
		ID:          r.ID,
		UserID:      userID,
		ListID:      r.ListID,
		Title:       r.Title,
		Notes:       r.Notes,
		Status:      r.Status,
		Due:         r.Due,
		Completed:   r.Completed,
		Priority:    r.Priority,
		Parent:      r.Parent,
		WebViewLink: r.WebViewLink,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// --- helpers ---

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes via a temp file and rename so a crash mid-write
// cannot truncate the store.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
