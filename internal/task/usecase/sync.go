package usecase

import (
	"context"
	"time"

	"timeline-to-calendar/internal/task"
)

// Sync pulls lists and tasks from Google Tasks into the local store.
// Local-only fields (priority) survive the overwrite.
func (uc *implUseCase) Sync(ctx context.Context, userID string) (task.SyncOutput, error) {
	client, err := uc.tasksClient(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sync tasksClient: %v", err)
		return task.SyncOutput{}, err
	}

	remoteLists, err := client.ListTaskLists(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sync ListTaskLists: %v", err)
		return task.SyncOutput{}, err
	}

	out := task.SyncOutput{}
	now := time.Now()

	for _, rl := range remoteLists {
		existing, err := uc.repo.GetList(ctx, userID, rl.ID)
		if err != nil {
			return out, err
		}
		list := task.TaskList{
			ID:        rl.ID,
			UserID:    userID,
			Title:     rl.Title,
			CreatedAt: existing.CreatedAt,
			UpdatedAt: now,
		}
		if list.CreatedAt.IsZero() {
			list.CreatedAt = now
		}
		if err := uc.repo.SaveList(ctx, list); err != nil {
			uc.l.Errorf(ctx, "uc.Sync SaveList: %v", err)
			return out, err
		}
		out.SyncedLists++

		remoteTasks, err := client.ListTasks(ctx, rl.ID, true)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Sync ListTasks %s: %v", rl.ID, err)
			continue
		}
		for _, rt := range remoteTasks {
			local, err := uc.repo.GetTask(ctx, userID, rt.ID)
			if err != nil {
				return out, err
			}
			t := task.Task{
				ID:          rt.ID,
				UserID:      userID,
				ListID:      rl.ID,
				Title:       rt.Title,
				Notes:       rt.Notes,
				Status:      rt.Status,
				Due:         rt.Due,
				Completed:   rt.Completed,
				Priority:    local.Priority,
				Parent:      rt.Parent,
				WebViewLink: rt.WebViewLink,
				CreatedAt:   local.CreatedAt,
				UpdatedAt:   now,
			}
			if t.CreatedAt.IsZero() {
				t.CreatedAt = now
			}
			if err := uc.repo.SaveTask(ctx, t); err != nil {
				uc.l.Errorf(ctx, "uc.Sync SaveTask: %v", err)
				return out, err
			}
			out.SyncedTasks++
		}
	}

	uc.l.Infof(ctx, "synced %d lists and %d tasks for user %s", out.SyncedLists, out.SyncedTasks, userID)
	return out, nil
}
