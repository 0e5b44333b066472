package usecase

import (
	"context"
	"strings"
	"time"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/pkg/llmprovider"
)

// Parse converts timeline text into tasks and creates them in the
// target list. Creation failures skip the task rather than abort the
// batch; the counts expose the difference.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.TimelineText) == "" {
		return task.ParseOutput{}, task.ErrTextEmpty
	}

	provider := input.Provider
	if provider == "" {
		provider = llmprovider.ProviderGemini
	}
	if !llmprovider.Supported(provider) {
		return task.ParseOutput{}, task.ErrProviderUnknown
	}

	model := input.Model
	if model == "" {
		model = llmprovider.DefaultModel(provider)
	}

	apiKey, err := uc.apiKeysUC.PlaintextKey(ctx, input.UserID, provider)
	if err != nil {
		if err == apikeys.ErrKeyNotFound {
			return task.ParseOutput{}, task.ErrNoAPIKey
		}
		uc.l.Errorf(ctx, "uc.Parse PlaintextKey: %v", err)
		return task.ParseOutput{}, err
	}

	systemPrompt, err := uc.authUC.GetSystemPrompt(ctx, input.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Parse GetSystemPrompt: %v", err)
		systemPrompt = ""
	}

	p, err := uc.newProvider(provider, apiKey, model)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Parse newProvider: %v", err)
		return task.ParseOutput{}, err
	}

	started := time.Now()
	parsed, err := llmprovider.ParseTasks(ctx, p, input.TimelineText, llmprovider.ParseOptions{
		SystemPrompt: systemPrompt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Parse ParseTasks: %v", err)
		return task.ParseOutput{}, err
	}

	listID := input.ListID
	if listID == "" {
		listID = defaultListID
	}

	created := make([]task.Task, 0, len(parsed))
	for _, pt := range parsed {
		t, err := uc.CreateTask(ctx, task.CreateTaskInput{
			UserID:   input.UserID,
			ListID:   listID,
			Title:    pt.Title,
			Notes:    pt.Notes,
			DueDate:  pt.DueDate,
			DueTime:  pt.DueTime,
			Priority: pt.Priority,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.Parse CreateTask %q: %v", pt.Title, err)
			continue
		}
		created = append(created, t)
	}

	uc.l.Infof(ctx, "created %d/%d tasks from text for user %s", len(created), len(parsed), input.UserID)

	return task.ParseOutput{
		Success:          true,
		CreatedCount:     len(created),
		TotalCount:       len(parsed),
		Tasks:            created,
		ProviderUsed:     provider,
		ModelUsed:        p.Model(),
		ProcessingTimeMs: time.Since(started).Milliseconds(),
	}, nil
}
