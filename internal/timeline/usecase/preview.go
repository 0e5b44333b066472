package usecase

import (
	"context"
	"strings"
	"time"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/timeline"
	"timeline-to-calendar/pkg/llmprovider"
)

// Preview parses timeline text with the user's chosen provider. The
// user's system prompt, if saved, grounds the parse.
func (uc *implUseCase) Preview(ctx context.Context, input timeline.PreviewInput) (timeline.PreviewOutput, error) {
	if strings.TrimSpace(input.TimelineText) == "" {
		return timeline.PreviewOutput{}, timeline.ErrTextEmpty
	}

	provider := input.Provider
	if provider == "" {
		provider = llmprovider.ProviderGemini
	}
	if !llmprovider.Supported(provider) {
		return timeline.PreviewOutput{}, timeline.ErrProviderUnknown
	}

	model := input.Model
	if model == "" {
		model = llmprovider.DefaultModel(provider)
	}

	apiKey, err := uc.apiKeysUC.PlaintextKey(ctx, input.UserID, provider)
	if err != nil {
		if err == apikeys.ErrKeyNotFound {
			return timeline.PreviewOutput{}, timeline.ErrNoAPIKey
		}
		uc.l.Errorf(ctx, "uc.Preview PlaintextKey: %v", err)
		return timeline.PreviewOutput{}, err
	}

	systemPrompt, err := uc.authUC.GetSystemPrompt(ctx, input.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Preview GetSystemPrompt: %v", err)
		systemPrompt = ""
	}

	p, err := uc.newProvider(provider, apiKey, model)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Preview newProvider: %v", err)
		return timeline.PreviewOutput{}, err
	}

	started := time.Now()
	parsed, err := llmprovider.ParseEvents(ctx, p, input.TimelineText, llmprovider.ParseOptions{
		SystemPrompt: systemPrompt,
		Flexible:     input.Flexible,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Preview ParseEvents: %v", err)
		return timeline.PreviewOutput{}, err
	}

	events := make([]timeline.Event, len(parsed))
	for i, pe := range parsed {
		events[i] = timeline.Event{
			Title:       pe.Title,
			Description: pe.Description,
			StartDate:   pe.StartDate,
			EndDate:     pe.EndDate,
			StartTime:   pe.StartTime,
			EndTime:     pe.EndTime,
			Attendees:   pe.Attendees,
			Location:    pe.Location,
			AllDay:      pe.AllDay,
		}
	}

	uc.l.Infof(ctx, "parsed %d events with %s/%s in %s", len(events), provider, p.Model(), time.Since(started))

	return timeline.PreviewOutput{
		Events:           events,
		TotalEvents:      len(events),
		UsedProvider:     provider,
		UsedModel:        p.Model(),
		ProcessingTimeMs: time.Since(started).Milliseconds(),
	}, nil
}

// Providers returns the catalog for the parsing form.
func (uc *implUseCase) Providers(ctx context.Context) (timeline.ProvidersOutput, error) {
	names := llmprovider.Names()
	models := make(map[string][]string, len(names))
	for _, name := range names {
		models[name] = llmprovider.StaticModels(name)
	}
	return timeline.ProvidersOutput{
		AvailableProviders: names,
		ProviderModels:     models,
	}, nil
}
