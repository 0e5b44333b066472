package http

import (
	"timeline-to-calendar/internal/timeline"
)

// --- Request DTOs ---

type previewReq struct {
	TimelineText string `json:"timeline_text" binding:"required"`
	LLMProvider  string `json:"llm_provider"`
	LLMModel     string `json:"llm_model"`
	Flexible     bool   `json:"flexible"`
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput(userID string) timeline.PreviewInput {
	return timeline.PreviewInput{
		UserID:       userID,
		TimelineText: r.TimelineText,
		Provider:     r.LLMProvider,
		Model:        r.LLMModel,
		Flexible:     r.Flexible,
	}
}

type eventReq struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	StartDate    string   `json:"start_date" binding:"required"`
	EndDate      string   `json:"end_date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Attendees    []string `json:"attendees"`
	Location     string   `json:"location"`
	AllDay       bool     `json:"all_day"`
	Status       string   `json:"status" binding:"omitempty,oneof=confirmed tentative cancelled"`
	Visibility   string   `json:"visibility" binding:"omitempty,oneof=default public private confidential"`
	Transparency string   `json:"transparency" binding:"omitempty,oneof=opaque transparent"`
	ColorID      string   `json:"color_id"`
	Recurrence   []string `json:"recurrence"`
}

func (r eventReq) toEvent() timeline.Event {
	return timeline.Event{
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Attendees:    r.Attendees,
		Location:     r.Location,
		AllDay:       r.AllDay,
		Status:       r.Status,
		Visibility:   r.Visibility,
		Transparency: r.Transparency,
		ColorID:      r.ColorID,
		Recurrence:   r.Recurrence,
	}
}

type createEventsReq struct {
	Events           []eventReq `json:"events" binding:"required"`
	TargetCalendarID string     `json:"target_calendar_id"`
}

func (r createEventsReq) validate() error { return nil }

func (r createEventsReq) toInput(userID string) timeline.CreateEventsInput {
	events := make([]timeline.Event, len(r.Events))
	for i, ev := range r.Events {
		events[i] = ev.toEvent()
	}
	return timeline.CreateEventsInput{
		UserID:           userID,
		Events:           events,
		TargetCalendarID: r.TargetCalendarID,
	}
}

// --- Response DTOs ---

type eventResp struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	StartTime    string   `json:"start_time,omitempty"`
	EndTime      string   `json:"end_time,omitempty"`
	Attendees    []string `json:"attendees"`
	Location     string   `json:"location,omitempty"`
	AllDay       bool     `json:"all_day"`
	Status       string   `json:"status,omitempty"`
	Visibility   string   `json:"visibility,omitempty"`
	Transparency string   `json:"transparency,omitempty"`
	ColorID      string   `json:"color_id,omitempty"`
	Recurrence   []string `json:"recurrence,omitempty"`
}

func newEventResp(ev timeline.Event) eventResp {
	attendees := ev.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return eventResp{
		Title:        ev.Title,
		Description:  ev.Description,
		StartDate:    ev.StartDate,
		EndDate:      ev.EndDate,
		StartTime:    ev.StartTime,
		EndTime:      ev.EndTime,
		Attendees:    attendees,
		Location:     ev.Location,
		AllDay:       ev.AllDay,
		Status:       ev.Status,
		Visibility:   ev.Visibility,
		Transparency: ev.Transparency,
		ColorID:      ev.ColorID,
		Recurrence:   ev.Recurrence,
	}
}

type previewResp struct {
	ParsedEvents     []eventResp `json:"parsed_events"`
	TotalEvents      int         `json:"total_events"`
	UsedProvider     string      `json:"used_provider"`
	UsedModel        string      `json:"used_model"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
}

func (h *handler) newPreviewResp(out timeline.PreviewOutput) previewResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return previewResp{
		ParsedEvents:     events,
		TotalEvents:      out.TotalEvents,
		UsedProvider:     out.UsedProvider,
		UsedModel:        out.UsedModel,
		ProcessingTimeMs: out.ProcessingTimeMs,
	}
}

type createdEventResp struct {
	Title    string `json:"title"`
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link,omitempty"`
}

type failedEventResp struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

type createEventsResp struct {
	CreatedEvents []createdEventResp `json:"created_events"`
	FailedEvents  []failedEventResp  `json:"failed_events"`
	SuccessCount  int                `json:"success_count"`
	FailedCount   int                `json:"failed_count"`
	CalendarID    string             `json:"calendar_id"`
}

func (h *handler) newCreateEventsResp(out timeline.CreateEventsOutput) createEventsResp {
	created := make([]createdEventResp, len(out.Created))
	for i, ev := range out.Created {
		created[i] = createdEventResp{Title: ev.Title, EventID: ev.EventID, HTMLLink: ev.HTMLLink}
	}
	failed := make([]failedEventResp, len(out.Failed))
	for i, ev := range out.Failed {
		failed[i] = failedEventResp{Title: ev.Title, Error: ev.Error}
	}
	return createEventsResp{
		CreatedEvents: created,
		FailedEvents:  failed,
		SuccessCount:  out.SuccessCount,
		FailedCount:   out.FailedCount,
		CalendarID:    out.CalendarID,
	}
}

type providersResp struct {
	AvailableProviders []string            `json:"available_providers"`
	ProviderModels     map[string][]string `json:"provider_models"`
}

func (h *handler) newProvidersResp(out timeline.ProvidersOutput) providersResp {
	return providersResp{
		AvailableProviders: out.AvailableProviders,
		ProviderModels:     out.ProviderModels,
	}
}
