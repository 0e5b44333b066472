package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"timeline-to-calendar/pkg/datemath"
)

// ParsedEvent is a calendar event extracted from timeline text.
type ParsedEvent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`           // YYYY-MM-DD
	EndDate     string   `json:"end_date"`             // YYYY-MM-DD
	StartTime   string   `json:"start_time,omitempty"` // HH:MM
	EndTime     string   `json:"end_time,omitempty"`   // HH:MM
	Attendees   []string `json:"attendees"`
	Location    string   `json:"location,omitempty"`
	AllDay      bool     `json:"all_day"`
}

// ParsedTask is a task item extracted from timeline text.
type ParsedTask struct {
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
	DueDate   string `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime   string `json:"due_time,omitempty"` // HH:MM
	Priority  string `json:"priority,omitempty"` // high/medium/low
	Completed bool   `json:"completed"`
}

// ParseOptions carries the knobs shared by event and task parsing.
type ParseOptions struct {
	// SystemPrompt is the user's free-text grounding (contacts,
	// locations, abbreviations). Sent as a system instruction when set.
	SystemPrompt string

	// Flexible asks for lenient natural-language interpretation.
	Flexible bool

	// Now anchors relative dates; zero value means time.Now().
	Now time.Time
}

const parseTemperature = 0.1

// ParseEvents asks the provider to convert timeline text into events.
func ParseEvents(ctx context.Context, p Provider, timelineText string, opts ParseOptions) ([]ParsedEvent, error) {
	resp, err := p.GenerateContent(ctx, &Request{
		SystemInstruction: opts.SystemPrompt,
		Prompt:            buildEventPrompt(timelineText, opts),
		Temperature:       parseTemperature,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Events []ParsedEvent `json:"events"`
	}
	if err := decodeModelJSON(resp.Text, &payload); err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	for i := range payload.Events {
		if payload.Events[i].Description == "" {
			payload.Events[i].Description = payload.Events[i].Title
		}
		if payload.Events[i].Attendees == nil {
			payload.Events[i].Attendees = []string{}
		}
		payload.Events[i].StartDate = normalizeDate(payload.Events[i].StartDate, now)
		payload.Events[i].EndDate = normalizeDate(payload.Events[i].EndDate, now)
		// Single dates come back with only a start; mirror it.
		if payload.Events[i].EndDate == "" {
			payload.Events[i].EndDate = payload.Events[i].StartDate
		}
	}

	return payload.Events, nil
}

// ParseTasks asks the provider to convert timeline text into task items.
// Priority falls back to keyword inference when the model omits it.
func ParseTasks(ctx context.Context, p Provider, timelineText string, opts ParseOptions) ([]ParsedTask, error) {
	resp, err := p.GenerateContent(ctx, &Request{
		SystemInstruction: opts.SystemPrompt,
		Prompt:            buildTaskPrompt(timelineText, opts),
		Temperature:       parseTemperature,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Tasks []ParsedTask `json:"tasks"`
	}
	if err := decodeModelJSON(resp.Text, &payload); err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	for i := range payload.Tasks {
		if payload.Tasks[i].Priority == "" {
			payload.Tasks[i].Priority = InferPriority(payload.Tasks[i].Title + " " + payload.Tasks[i].Notes)
		}
		payload.Tasks[i].DueDate = normalizeDate(payload.Tasks[i].DueDate, now)
	}

	return payload.Tasks, nil
}

// InferPriority maps urgency keywords to a priority level. Used as a
// fallback when the model does not assign one.
func InferPriority(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range []string{"urgent", "asap", "critical", "immediately"} {
		if strings.Contains(lower, kw) {
			return "high"
		}
	}
	return ""
}

func buildEventPrompt(timelineText string, opts ParseOptions) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert timeline parser. Parse the following timeline text and extract structured event information.

TIMELINE TEXT:
%s

INSTRUCTIONS:
1. Extract all events with dates and titles
2. Handle both single dates (e.g., "8 September") and date ranges (e.g., "1 Juli-10 Agustus")
3. Extract any invited participants mentioned (look for "Invite:", "Participants:", "with", email addresses)
4. Convert all dates to ISO format (YYYY-MM-DD)
5. If no year is mentioned, assume the current year (%d); today is %s
6. Handle multiple languages (Indonesian, English, etc.) including local month names
7. For date ranges, use start date and end date
8. For single dates, use the same date for both start and end
9. When a clock time is given, set start_time/end_time (HH:MM, 24h) and all_day to false; otherwise set all_day to true
`, timelineText, now.Year(), now.Format("2006-01-02"))

	if opts.Flexible {
		b.WriteString("10. Be lenient: interpret vague or partial phrasing (\"next week\", \"mid June\") with your best estimate rather than skipping the event\n")
	}

	b.WriteString(`
REQUIRED OUTPUT FORMAT (JSON only, no other text):
{
  "events": [
    {
      "title": "Event Title",
      "start_date": "YYYY-MM-DD",
      "end_date": "YYYY-MM-DD",
      "start_time": "HH:MM or omit",
      "end_time": "HH:MM or omit",
      "description": "Original event line from timeline",
      "attendees": ["email@example.com"],
      "location": "Place or omit",
      "all_day": true
    }
  ]
}

Parse the timeline and return only the JSON response:`)

	return b.String()
}

func buildTaskPrompt(timelineText string, opts ParseOptions) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert task parser. Parse the following text and extract actionable task items.

TEXT:
%s

INSTRUCTIONS:
1. Extract every actionable task with a short imperative title
2. Put remaining detail into notes
3. Convert due dates to ISO format (YYYY-MM-DD); today is %s, assume year %d when missing
4. Set due_time (HH:MM, 24h) only when a clock time is given
5. Assign priority "high", "medium" or "low" from urgency wording (urgent/asap/critical mean high); omit when unclear
`, timelineText, now.Format("2006-01-02"), now.Year())

	if opts.Flexible {
		b.WriteString("6. Be lenient: interpret vague phrasing with your best estimate rather than dropping the task\n")
	}

	b.WriteString(`
REQUIRED OUTPUT FORMAT (JSON only, no other text):
{
  "tasks": [
    {
      "title": "Task title",
      "notes": "Extra detail or omit",
      "due_date": "YYYY-MM-DD or omit",
      "due_time": "HH:MM or omit",
      "priority": "high|medium|low or omit"
    }
  ]
}

Parse the text and return only the JSON response:`)

	return b.String()
}

// relDates resolves relative date phrases against UTC midnights.
// "UTC" always loads, so the error is ignored.
var relDates, _ = datemath.NewParser("UTC")

// normalizeDate maps a model date string to YYYY-MM-DD. Despite prompt
// instructions, models occasionally emit relative phrases ("tomorrow",
// "next friday", "in 2 weeks"); those are resolved against now. Anything
// else is passed through unchanged.
func normalizeDate(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	if !isRelativeDate(strings.ToLower(s)) {
		return s
	}
	t, err := relDates.Parse(s, now)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

func isRelativeDate(s string) bool {
	switch {
	case s == "today", s == "tomorrow", s == "yesterday":
		return true
	case strings.HasPrefix(s, "in "), strings.HasPrefix(s, "next "):
		return true
	}
	return false
}

// decodeModelJSON decodes JSON out of raw model output. Markdown code
// fences are stripped and the outermost brace pair is extracted, since
// models wrap or preface JSON despite instructions.
func decodeModelJSON(text string, v any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyResponse
	}

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		text = text[start : end+1]
	}

	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}
