package timeline

// Event is one parsed calendar event, previewed first and committed
// verbatim (possibly user-edited) afterwards.
type Event struct {
	Title       string
	Description string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	StartTime   string // HH:MM, empty for all-day
	EndTime     string // HH:MM, empty for all-day
	Attendees   []string
	Location    string
	AllDay      bool

	// Optional Google Calendar attributes, passed through unchanged
	// when set (typically user-edited between preview and commit).
	Status       string
	Visibility   string
	Transparency string
	ColorID      string
	Recurrence   []string
}

// --- UseCase Inputs/Outputs ---

type PreviewInput struct {
	UserID       string
	TimelineText string
	Provider     string // empty selects the default provider
	Model        string // empty selects the provider default
	Flexible     bool
}

type PreviewOutput struct {
	Events           []Event
	TotalEvents      int
	UsedProvider     string
	UsedModel        string
	ProcessingTimeMs int64
}

type CreateEventsInput struct {
	UserID           string
	Events           []Event
	TargetCalendarID string // empty defaults to "primary"
}

// CreatedEvent is the per-event result of a commit.
type CreatedEvent struct {
	Title    string
	EventID  string
	HTMLLink string
}

// FailedEvent records one event the calendar rejected.
type FailedEvent struct {
	Title string
	Error string
}

// CreateEventsOutput accounts for partial success: the batch is
// submitted event by event and each outcome is reported.
type CreateEventsOutput struct {
	Created      []CreatedEvent
	Failed       []FailedEvent
	SuccessCount int
	FailedCount  int
	CalendarID   string
}

type ProvidersOutput struct {
	AvailableProviders []string
	ProviderModels     map[string][]string
}
