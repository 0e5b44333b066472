package gcalendar

// ParsedEventInput is the provider-parsed event shape accepted by CreateEvent.
// Dates are YYYY-MM-DD, times HH:MM (24h). All-day events carry dates only.
type ParsedEventInput struct {
	Title               string
	Description         string
	StartDate           string
	EndDate             string
	StartTime           string
	EndTime             string
	Attendees           []string
	Location            string
	AllDay              bool
	Status              string
	Visibility          string
	Transparency        string
	ColorID             string
	Recurrence          []string
	UseDefaultReminders bool
}

// CreatedEvent is a simplified view of an inserted Google Calendar event.
type CreatedEvent struct {
	ID          string
	Summary     string
	Description string
	HTMLLink    string
	Location    string
	Status      string
	StartDate   string
	EndDate     string
	StartTime   string
	EndTime     string
	AllDay      bool
}

// CalendarInfo describes one entry of the user's calendar list.
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	Primary     bool
	AccessRole  string
	ColorID     string
}
