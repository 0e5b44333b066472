package gcalendar

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service for one user.
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client from a per-user OAuth token source.
// The token source refreshes transparently when a refresh token is present.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListCalendars returns the user's calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	result, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]CalendarInfo, 0, len(result.Items))
	for _, item := range result.Items {
		calendars = append(calendars, CalendarInfo{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			Primary:     item.Primary,
			AccessRole:  item.AccessRole,
			ColorID:     item.ColorId,
		})
	}
	return calendars, nil
}

// ListWritableCalendars returns calendars the user can insert events into.
func (c *Client) ListWritableCalendars(ctx context.Context) ([]CalendarInfo, error) {
	calendars, err := c.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}

	writable := calendars[:0]
	for _, cal := range calendars {
		if cal.AccessRole == "owner" || cal.AccessRole == "writer" {
			writable = append(writable, cal)
		}
	}
	return writable, nil
}

// defaultTimeZone anchors timed events; the API rejects naive
// datetimes without a time zone.
const defaultTimeZone = "UTC"

// CreateEvent inserts a parsed event into the given calendar.
// Attendees receive invitations (sendUpdates=all).
func (c *Client) CreateEvent(ctx context.Context, calendarID string, in ParsedEventInput) (*CreatedEvent, error) {
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, buildEvent(in)).
		SendUpdates("all").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return newCreatedEvent(created), nil
}

// buildEvent maps a parsed event onto the Calendar API shape. All-day
// events use date-only start/end where the end date is exclusive; timed
// events carry an explicit time zone alongside the assembled datetime.
func buildEvent(in ParsedEventInput) *calendar.Event {
	event := &calendar.Event{
		Summary:      in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Status:       in.Status,
		Visibility:   in.Visibility,
		Transparency: in.Transparency,
		ColorId:      in.ColorID,
		Recurrence:   in.Recurrence,
		Reminders: &calendar.EventReminders{
			UseDefault:      in.UseDefaultReminders,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if in.AllDay {
		event.Start = &calendar.EventDateTime{Date: in.StartDate}
		event.End = &calendar.EventDateTime{Date: exclusiveEndDate(in.EndDate)}
	} else {
		startTime := in.StartTime
		if startTime == "" {
			startTime = "00:00"
		}
		endTime := in.EndTime
		if endTime == "" {
			endTime = "23:59"
		}
		event.Start = &calendar.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00", in.StartDate, startTime),
			TimeZone: defaultTimeZone,
		}
		event.End = &calendar.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00", in.EndDate, endTime),
			TimeZone: defaultTimeZone,
		}
	}

	// Models mix bare names into attendee lists, and one malformed
	// attendee makes the API reject the whole insert.
	for _, email := range in.Attendees {
		if !validEmail(email) {
			continue
		}
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	return event
}

// exclusiveEndDate shifts an all-day end date forward one day; the
// Calendar API treats all-day end dates as exclusive, so a single-day
// event spans start..start+1.
func exclusiveEndDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, 1).Format("2006-01-02")
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func newCreatedEvent(ev *calendar.Event) *CreatedEvent {
	out := &CreatedEvent{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
		HTMLLink:    ev.HtmlLink,
		Location:    ev.Location,
		Status:      ev.Status,
	}

	if ev.Start != nil {
		if ev.Start.Date != "" {
			out.AllDay = true
			out.StartDate = ev.Start.Date
		} else {
			out.StartDate, out.StartTime = splitDateTime(ev.Start.DateTime)
		}
	}
	if ev.End != nil {
		if ev.End.Date != "" {
			out.EndDate = ev.End.Date
		} else {
			out.EndDate, out.EndTime = splitDateTime(ev.End.DateTime)
		}
	}

	return out
}

// splitDateTime turns "2025-06-01T10:00:00+07:00" into ("2025-06-01", "10:00").
func splitDateTime(dt string) (date, clock string) {
	parts := strings.SplitN(dt, "T", 2)
	date = parts[0]
	if len(parts) == 2 && len(parts[1]) >= 5 {
		clock = parts[1][:5]
	}
	return date, clock
}
