package usecase

import (
	"context"

	"timeline-to-calendar/internal/timeline"
	"timeline-to-calendar/pkg/gcalendar"
)

const defaultCalendarID = "primary"

// CreateEvents inserts the batch one event at a time. A single bad
// event does not abort the batch; outcomes are accounted per event.
func (uc *implUseCase) CreateEvents(ctx context.Context, input timeline.CreateEventsInput) (timeline.CreateEventsOutput, error) {
	if len(input.Events) == 0 {
		return timeline.CreateEventsOutput{}, timeline.ErrNoEvents
	}
	for _, ev := range input.Events {
		if ev.EndDate != "" && ev.StartDate != "" && ev.EndDate < ev.StartDate {
			return timeline.CreateEventsOutput{}, timeline.ErrDateOrder
		}
	}

	calendarID := input.TargetCalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	ts, err := uc.authUC.Credentials(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvents Credentials: %v", err)
		return timeline.CreateEventsOutput{}, err
	}

	client, err := uc.newCalendar(ctx, ts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvents newCalendar: %v", err)
		return timeline.CreateEventsOutput{}, err
	}

	out := timeline.CreateEventsOutput{CalendarID: calendarID}
	for _, ev := range input.Events {
		created, err := client.CreateEvent(ctx, calendarID, gcalendar.ParsedEventInput{
			Title:               ev.Title,
			Description:         ev.Description,
			StartDate:           ev.StartDate,
			EndDate:             ev.EndDate,
			StartTime:           ev.StartTime,
			EndTime:             ev.EndTime,
			Attendees:           ev.Attendees,
			Location:            ev.Location,
			AllDay:              ev.AllDay,
			Status:              ev.Status,
			Visibility:          ev.Visibility,
			Transparency:        ev.Transparency,
			ColorID:             ev.ColorID,
			Recurrence:          ev.Recurrence,
			UseDefaultReminders: true,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.CreateEvents CreateEvent %q: %v", ev.Title, err)
			out.Failed = append(out.Failed, timeline.FailedEvent{Title: ev.Title, Error: err.Error()})
			continue
		}
		out.Created = append(out.Created, timeline.CreatedEvent{
			Title:    created.Summary,
			EventID:  created.ID,
			HTMLLink: created.HTMLLink,
		})
	}
	out.SuccessCount = len(out.Created)
	out.FailedCount = len(out.Failed)

	uc.l.Infof(ctx, "created %d/%d events in calendar %s", out.SuccessCount, len(input.Events), calendarID)
	return out, nil
}
