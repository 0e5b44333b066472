package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/calendar"
	"timeline-to-calendar/pkg/gcalendar"
	"timeline-to-calendar/pkg/log"
)

// CalendarClient is the slice of pkg/gcalendar used by this use case.
type CalendarClient interface {
	ListWritableCalendars(ctx context.Context) ([]gcalendar.CalendarInfo, error)
}

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	authUC auth.UseCase
	l      log.Logger

	newCalendar func(ctx context.Context, ts oauth2.TokenSource) (CalendarClient, error)
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a new calendar UseCase implementation.
func New(authUC auth.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		authUC: authUC,
		l:      l,
		newCalendar: func(ctx context.Context, ts oauth2.TokenSource) (CalendarClient, error) {
			return gcalendar.NewClient(ctx, ts)
		},
	}
}

// ListWritable returns the calendars the user may write to.
func (uc *implUseCase) ListWritable(ctx context.Context, userID string) ([]calendar.Calendar, error) {
	ts, err := uc.authUC.Credentials(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWritable Credentials: %v", err)
		return nil, err
	}

	client, err := uc.newCalendar(ctx, ts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWritable newCalendar: %v", err)
		return nil, err
	}

	infos, err := client.ListWritableCalendars(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWritable ListWritableCalendars: %v", err)
		return nil, err
	}

	calendars := make([]calendar.Calendar, len(infos))
	for i, info := range infos {
		calendars[i] = calendar.Calendar{
			ID:         info.ID,
			Summary:    info.Summary,
			Primary:    info.Primary,
			AccessRole: info.AccessRole,
		}
	}
	return calendars, nil
}
