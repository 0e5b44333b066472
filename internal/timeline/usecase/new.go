package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/timeline"
	"timeline-to-calendar/pkg/gcalendar"
	"timeline-to-calendar/pkg/llmprovider"
	"timeline-to-calendar/pkg/log"
)

// CalendarClient is the slice of pkg/gcalendar used by this use case.
type CalendarClient interface {
	CreateEvent(ctx context.Context, calendarID string, in gcalendar.ParsedEventInput) (*gcalendar.CreatedEvent, error)
}

// implUseCase is the private implementation of timeline.UseCase.
type implUseCase struct {
	authUC    auth.UseCase
	apiKeysUC apikeys.UseCase
	l         log.Logger

	// factories, swapped out in tests
	newProvider func(name, apiKey, model string) (llmprovider.Provider, error)
	newCalendar func(ctx context.Context, ts oauth2.TokenSource) (CalendarClient, error)
}

var _ timeline.UseCase = (*implUseCase)(nil)

// New creates a new timeline UseCase implementation.
func New(authUC auth.UseCase, apiKeysUC apikeys.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		authUC:      authUC,
		apiKeysUC:   apiKeysUC,
		l:           l,
		newProvider: llmprovider.New,
		newCalendar: func(ctx context.Context, ts oauth2.TokenSource) (CalendarClient, error) {
			return gcalendar.NewClient(ctx, ts)
		},
	}
}
