package timeline

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Preview parses timeline text into events without touching the
	// user's calendar. Each call is a fresh parse; nothing is cached.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	// CreateEvents commits previewed (possibly edited) events to the
	// target calendar, one insert per event, accounting per-event
	// success and failure.
	CreateEvents(ctx context.Context, input CreateEventsInput) (CreateEventsOutput, error)

	// Providers returns the provider/model catalog for parsing.
	Providers(ctx context.Context) (ProvidersOutput, error)
}
