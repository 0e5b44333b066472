package calendar

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ListWritable returns the calendars the user can insert events
	// into (owner or writer access).
	ListWritable(ctx context.Context, userID string) ([]Calendar, error)
}
