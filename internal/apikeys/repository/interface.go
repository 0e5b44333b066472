package repository

import (
	"context"
	"time"
)

// Record is a stored encrypted credential.
type Record struct {
	Provider   string
	Ciphertext string
	KeyHash    string
	UpdatedAt  time.Time
}

// Repository persists encrypted API keys per user. Get returns a zero
// Record when nothing is stored.
type Repository interface {
	Save(ctx context.Context, userID string, rec Record) error
	Get(ctx context.Context, userID, provider string) (Record, error)
	List(ctx context.Context, userID string) ([]Record, error)
	Delete(ctx context.Context, userID, provider string) error
}
