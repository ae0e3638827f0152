package session

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	// DeleteIdleSince removes sessions last seen before cutoff and reports how many.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
