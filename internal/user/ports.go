package user

import (
	"context"
)

type Repository interface {
	// Create inserts u, failing with ErrAlreadyExists if the username is taken.
	Create(ctx context.Context, u User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
