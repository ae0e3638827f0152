package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=book

// Repository defines the contract for catalog storage. Books are never
// added or removed after construction; only their reviews change.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	SetReview(ctx context.Context, isbn, username, text string) (Reviews, error)
	DeleteReview(ctx context.Context, isbn, username string) (Reviews, error)
}
