package review

import (
	"context"

	"bookstore/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_store_test.go -package=review

// Store is the part of the catalog that holds reviews.
type Store interface {
	SetReview(ctx context.Context, isbn, username, text string) (book.Reviews, error)
	DeleteReview(ctx context.Context, isbn, username string) (book.Reviews, error)
}
