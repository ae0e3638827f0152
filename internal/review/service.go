package review

import (
	"context"
	"errors"

	"bookstore/internal/book"
)

var (
	ErrUnauthorized = errors.New("not logged in")
	ErrMissingText  = errors.New("review text required")
	ErrNoSuchReview = errors.New("review by user not found")
)

// Service mutates reviews on behalf of an authenticated user. The username
// always comes from the session gate, never from the request.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Upsert sets username's review of isbn, replacing any earlier one, and returns
// all reviews of the book.
func (s *Service) Upsert(ctx context.Context, isbn, username, text string) (book.Reviews, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}
	if text == "" {
		return nil, ErrMissingText
	}
	return s.store.SetReview(ctx, isbn, username, text)
}

// Delete removes username's review of isbn and returns the remaining reviews.
func (s *Service) Delete(ctx context.Context, isbn, username string) (book.Reviews, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}
	reviews, err := s.store.DeleteReview(ctx, isbn, username)
	if errors.Is(err, book.ErrReviewNotFound) {
		return nil, ErrNoSuchReview
	}
	return reviews, err
}
