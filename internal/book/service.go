package book

import (
	"context"
	"strings"
)

// Service provides the read-only catalog queries.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book in catalog order.
func (s *Service) List(ctx context.Context) (Catalog, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Catalog(books), nil
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// GetByAuthor returns books whose author equals author, ignoring case.
func (s *Service) GetByAuthor(ctx context.Context, author string) ([]Book, error) {
	return s.filter(ctx, func(b Book) bool { return strings.EqualFold(b.Author, author) })
}

// GetByTitle returns books whose title equals title, ignoring case.
func (s *Service) GetByTitle(ctx context.Context, title string) ([]Book, error) {
	return s.filter(ctx, func(b Book) bool { return strings.EqualFold(b.Title, title) })
}

// GetReviews returns the reviews of a book, empty if it has none.
func (s *Service) GetReviews(ctx context.Context, isbn string) (Reviews, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return b.Reviews.Clone(), nil
}

func (s *Service) filter(ctx context.Context, match func(Book) bool) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []Book
	for _, b := range books {
		if match(b) {
			matches = append(matches, b)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches, nil
}
