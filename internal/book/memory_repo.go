package book

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepo is the in-process catalog store. Insertion order is kept for listing.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	books map[string]*Book
}

// NewMemoryRepo builds a store from books, rejecting empty or repeated ISBNs.
func NewMemoryRepo(books []Book) (*MemoryRepo, error) {
	r := &MemoryRepo{
		order: make([]string, 0, len(books)),
		books: make(map[string]*Book, len(books)),
	}
	for _, b := range books {
		if b.ISBN == "" {
			return nil, fmt.Errorf("book %q: empty isbn", b.Title)
		}
		if _, exists := r.books[b.ISBN]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateISBN, b.ISBN)
		}
		stored := b.clone()
		r.books[b.ISBN] = &stored
		r.order = append(r.order, b.ISBN)
	}
	return r, nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.order))
	for _, isbn := range r.order {
		out = append(out, r.books[isbn].clone())
	}
	return out, nil
}

func (r *MemoryRepo) GetByISBN(_ context.Context, isbn string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b.clone(), nil
}

func (r *MemoryRepo) SetReview(_ context.Context, isbn, username, text string) (Reviews, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	b.Reviews[username] = text
	return b.Reviews.Clone(), nil
}

func (r *MemoryRepo) DeleteReview(_ context.Context, isbn, username string) (Reviews, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return nil, ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return b.Reviews.Clone(), nil
}
