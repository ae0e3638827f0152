package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrReviewNotFound is returned when a user has no review on a book.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateISBN is returned when a catalog lists the same ISBN twice.
	ErrDuplicateISBN = errors.New("duplicate isbn")
)

// Reviews maps a username to that user's review text for one book.
type Reviews map[string]string

// Clone returns an independent copy, never nil.
func (r Reviews) Clone() Reviews {
	out := make(Reviews, len(r))
	maps.Copy(out, r)
	return out
}

// Book represents a catalog entry.
type Book struct {
	ISBN    string  `json:"isbn" yaml:"isbn"`
	Title   string  `json:"title" yaml:"title"`
	Author  string  `json:"author" yaml:"author"`
	Reviews Reviews `json:"reviews" yaml:"reviews,omitempty"`
}

func (b Book) clone() Book {
	b.Reviews = b.Reviews.Clone()
	return b
}

// Catalog is the full book list in catalog order. It renders as a JSON
// object keyed by ISBN, keeping that order.
type Catalog []Book

func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(b.ISBN)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
