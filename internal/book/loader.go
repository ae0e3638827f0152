package book

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// DefaultCatalog returns the built-in seed catalog.
func DefaultCatalog() ([]Book, error) {
	return DecodeCatalog(bytes.NewReader(defaultCatalog))
}

// LoadCatalogFile reads a catalog from a YAML or JSON file.
func LoadCatalogFile(path string) ([]Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	books, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return books, nil
}

// DecodeCatalog parses a list of books. JSON input is accepted as YAML.
func DecodeCatalog(r io.Reader) ([]Book, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var books []Book
	if err := dec.Decode(&books); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i := range books {
		b := &books[i]
		b.ISBN = strings.TrimSpace(b.ISBN)
		if b.ISBN == "" {
			return nil, fmt.Errorf("entry %d: isbn is required", i)
		}
		if b.Title == "" || b.Author == "" {
			return nil, fmt.Errorf("entry %d (%s): title and author are required", i, b.ISBN)
		}
		if b.Reviews == nil {
			b.Reviews = Reviews{}
		}
	}
	return books, nil
}
