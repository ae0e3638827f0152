package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	books, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, books, 10)
	assert.Equal(t, "1", books[0].ISBN)
	assert.Equal(t, "Chinua Achebe", books[0].Author)
	assert.Equal(t, "Njál's Saga", books[6].Title)

	_, err = NewMemoryRepo(books)
	assert.NoError(t, err)
}

func TestDecodeCatalog_JSON(t *testing.T) {
	books, err := DecodeCatalog(strings.NewReader(`[{"isbn": "0001", "title": "A", "author": "X"}, {"isbn": "0002", "title": "B", "author": "Y", "reviews": {"alice": "Great"}}]`))
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "0001", books[0].ISBN)
	assert.Equal(t, Reviews{}, books[0].Reviews)
	assert.Equal(t, Reviews{"alice": "Great"}, books[1].Reviews)
}

func TestDecodeCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing isbn", input: "- title: A\n  author: X\n"},
		{name: "missing author", input: "- isbn: \"1\"\n  title: A\n"},
		{name: "unknown field", input: "- isbn: \"1\"\n  title: A\n  author: X\n  price: 3\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCatalog(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- isbn: \"0001\"\n  title: A\n  author: X\n"), 0o644))

	books, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
