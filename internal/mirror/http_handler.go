package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/httpx"
	"bookstore/internal/platform/catalogclient"

	"github.com/rs/zerolog"
)

// Catalog is the upstream the mirror endpoints re-fetch from.
type Catalog interface {
	All(ctx context.Context) (json.RawMessage, error)
	ByISBN(ctx context.Context, isbn string) (json.RawMessage, error)
	ByAuthor(ctx context.Context, author string) (json.RawMessage, error)
	ByTitle(ctx context.Context, title string) (json.RawMessage, error)
}

// HTTPHandler serves the /promise endpoints by calling the public catalog
// endpoints over HTTP and relaying their bodies.
type HTTPHandler struct {
	catalog Catalog
	log     zerolog.Logger
}

func NewHTTPHandler(catalog Catalog, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, log: log}
}

// All handles GET /promise
// @Summary List the catalog through the HTTP client
// @Tags mirror
// @Produce json
// @Success 200 {object} map[string]book.Book
// @Failure 502 {object} httpx.ErrorResponse
// @Router /promise [get]
func (h *HTTPHandler) All(w http.ResponseWriter, r *http.Request) {
	body, err := h.catalog.All(r.Context())
	h.relay(w, r, body, err, "Catalog not found (async)")
}

// GetByISBN handles GET /promise/isbn/{isbn}
// @Summary Get a book by ISBN through the HTTP client
// @Tags mirror
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /promise/isbn/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	body, err := h.catalog.ByISBN(r.Context(), r.PathValue("isbn"))
	h.relay(w, r, body, err, "Book not found (async)")
}

// GetByAuthor handles GET /promise/author/{author}
// @Summary List books by author through the HTTP client
// @Tags mirror
// @Produce json
// @Param author path string true "Author"
// @Success 200 {array} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /promise/author/{author} [get]
func (h *HTTPHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	body, err := h.catalog.ByAuthor(r.Context(), r.PathValue("author"))
	h.relay(w, r, body, err, "No books by that author (async)")
}

// GetByTitle handles GET /promise/title/{title}
// @Summary List books by title through the HTTP client
// @Tags mirror
// @Produce json
// @Param title path string true "Title"
// @Success 200 {array} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /promise/title/{title} [get]
func (h *HTTPHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	body, err := h.catalog.ByTitle(r.Context(), r.PathValue("title"))
	h.relay(w, r, body, err, "No books with that title (async)")
}

func (h *HTTPHandler) relay(w http.ResponseWriter, r *http.Request, body json.RawMessage, err error, notFound string) {
	if err != nil {
		if errors.Is(err, catalogclient.ErrNotFound) {
			httpx.JSONMessage(w, http.StatusNotFound, notFound)
			return
		}
		h.log.Warn().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Str("path", r.URL.Path).Msg("catalog upstream failed")
		httpx.JSONMessage(w, http.StatusBadGateway, "Catalog upstream unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
