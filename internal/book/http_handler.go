package book

import (
	"errors"
	"net/http"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /
// @Summary List all books
// @Description Full catalog as an object keyed by ISBN
// @Tags books
// @Produce json
// @Success 200 {object} Catalog
// @Router / [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	httpx.JSONIndent(w, http.StatusOK, books)
}

// GetByISBN handles GET /isbn/{isbn}
// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /isbn/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.writeError(w, err, "Book not found")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// GetByAuthor handles GET /author/{author}
// @Summary Get books by author
// @Description Case-insensitive exact match on the author name
// @Tags books
// @Produce json
// @Param author path string true "Author name"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /author/{author} [get]
func (h *HTTPHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetByAuthor(r.Context(), r.PathValue("author"))
	if err != nil {
		h.writeError(w, err, "No books by that author")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// GetByTitle handles GET /title/{title}
// @Summary Get books by title
// @Description Case-insensitive exact match on the title
// @Tags books
// @Produce json
// @Param title path string true "Book title"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /title/{title} [get]
func (h *HTTPHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetByTitle(r.Context(), r.PathValue("title"))
	if err != nil {
		h.writeError(w, err, "No books with that title")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// GetReviews handles GET /review/{isbn}
// @Summary Get book reviews
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} Reviews
// @Failure 404 {object} httpx.ErrorResponse
// @Router /review/{isbn} [get]
func (h *HTTPHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetReviews(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.writeError(w, err, "Book not found")
		return
	}
	httpx.JSON(w, http.StatusOK, reviews)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, notFoundMessage, nil)
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, "Internal server error", nil)
}
