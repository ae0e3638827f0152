package review

import (
	"errors"
	"net/http"

	"bookstore/internal/book"
	"bookstore/internal/httpx"

	"github.com/rs/zerolog"
)

// MutationRecorder counts successful review writes.
type MutationRecorder interface {
	ReviewMutation(op string)
}

type HTTPHandler struct {
	service   *Service
	log       zerolog.Logger
	mutations MutationRecorder
}

func NewHTTPHandler(service *Service, log zerolog.Logger, mutations MutationRecorder) *HTTPHandler {
	return &HTTPHandler{service: service, log: log, mutations: mutations}
}

type ReviewsResponse struct {
	Message string       `json:"message"`
	Reviews book.Reviews `json:"reviews"`
}

// Upsert handles PUT /customer/auth/review/{isbn}?review=text
// @Summary Add or modify own review
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param review query string true "Review text"
// @Success 200 {object} ReviewsResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /customer/auth/review/{isbn} [put]
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	reviews, err := h.service.Upsert(r.Context(), r.PathValue("isbn"), username, r.URL.Query().Get("review"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			httpx.JSONError(w, http.StatusUnauthorized, "You must be logged in to post a review", nil)
		case errors.Is(err, ErrMissingText):
			httpx.JSONError(w, http.StatusBadRequest, "Please provide review text as query parameter: ?review=...", nil)
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Book not found", nil)
		default:
			h.internalError(w, r, err)
		}
		return
	}

	h.record("upsert")
	h.log.Debug().Str("username", username).Str("isbn", r.PathValue("isbn")).Msg("review saved")
	httpx.JSON(w, http.StatusOK, ReviewsResponse{Message: "Review added/modified", Reviews: reviews})
}

// Delete handles DELETE /customer/auth/review/{isbn}
// @Summary Delete own review
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} ReviewsResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /customer/auth/review/{isbn} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	reviews, err := h.service.Delete(r.Context(), r.PathValue("isbn"), username)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			httpx.JSONError(w, http.StatusUnauthorized, "You must be logged in to delete a review", nil)
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Book not found", nil)
		case errors.Is(err, ErrNoSuchReview):
			httpx.JSONError(w, http.StatusNotFound, "Review by user not found", nil)
		default:
			h.internalError(w, r, err)
		}
		return
	}

	h.record("delete")
	h.log.Debug().Str("username", username).Str("isbn", r.PathValue("isbn")).Msg("review deleted")
	httpx.JSON(w, http.StatusOK, ReviewsResponse{Message: "Review deleted", Reviews: reviews})
}

func (h *HTTPHandler) record(op string) {
	if h.mutations != nil {
		h.mutations.ReviewMutation(op)
	}
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("review mutation failed")
	httpx.JSONError(w, http.StatusInternalServerError, "Internal server error", nil)
}
