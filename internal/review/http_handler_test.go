package review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/book"
	"bookstore/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type mutationCounter map[string]int

func (c mutationCounter) ReviewMutation(op string) { c[op]++ }

func newRequest(method, target, isbn, username string) *http.Request {
	r := testutil.NewRequestAs(method, target, nil, username)
	r.SetPathValue("isbn", isbn)
	return r
}

func TestHTTPHandler_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	counter := mutationCounter{}
	handler := NewHTTPHandler(NewService(store), zerolog.Nop(), counter)

	t.Run("success", func(t *testing.T) {
		store.EXPECT().SetReview(gomock.Any(), "0001", "alice", "Great").Return(book.Reviews{"alice": "Great"}, nil)

		w := httptest.NewRecorder()
		handler.Upsert(w, newRequest(http.MethodPut, "/customer/auth/review/0001?review=Great", "0001", "alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Review added/modified","reviews":{"alice":"Great"}}`, w.Body.String())
		assert.Equal(t, 1, counter["upsert"])
	})

	t.Run("not logged in", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Upsert(w, newRequest(http.MethodPut, "/customer/auth/review/0001?review=Great", "0001", ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"You must be logged in to post a review"}`, w.Body.String())
	})

	t.Run("missing review text", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Upsert(w, newRequest(http.MethodPut, "/customer/auth/review/0001", "0001", "alice"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Please provide review text as query parameter: ?review=..."}`, w.Body.String())
	})

	t.Run("unknown book", func(t *testing.T) {
		store.EXPECT().SetReview(gomock.Any(), "9999", "alice", "Great").Return(nil, book.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Upsert(w, newRequest(http.MethodPut, "/customer/auth/review/9999?review=Great", "9999", "alice"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		store.EXPECT().SetReview(gomock.Any(), "0001", "alice", "Great").Return(nil, context.Canceled)

		w := httptest.NewRecorder()
		handler.Upsert(w, newRequest(http.MethodPut, "/customer/auth/review/0001?review=Great", "0001", "alice"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	counter := mutationCounter{}
	handler := NewHTTPHandler(NewService(store), zerolog.Nop(), counter)

	t.Run("success", func(t *testing.T) {
		store.EXPECT().DeleteReview(gomock.Any(), "0001", "alice").Return(book.Reviews{}, nil)

		w := httptest.NewRecorder()
		handler.Delete(w, newRequest(http.MethodDelete, "/customer/auth/review/0001", "0001", "alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Review deleted","reviews":{}}`, w.Body.String())
		assert.Equal(t, 1, counter["delete"])
	})

	t.Run("not logged in", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Delete(w, newRequest(http.MethodDelete, "/customer/auth/review/0001", "0001", ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"You must be logged in to delete a review"}`, w.Body.String())
	})

	t.Run("unknown book", func(t *testing.T) {
		store.EXPECT().DeleteReview(gomock.Any(), "9999", "alice").Return(nil, book.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Delete(w, newRequest(http.MethodDelete, "/customer/auth/review/9999", "9999", "alice"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
	})

	t.Run("no review by user", func(t *testing.T) {
		store.EXPECT().DeleteReview(gomock.Any(), "0001", "alice").Return(nil, book.ErrReviewNotFound)

		w := httptest.NewRecorder()
		handler.Delete(w, newRequest(http.MethodDelete, "/customer/auth/review/0001", "0001", "alice"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Review by user not found"}`, w.Body.String())
	})
}
