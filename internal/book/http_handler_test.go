package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("success keeps catalog order", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]Book{
			{ISBN: "2", Title: "B", Author: "Y", Reviews: Reviews{}},
			{ISBN: "1", Title: "A", Author: "X", Reviews: Reviews{}},
		}, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"2": {"isbn":"2","title":"B","author":"Y","reviews":{}},
			"1": {"isbn":"1","title":"A","author":"X","reviews":{}}
		}`, w.Body.String())
		assert.Less(t, strings.Index(w.Body.String(), `"2"`), strings.Index(w.Body.String(), `"1"`))
		assert.Contains(t, w.Body.String(), "\n    \"2\": {")
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_GetByISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	testBook := Book{ISBN: "123", Title: "Test", Author: "Someone", Reviews: Reviews{}}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "123").Return(testBook, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/isbn/123", nil)
		r.SetPathValue("isbn", "123")

		handler.GetByISBN(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isbn":"123","title":"Test","author":"Someone","reviews":{}}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "9999").Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/isbn/9999", nil)
		r.SetPathValue("isbn", "9999")

		handler.GetByISBN(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "123").Return(Book{}, context.Canceled)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/isbn/123", nil)
		r.SetPathValue("isbn", "123")

		handler.GetByISBN(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_GetByAuthorAndTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	books := []Book{
		{ISBN: "1", Title: "Pride and Prejudice", Author: "Jane Austen"},
		{ISBN: "2", Title: "Emma", Author: "Jane Austen"},
	}

	t.Run("author match", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(books, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/author/jane%20austen", nil)
		r.SetPathValue("author", "jane austen")

		handler.GetByAuthor(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Emma")
	})

	t.Run("author miss", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(books, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/author/nobody", nil)
		r.SetPathValue("author", "nobody")

		handler.GetByAuthor(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"No books by that author"}`, w.Body.String())
	})

	t.Run("title miss", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(books, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/title/unknown", nil)
		r.SetPathValue("title", "unknown")

		handler.GetByTitle(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"No books with that title"}`, w.Body.String())
	})
}

func TestHTTPHandler_GetReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("no reviews renders empty object", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "1").Return(Book{ISBN: "1"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/review/1", nil)
		r.SetPathValue("isbn", "1")

		handler.GetReviews(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("unknown isbn", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "x").Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/review/x", nil)
		r.SetPathValue("isbn", "x")

		handler.GetReviews(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
	})
}
