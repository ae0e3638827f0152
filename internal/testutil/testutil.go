package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"bookstore/internal/httpx"
)

// NewRequest creates a new HTTP request for testing. A string body is sent
// as-is, anything else is encoded as JSON.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	var payload []byte
	if s, ok := body.(string); ok {
		payload = []byte(s)
	} else {
		payload, _ = json.Marshal(body)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestAs creates a request that has already passed the session gate as username.
func NewRequestAs(method, path string, body any, username string) *http.Request {
	r := NewRequest(method, path, body)
	if username == "" {
		return r
	}
	ctx := httpx.ContextWithAuth(r.Context(), httpx.AuthContext{Username: username, SessionID: "test-session"})
	return r.WithContext(ctx)
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// Message returns the "message" field of the body, or "".
func (r RecordResponse) Message() string {
	msg, _ := r.Body["message"].(string)
	return msg
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
