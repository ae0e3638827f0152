package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	authKey      contextKey = "auth"
	requestIDKey contextKey = "requestID"
)

// AuthContext is the identity the session gate resolved for a request.
type AuthContext struct {
	Username  string
	SessionID string
}

// AuthFrom retrieves the resolved identity from the request context.
func AuthFrom(r *http.Request) (AuthContext, bool) {
	v, ok := r.Context().Value(authKey).(AuthContext)
	return v, ok
}

// UsernameFrom retrieves the authenticated username, or "" for anonymous requests.
func UsernameFrom(r *http.Request) string {
	if v, ok := AuthFrom(r); ok {
		return v.Username
	}
	return ""
}

// ContextWithAuth returns a new context carrying the resolved identity.
func ContextWithAuth(ctx context.Context, auth AuthContext) context.Context {
	return context.WithValue(ctx, authKey, auth)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context with the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
