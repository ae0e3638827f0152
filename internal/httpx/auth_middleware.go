package httpx

import (
	"net/http"
)

// Authorizer resolves the caller's identity for a request.
type Authorizer interface {
	Authorize(r *http.Request) (AuthContext, error)
}

// AuthMiddleware rejects requests the authorizer cannot resolve. onError writes the rejection.
func AuthMiddleware(authorizer Authorizer, onError func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, err := authorizer.Authorize(r)
			if err != nil {
				onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithAuth(r.Context(), auth)))
		})
	}
}
