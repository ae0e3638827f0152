package session

import (
	"net/http"
)

// Cookie describes how the session id travels between client and server.
type Cookie struct {
	Name   string
	Path   string
	Secure bool
}

// Read returns the session id carried by r, or "".
func (c Cookie) Read(r *http.Request) string {
	ck, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// Write sets the session cookie on the response.
func (c Cookie) Write(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    id,
		Path:     c.Path,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
