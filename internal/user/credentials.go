package user

import (
	"encoding/json"
	"mime"
	"net/http"
)

// Credentials is the register/login request body.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ReadCredentials accepts a JSON or form-encoded body. An unreadable body
// yields empty credentials, which validation then rejects.
func ReadCredentials(r *http.Request) Credentials {
	var c Credentials

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		c.Username = r.PostFormValue("username")
		c.Password = r.PostFormValue("password")
	default:
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			return Credentials{}
		}
	}
	return c
}
