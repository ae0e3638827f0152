package user

import "errors"

var (
	ErrInvalidInput  = errors.New("username and password required")
	ErrAlreadyExists = errors.New("user already exists")
	ErrNotFound      = errors.New("user not found")
)

// User is a registered customer. Passwords are kept as given.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
