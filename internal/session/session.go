package session

import (
	"errors"
	"time"
)

// ErrNotFound is returned for unknown or idle-expired sessions.
var ErrNotFound = errors.New("session not found")

// Session binds a client cookie to the user and access token issued at login.
type Session struct {
	ID          string
	Username    string
	AccessToken string
	CreatedAt   time.Time
	LastSeenAt  time.Time
}
