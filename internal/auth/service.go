package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bookstore/internal/httpx"
	"bookstore/internal/platform/crypto"
	"bookstore/internal/session"
	"bookstore/internal/user"
)

var (
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNoSession    = errors.New("no session")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpired      = errors.New("token expired")
)

// DefaultTokenTTL is the access token lifetime.
const DefaultTokenTTL = time.Hour

// Service issues access tokens at login and checks them on every request to the
// authenticated area. A request passes only when it carries a live session whose
// stored token still verifies.
type Service struct {
	secret   string
	ttl      time.Duration
	users    *user.Service
	sessions *session.Service
	cookie   session.Cookie
	now      func() time.Time
}

func NewService(secret string, ttl time.Duration, users *user.Service, sessions *session.Service, cookie session.Cookie) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{
		secret:   secret,
		ttl:      ttl,
		users:    users,
		sessions: sessions,
		cookie:   cookie,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for issuing and verifying tokens.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Issue signs a token for username expiring one ttl from now.
func (s *Service) Issue(username string) (string, error) {
	token, _, err := crypto.GenerateToken(s.secret, username, s.now(), s.ttl)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the token's username.
func (s *Service) Verify(token string) (string, error) {
	claims, err := crypto.ParseToken(s.secret, token, s.now())
	if err != nil {
		if errors.Is(err, crypto.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}

// Login checks credentials, issues a token and stores it in the caller's session,
// creating one if existingSessionID is not live. Earlier tokens and sessions of the
// same user stay valid.
func (s *Service) Login(ctx context.Context, username, password, existingSessionID string) (session.Session, error) {
	if !s.users.Authenticate(ctx, username, password) {
		return session.Session{}, ErrUnauthorized
	}

	token, err := s.Issue(username)
	if err != nil {
		return session.Session{}, err
	}

	sess, err := s.sessions.Start(ctx, existingSessionID, username, token)
	if err != nil {
		return session.Session{}, fmt.Errorf("start session: %w", err)
	}
	return sess, nil
}

// Authorize resolves the identity of r from its session cookie and the token
// stored in that session.
func (s *Service) Authorize(r *http.Request) (httpx.AuthContext, error) {
	sess, err := s.sessions.Lookup(r.Context(), s.cookie.Read(r))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return httpx.AuthContext{}, ErrNoSession
		}
		return httpx.AuthContext{}, err
	}
	if sess.AccessToken == "" {
		return httpx.AuthContext{}, ErrNoSession
	}

	username, err := s.Verify(sess.AccessToken)
	if err != nil {
		return httpx.AuthContext{}, err
	}
	if username != sess.Username {
		return httpx.AuthContext{}, ErrInvalidToken
	}

	return httpx.AuthContext{Username: username, SessionID: sess.ID}, nil
}

// Cookie returns the session cookie settings.
func (s *Service) Cookie() session.Cookie {
	return s.cookie
}
