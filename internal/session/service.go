package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
}

// NewService creates a session service whose sessions expire after ttl without use.
func NewService(repo Repository, ttl time.Duration) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Start stores username and token in the session named by existingID when it is
// still live, otherwise in a fresh session.
func (s *Service) Start(ctx context.Context, existingID, username, token string) (Session, error) {
	now := s.now()

	sess, err := s.Lookup(ctx, existingID)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		sess = Session{ID: uuid.NewString(), CreatedAt: now}
	default:
		return Session{}, err
	}

	sess.Username = username
	sess.AccessToken = token
	sess.LastSeenAt = now
	if err := s.repo.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Lookup returns the live session for id and refreshes its idle timer.
func (s *Service) Lookup(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrNotFound
	}

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}

	now := s.now()
	if s.expired(sess, now) {
		_ = s.repo.Delete(ctx, id)
		return Session{}, ErrNotFound
	}

	if err := s.repo.Touch(ctx, id, now); err != nil {
		return Session{}, err
	}
	sess.LastSeenAt = now
	return sess, nil
}

// CleanupExpired drops every session idle for longer than the ttl.
func (s *Service) CleanupExpired(ctx context.Context) (int, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	return s.repo.DeleteIdleSince(ctx, s.now().Add(-s.ttl))
}

// RunJanitor calls CleanupExpired every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.CleanupExpired(ctx)
			if err != nil {
				log.Error().Err(err).Msg("session cleanup failed")
				continue
			}
			if removed > 0 {
				log.Debug().Int("removed", removed).Msg("expired sessions removed")
			}
		}
	}
}

func (s *Service) expired(sess Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.LastSeenAt) > s.ttl
}
