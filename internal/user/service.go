package user

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register adds a user. Usernames are compared exactly, case included.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}
	return s.repo.Create(ctx, User{Username: username, Password: password})
}

// Authenticate reports whether username exists with exactly this password.
func (s *Service) Authenticate(ctx context.Context, username, password string) bool {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return false
	}
	return u.Password == password
}
