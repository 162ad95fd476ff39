// Package auth implements the user credential store behind the register and
// login endpoints.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Service enforces the credential contract over a Store. Passwords are
// bcrypt-hashed before they reach storage.
type Service struct {
	store Store
}

// NewService wraps store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates the user. Reports false when the username is taken.
func (s *Service) Register(ctx context.Context, username, password string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	return s.store.Create(ctx, username, string(hash))
}

// Verify reports whether username/password match a stored credential. An
// unknown username is a plain false, not an error.
func (s *Service) Verify(ctx context.Context, username, password string) (bool, error) {
	hash, ok, err := s.store.PasswordHash(ctx, username)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// Exists reports whether username is registered.
func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	return s.store.Exists(ctx, username)
}
