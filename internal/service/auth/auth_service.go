package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skyway-app/skyway/internal/domain"
	"github.com/skyway-app/skyway/internal/repository"
)

// ErrAuthenticationFailed covers every login failure; callers cannot
// tell a wrong username from a wrong password.
var ErrAuthenticationFailed = errors.New("authentication failed")

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	users    repository.UserRepository
	sessions SessionStore
}

func NewAuthService(users repository.UserRepository, sessions SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	identity, err := s.users.ResolveLogin(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	role, err := domain.ParseRole(identity.RoleName)
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}

	session := domain.Session{
		Token:    uuid.NewString(),
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     role,
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}
	return session, nil
}

var _ AuthUseCase = (*AuthService)(nil)
