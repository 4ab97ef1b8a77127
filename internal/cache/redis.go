package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skyway-app/skyway/config"
	"github.com/skyway-app/skyway/internal/domain"
)

// RedisSessionStore keeps login sessions keyed by token with a TTL.
// Sessions are the only thing held outside the relational store; entity
// rows are never cached.
type RedisSessionStore struct {
	client     *redis.Client
	sessionTTL time.Duration
}

func NewRedisSessionStore(cfg config.RedisConfig, sessionTTL time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		sessionTTL: sessionTTL,
	}
}

func (s *RedisSessionStore) Put(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.Token), payload, s.sessionTTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
