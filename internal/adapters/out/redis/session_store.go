// Package redis provides the session store. Sessions are short-lived and
// shared across instances, so they live in Redis under a TTL instead of in
// process memory.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gescom/internal/core/ports"
	"gescom/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "gescom:session:"

// RedisSessionStore implements ports.SessionStore on a Redis client.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a session store over the given client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Save stores the session as JSON under its token with the given TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session ports.Session, ttl time.Duration) error {
	if session.Token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.client.Set(ctx, sessionKeyPrefix+session.Token, payload, ttl).Err()
}

// Get retrieves a session by token. An unknown or expired token surfaces
// as errs.ErrObjectNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (ports.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.Session{}, errs.NewObjectNotFoundErrorWithCause("session", token, err)
		}
		return ports.Session{}, err
	}

	var session ports.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return ports.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return session, nil
}

// Delete drops a session. Deleting an unknown token is not an error.
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
