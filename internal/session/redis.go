package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in redis, letting multiple instances share
// logins. Expiry is delegated to the key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userID uint, userName string) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(Session{UserID: userID, UserName: userName})
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
