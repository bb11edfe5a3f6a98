package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks issued session tokens in Redis.
// Key format: session:<username>:<token_id>, value "1", expiring with the
// token itself so stale entries clean themselves up.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Put(ctx context.Context, username, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(username, tokenID), "1", ttl).Err()
}

func (s *SessionStore) Valid(ctx context.Context, username, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(username, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) Revoke(ctx context.Context, username, tokenID string) error {
	return s.client.Del(ctx, s.key(username, tokenID)).Err()
}

// RevokeOthers drops every session of username except keepTokenID. Used when
// a password changes so older tokens stop working immediately.
func (s *SessionStore) RevokeOthers(ctx context.Context, username, keepTokenID string) error {
	iter := s.client.Scan(ctx, 0, s.key(username, "*"), 0).Iterator()
	keep := s.key(username, keepTokenID)
	for iter.Next(ctx) {
		if key := iter.Val(); key != keep {
			if err := s.client.Del(ctx, key).Err(); err != nil {
				return err
			}
		}
	}
	return iter.Err()
}

func (s *SessionStore) key(username, tokenID string) string {
	return fmt.Sprintf("session:%s:%s", username, tokenID)
}
