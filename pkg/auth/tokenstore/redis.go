package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kart-io/content-center/pkg/utils/errors"
)

// RedisStore implements Store on Redis. Suitable when several instances
// must agree on the live token set.
//
// Layout: one hash per identifier under <prefix>cred:<identifier> holding
// the code and token, plus <prefix>token:<token> marking the token live.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisStoreOption is a functional option for RedisStore.
type RedisStoreOption func(*RedisStore)

// WithRedisPrefix overrides the key prefix. Default "contentcenter:auth:".
func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithRedisTTL bounds token validity after issuance. Zero disables expiry.
func WithRedisTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// NewRedisStore creates a Redis-backed token store and provisions the
// given credential tuples.
func NewRedisStore(ctx context.Context, client *redis.Client, creds []Credential, opts ...RedisStoreOption) (*RedisStore, error) {
	s := &RedisStore{
		client: client,
		prefix: "contentcenter:auth:",
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, c := range creds {
		if err := client.HSet(ctx, s.credKey(c.Identifier), "code", c.Code, "token", c.Token).Err(); err != nil {
			return nil, fmt.Errorf("provision credential %s: %w", c.Identifier, err)
		}
		if s.ttl == 0 {
			if err := client.Set(ctx, s.tokenKey(c.Token), c.Identifier, 0).Err(); err != nil {
				return nil, fmt.Errorf("provision token for %s: %w", c.Identifier, err)
			}
		}
	}

	return s, nil
}

// Issue exchanges credentials for the provisioned token.
func (s *RedisStore) Issue(ctx context.Context, identifier, code string) (string, error) {
	vals, err := s.client.HGetAll(ctx, s.credKey(identifier)).Result()
	if err != nil {
		return "", fmt.Errorf("redis error: %w", err)
	}
	if len(vals) == 0 || vals["code"] != code {
		return "", errors.ErrInvalidCredentials
	}

	token := vals["token"]
	if s.ttl > 0 {
		if err := s.client.Set(ctx, s.tokenKey(token), identifier, s.ttl).Err(); err != nil {
			return "", fmt.Errorf("redis error: %w", err)
		}
	}
	return token, nil
}

// Validate reports whether the token key is live.
func (s *RedisStore) Validate(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, s.tokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return count > 0, nil
}

// Close is a no-op; the redis client is managed by the caller.
func (s *RedisStore) Close() error {
	return nil
}

func (s *RedisStore) credKey(identifier string) string {
	return s.prefix + "cred:" + identifier
}

func (s *RedisStore) tokenKey(token string) string {
	return s.prefix + "token:" + token
}
