// Package cache keeps the username to user-id mapping used by the authorization
// predicate. The mapping never changes once a credential exists, so entries are
// only ever added.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type CredentialCache interface {
	// UserID returns the cached owner of username. ok is false on a miss.
	UserID(ctx context.Context, username string) (id uuid.UUID, ok bool, err error)
	SetUserID(ctx context.Context, username string, id uuid.UUID) error
}

const keyPrefix = "credential:"

type RedisCredentialCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCredentialCache(client *redis.Client, ttl time.Duration) *RedisCredentialCache {
	return &RedisCredentialCache{client: client, ttl: ttl}
}

func (c *RedisCredentialCache) UserID(ctx context.Context, username string) (uuid.UUID, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		// stale or foreign value, treat as a miss so it gets overwritten
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

func (c *RedisCredentialCache) SetUserID(ctx context.Context, username string, id uuid.UUID) error {
	return c.client.Set(ctx, keyPrefix+username, id.String(), c.ttl).Err()
}

// NopCredentialCache never hits. It is used when REDIS_URL is not configured.
type NopCredentialCache struct{}

func (NopCredentialCache) UserID(context.Context, string) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}

func (NopCredentialCache) SetUserID(context.Context, string, uuid.UUID) error { return nil }
