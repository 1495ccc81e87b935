package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopCredentialCache(t *testing.T) {
	ctx := context.Background()
	c := NopCredentialCache{}

	require.NoError(t, c.SetUserID(ctx, "alice", uuid.New()))

	id, ok, err := c.UserID(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}

func TestRedisCredentialCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCredentialCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := c.UserID(ctx, "alice")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, c.SetUserID(ctx, "alice", uuid.New()))
}

func TestCredentialCache_Interface(t *testing.T) {
	var _ CredentialCache = NopCredentialCache{}
	var _ CredentialCache = (*RedisCredentialCache)(nil)
}
