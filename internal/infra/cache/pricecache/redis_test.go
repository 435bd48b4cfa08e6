package pricecache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedis_BackendUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedis(client, time.Minute)
	ctx := context.Background()

	_, found, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrBackend)
	assert.False(t, found)

	assert.ErrorIs(t, c.Set(ctx, "k", Entry{}), ErrBackend)
	assert.ErrorIs(t, c.Flush(ctx), ErrBackend)
}
