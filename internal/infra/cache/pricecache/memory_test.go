package pricecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TransferService/pkg/ptr"
)

func TestMemory_GetSetFlush(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	_, found, err := c.Get(ctx, "airport-transfers|car|cdg|paris")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "airport-transfers|car|cdg|paris", Entry{Price: ptr.Ptr(89.0)}))
	require.NoError(t, c.Set(ctx, "airport-transfers|van|cdg|paris", Entry{}))

	entry, found, err := c.Get(ctx, "airport-transfers|car|cdg|paris")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 89.0, *entry.Price)

	// negative result is cached too
	entry, found, err = c.Get(ctx, "airport-transfers|van|cdg|paris")
	require.NoError(t, err)
	require.True(t, found)
	assert.Nil(t, entry.Price)

	require.NoError(t, c.Flush(ctx))
	_, found, err = c.Get(ctx, "airport-transfers|car|cdg|paris")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(20 * time.Millisecond)

	require.NoError(t, c.Set(ctx, "k", Entry{Price: ptr.Ptr(10.0)}))
	time.Sleep(40 * time.Millisecond)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}
