package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(time.Minute)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "saldo", "Seu saldo é R$ 100,00.")
	value, ok := c.Get(ctx, "saldo")
	require.True(t, ok)
	assert.Equal(t, "Seu saldo é R$ 100,00.", value)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(10 * time.Millisecond)

	c.Set(ctx, "key", "value")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(time.Minute)

	c.Set(ctx, "key", "first")
	c.Set(ctx, "key", "second")

	value, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestMemoryCacheClose(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(time.Minute)

	c.Set(ctx, "key", "value")
	require.NoError(t, c.Close())

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}

func TestNewSelectsMemoryBackend(t *testing.T) {
	c := New("", 0)
	t.Cleanup(func() { _ = c.Close() })

	_, isMemory := c.(*memoryCache)
	assert.True(t, isMemory)
}
