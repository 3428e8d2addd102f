package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCacheRoundtrip(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", payload{Name: "livro", Count: 3}, 0))

	var got payload
	found, err := mc.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "livro", Count: 3}, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()

	var got payload
	found, err := mc.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheDelete(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", payload{Name: "a"}, 0))
	require.NoError(t, mc.Set(ctx, "b", payload{Name: "b"}, 0))
	require.NoError(t, mc.Delete(ctx, "a", "b"))

	var got payload
	found, err := mc.Get(ctx, "a", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", payload{Name: "livro"}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var got payload
	found, err := mc.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found, "entry must expire after its TTL")
}

func TestMemoryCachePing(t *testing.T) {
	assert.NoError(t, NewMemoryCache().Ping(context.Background()))
}
