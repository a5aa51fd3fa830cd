package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	RegionCode string `json:"regionCode"`
	Count      int    `json:"count"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache[testEntry](time.Hour)

	_, ok, err := c.Get(ctx, "de")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "de", testEntry{RegionCode: "de", Count: 3}))

	got, ok, err := c.Get(ctx, "de")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "de", got.RegionCode)
	assert.Equal(t, 3, got.Count)
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache[testEntry](time.Hour)

	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Put(ctx, "fr", testEntry{RegionCode: "fr"}))

	current = current.Add(59 * time.Minute)
	_, ok, err := c.Get(ctx, "fr")
	require.NoError(t, err)
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, "fr")
	require.NoError(t, err)
	assert.False(t, ok, "entry past its TTL must read as a miss")
}

func TestSQLiteCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewSQLiteCache[testEntry](":memory:", time.Hour)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	_, ok, err := c.Get(ctx, "de")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "de", testEntry{RegionCode: "de", Count: 12}))

	got, ok, err := c.Get(ctx, "de")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testEntry{RegionCode: "de", Count: 12}, got)

	// Same-key writes are last-write-wins.
	require.NoError(t, c.Put(ctx, "de", testEntry{RegionCode: "de", Count: 99}))
	got, ok, err = c.Get(ctx, "de")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 99, got.Count)
}

func TestSQLiteCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewSQLiteCache[testEntry](":memory:", time.Hour)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Put(ctx, "jp", testEntry{RegionCode: "jp"}))

	current = current.Add(2 * time.Hour)
	_, ok, err := c.Get(ctx, "jp")
	require.NoError(t, err)
	assert.False(t, ok)
}
