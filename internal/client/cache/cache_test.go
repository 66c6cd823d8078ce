package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetMiss(t *testing.T) {
	c := New[string](time.Minute)
	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestSetGetWithinTTL(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("k", 42)

	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, 42, got)
}

func TestExpiry(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	c := NewWithClock[int](30*time.Second, func() time.Time { return clock })

	c.Set("k", 1)

	clock = base.Add(29 * time.Second)
	_, ok := c.Get("k")
	require.True(t, ok)

	clock = base.Add(30 * time.Second)
	_, ok = c.Get("k")
	require.False(t, ok)
}

func TestPurge(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Purge()

	_, ok := c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.False(t, ok)
}
