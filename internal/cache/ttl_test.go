package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLSetGet(t *testing.T) {
	c := NewTTL[string, int](time.Minute)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := NewTTL[string, string](time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("k", "v")
	_, ok := c.Get("k")
	assert.True(t, ok)

	// Advance past the TTL; the entry must be gone.
	current = current.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)

	// Expired entries are dropped, not resurrected.
	current = current.Add(-2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestTTLDisabled(t *testing.T) {
	c := NewTTL[string, int](0)

	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTLDeleteAndPurge(t *testing.T) {
	c := NewTTL[string, int](time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Purge()
	_, ok = c.Get("b")
	assert.False(t, ok)
}
