package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpeart73/clockwork-elite/internal/models"
)

func sampleResult(note string) Result {
	return Result{
		Contacts: []models.PointOfContact{{
			ID:        "id-1",
			DateStr:   "January 6, 2025",
			Type:      models.ContactTypeEmail,
			Exchanges: 1,
			Context:   "Email header: Sent: Monday",
		}},
		Note:        note,
		HasOverride: true,
	}
}

func TestNew(t *testing.T) {
	c := New(time.Minute)
	assert.NotNil(t, c)
	assert.Equal(t, 0, c.Len())

	// Non-positive TTL falls back to the default.
	fallback := New(0)
	assert.Equal(t, DefaultTTL, fallback.ttl)
}

func TestCache_SetAndGet(t *testing.T) {
	c := New(time.Minute)
	key := Key("text", "client", "staff")

	c.Set(key, sampleResult("rendered note"))

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "rendered note", got.Note)
	assert.True(t, got.HasOverride)
	require.Len(t, got.Contacts, 1)
	assert.Equal(t, "January 6, 2025", got.Contacts[0].DateStr)

	_, ok = c.Get("nonexistent")
	assert.False(t, ok)
}

func TestCache_Expiration(t *testing.T) {
	c := New(50 * time.Millisecond)
	key := Key("text", "", "")
	c.Set(key, sampleResult("note"))

	_, ok := c.Get(key)
	assert.True(t, ok)

	time.Sleep(80 * time.Millisecond)

	_, ok = c.Get(key)
	assert.False(t, ok)
	// Expired entries are removed on read.
	assert.Equal(t, 0, c.Len())
}

func TestCache_Overwrite(t *testing.T) {
	c := New(time.Minute)
	key := Key("text", "", "")

	c.Set(key, sampleResult("first"))
	c.Set(key, sampleResult("second"))

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "second", got.Note)
	assert.Equal(t, 1, c.Len())
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", sampleResult("a"))
	c.Set("b", sampleResult("b"))

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.Delete("missing") // no-op

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestKey_Deterministic(t *testing.T) {
	assert.Equal(t, Key("t", "c", "s"), Key("t", "c", "s"))
	assert.NotEqual(t, Key("t", "c", "s"), Key("t", "c", "x"))
	assert.NotEqual(t, Key("ab", "c", ""), Key("a", "bc", ""))
	assert.NotEqual(t, Key("t", "cs", ""), Key("t", "c", "s"))
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New(time.Minute)
	iterations := 100
	var wg sync.WaitGroup

	wg.Add(iterations * 3)
	for i := 0; i < iterations; i++ {
		go func(n int) {
			defer wg.Done()
			c.Set(fmt.Sprintf("key-%d", n%10), sampleResult("note"))
		}(i)

		go func(n int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("key-%d", n%10))
		}(i)

		go func(n int) {
			defer wg.Done()
			if n%10 == 0 {
				c.Delete(fmt.Sprintf("key-%d", n%10))
			}
		}(i)
	}
	wg.Wait()

	c.Set("final", sampleResult("still working"))
	got, ok := c.Get("final")
	assert.True(t, ok)
	assert.Equal(t, "still working", got.Note)
}

func BenchmarkCache_Set(b *testing.B) {
	c := New(time.Minute)
	r := sampleResult("note")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key", r)
	}
}

func BenchmarkCache_Get(b *testing.B) {
	c := New(time.Minute)
	c.Set("key", sampleResult("note"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Key("some pasted email thread text", "client", "staff")
	}
}
