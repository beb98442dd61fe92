package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signkit/signkit/pkg/cache"
)

func TestLRU_PutGet(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)

	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// "b" is now the least recently used and gets evicted.
	c.Put("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)

	v, ok = c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLRU_UpdateExisting(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)

	c.Put("a", 1)
	c.Put("a", 10)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_RemoveAndClear(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](4)
	c.Put("a", 1)
	c.Put("b", 2)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestNewLRU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		cache.NewLRU[string, int](0)
	})
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](64)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (i*100+j)%32)
				c.Put(key, j)
				c.Get(key)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
}
