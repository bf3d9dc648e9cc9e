package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	loads   atomic.Int32
	release chan struct{}
	err     error
}

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) Load(ctx context.Context) (*Catalog, error) {
	s.loads.Add(1)
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return New([]Entry{{Key: "A", Slots: 1}})
}

func TestCache_TTL(t *testing.T) {
	src := &countingSource{}
	cache := NewCache(src, time.Minute)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.EqualValues(t, 1, src.loads.Load())

	clock = clock.Add(2 * time.Minute)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.loads.Load())

	cache.Invalidate()
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, src.loads.Load())
}

func TestCache_ZeroTTL(t *testing.T) {
	src := &countingSource{}
	cache := NewCache(src, 0)

	for i := 0; i < 3; i++ {
		_, err := cache.Get(context.Background())
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, src.loads.Load())
}

func TestCache_Error(t *testing.T) {
	src := &countingSource{err: errors.New("bucket offline")}
	cache := NewCache(src, time.Minute)

	_, err := cache.Get(context.Background())
	assert.EqualError(t, err, "bucket offline")

	src.err = nil
	cat, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestCache_SingleFlight(t *testing.T) {
	src := &countingSource{release: make(chan struct{})}
	cache := NewCache(src, time.Minute)

	var wg sync.WaitGroup
	results := make([]*Catalog, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cat, err := cache.Get(context.Background())
			assert.NoError(t, err)
			results[i] = cat
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.EqualValues(t, 1, src.loads.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
