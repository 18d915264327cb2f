package blogfeed

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

// fakeFeed drives the cache with a scripted fetch function and a manual clock.
type fakeFeed struct {
	posts   []Post
	err     error
	fetches int
	clock   time.Time
}

func newFakeFeed(posts ...Post) *fakeFeed {
	return &fakeFeed{posts: posts, clock: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeFeed) fetch(context.Context) ([]Post, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakeFeed) cache() *Cache {
	c := NewCache(f.fetch)
	c.now = func() time.Time { return f.clock }
	return c
}

func TestFirstGetFetches(t *testing.T) {
	feed := newFakeFeed(Post{Title: "one"}, Post{Title: "two"})
	c := feed.cache()

	res, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.False(t, res.Stale)
	assert.Equal(t, feed.posts, res.Posts)
	assert.Equal(t, 1, feed.fetches)
}

func TestFreshCacheServedWithoutFetch(t *testing.T) {
	feed := newFakeFeed(Post{Title: "one"})
	c := feed.cache()

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	feed.clock = feed.clock.Add(TTL - time.Second)
	res, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.False(t, res.Stale)
	assert.Equal(t, 23, res.CacheAge)
	assert.Equal(t, feed.posts, res.Posts)
	assert.Equal(t, 1, feed.fetches)
}

func TestExpiredCacheTriggersRefetch(t *testing.T) {
	feed := newFakeFeed(Post{Title: "one"})
	c := feed.cache()

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	feed.clock = feed.clock.Add(TTL + time.Second)
	feed.posts = []Post{{Title: "newer"}}
	res, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, "newer", res.Posts[0].Title)
	assert.Equal(t, 2, feed.fetches)
}

func TestStaleFallbackOnRefreshFailure(t *testing.T) {
	feed := newFakeFeed(Post{Title: "one"})
	c := feed.cache()

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	feed.clock = feed.clock.Add(TTL + time.Hour)
	feed.err = errors.New("upstream down")
	res, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.True(t, res.Stale)
	assert.Equal(t, "one", res.Posts[0].Title)

	// The stale list is not cleared; the next failing refresh serves it again.
	res, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Equal(t, "one", res.Posts[0].Title)
}

func TestEmptyCacheFetchFailure(t *testing.T) {
	feed := newFakeFeed()
	feed.err = errors.New("upstream down")
	c := feed.cache()

	res, err := c.Get(context.Background())
	assert.Error(t, err)
	assert.Empty(t, res.Posts)
	assert.NotNil(t, res.Posts)
}

func TestConcurrentGetsFetchOnce(t *testing.T) {
	var fetches atomic.Int32
	c := NewCache(func(context.Context) ([]Post, error) {
		fetches.Add(1)
		time.Sleep(50 * time.Millisecond)
		return []Post{{Title: "one"}}, nil
	})

	const callers = 10
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "one", res.Posts[0].Title)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, fetches.Load())
}

func TestRecoveryAfterStale(t *testing.T) {
	feed := newFakeFeed(Post{Title: "one"})
	c := feed.cache()

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	feed.clock = feed.clock.Add(TTL + time.Hour)
	feed.err = errors.New("blip")
	_, err = c.Get(context.Background())
	require.NoError(t, err)

	feed.err = nil
	feed.posts = []Post{{Title: "recovered"}}
	res, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Stale)
	assert.False(t, res.Cached)
	assert.Equal(t, "recovered", res.Posts[0].Title)

	// And the new list is fresh again.
	res, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, "recovered", res.Posts[0].Title)
}
