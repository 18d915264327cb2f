package blogfeed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TTL is how long a fetched post list stays fresh.
const TTL = 24 * time.Hour

// Result is what a cache lookup hands to the HTTP layer. CacheAge is whole
// hours and only meaningful when Cached is true. Stale marks an expired list
// served because the refresh attempt failed.
type Result struct {
	Posts    []Post
	Cached   bool
	CacheAge int
	Stale    bool
}

type entry struct {
	posts     []Post
	fetchedAt time.Time
}

// Cache is the single process-wide cache slot for feed posts. The slot is
// mutex-guarded and refreshes are de-duplicated through singleflight, so
// concurrent requests trigger at most one outbound fetch per expiry.
type Cache struct {
	fetch func(context.Context) ([]Post, error)
	ttl   time.Duration
	now   func() time.Time

	mu    sync.Mutex
	slot  *entry
	group singleflight.Group
}

func NewCache(fetch func(context.Context) ([]Post, error)) *Cache {
	return &Cache{fetch: fetch, ttl: TTL, now: time.Now}
}

// Get serves the cached list while it is fresh, refreshes it when expired or
// empty, and falls back to the expired list (marked stale) when the refresh
// fails. The error return is non-nil only when there is nothing to serve at
// all: no cache and a failed fetch.
func (c *Cache) Get(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.slot != nil {
		if age := c.now().Sub(c.slot.fetchedAt); age < c.ttl {
			res := Result{Posts: c.slot.posts, Cached: true, CacheAge: int(age.Hours())}
			c.mu.Unlock()
			return res, nil
		}
	}
	c.mu.Unlock()

	fetched, err, _ := c.group.Do("feed", func() (any, error) {
		posts, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.slot = &entry{posts: posts, fetchedAt: c.now()}
		c.mu.Unlock()
		return posts, nil
	})
	if err != nil {
		c.mu.Lock()
		slot := c.slot
		c.mu.Unlock()
		if slot != nil && len(slot.posts) > 0 {
			return Result{Posts: slot.posts, Cached: true, Stale: true}, nil
		}
		return Result{Posts: []Post{}}, fmt.Errorf("fetch blog feed: %w", err)
	}
	return Result{Posts: fetched.([]Post)}, nil
}
