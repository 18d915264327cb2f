// Package blogfeed pulls posts from a remote RSS feed, normalizes them, and
// caches the result in memory with a TTL and a stale-on-error fallback.
package blogfeed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// maxPosts caps the number of posts kept per fetch. Source order is preserved.
const maxPosts = 6

// Post is a normalized feed item. Posts live only in the cache and are never
// written to durable storage.
type Post struct {
	Title          string   `json:"title"`
	Link           string   `json:"link"`
	PubDate        string   `json:"pubDate"`
	ContentSnippet string   `json:"contentSnippet"`
	Content        string   `json:"content,omitempty"`
	GUID           string   `json:"guid,omitempty"`
	Categories     []string `json:"categories,omitempty"`
}

// Fetcher downloads and parses the configured RSS feed.
type Fetcher struct {
	url    string
	parser *gofeed.Parser
}

func NewFetcher(feedURL string) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 10 * time.Second}
	return &Fetcher{url: feedURL, parser: parser}
}

// Fetch pulls the feed and returns up to maxPosts normalized posts.
func (f *Fetcher) Fetch(ctx context.Context) ([]Post, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.url, err)
	}
	return postsFromFeed(feed), nil
}

func postsFromFeed(feed *gofeed.Feed) []Post {
	items := feed.Items
	if len(items) > maxPosts {
		items = items[:maxPosts]
	}
	posts := make([]Post, 0, len(items))
	for _, item := range items {
		posts = append(posts, normalize(item))
	}
	return posts
}

func normalize(item *gofeed.Item) Post {
	title := item.Title
	if title == "" {
		title = "Untitled"
	}
	return Post{
		Title:          title,
		Link:           item.Link,
		PubDate:        item.Published,
		ContentSnippet: contentSnippet(item),
		Content:        item.Content,
		GUID:           item.GUID,
		Categories:     item.Categories,
	}
}
