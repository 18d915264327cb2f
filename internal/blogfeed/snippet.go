package blogfeed

import (
	"html"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

const snippetLength = 200

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// stripHTML removes tag-like substrings, decodes HTML entities, and collapses
// whitespace runs to single spaces.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	text := tagPattern.ReplaceAllString(s, "")
	// &nbsp; becomes a plain space, not U+00A0, so collapsing catches it.
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = html.UnescapeString(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// contentSnippet derives a short plain-text snippet, preferring the feed's own
// description when it carries no markup, then stripped full content, then the
// stripped description, then an empty string.
func contentSnippet(item *gofeed.Item) string {
	if item.Description != "" && !strings.Contains(item.Description, "<") {
		return truncate(item.Description, snippetLength)
	}
	if item.Content != "" {
		return truncate(stripHTML(item.Content), snippetLength)
	}
	if item.Description != "" {
		return truncate(stripHTML(item.Description), snippetLength)
	}
	return ""
}

// truncate caps s at max characters, never splitting a multibyte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
