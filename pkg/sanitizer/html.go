// Package sanitizer cleans user-supplied HTML from the blog editor and
// HTML rendered from post markdown.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	previewPolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Block and inline elements goldmark emits for a post body.
		previewPolicy = bluemonday.NewPolicy()
		previewPolicy.AllowStandardURLs()
		previewPolicy.AllowElements(
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr",
			"strong", "em", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		previewPolicy.AllowAttrs("href", "title").OnElements("a")
		previewPolicy.AllowAttrs("src", "alt", "title").OnElements("img")
		previewPolicy.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
		previewPolicy.RequireNoFollowOnLinks(true)
	})
}

// PlainText strips every tag from s, decodes entities and collapses whitespace.
// Script and style contents are dropped. Use it for titles pasted from the
// rich editor before they reach the slug functions.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	initPolicies()
	text := html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

// Preview sanitizes HTML rendered from a post body. Headings, paragraphs,
// emphasis, lists, code, links and images survive; scripts, event handlers,
// comments and javascript: URLs are removed. Links get rel="nofollow".
func Preview(s string) string {
	if s == "" {
		return ""
	}
	initPolicies()
	return previewPolicy.Sanitize(s)
}
