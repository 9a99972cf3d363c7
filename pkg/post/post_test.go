package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/post"
	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
	"github.com/anishsharma21/cassius-frontend-sub001/pkg/validator"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("front matter and body", func(t *testing.T) {
		t.Parallel()
		src := "---\ntitle: Hello, World!\nslug: hello-world-2\ntags: [intro, news]\n---\n# Heading\n\nBody.\n"

		p, err := post.Parse([]byte(src))
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!", p.FrontMatter.Title)
		assert.Equal(t, "hello-world-2", p.FrontMatter.Slug)
		assert.Equal(t, []any{"intro", "news"}, p.FrontMatter.Extra["tags"])
		assert.Equal(t, "# Heading\n\nBody.\n", string(p.Body))
	})

	t.Run("crlf line endings", func(t *testing.T) {
		t.Parallel()
		src := "---\r\ntitle: Windows Post\r\n---\r\nBody\r\n"

		p, err := post.Parse([]byte(src))
		require.NoError(t, err)
		assert.Equal(t, "Windows Post", p.FrontMatter.Title)
		assert.Equal(t, "Body\r\n", string(p.Body))
	})

	t.Run("no front matter", func(t *testing.T) {
		t.Parallel()
		src := "# Just Markdown\n\ntext"

		p, err := post.Parse([]byte(src))
		require.NoError(t, err)
		assert.Empty(t, p.FrontMatter.Title)
		assert.Equal(t, src, string(p.Body))
	})

	t.Run("thematic break later in body is not front matter", func(t *testing.T) {
		t.Parallel()
		src := "Intro\n\n---\n\nMore"

		p, err := post.Parse([]byte(src))
		require.NoError(t, err)
		assert.Equal(t, src, string(p.Body))
	})

	t.Run("empty front matter", func(t *testing.T) {
		t.Parallel()
		p, err := post.Parse([]byte("---\n---\nBody"))
		require.NoError(t, err)
		assert.Empty(t, p.FrontMatter.Slug)
		assert.Equal(t, "Body", string(p.Body))
	})

	t.Run("dashes inside a value do not close the block", func(t *testing.T) {
		t.Parallel()
		p, err := post.Parse([]byte("---\ntitle: Before --- After\n---\n"))
		require.NoError(t, err)
		assert.Equal(t, "Before --- After", p.FrontMatter.Title)
		assert.Empty(t, p.Body)
	})

	t.Run("unterminated", func(t *testing.T) {
		t.Parallel()
		_, err := post.Parse([]byte("---\ntitle: Open\nbody"))
		assert.ErrorIs(t, err, post.ErrInvalidFrontMatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := post.Parse([]byte("---\ntitle: [unclosed\n---\n"))
		assert.ErrorIs(t, err, post.ErrInvalidFrontMatter)
	})
}

func TestPost_Heading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "atx heading", body: "# Hello World\n\ntext", expected: "Hello World"},
		{name: "setext heading", body: "Hello Setext\n============\n", expected: "Hello Setext"},
		{name: "emphasis flattened", body: "# Hello *bold* _world_", expected: "Hello bold world"},
		{name: "code span kept", body: "# Using `go test`", expected: "Using go test"},
		{name: "link text kept", body: "# Read [the docs](https://example.com)", expected: "Read the docs"},
		{name: "inline html dropped", body: "# Big <em>News</em>", expected: "Big News"},
		{name: "entity decoded", body: "# Tom &amp; Jerry", expected: "Tom & Jerry"},
		{name: "skips lower levels", body: "## Sub\n\n# Main", expected: "Main"},
		{name: "no heading", body: "just text", expected: ""},
		{name: "empty body", body: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &post.Post{Body: []byte(tt.body)}
			assert.Equal(t, tt.expected, p.Heading())
		})
	}
}

func TestPost_Title(t *testing.T) {
	t.Parallel()

	t.Run("front matter wins", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{FrontMatter: post.FrontMatter{Title: "From Header"}, Body: []byte("# From Body")}
		assert.Equal(t, "From Header", p.Title())
	})

	t.Run("falls back to heading", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{Body: []byte("# From Body")}
		assert.Equal(t, "From Body", p.Title())
	})

	t.Run("markup stripped from front matter", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{FrontMatter: post.FrontMatter{Title: "<b>Launch</b>   Day"}}
		assert.Equal(t, "Launch Day", p.Title())
	})
}

func TestPost_Slug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "new post",
			src:      "---\ntitle: Hello, World!\n---\n",
			expected: "hello-world",
		},
		{
			name:     "unchanged title keeps slug",
			src:      "---\ntitle: My Post\nslug: my-post\n---\n",
			expected: "my-post",
		},
		{
			name:     "same family increments",
			src:      "---\ntitle: My Post\nslug: my-post-2\n---\n",
			expected: "my-post-3",
		},
		{
			name:     "renamed post starts new family",
			src:      "---\ntitle: New Title\nslug: old-title-5\n---\n",
			expected: "new-title-1",
		},
		{
			name:     "title from heading",
			src:      "# Hello World\n\nBody",
			expected: "hello-world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := post.Parse([]byte(tt.src))
			require.NoError(t, err)

			got, err := p.Slug()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("no title", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{Body: []byte("no heading here")}
		_, err := p.Slug()
		assert.ErrorIs(t, err, post.ErrNoTitle)
	})

	t.Run("title without slug characters", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{FrontMatter: post.FrontMatter{Title: "北京", Slug: "beijing"}}
		_, err := p.Slug()
		assert.ErrorIs(t, err, slug.ErrEmptySlug)
	})
}

func TestPost_ResolveSlug(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{"hello-world": true, "hello-world-1": true}
	r := slug.NewResolver(func(_ context.Context, s string) (bool, error) {
		return taken[s], nil
	})

	p := &post.Post{FrontMatter: post.FrontMatter{Title: "Hello World"}}
	got, err := p.ResolveSlug(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2", got)

	_, err = (&post.Post{}).ResolveSlug(context.Background(), r)
	assert.ErrorIs(t, err, post.ErrNoTitle)
}

func TestPost_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{FrontMatter: post.FrontMatter{Title: "Hello", Slug: "hello-2"}}
		assert.NoError(t, p.Validate())
	})

	t.Run("missing title and bad slug", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{FrontMatter: post.FrontMatter{Slug: "Not A Slug"}}

		ve := validator.ExtractValidationErrors(p.Validate())
		require.NotNil(t, ve)
		assert.True(t, ve.Has("title"))
		assert.True(t, ve.Has("slug"))
	})

	t.Run("title too long", func(t *testing.T) {
		t.Parallel()
		long := make([]byte, post.MaxTitleLength+1)
		for i := range long {
			long[i] = 'a'
		}
		p := &post.Post{FrontMatter: post.FrontMatter{Title: string(long)}}

		ve := validator.ExtractValidationErrors(p.Validate())
		require.Len(t, ve, 1)
		assert.Equal(t, "validation.max_length", ve[0].TranslationKey)
	})
}

func TestPost_Preview(t *testing.T) {
	t.Parallel()

	t.Run("renders and sanitizes", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{Body: []byte("# Title\n\nHello **world**, read [the docs](https://example.com).\n\n<script>alert('xss')</script>\n")}

		got, err := p.Preview()
		require.NoError(t, err)
		assert.Contains(t, got, "<h1>Title</h1>")
		assert.Contains(t, got, "<strong>world</strong>")
		assert.Contains(t, got, `<a href="https://example.com" rel="nofollow">the docs</a>`)
		assert.NotContains(t, got, "<script")
		assert.NotContains(t, got, "alert")
		assert.NotContains(t, got, "<!--")
	})

	t.Run("inline html dropped", func(t *testing.T) {
		t.Parallel()
		p := &post.Post{Body: []byte(`Click <a href="javascript:alert(1)" onclick="x()">here</a>`)}

		got, err := p.Preview()
		require.NoError(t, err)
		assert.NotContains(t, got, "javascript:")
		assert.NotContains(t, got, "onclick")
		assert.Contains(t, got, "here")
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		got, err := (&post.Post{}).Preview()
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
