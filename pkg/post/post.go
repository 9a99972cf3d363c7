package post

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/sanitizer"
	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
	"github.com/anishsharma21/cassius-frontend-sub001/pkg/validator"
)

// MaxTitleLength is the longest title, in runes, that Validate accepts.
const MaxTitleLength = 200

const delimiter = "---"

// FrontMatter is the YAML header of a post.
type FrontMatter struct {
	// Extra holds every key other than title and slug.
	Extra map[string]any `yaml:",inline"`
	Title string         `yaml:"title"`
	Slug  string         `yaml:"slug"`
}

// Post is a parsed markdown post.
type Post struct {
	FrontMatter FrontMatter
	Body        []byte
}

// Parse splits src into front matter and body.
// Input without a leading "---" line has empty front matter and is all body.
func Parse(src []byte) (*Post, error) {
	first, rest, _ := cutLine(src)
	if strings.TrimSpace(string(first)) != delimiter {
		return &Post{Body: src}, nil
	}

	var header []byte
	for remaining := rest; ; {
		if len(remaining) == 0 {
			return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontMatter)
		}

		line, next, _ := cutLine(remaining)
		if strings.TrimRight(string(line), " \t\r") == delimiter {
			header = rest[:len(rest)-len(remaining)]
			rest = next
			break
		}
		remaining = next
	}

	p := &Post{Body: rest}
	if len(bytes.TrimSpace(header)) == 0 {
		return p, nil
	}
	if err := yaml.Unmarshal(header, &p.FrontMatter); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}
	return p, nil
}

// Title returns the front matter title, or the first level-1 heading.
// Markup is reduced to plain text.
func (p *Post) Title() string {
	if t := sanitizer.PlainText(p.FrontMatter.Title); t != "" {
		return t
	}
	return p.Heading()
}

// Slug derives the post slug from its title and current front matter slug.
func (p *Post) Slug() (string, error) {
	title, err := p.sluggableTitle()
	if err != nil {
		return "", err
	}
	return slug.GenerateUnique(title, p.FrontMatter.Slug), nil
}

// ResolveSlug derives the post slug through r, which checks it against taken slugs.
func (p *Post) ResolveSlug(ctx context.Context, r *slug.Resolver) (string, error) {
	title := p.Title()
	if title == "" {
		return "", ErrNoTitle
	}
	return r.Resolve(ctx, title, p.FrontMatter.Slug)
}

// Validate checks the title and any hand-written front matter slug.
func (p *Post) Validate() error {
	title := p.Title()
	return validator.Apply(
		validator.RequiredString("title", title),
		validator.MaxLenString("title", title, MaxTitleLength),
		slug.Rule("slug", p.FrontMatter.Slug),
	)
}

func (p *Post) sluggableTitle() (string, error) {
	title := p.Title()
	if title == "" {
		return "", ErrNoTitle
	}
	if slug.Make(title) == "" {
		return "", slug.ErrEmptySlug
	}
	return title, nil
}

// cutLine splits b after the first newline. The returned line keeps no newline.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
