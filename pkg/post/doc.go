// Package post reads markdown blog posts and derives their slugs.
//
// A post is markdown with optional YAML front matter:
//
//	---
//	title: Hello, World!
//	slug: hello-world-2
//	tags: [intro]
//	---
//	# Hello, World!
//
//	Body text.
//
// The title comes from front matter, or from the first level-1 heading when
// front matter has none. The slug is derived with slug.GenerateUnique, using the
// front matter slug as the existing one:
//
//	p, err := post.Parse(src)
//	if err != nil {
//		return err
//	}
//	if err := p.Validate(); err != nil {
//		return err
//	}
//	s, err := p.Slug()
//
// Global uniqueness is the caller's job. Pass a slug.Resolver backed by the
// store of published posts to ResolveSlug.
package post
