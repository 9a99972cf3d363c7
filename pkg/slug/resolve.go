package slug

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ExistsFunc reports whether a slug is already taken.
// It is supplied by the caller, typically backed by its storage layer.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Resolver finds a free slug by feeding every rejected candidate back into
// GenerateUnique until the caller's ExistsFunc accepts one.
//
// Example:
//
//	r := slug.NewResolver(repo.SlugExists, slug.WithReserved("admin", "api"))
//	s, err := r.Resolve(ctx, post.Title, post.Slug)
type Resolver struct {
	exists ExistsFunc
	opts   *resolverOptions
}

// NewResolver creates a Resolver. A nil exists treats every slug as free,
// leaving only the reserved list to check.
func NewResolver(exists ExistsFunc, opts ...Option) *Resolver {
	o := defaultResolverOptions()
	for _, opt := range opts {
		opt(o)
	}
	if exists == nil {
		exists = func(context.Context, string) (bool, error) { return false, nil }
	}
	return &Resolver{exists: exists, opts: o}
}

// Resolve returns the first candidate for title that is neither reserved nor taken.
// The first candidate is GenerateUnique(title, existing), so an unchanged title
// keeps its current slug as long as the lookup says it is free.
func (r *Resolver) Resolve(ctx context.Context, title, existing string) (string, error) {
	if Make(title) == "" {
		return "", ErrEmptySlug
	}

	candidate := GenerateUnique(title, existing)
	for attempt := 1; attempt <= r.opts.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		taken, err := r.taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}

		r.opts.logger.DebugContext(ctx, "slug collision",
			slog.String("candidate", candidate),
			slog.Int("attempt", attempt),
		)

		next := GenerateUnique(title, candidate)
		if next == candidate {
			// The base slug itself is taken; start the numbered family.
			next = GenerateUnique(title, candidate+"-0")
		}
		candidate = next
	}

	return "", fmt.Errorf("%w: %d attempts for %q", ErrAttemptsExhausted, r.opts.maxAttempts, title)
}

// IsReserved reports whether s is on the reserved list.
func (r *Resolver) IsReserved(s string) bool {
	_, ok := r.opts.reserved[s]
	return ok
}

func (r *Resolver) taken(ctx context.Context, candidate string) (bool, error) {
	if r.IsReserved(candidate) {
		return true, nil
	}

	ok, err := r.exists(ctx, candidate)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		return false, errors.Join(ErrLookupFailed, err)
	}
	return ok, nil
}
