// Package slug turns post titles into URL-safe slugs and keeps their numeric
// suffixes stable across edits.
//
// The core is three pure functions that never fail:
//
//	slug.Make("Hello, World!")                      // "hello-world"
//	slug.GenerateUnique("Hello World", "")          // "hello-world"
//	slug.GenerateUnique("Hello World", "hello-world-7") // "hello-world-8"
//	slug.GenerateUnique("New Title", "old-title-5")     // "new-title-1"
//	slug.ExtractTitle("hello-world-8")              // "hello-world"
//
// Slugs consist of lowercase ASCII letters, digits and underscores separated by
// single hyphens. Non-ASCII characters are dropped by Make. Callers that prefer
// transliteration of accented Latin letters wrap the input in Fold:
//
//	slug.Make("Crème brûlée")            // "crme-brle"
//	slug.Make(slug.Fold("Crème brûlée")) // "creme-brulee"
//
// # Uniqueness
//
// GenerateUnique only guarantees that the result differs from the slug it was
// given. When slugs must be unique across a collection, the owner of that
// collection supplies an ExistsFunc to a Resolver, which keeps bumping the
// suffix until a free candidate is found:
//
//	r := slug.NewResolver(
//		func(ctx context.Context, s string) (bool, error) {
//			return repo.SlugExists(ctx, s)
//		},
//		slug.WithReserved("admin", "api", "new"),
//		slug.WithMaxAttempts(50),
//		slug.WithLogger(log),
//	)
//
//	s, err := r.Resolve(ctx, title, currentSlug)
//	if errors.Is(err, slug.ErrAttemptsExhausted) {
//		// too many posts share this title
//	}
//
// # Validation
//
// IsValid checks the slug shape, and Rule adapts it to the validator package
// for manually edited slugs:
//
//	err := validator.Apply(
//		validator.RequiredString("slug", form.Slug),
//		slug.Rule("slug", form.Slug),
//	)
package slug
