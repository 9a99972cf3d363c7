package slug

import "errors"

// Sentinel errors returned by Resolver. The core functions never fail.
var (
	// ErrEmptySlug is returned when the title yields no slug characters.
	ErrEmptySlug = errors.New("slug: title produces an empty slug")

	// ErrAttemptsExhausted is returned when every candidate within the attempt limit is taken.
	ErrAttemptsExhausted = errors.New("slug: no free slug within attempt limit")

	// ErrLookupFailed wraps errors returned by the caller's ExistsFunc.
	ErrLookupFailed = errors.New("slug: existence lookup failed")
)
