package slug

import (
	"log/slog"
	"strings"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/logger"
)

// DefaultMaxAttempts caps how many candidates a Resolver checks.
const DefaultMaxAttempts = 100

type resolverOptions struct {
	logger      *slog.Logger
	reserved    map[string]struct{}
	maxAttempts int
}

func defaultResolverOptions() *resolverOptions {
	return &resolverOptions{
		logger:      logger.NewNope(),
		reserved:    make(map[string]struct{}),
		maxAttempts: DefaultMaxAttempts,
	}
}

// Option configures a Resolver.
type Option func(*resolverOptions)

// WithMaxAttempts sets how many candidates are checked before giving up.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *resolverOptions) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithReserved marks slugs that are never handed out, such as route names.
// Matching is case-insensitive.
func WithReserved(slugs ...string) Option {
	return func(o *resolverOptions) {
		for _, s := range slugs {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				o.reserved[s] = struct{}{}
			}
		}
	}
}

// WithLogger sets the logger used for collision diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *resolverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
