package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
)

// knownSlugs is a set of slugs already in use, read from a plain text file
// with one slug per line. Blank lines and lines starting with # are ignored.
type knownSlugs map[string]struct{}

func loadKnown(path string) (knownSlugs, error) {
	known := make(knownSlugs)
	if path == "" {
		return known, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open known slugs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		known[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read known slugs %s: %w", path, err)
	}
	return known, nil
}

// existsFunc reports a slug as taken when it is in assigned, or when it is
// known and not owned, the slug the item being resolved already holds.
func (k knownSlugs) existsFunc(owned string, assigned knownSlugs) slug.ExistsFunc {
	return func(_ context.Context, s string) (bool, error) {
		if _, ok := assigned[s]; ok {
			return true, nil
		}
		if owned != "" && s == owned {
			return false, nil
		}
		_, ok := k[s]
		return ok, nil
	}
}

func (rt *runtime) resolver(exists slug.ExistsFunc) *slug.Resolver {
	return slug.NewResolver(exists,
		slug.WithReserved(rt.cfg.Reserved...),
		slug.WithMaxAttempts(rt.cfg.MaxAttempts),
		slug.WithLogger(rt.log),
	)
}
