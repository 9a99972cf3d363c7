package slug

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	// disallowed matches anything that is not an ASCII word character, whitespace or hyphen.
	// Whitespace is Unicode-wide: NBSP, ideographic and line separators count.
	disallowed = regexp.MustCompile(`[^\w\s\v\p{Z}\x{85}\x{FEFF}-]`)
	// whitespaceRun matches runs of whitespace that become a single separator.
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{85}\x{FEFF}]+`)
	// hyphenRun collapses consecutive hyphens.
	hyphenRun = regexp.MustCompile(`-+`)
	// edgeHyphens matches hyphens at either end of the string.
	edgeHyphens = regexp.MustCompile(`^-+|-+$`)
	// trailingNumber matches a numeric suffix with an optional leading hyphen.
	trailingNumber = regexp.MustCompile(`-?[0-9]+$`)
)

// Make converts arbitrary text into a URL-safe slug.
//
// The text is lowercased and trimmed, every character other than ASCII letters,
// digits, underscores, whitespace and hyphens is removed, whitespace runs (any
// Unicode space, including the no-break space editors paste) become
// a single hyphen, hyphen runs collapse, and edge hyphens are stripped.
// Non-ASCII letters are removed, not transliterated; see Fold for opt-in folding.
//
// Make is deterministic and total: it never fails and returns "" when nothing
// usable remains.
//
// Example:
//
//	Make("Hello, World!  Is This 100% Cool?") // "hello-world-is-this-100-cool"
//	Make("   ---   ")                         // ""
func Make(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	s = strings.TrimSpace(s)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = edgeHyphens.ReplaceAllString(s, "")
	return s
}

// GenerateUnique derives a slug for title, reusing the numeric suffix of
// existing when it belongs to the same family.
//
//   - existing is empty or equals the base slug: the base slug is returned.
//   - existing is "<base>" or "<base>-<n>": "<base>-<n+1>" is returned.
//   - otherwise a new family starts at "<base>-1".
//
// It only avoids repeating existing. It has no view of other slugs, so global
// uniqueness belongs to the caller (see Resolver).
func GenerateUnique(title, existing string) string {
	base := Make(title)
	if existing == "" || existing == base {
		return base
	}

	n, ok := familySuffix(base, existing)
	if !ok {
		return base + "-1"
	}
	return base + "-" + increment(n)
}

// ExtractTitle strips a trailing number, with or without a preceding hyphen,
// from slug. It only reverses the numbering step: case and spaces are not restored.
//
//	ExtractTitle("my-post-3") // "my-post"
//	ExtractTitle("post123")   // "post"
func ExtractTitle(slug string) string {
	if slug == "" {
		return ""
	}
	return trailingNumber.ReplaceAllString(slug, "")
}

// familySuffix reports whether existing is base optionally followed by
// "-<digits>", returning the digits ("0" when absent).
func familySuffix(base, existing string) (string, bool) {
	rest, ok := strings.CutPrefix(existing, base)
	if !ok {
		return "", false
	}
	if rest == "" {
		return "0", true
	}

	digits, ok := strings.CutPrefix(rest, "-")
	if !ok || digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	return digits, true
}

// increment adds one to a decimal digit string of any length.
func increment(digits string) string {
	if n, err := strconv.ParseUint(digits, 10, 63); err == nil {
		return strconv.FormatUint(n+1, 10)
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "1"
	}
	return n.Add(n, big.NewInt(1)).String()
}
