package slug

import (
	"regexp"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/validator"
)

// validSlug is the shape of every non-empty slug Make produces.
var validSlug = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)

// IsValid reports whether s is a non-empty, well-formed slug:
// lowercase ASCII letters, digits and underscores in hyphen-separated groups,
// with no leading, trailing or doubled hyphen.
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}

// Rule returns a validator rule checking that value is a well-formed slug.
// Empty values pass; combine with validator.RequiredString when the slug is mandatory.
func Rule(field, value string) validator.Rule {
	if value == "" {
		return validator.MatchesString(field, value, nil)
	}
	rule := validator.MatchesString(field, value, validSlug)
	rule.Error.Message = "must contain only lowercase letters, digits, underscores and single hyphens"
	rule.Error.TranslationKey = "validation.slug"
	return rule
}
