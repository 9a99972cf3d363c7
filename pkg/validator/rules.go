package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is a deferred check and the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns ValidationErrors for the failures, or nil.
// Rules with a nil Check are skipped.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}
		errs = append(errs, r.Error)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// RequiredString fails when value is empty or only whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString fails when value has fewer than minLen runes.
func MinLenString(field, value string, minLen int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= minLen },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters long", minLen),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": minLen},
		},
	}
}

// MaxLenString fails when value has more than maxLen runes.
func MaxLenString(field, value string, maxLen int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= maxLen },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must not exceed %d characters", maxLen),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": maxLen},
		},
	}
}

// MatchesString fails when value does not match re. A nil re always passes.
func MatchesString(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool { return re == nil || re.MatchString(value) },
		Error: ValidationError{
			Field:             field,
			Message:           "has an invalid format",
			TranslationKey:    "validation.format",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
