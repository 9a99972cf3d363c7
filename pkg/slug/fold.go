package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures covers letters that have no canonical decomposition.
var ligatures = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
)

// Fold replaces accented Latin letters with their ASCII base letters.
// Make drops non-ASCII input as is, so callers that want "Café" to become
// "cafe" instead of "caf" fold first:
//
//	slug.Make(slug.Fold("Café Crème")) // "cafe-creme"
//
// Scripts without a Latin base (Cyrillic, CJK, emoji) are left untouched and
// are still removed by Make.
func Fold(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return ligatures.Replace(folded)
}
