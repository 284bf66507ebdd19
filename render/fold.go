package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters without a decomposition into an ASCII base and combining marks.
var foldLetters = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"þ", "th", "Þ", "Th",
	"ı", "i", "ȷ", "j",
)

// Fold removes diacritics from s and spells out special letters in ASCII,
// like "Åsa Jørgensen" to "Asa Jorgensen". Other characters are kept.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, foldLetters.Replace(s))
	if err != nil {
		return foldLetters.Replace(s)
	}
	return out
}

// ASCII renders tex as plain text, then folds it to ASCII.
func ASCII(tex string) string {
	return Fold(Plain(tex))
}
