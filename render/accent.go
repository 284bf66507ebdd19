package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/dschwilk/bibstuff/token"
	"golang.org/x/text/unicode/norm"
)

// Mapping of accents to the Unicode combining marks they add.
var accentMarks = map[token.Accent]rune{
	token.AccentGrave:      '\u0300',
	token.AccentAcute:      '\u0301',
	token.AccentCircumflex: '\u0302',
	token.AccentTilde:      '\u0303',
	token.AccentMacron:     '\u0304',
	token.AccentBreve:      '\u0306',
	token.AccentDot:        '\u0307',
	token.AccentUmlaut:     '\u0308',
	token.AccentRing:       '\u030A',
	token.AccentHungarian:  '\u030B',
	token.AccentCaron:      '\u030C',
	token.AccentDotBelow:   '\u0323',
	token.AccentCedilla:    '\u0327',
	token.AccentOgonek:     '\u0328',
	token.AccentBarBelow:   '\u0331',
}

// RenderAccent applies accent to the first character of text and returns
// the composed result, like "é" for \'{e}. The dotless \i and \j take the
// accent as a regular i and j.
func RenderAccent(accent token.Accent, text string) (string, error) {
	if len(text) == 0 {
		return "", fmt.Errorf("cannot render accent %q for empty text", rune(accent))
	}
	mark, ok := accentMarks[accent]
	if !ok {
		return "", fmt.Errorf("cannot render unknown accent %q", rune(accent))
	}
	r, width := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return "", fmt.Errorf("invalid UTF-8 encoding in accented text %q", text)
	}
	switch r {
	case 'ı':
		r = 'i'
	case 'ȷ':
		r = 'j'
	}
	return norm.NFC.String(string(r) + string(mark) + text[width:]), nil
}
