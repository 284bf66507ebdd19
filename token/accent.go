package token

// Accent is the marker rune of a LaTeX accent command, like the '"' in \"a.
type Accent rune

const (
	AccentAcute      Accent = '\''
	AccentBreve      Accent = 'u'
	AccentCaron      Accent = 'v'
	AccentCedilla    Accent = 'c'
	AccentCircumflex Accent = '^'
	AccentDot        Accent = '.'
	AccentDotBelow   Accent = 'd'
	AccentGrave      Accent = '`'
	AccentHungarian  Accent = 'H'
	AccentMacron     Accent = '='
	AccentBarBelow   Accent = 'b'
	AccentOgonek     Accent = 'k'
	AccentRing       Accent = 'r'
	AccentTilde      Accent = '~'
	AccentUmlaut     Accent = '"'
)

// IsSymbolAccent reports whether ch is an accent written as a single symbol
// directly after the backslash, like \' or \". Letter accents, like \c or
// \v, are control words and need a word boundary before their argument.
func IsSymbolAccent(ch rune) bool {
	switch Accent(ch) {
	case AccentAcute, AccentCircumflex, AccentDot, AccentGrave, AccentMacron,
		AccentTilde, AccentUmlaut:
		return true
	}
	return false
}

// LookupAccent returns the accent for the control word name, like "c" in
// \c{c}. The second result is false if name is not an accent command.
func LookupAccent(name string) (Accent, bool) {
	if len(name) != 1 {
		return 0, false
	}
	switch a := Accent(name[0]); a {
	case AccentBreve, AccentCaron, AccentCedilla, AccentDotBelow,
		AccentHungarian, AccentBarBelow, AccentOgonek, AccentRing:
		return a, true
	}
	return 0, false
}

// ligatures maps LaTeX ligature and special letter control words to the
// letters they produce.
var ligatures = map[string]rune{
	"AA": 'Å', "aa": 'å',
	"AE": 'Æ', "ae": 'æ',
	"OE": 'Œ', "oe": 'œ',
	"O": 'Ø', "o": 'ø',
	"L": 'Ł', "l": 'ł',
	"ss": 'ß',
	"i": 'ı', "j": 'ȷ',
}

// LookupLigature returns the letter for the control word name, like "AA" in
// \AA. The second result is false if name is not a ligature.
func LookupLigature(name string) (rune, bool) {
	r, ok := ligatures[name]
	return r, ok
}

// LigaturePrefix returns the longest ligature control word that prefixes
// word, so that \AAs still reads as \AA followed by s. Only name case and
// initials use it; rendering needs an exact LookupLigature match.
func LigaturePrefix(word string) (string, rune, bool) {
	for n := min(len(word), 2); n > 0; n-- {
		if r, ok := ligatures[word[:n]]; ok {
			return word[:n], r, true
		}
	}
	return "", 0, false
}
