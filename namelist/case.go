package namelist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dschwilk/bibstuff/token"
)

// Case is the letter case bibtex assigns to a token. Tokens starting with a
// lowercase letter belong to the von part.
type Case int

const (
	Caseless Case = iota // no letter, like "1st" or "-"
	Upper
	Lower
)

func (c Case) String() string {
	switch c {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	default:
		return "Caseless"
	}
}

// CaseFunc classifies the case of a token.
type CaseFunc func(t Token) Case

// DefaultCase decides the case of a token by its first letter. Brace groups
// are opaque and count as uppercase. Special characters, like {\"a} or \"a,
// take the case of the accented letter and ligatures, like \AA or \oe, take
// the case of the letter they produce.
func DefaultCase(t Token) Case {
	if t.Kind == Group {
		return Upper
	}
	return textCase(t.Value)
}

func textCase(s string) Case {
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			end := matchBrace(s, i)
			if i+1 < len(s) && s[i+1] == '\\' {
				return commandCase(s[i+1 : end])
			}
			return Upper
		case '\\':
			return commandCase(s[i:])
		}
		r, w := utf8.DecodeRuneInString(s[i:])
		if c := runeCase(r); c != Caseless {
			return c
		}
		i += w
	}
	return Caseless
}

func runeCase(r rune) Case {
	switch {
	case unicode.IsUpper(r):
		return Upper
	case unicode.IsLower(r):
		return Lower
	default:
		return Caseless
	}
}

// commandCase returns the case of the TeX command at the start of s, which
// begins with a backslash.
func commandCase(s string) Case {
	s = s[1:]
	if s == "" {
		return Caseless
	}
	if token.IsSymbolAccent(rune(s[0])) {
		return argCase(s[1:])
	}
	name := controlWord(s)
	if _, ok := token.LookupAccent(name); ok {
		return argCase(s[len(name):])
	}
	if _, r, ok := token.LigaturePrefix(name); ok {
		return runeCase(r)
	}
	return Caseless
}

// argCase returns the case of an accent argument, like the "a" in {a} or the
// "\i" in {\i}.
func argCase(s string) Case {
	s = strings.TrimLeft(s, " {")
	if s == "" {
		return Caseless
	}
	if s[0] == '\\' {
		return commandCase(s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return runeCase(r)
}

func controlWord(s string) string {
	n := 0
	for n < len(s) && isLetter(rune(s[n])) {
		n++
	}
	return s[:n]
}

// matchBrace returns the offset just past the brace closing the group that
// opens at s[i], or len(s) if the group is not terminated.
func matchBrace(s string, i int) int {
	depth := 0
	for ; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		case '\\':
			i++
		}
	}
	return len(s)
}

// Initial returns the first letter unit of a token: a letter, a special
// character like {\"O} or \"O, a ligature like \AA, or a leading brace group.
// Leading non-letters are dropped. For a group token, it is the initial of
// the group's content. It returns "" if the token has no letter.
func Initial(t Token) string {
	s := t.Value
	if t.Kind == Group {
		end := matchBrace(s, 0)
		inner := strings.TrimPrefix(s[:end], "{")
		inner = strings.TrimSuffix(inner, "}")
		return Initial(Word(strings.TrimSpace(inner)))
	}
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			return s[i:matchBrace(s, i)]
		case '\\':
			if n := commandLen(s[i:]); n > 0 {
				return s[i : i+n]
			}
			i++
			continue
		}
		r, w := utf8.DecodeRuneInString(s[i:])
		if unicode.IsLetter(r) {
			return s[i : i+w]
		}
		i += w
	}
	return ""
}

// commandLen returns the length of the letter-producing TeX command at the
// start of s, including any accent argument. It returns 0 if the command
// does not produce a letter.
func commandLen(s string) int {
	rest := s[1:]
	if rest == "" {
		return 0
	}
	if token.IsSymbolAccent(rune(rest[0])) {
		return 2 + argLen(rest[1:])
	}
	name := controlWord(rest)
	if _, ok := token.LookupAccent(name); ok {
		return 1 + len(name) + argLen(rest[len(name):])
	}
	if lig, _, ok := token.LigaturePrefix(name); ok {
		return 1 + len(lig)
	}
	return 0
}

// argLen returns the length of an accent argument: a brace group, or a
// single letter optionally preceded by spaces.
func argLen(s string) int {
	if s == "" {
		return 0
	}
	if s[0] == '{' {
		return matchBrace(s, 0)
	}
	n := len(s) - len(strings.TrimLeft(s, " "))
	if n < len(s) {
		_, w := utf8.DecodeRuneInString(s[n:])
		n += w
	}
	return n
}
