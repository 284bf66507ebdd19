// Package namelist parses Bibtex style name lists, like the author or editor
// fields, into persons made of first, von, last and jr parts.
package namelist

import (
	goscan "go/scanner"
	gotok "go/token"
	"unicode/utf8"

	"github.com/dschwilk/bibstuff/token"
)

type scanner struct {
	file     *gotok.File
	src      []byte
	ch       rune        // current character
	rdOffset int         // reading offset (position after current character)
	offset   int         // character offset
	prev     token.Token // previous token
	spaced   bool        // whitespace or the field start precedes the current token

	nameSeps []string // separator strings, typically just "and"
	others   []string // additional author strings, typically just "others"

	errors goscan.ErrorList
}

const bom = 0xFEFF // byte order mark, only permitted as very first character

func (s *scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal char NUL in name list")
		case r >= utf8.RuneSelf:
			// not ASCII
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding in name list")
			} else if r == bom && s.offset > 0 {
				s.error(s.offset, "illegal byte order mark in name list")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		s.ch = -1
	}
}

// init prepares the scanner s to tokenize the text src by setting the scanner
// at the beginning of src. The scanner uses file for position information
// and it adds line information for each line.
func (s *scanner) init(file *gotok.File, src []byte, nameSeps, others []string) {
	s.file = file
	s.src = src
	s.nameSeps = nameSeps
	s.others = others

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.prev = token.Illegal
	s.spaced = true

	s.next()
	if s.ch == bom {
		s.next() // ignore BOM at file beginning
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '.'
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// skipWhitespace collapses whitespace and periods. It reports whether it
// skipped anything.
func (s *scanner) skipWhitespace() bool {
	skipped := false
	for isSpace(s.ch) {
		s.next()
		skipped = true
	}
	return skipped
}

func (s *scanner) error(offset int, msg string) {
	s.errors.Add(s.file.Position(s.file.Pos(offset)), msg)
}

func (s *scanner) isNameSep(o string) bool {
	for _, sep := range s.nameSeps {
		if o == sep {
			return true
		}
	}
	return false
}

func (s *scanner) isOthers(o string) bool {
	for _, other := range s.others {
		if o == other {
			return true
		}
	}
	return false
}

// scanBraceString scans a brace-balanced group starting at the current '{'
// and reports whether the group is closed. An unterminated group ends before
// the next whitespace-bounded name separator, whatever the brace depth, or
// consumes the rest of the field if there is none.
func (s *scanner) scanBraceString() bool {
	offs := s.offset
	s.next() // consume '{'
	for depth := 1; depth > 0; {
		ch := s.ch
		if ch < 0 {
			s.error(offs, "brace group in name list not terminated")
			if end := s.sepOffset(offs + 1); end >= 0 {
				s.seek(end)
			}
			return false
		}
		s.next()
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
		case '\\':
			if s.ch >= 0 {
				s.next() // escaped char, like \{
			}
		}
	}
	return true
}

// sepOffset returns the offset of the whitespace run before the first name
// separator at or after offs, or -1 if there is none.
func (s *scanner) sepOffset(offs int) int {
	for i := offs + 1; i < len(s.src); i++ {
		if !isSpace(rune(s.src[i-1])) || isSpace(rune(s.src[i])) {
			continue
		}
		for _, sep := range s.nameSeps {
			end := i + len(sep)
			if end > len(s.src) || string(s.src[i:end]) != sep {
				continue
			}
			if end < len(s.src) && !isSpace(rune(s.src[end])) {
				continue
			}
			j := i - 1
			for j > offs && isSpace(rune(s.src[j-1])) {
				j--
			}
			return j
		}
	}
	return -1
}

// seek moves the scanner back to offs. Lines are only added once, since
// the file ignores line offsets it already has.
func (s *scanner) seek(offs int) {
	s.rdOffset = offs
	s.ch = 0
	s.next()
}

// scanEscape scans a backslash and the control word or single control
// symbol following it.
func (s *scanner) scanEscape() {
	s.next() // consume '\'
	if isLetter(s.ch) {
		for isLetter(s.ch) {
			s.next()
		}
		return
	}
	if s.ch >= 0 {
		s.next()
	}
}

// scanWord scans a word up to whitespace, a period or a comma at brace
// depth 0. The result is a group if the word is exactly one brace group.
func (s *scanner) scanWord() (lit string, group bool) {
	offs := s.offset
	groups := 0
	plain := false
	for s.ch >= 0 && !isSpace(s.ch) && s.ch != ',' {
		switch s.ch {
		case '{':
			groups++
			if !s.scanBraceString() {
				plain = true
			}
		case '}':
			s.error(s.offset, "unmatched closing brace in name list")
			plain = true
			s.next()
		case '\\':
			plain = true
			s.scanEscape()
		default:
			plain = true
			s.next()
		}
	}
	return string(s.src[offs:s.offset]), groups == 1 && !plain
}

func (s *scanner) scan() (pos gotok.Pos, tok token.Token, lit string) {
	if s.skipWhitespace() {
		s.spaced = true
	}
	pos = s.file.Pos(s.offset)

	switch ch := s.ch; ch {
	case -1:
		tok = token.EOF
	case ',':
		tok = token.Comma
		s.next()
	default:
		var group bool
		lit, group = s.scanWord()
		tok = token.Word
		if group {
			tok = token.Group
		}
		bounded := s.spaced && (s.ch < 0 || isSpace(s.ch))
		switch {
		case tok == token.Word && bounded && s.isNameSep(lit):
			tok = token.NameSep
		case tok == token.Word && s.prev == token.NameSep && s.isOthers(lit):
			tok = token.Others
		}
	}

	s.spaced = false
	s.prev = tok
	return
}
