// Package render converts the TeX markup of bibtex field text, like
// M\"{a}rtin or {\AA}s, into plain Unicode text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dschwilk/bibstuff/token"
)

// Kind identifies the kind of a rendered piece of text.
type Kind int

const (
	KindText     Kind = iota // plain characters
	KindSpace                // whitespace and the ~ tie
	KindAccent               // accent commands like \"a or \c{c}
	KindLigature             // letter commands like \AA or \ss
	KindEscaped              // escaped specials like \& or \%
	KindMacro                // other commands, dropped while their arguments render
)

// TextFunc writes the text for a piece of kind k. s is the text the
// default renderer would write.
type TextFunc func(w io.Writer, s string) error

type TextRenderer struct {
	overrides map[Kind]TextFunc
}

type Option func(p *TextRenderer)

// WithTextOverride replaces how pieces of kind k are written.
func WithTextOverride(k Kind, f TextFunc) Option {
	return func(p *TextRenderer) {
		p.overrides[k] = f
	}
}

func NewTextRenderer(opts ...Option) *TextRenderer {
	p := &TextRenderer{overrides: make(map[Kind]TextFunc)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultRenderer = NewTextRenderer()

// Plain renders tex as plain text with the default renderer. Grouping braces
// are removed, commands are resolved and each tie becomes a space.
func Plain(tex string) string {
	sb := &strings.Builder{}
	// Writes to a strings.Builder don't fail and the default renderer has
	// no overrides.
	_ = defaultRenderer.Render(sb, tex)
	return sb.String()
}

// String renders tex to a string.
func (p *TextRenderer) String(tex string) (string, error) {
	sb := &strings.Builder{}
	if err := p.Render(sb, tex); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Render writes the plain text of tex to w.
func (p *TextRenderer) Render(w io.Writer, tex string) error {
	for i := 0; i < len(tex); {
		switch c := tex[i]; c {
		case '{', '}':
			i++
		case '~':
			if err := p.emit(w, KindSpace, " "); err != nil {
				return err
			}
			i++
		case ' ', '\t', '\n', '\r':
			for i < len(tex) && isSpace(tex[i]) {
				i++
			}
			if err := p.emit(w, KindSpace, " "); err != nil {
				return err
			}
		case '\\':
			n, kind, out, err := p.command(tex[i:])
			if err != nil {
				return err
			}
			if err := p.emit(w, kind, out); err != nil {
				return err
			}
			i += n
		default:
			j := i
			for j < len(tex) && !isSpecial(tex[j]) {
				j++
			}
			if err := p.emit(w, KindText, tex[i:j]); err != nil {
				return err
			}
			i = j
		}
	}
	return nil
}

func (p *TextRenderer) emit(w io.Writer, k Kind, s string) error {
	if f, ok := p.overrides[k]; ok {
		return f(w, s)
	}
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("render text: %w", err)
	}
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isSpecial(c byte) bool {
	return c == '{' || c == '}' || c == '~' || c == '\\' || isSpace(c)
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// command renders the TeX command at the start of s, which begins with a
// backslash. It returns the number of bytes consumed.
func (p *TextRenderer) command(s string) (int, Kind, string, error) {
	if len(s) == 1 {
		return 1, KindEscaped, "", nil
	}
	if token.IsSymbolAccent(rune(s[1])) {
		return p.accent(token.Accent(s[1]), s, 2)
	}
	if !isLetter(s[1]) {
		switch s[1] {
		case '-', '/':
			// Hyphenation hint and italic correction.
			return 2, KindEscaped, "", nil
		default:
			return 2, KindEscaped, s[1:2], nil
		}
	}
	n := 1
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	name := s[1:n]
	if a, ok := token.LookupAccent(name); ok {
		return p.accent(a, s, n)
	}
	// A control word is the maximal letter run, so \LaTeX is a macro and
	// not \L followed by aTeX.
	if r, ok := token.LookupLigature(name); ok {
		return skipControlSpace(s, n), KindLigature, string(r), nil
	}
	return skipControlSpace(s, n), KindMacro, "", nil
}

// skipControlSpace consumes the spaces or the empty group that terminate a
// control word, as in "\ss x" or "\AA{}s".
func skipControlSpace(s string, n int) int {
	if strings.HasPrefix(s[n:], "{}") {
		return n + 2
	}
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// accent renders the accent command ending at s[n] and its argument.
func (p *TextRenderer) accent(a token.Accent, s string, n int) (int, Kind, string, error) {
	for n < len(s) && s[n] == ' ' {
		n++
	}
	var base string
	switch {
	case n == len(s):
		return n, KindAccent, "", nil
	case s[n] == '{':
		end := n + 1
		for depth := 1; end < len(s) && depth > 0; end++ {
			switch s[end] {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
		inner := strings.TrimSuffix(s[n+1:end], "}")
		b, err := p.String(inner)
		if err != nil {
			return 0, 0, "", err
		}
		base, n = b, end
	case s[n] == '\\':
		m, _, out, err := p.command(s[n:])
		if err != nil {
			return 0, 0, "", err
		}
		base, n = out, n+m
	default:
		j := n + 1
		for j < len(s) && s[j] >= 0x80 && s[j] < 0xC0 {
			j++ // utf-8 continuation bytes
		}
		base, n = s[n:j], j
	}
	if base == "" {
		return n, KindAccent, "", nil
	}
	out, err := RenderAccent(a, base)
	if err != nil {
		return 0, 0, "", err
	}
	return n, KindAccent, out, nil
}
