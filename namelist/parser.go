package namelist

import (
	gotok "go/token"
	"strings"

	"github.com/dschwilk/bibstuff/token"
)

// Suffixes are the generational suffixes recognized by default. Matching is
// case-insensitive.
var Suffixes = []string{"jr", "sr", "junior", "ii", "iii", "iv", "2nd", "3rd", "4th"}

type config struct {
	caseOf   CaseFunc
	suffixes map[string]struct{}
	nameSeps []string
	others   []string
}

// Option configures Parse.
type Option func(*config)

// WithCaseFunc sets the function deciding whether a token is lowercase and
// so belongs to the von part.
func WithCaseFunc(f CaseFunc) Option {
	return func(c *config) { c.caseOf = f }
}

// WithSuffixes replaces the recognized generational suffixes.
func WithSuffixes(xs ...string) Option {
	return func(c *config) { c.suffixes = suffixSet(xs) }
}

// WithSeparators replaces the words separating names, "and" by default.
func WithSeparators(xs ...string) Option {
	return func(c *config) { c.nameSeps = xs }
}

// WithOthers replaces the words marking unlisted names, "others" by default.
func WithOthers(xs ...string) Option {
	return func(c *config) { c.others = xs }
}

func suffixSet(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[strings.ToLower(x)] = struct{}{}
	}
	return m
}

// Parse splits a raw names field into persons. Parse never fails: the
// returned list is always usable. If the field is malformed, the error is a
// go/scanner.ErrorList of warnings with byte offsets into raw.
func Parse(raw string, opts ...Option) (NameList, error) {
	cfg := &config{
		caseOf:   DefaultCase,
		suffixes: suffixSet(Suffixes),
		nameSeps: []string{"and"},
		others:   []string{othersWord},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	p := &parser{config: cfg}
	src := []byte(raw)
	fset := gotok.NewFileSet()
	p.scanner.init(fset.AddFile("", fset.Base(), len(src)), src, cfg.nameSeps, cfg.others)
	names := p.parseNameList()
	return names, p.scanner.errors.Err()
}

type item struct {
	pos   gotok.Pos
	tok   Token
	comma bool
}

type parser struct {
	*config
	scanner scanner
}

func (p *parser) error(pos gotok.Pos, msg string) {
	p.scanner.errors.Add(p.scanner.file.Position(pos), msg)
}

func (p *parser) parseNameList() NameList {
	var names NameList
	var items []item
	others := false
	sawSep := false
	for {
		pos, tok, lit := p.scanner.scan()
		switch tok {
		case token.Word:
			items = append(items, item{pos: pos, tok: Word(lit)})
		case token.Group:
			items = append(items, item{pos: pos, tok: Braced(lit)})
		case token.Others:
			items = append(items, item{pos: pos, tok: Word(lit)})
			others = true
		case token.Comma:
			items = append(items, item{pos: pos, comma: true})
		case token.NameSep, token.EOF:
			switch {
			case len(items) == 0 && (sawSep || tok == token.NameSep):
				p.error(pos, "empty name in name list")
			case others && len(items) == 1 && tok == token.EOF:
				names = append(names, Person{Last: []Token{Word(othersWord)}, Others: true})
			case len(items) > 0:
				names = append(names, p.person(items))
			}
			if tok == token.EOF {
				return names
			}
			sawSep = true
			items = items[:0]
			others = false
		}
	}
}

func (p *parser) isLower(t Token) bool { return p.caseOf(t) == Lower }

func (p *parser) isSuffix(t Token) bool {
	if t.Kind != Plain {
		return false
	}
	_, ok := p.suffixes[strings.ToLower(t.Value)]
	return ok
}

// person resolves the tokens and commas of a single name into its parts.
func (p *parser) person(items []item) Person {
	parts := [][]Token{nil}
	for _, it := range items {
		if it.comma {
			parts = append(parts, nil)
			continue
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], it.tok)
	}
	if len(parts) == 1 {
		return p.resolveFirstVonLast(parts[0])
	}
	if len(parts) > 3 {
		p.error(items[0].pos, "too many commas in name")
	}
	if len(parts[0]) == 0 {
		p.error(items[0].pos, "missing last name")
	}
	return p.resolveVonLastFirst(parts)
}

// resolveFirstVonLast handles the no-comma form "First von Last Jr".
func (p *parser) resolveFirstVonLast(xs []Token) Person {
	var jr []Token
	if n := len(xs); n > 1 && p.isSuffix(xs[n-1]) {
		xs, jr = xs[:n-1], xs[n-1:]
	}
	// The last token is always part of the last name.
	i := 0
	for i < len(xs)-1 && !p.isLower(xs[i]) {
		i++
	}
	j := i
	for j < len(xs)-1 && p.isLower(xs[j]) {
		j++
	}
	return Person{
		First: clip(xs[:i]),
		Von:   clip(xs[i:j]),
		Last:  clip(xs[j:]),
		Jr:    clip(jr),
	}
}

// resolveVonLastFirst handles the comma forms "von Last, First" and
// "von Last, Jr, First". Parts after the third are appended to first.
func (p *parser) resolveVonLastFirst(parts [][]Token) Person {
	vl := parts[0]
	var jr, first []Token
	if len(parts) == 2 {
		first = parts[1]
		if n := len(first); n > 0 && p.isSuffix(first[n-1]) {
			first, jr = first[:n-1], first[n-1:]
		}
	} else {
		jr = parts[1]
		for _, x := range parts[2:] {
			first = append(first, x...)
		}
		// Last, First, Jr
		if p.isLoneSuffix(first) && !p.isLoneSuffix(jr) {
			jr, first = first, jr
		}
	}
	if n := len(vl); n > 1 && len(jr) == 0 && p.isSuffix(vl[n-1]) {
		vl, jr = vl[:n-1], vl[n-1:]
	}
	i := 0
	for i < len(vl)-1 && p.isLower(vl[i]) {
		i++
	}
	return Person{
		First: clip(first),
		Von:   clip(vl[:i]),
		Last:  clip(vl[i:]),
		Jr:    clip(jr),
	}
}

func (p *parser) isLoneSuffix(xs []Token) bool {
	return len(xs) == 1 && p.isSuffix(xs[0])
}

// clip returns a copy of xs so persons never share backing arrays, or nil
// if xs is empty.
func clip(xs []Token) []Token {
	if len(xs) == 0 {
		return nil
	}
	return append([]Token(nil), xs...)
}
