package citekey

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultType is the template key used for entry types without their
	// own label template.
	DefaultType = "default"
	// Placeholder replaces a missing year or journal.
	Placeholder = "????"
	// DefaultMaxSuffixes is the number of disambiguation suffixes tried
	// before giving up: b through z, then aa through zz and so on.
	DefaultMaxSuffixes = 26 * 26
)

var (
	ErrNoDefault       = errors.New("citekey: missing default label template")
	ErrSuffixExhausted = errors.New("citekey: disambiguation suffixes exhausted")
)

// Meta is the entry metadata a key is built from. Empty strings mean the
// value is absent.
type Meta struct {
	Type    string
	Year    string
	Journal string
}

// Generator builds citation keys from compiled label templates. A Generator
// holds no state between calls and is safe for concurrent use.
type Generator struct {
	labels      map[string]*Label
	lowercase   bool
	maxSuffixes int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLowercase lower-cases the names block before rendering.
func WithLowercase(b bool) Option {
	return func(g *Generator) { g.lowercase = b }
}

// WithMaxSuffixes sets how many disambiguation suffixes MakeKey tries.
func WithMaxSuffixes(n int) Option {
	return func(g *Generator) { g.maxSuffixes = n }
}

// NewGenerator compiles templates, a map from lower-case entry type to label
// template. The DefaultType template is required.
func NewGenerator(templates map[string]string, opts ...Option) (*Generator, error) {
	if _, ok := templates[DefaultType]; !ok {
		return nil, ErrNoDefault
	}
	g := &Generator{
		labels:      make(map[string]*Label, len(templates)),
		maxSuffixes: DefaultMaxSuffixes,
	}
	for _, opt := range opts {
		opt(g)
	}
	for typ, src := range templates {
		l, err := CompileLabel(src)
		if err != nil {
			return nil, fmt.Errorf("citekey: template for entry type %q: %w", typ, err)
		}
		g.labels[strings.ToLower(typ)] = l
	}
	return g, nil
}

// Label returns the label template for an entry type.
func (g *Generator) Label(typ string) *Label {
	if l, ok := g.labels[strings.ToLower(typ)]; ok {
		return l
	}
	return g.labels[DefaultType]
}

// MakeKey renders the key for an entry. If the key is already in used, it
// appends a suffix to the year, b through z then aa, bb and so on, until the
// key is unique. MakeKey doesn't add the key to used.
func (g *Generator) MakeKey(names string, meta Meta, used KeySet) (string, error) {
	l := g.Label(meta.Type)
	f := Fields{Names: names, Year: meta.Year}
	if g.lowercase {
		f.Names = strings.ToLower(names)
	}
	if f.Year == "" {
		f.Year = Placeholder
	}
	if l.Uses(Journal) {
		f.Journal = JournalAbbrev(meta.Journal)
	}
	key := l.Render(f)
	if used == nil || !used.Has(key) {
		return key, nil
	}
	year := f.Year
	for c := 1; c <= g.maxSuffixes; c++ {
		f.Year = year + Suffix(c)
		key = l.Render(f)
		if !used.Has(key) {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q after %d tries", ErrSuffixExhausted, key, g.maxSuffixes)
}

// Suffix returns the c-th disambiguation suffix, starting with "b" at c=1.
// Suffixes are lowercase because bibtex keys are case-insensitive.
func Suffix(c int) string {
	return strings.Repeat(string(rune('a'+c%26)), 1+c/26)
}

// JournalAbbrev returns the short journal form used in keys: whitespace
// removed, lower-cased, and the first "journal" replaced by "j".
func JournalAbbrev(journal string) string {
	s := strings.ToLower(strings.Join(strings.Fields(journal), ""))
	if s == "" {
		return Placeholder
	}
	return strings.Replace(s, "journal", "j", 1)
}

// MakeKey compiles templates and renders a single key.
func MakeKey(names string, meta Meta, templates map[string]string, used KeySet, lowercase bool) (string, error) {
	g, err := NewGenerator(templates, WithLowercase(lowercase))
	if err != nil {
		return "", err
	}
	return g.MakeKey(names, meta, used)
}
