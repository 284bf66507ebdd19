package bibstuff

import (
	"fmt"
	"log/slog"

	"github.com/dschwilk/bibstuff/citekey"
	"github.com/dschwilk/bibstuff/nameformat"
	"github.com/dschwilk/bibstuff/namelist"
	"github.com/dschwilk/bibstuff/render"
	"github.com/dschwilk/bibstuff/style"
)

// Labeler generates citekeys and citation name blocks for entries with a
// compiled style.
type Labeler struct {
	label  *nameformat.ListFormatter
	keys   *citekey.Generator
	cite   *nameformat.ListFormatter
	ascii  bool
	logger *slog.Logger
	opts   []namelist.Option
}

type Option func(l *Labeler)

// WithLogger sets the logger for parse warnings. Nil means slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Labeler) { l.logger = logger }
}

// WithNameOptions sets the options for parsing name fields.
func WithNameOptions(opts ...namelist.Option) Option {
	return func(l *Labeler) { l.opts = opts }
}

// New compiles cfg into a Labeler. Invalid templates fail here, before any
// entry is labeled.
func New(cfg style.Config, opts ...Option) (*Labeler, error) {
	label, keys, err := cfg.Label.Compile()
	if err != nil {
		return nil, fmt.Errorf("bibstuff: label style: %w", err)
	}
	cite, err := cfg.Citation.Compile()
	if err != nil {
		return nil, fmt.Errorf("bibstuff: citation style: %w", err)
	}
	l := &Labeler{
		label: label,
		keys:  keys,
		cite:  cite,
		ascii: cfg.Label.ASCIINames,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l, nil
}

func (l *Labeler) names(e *Entry) namelist.NameList {
	names, err := ExtractNames(e, l.opts...)
	if err != nil {
		l.logger.Warn("malformed names", "key", e.Key, "type", e.Type, "error", err)
	}
	return names
}

// NameBlock returns the formatted names used in the citekey of e.
func (l *Labeler) NameBlock(e *Entry) string {
	block := l.label.Format(l.names(e))
	if l.ascii {
		block = render.ASCII(block)
	}
	return block
}

// Label returns a citekey for e that is not in used. Label doesn't add the
// key to used.
func (l *Labeler) Label(e *Entry, used citekey.KeySet) (CiteKey, error) {
	meta := citekey.Meta{Type: e.Type, Year: e.Year(), Journal: e.Journal()}
	key, err := l.keys.MakeKey(l.NameBlock(e), meta, used)
	if err != nil {
		return "", fmt.Errorf("bibstuff: label entry %q: %w", e.Key, err)
	}
	l.logger.Debug("labeled entry", "old_key", e.Key, "key", key)
	return key, nil
}

// Cite returns the citation name block of e, like "Schwilk, Dylan, and
// Alan Isaac".
func (l *Labeler) Cite(e *Entry) string {
	return l.cite.Format(l.names(e))
}

// Resolve assigns a unique citekey to each entry in document order.
func (l *Labeler) Resolve(entries []*Entry) error {
	used := &citekey.Keys{}
	for _, e := range entries {
		key, err := l.Label(e, used)
		if err != nil {
			return err
		}
		e.Key = key
		used.Add(key)
	}
	return nil
}
