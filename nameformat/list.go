package nameformat

import (
	"errors"
	"strings"

	"github.com/dschwilk/bibstuff/namelist"
)

// Separators joins formatted names: Between goes between all but the final
// pair and Last goes before the final entry, as in "A, B, and C".
type Separators struct {
	Between string
	Last    string
}

// Join joins xs with the separators.
func (s Separators) Join(xs []string) string {
	switch len(xs) {
	case 0:
		return ""
	case 1:
		return xs[0]
	}
	n := len(xs) - 1
	return strings.Join(xs[:n], s.Between) + s.Last + xs[n]
}

// ListFormatter renders a list of names.
type ListFormatter struct {
	First     *Template // template for the first person
	Other     *Template // template for later persons, nil means First
	MaxNames  int       // names kept before truncating with EtAl
	Sep       Separators
	EtAl      string // literal entry after truncation, empty to omit
	Anonymous string // literal for an empty list
}

// Validate reports whether the formatter can render names.
func (f *ListFormatter) Validate() error {
	if f.First == nil {
		return errors.New("name list formatter: missing first name template")
	}
	if f.MaxNames < 1 {
		return errors.New("name list formatter: max names must be at least 1")
	}
	return nil
}

// Format renders names. An empty list renders as Anonymous. Lists longer
// than MaxNames keep the first MaxNames names followed by EtAl. An "others"
// person truncates the list at its position the same way.
func (f *ListFormatter) Format(names namelist.NameList) string {
	if len(names) == 0 {
		return f.Anonymous
	}
	entries := make([]string, 0, len(names)+1)
	etal := false
	for i, p := range names {
		if p.IsOthers() || (f.MaxNames > 0 && len(entries) == f.MaxNames) {
			etal = true
			break
		}
		t := f.First
		if i > 0 && f.Other != nil {
			t = f.Other
		}
		entries = append(entries, t.Format(p))
	}
	if etal && f.EtAl != "" {
		entries = append(entries, f.EtAl)
	}
	if len(entries) == 0 {
		return f.Anonymous
	}
	return f.Sep.Join(entries)
}

// FormatNames renders names with template t for every person.
func FormatNames(names namelist.NameList, t *Template, maxNames int, etal, anonymous string, sep Separators) string {
	f := ListFormatter{
		First:     t,
		MaxNames:  maxNames,
		Sep:       sep,
		EtAl:      etal,
		Anonymous: anonymous,
	}
	return f.Format(names)
}
