package style

import (
	"fmt"
	"strings"

	"github.com/dschwilk/bibstuff/citekey"
	"github.com/dschwilk/bibstuff/nameformat"
)

// Validate compiles every template so configuration errors surface before
// any entry is processed.
func (c *Config) Validate() error {
	if _, _, err := c.Label.Compile(); err != nil {
		return fmt.Errorf("label: %w", err)
	}
	if _, err := c.Citation.Compile(); err != nil {
		return fmt.Errorf("citation: %w", err)
	}
	return nil
}

// Compile returns the name list formatter and key generator for the style.
func (s *LabelStyle) Compile() (*nameformat.ListFormatter, *citekey.Generator, error) {
	if err := s.NameSep.validate(); err != nil {
		return nil, nil, fmt.Errorf("name_name_sep: %w", err)
	}
	tmpl, err := nameformat.Compile(s.NameTemplate)
	if err != nil {
		return nil, nil, fmt.Errorf("name_template: %w", err)
	}
	f := &nameformat.ListFormatter{
		First:     tmpl,
		MaxNames:  s.MaxNames,
		Sep:       s.NameSep.Pair(),
		EtAl:      s.EtAl,
		Anonymous: s.Anonymous,
	}
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}

	templates := make(map[string]string, len(s.Types)+1)
	for typ, src := range s.Types {
		templates[strings.ToLower(typ)] = src
	}
	templates[citekey.DefaultType] = s.DefaultType
	g, err := citekey.NewGenerator(templates, citekey.WithLowercase(s.LowerName))
	if err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

// Compile returns the name list formatter for the style.
func (s *CitationStyle) Compile() (*nameformat.ListFormatter, error) {
	if err := s.NameSep.validate(); err != nil {
		return nil, fmt.Errorf("name_name_sep: %w", err)
	}
	first, err := nameformat.Compile(s.NameFirst, nameformat.WithInitials(s.Initials))
	if err != nil {
		return nil, fmt.Errorf("name_first: %w", err)
	}
	other, err := nameformat.Compile(s.NameOther, nameformat.WithInitials(s.Initials))
	if err != nil {
		return nil, fmt.Errorf("name_other: %w", err)
	}
	f := &nameformat.ListFormatter{
		First:     first,
		Other:     other,
		MaxNames:  s.MaxNames,
		Sep:       s.NameSep.Pair(),
		EtAl:      s.EtAl,
		Anonymous: s.Anonymous,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
