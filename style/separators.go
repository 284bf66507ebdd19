package style

import (
	"fmt"
	"strings"

	"github.com/dschwilk/bibstuff/nameformat"
	"gopkg.in/yaml.v3"
)

// Separators holds the separator between names and, optionally, a distinct
// separator before the final name. In YAML it is either a scalar, like "+",
// or a sequence of two strings, like [", ", ", and "].
type Separators []string

// Pair returns the separators for joining a name list.
func (s Separators) Pair() nameformat.Separators {
	switch len(s) {
	case 0:
		return nameformat.Separators{}
	case 1:
		return nameformat.Separators{Between: s[0], Last: s[0]}
	default:
		return nameformat.Separators{Between: s[0], Last: s[1]}
	}
}

func (s Separators) validate() error {
	if len(s) < 1 || len(s) > 2 {
		return fmt.Errorf("want 1 or 2 separators, got %d", len(s))
	}
	return nil
}

func (s *Separators) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*s = Separators{n.Value}
		return nil
	case yaml.SequenceNode:
		var xs []string
		if err := n.Decode(&xs); err != nil {
			return err
		}
		*s = xs
		return nil
	default:
		return fmt.Errorf("line %d: separators must be a string or a list of strings", n.Line)
	}
}

func (s Separators) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// SetValue parses separators from an environment variable, split on '|'.
func (s *Separators) SetValue(v string) error {
	*s = strings.Split(v, "|")
	return nil
}
