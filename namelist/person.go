package namelist

import "strings"

// othersWord is the bibtex marker for unlisted names, as in "Foo and others".
const othersWord = "others"

// Person represents a single parsed name.
//
// Bibtex recognizes three structures for names:
//  1. First von Last - no commas
//  2. von Last, First - single comma
//  3. von Last, Jr, First - two commas
//
// Other parsing libraries:
//   - https://metacpan.org/pod/distribution/Text-BibTeX/btparse/doc/bt_split_names.pod
//   - https://nzhagen.github.io/bibulous/developer_guide.html#name-formatting
type Person struct {
	First []Token // aka given name
	Von   []Token // often called the prefix part
	Last  []Token // aka family name
	Jr    []Token // often called the suffix part

	// Others marks the "and others" entry standing for unlisted names. Only
	// the parser sets it, so a person whose last name is "others" is still a
	// person.
	Others bool
}

// Part returns the tokens of part k.
func (p Person) Part(k Part) []Token {
	switch k {
	case First:
		return p.First
	case Von:
		return p.Von
	case Last:
		return p.Last
	case Jr:
		return p.Jr
	default:
		return nil
	}
}

// Tokens returns every token of the person in First von Last Jr order.
func (p Person) Tokens() []Token {
	xs := make([]Token, 0, len(p.First)+len(p.Von)+len(p.Last)+len(p.Jr))
	xs = append(xs, p.First...)
	xs = append(xs, p.Von...)
	xs = append(xs, p.Last...)
	return append(xs, p.Jr...)
}

func (p Person) IsEmpty() bool {
	return len(p.First) == 0 && len(p.Von) == 0 && len(p.Last) == 0 && len(p.Jr) == 0
}

// IsOthers returns true if this person was created from the "and others"
// suffix of a names field.
func (p Person) IsOthers() bool { return p.Others }

// String returns the person in the canonical "von Last, Jr, First" form.
// Parsing the result yields the same person.
func (p Person) String() string {
	sb := strings.Builder{}
	sb.Grow(32)
	writeTokens(&sb, p.Von)
	if len(p.Von) > 0 && len(p.Last) > 0 {
		sb.WriteByte(' ')
	}
	writeTokens(&sb, p.Last)
	if len(p.Jr) > 0 {
		sb.WriteString(", ")
		writeTokens(&sb, p.Jr)
	}
	switch {
	case len(p.First) > 0:
		sb.WriteString(", ")
		writeTokens(&sb, p.First)
	case len(p.Jr) > 0 || len(p.Von)+len(p.Last) > 1:
		// Keep the comma form so the tokens don't re-parse as a first name.
		sb.WriteByte(',')
	}
	return sb.String()
}

func writeTokens(sb *strings.Builder, xs []Token) {
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(x.Value)
	}
}

// NameList is the ordered list of names parsed from one field.
type NameList []Person

// LastNames returns the last name of each person, tokens joined by a space.
func (ns NameList) LastNames() []string {
	out := make([]string, len(ns))
	for i, p := range ns {
		sb := strings.Builder{}
		writeTokens(&sb, p.Last)
		out[i] = sb.String()
	}
	return out
}

// String joins the canonical form of each person with " and ".
func (ns NameList) String() string {
	parts := make([]string, len(ns))
	for i, p := range ns {
		parts[i] = p.String()
	}
	return strings.Join(parts, " and ")
}
