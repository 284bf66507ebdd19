package namelist

import "strconv"

// Kind distinguishes plain words from opaque brace groups.
type Kind int

const (
	Plain Kind = iota // Alan, M\"{a}rtin, Beno{\^i}t
	Group             // {Barnes and Noble, Inc}
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Group:
		return "Group"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a minimal literal unit of a name: a single word or a fully
// brace-balanced group. Value keeps the text as it appeared in the field,
// including braces and TeX markup.
type Token struct {
	Kind  Kind
	Value string
}

// Word returns a plain token.
func Word(s string) Token { return Token{Kind: Plain, Value: s} }

// Braced returns a group token for s, which must include the outer braces.
func Braced(s string) Token { return Token{Kind: Group, Value: s} }

func (t Token) String() string { return t.Value }

// Part identifies one of the four parts of a bibtex name.
type Part int

const (
	First Part = iota // given names
	Von               // lowercase particles, like "van der"
	Last              // family name
	Jr                // generational suffix, like "Jr" or "III"
)

var partNames = [...]string{
	First: "first",
	Von:   "von",
	Last:  "last",
	Jr:    "jr",
}

func (p Part) String() string {
	if 0 <= p && p < Part(len(partNames)) {
		return partNames[p]
	}
	return "part(" + strconv.Itoa(int(p)) + ")"
}
