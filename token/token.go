// Package token defines constants representing the lexical tokens of a bibtex
// name list, like the author or editor field, and basic operations on tokens
// (printing, predicates).
package token

import "strconv"

// References
// - http://mirror.utexas.edu/ctan/biblio/bibtex/base/btxdoc.pdf
// - http://ctan.math.illinois.edu/info/bibtex/tamethebeast/ttb_en.pdf
// - https://www.tug.org/TUGboat/tb27-2/tb87hufflen.pdf

// Token is the set of lexical tokens for a bibtex name list.
type Token int

const (
	Illegal Token = iota
	EOF

	literalBegin
	Word  // Alan, M\"{a}rtin, Beno{\^i}t
	Group // {Barnes and Noble, Inc}
	literalEnd

	keywordBegin
	NameSep // name separator, typically "and"
	Others  // additional unlisted names, typically "others"
	keywordEnd

	operatorBegin
	Comma // ,
	operatorEnd
)

var tokens = [...]string{
	Illegal: "Illegal",
	EOF:     "EOF",
	Word:    "Word",
	Group:   "Group",
	NameSep: "NameSep",
	Others:  "Others",
	Comma:   "Comma",
}

func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// IsLiteral returns true for tokens that carry name text, words and brace
// groups. It returns false otherwise.
func (tok Token) IsLiteral() bool {
	return literalBegin < tok && tok < literalEnd
}

// IsKeyword returns true for the reserved words of a name list. It returns
// false otherwise.
func (tok Token) IsKeyword() bool {
	return keywordBegin < tok && tok < keywordEnd
}

// IsOperator returns true for tokens corresponding to delimiters. It returns
// false otherwise.
func (tok Token) IsOperator() bool {
	return operatorBegin < tok && tok < operatorEnd
}
