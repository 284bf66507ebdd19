package namelist

import (
	gotok "go/token"
	"testing"

	"github.com/dschwilk/bibstuff/token"
	"github.com/google/go-cmp/cmp"
)

var fset = gotok.NewFileSet()

type elt struct {
	tok token.Token
	lit string
}

var testTokens = [...]elt{
	{token.Word, "foo"},
	{token.Word, `M\"{a}rtin`},
	{token.Word, `Meg\.eve`},
	{token.Group, "{Barnes and Noble, Inc}"},
	{token.Group, "{von {Beethoven}}"},
	{token.Word, "Beno{\\^i}t"},
	{token.NameSep, "and"},
	{token.Others, "others"},
	{token.Comma, ""},
	{token.Word, "Brandy"},
}

const whitespace = "  \t  \n\n\n" // to separate tokens

var source = func() []byte {
	var src []byte
	for _, t := range testTokens {
		if t.tok == token.Comma {
			src = append(src, ',')
		} else {
			src = append(src, t.lit...)
		}
		src = append(src, whitespace...)
	}
	return src
}()

func newlineCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

func checkPos(t *testing.T, lit string, p gotok.Pos, expected gotok.Position) {
	pos := fset.Position(p)
	if pos.Offset != expected.Offset {
		t.Errorf("bad position for %q: got %d, expected %d", lit, pos.Offset, expected.Offset)
	}
	if pos.Line != expected.Line {
		t.Errorf("bad line for %q: got %d, expected %d", lit, pos.Line, expected.Line)
	}
	if pos.Column != expected.Column {
		t.Errorf("bad column for %q: got %d, expected %d", lit, pos.Column, expected.Column)
	}
}

func TestScan(t *testing.T) {
	whitespaceLineCount := newlineCount(whitespace)
	var s scanner
	s.init(fset.AddFile("", fset.Base(), len(source)), source, []string{"and"}, []string{"others"})

	// set up expected position
	epos := gotok.Position{
		Filename: "",
		Offset:   0,
		Line:     1,
		Column:   1,
	}

	index := 0

	for {
		// check token
		e := elt{token.EOF, ""}
		if index < len(testTokens) {
			e = testTokens[index]
			index++
		}
		isDone := false
		t.Run(e.tok.String()+"-"+e.lit, func(t *testing.T) {
			pos, tok, lit := s.scan()

			// check position
			if tok == token.EOF {
				// correction for EOF
				epos.Line = newlineCount(string(source))
				epos.Column = 2
			}
			checkPos(t, lit, pos, epos)

			if tok != e.tok {
				t.Errorf("bad token for %q: got %s, expected %s", e.lit, tok, e.tok)
			}

			// check literal
			if lit != e.lit {
				t.Errorf("bad literal for %q: got %q, expected %q", e.lit, lit, e.lit)
			}

			if tok == token.EOF {
				isDone = true
			}

			// update position
			n := len(e.lit)
			if e.tok == token.Comma {
				n = 1
			}
			epos.Offset += n + len(whitespace)
			epos.Line += newlineCount(e.lit) + whitespaceLineCount
			epos.Column = 1
		})
		if isDone {
			break
		}
	}
	if len(s.errors) > 0 {
		t.Errorf("unexpected scan errors: %s", s.errors)
	}
}

func TestScan_unterminatedGroup(t *testing.T) {
	tests := []struct {
		src  string
		want []elt
	}{
		{"A {b and C", []elt{{token.Word, "A"}, {token.Word, "{b"}, {token.NameSep, "and"}, {token.Word, "C"}}},
		{"{b {c}  and  C", []elt{{token.Word, "{b {c}"}, {token.NameSep, "and"}, {token.Word, "C"}}},
		{"{b band C", []elt{{token.Word, "{b band C"}}},
		{"{b and", []elt{{token.Word, "{b"}, {token.NameSep, "and"}}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			src := []byte(tt.src)
			s := scanner{}
			s.init(fset.AddFile("", fset.Base(), len(src)), src, []string{"and"}, []string{"others"})
			var got []elt
			for {
				_, tok, lit := s.scan()
				if tok == token.EOF {
					break
				}
				got = append(got, elt{tok, lit})
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(elt{})); diff != "" {
				t.Errorf("scan() mismatch (-want +got):\n%s", diff)
			}
			if len(s.errors) != 1 || s.errors[0].Msg != "brace group in name list not terminated" {
				t.Errorf("scan() errors = %v; want one unterminated group error", s.errors)
			}
		})
	}
}
