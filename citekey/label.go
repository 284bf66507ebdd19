// Package citekey generates unique citation keys, like "Schwilk+Isaac-2006",
// from a formatted name block, a year and an optional journal.
//
// Label templates use printf-style named slots:
//
//	%(names)s-%(year)s
//	%(names)s-%(year)s-%(jrnl)s
//
// "%%" is a literal percent sign.
package citekey

import (
	"fmt"
	"strings"
)

// Slot is a named value substituted into a label template.
type Slot int

const (
	Names Slot = iota
	Year
	Journal
	numSlots
)

var slotNames = [...]string{
	Names:   "names",
	Year:    "year",
	Journal: "jrnl",
}

func (s Slot) String() string {
	if 0 <= s && s < numSlots {
		return slotNames[s]
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

func lookupSlot(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// LabelError describes a label template that failed to compile.
type LabelError struct {
	Template string
	Offset   int // byte offset of the bad directive
	Msg      string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("label template %q: offset %d: %s", e.Template, e.Offset, e.Msg)
}

type piece struct {
	lit  string
	slot Slot
	leaf bool // true for a slot, false for a literal
}

// Label is a compiled label template.
type Label struct {
	src    string
	pieces []piece
	uses   [numSlots]bool
}

// Fields holds the slot values for rendering a label.
type Fields struct {
	Names   string
	Year    string
	Journal string
}

func (f Fields) get(s Slot) string {
	switch s {
	case Names:
		return f.Names
	case Year:
		return f.Year
	case Journal:
		return f.Journal
	default:
		return ""
	}
}

// CompileLabel parses a label template.
func CompileLabel(src string) (*Label, error) {
	l := &Label{src: src}
	lit := strings.Builder{}
	for i := 0; i < len(src); {
		c := src[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(src) {
			return nil, &LabelError{Template: src, Offset: i, Msg: "trailing %"}
		}
		switch src[i+1] {
		case '%':
			lit.WriteByte('%')
			i += 2
			continue
		case '(':
		default:
			return nil, &LabelError{Template: src, Offset: i, Msg: fmt.Sprintf("unsupported directive %%%c", src[i+1])}
		}
		end := strings.Index(src[i:], ")s")
		if end < 0 {
			return nil, &LabelError{Template: src, Offset: i, Msg: "slot not terminated by )s"}
		}
		name := src[i+2 : i+end]
		slot, ok := lookupSlot(name)
		if !ok {
			return nil, &LabelError{Template: src, Offset: i, Msg: fmt.Sprintf("unknown slot %q", name)}
		}
		if lit.Len() > 0 {
			l.pieces = append(l.pieces, piece{lit: lit.String()})
			lit.Reset()
		}
		l.pieces = append(l.pieces, piece{slot: slot, leaf: true})
		l.uses[slot] = true
		i += end + 2
	}
	if lit.Len() > 0 {
		l.pieces = append(l.pieces, piece{lit: lit.String()})
	}
	return l, nil
}

// Uses reports whether the template references slot s.
func (l *Label) Uses(s Slot) bool {
	return 0 <= s && s < numSlots && l.uses[s]
}

// Render substitutes f into the template.
func (l *Label) Render(f Fields) string {
	sb := strings.Builder{}
	for _, p := range l.pieces {
		if p.leaf {
			sb.WriteString(f.get(p.slot))
		} else {
			sb.WriteString(p.lit)
		}
	}
	return sb.String()
}

// String returns the source of the template.
func (l *Label) String() string { return l.src }
