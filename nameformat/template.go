// Package nameformat renders parsed names with compact name templates,
// like "v{~}~|l,| j,| f{. }.", and joins name lists with "et al." handling.
//
// A template is a list of segments separated by '|'. Each segment has the
// form
//
//	pre kind [!] [{joiner}] post
//
// where kind is one of f, v, l or j (also jr) for the first, von, last and
// jr parts. The tokens of the part are joined by joiner, a single space by
// default, and wrapped in the pre and post literals. A '!' renders each token
// as its initial. A segment whose part is empty renders nothing.
package nameformat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dschwilk/bibstuff/namelist"
)

var (
	ErrUnknownPart    = errors.New("unknown name part")
	ErrEmptySegment   = errors.New("empty segment")
	ErrUnclosedJoiner = errors.New("unclosed joiner")
)

// TemplateError describes a template that failed to compile.
type TemplateError struct {
	Template string
	Segment  int // zero-based index of the bad segment
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("name template %q: segment %d: %s", e.Template, e.Segment, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

type segment struct {
	pre      string
	part     namelist.Part
	initials bool
	joiner   string
	post     string
}

// Template is a compiled name template. A Template is immutable and safe for
// concurrent use.
type Template struct {
	src      string
	segments []segment
	initials string
}

// Option configures Compile.
type Option func(*Template)

// WithInitials renders the parts named by letter in parts as initials, as if
// each matching segment had a '!' marker. For example, "f" abbreviates first
// names.
func WithInitials(parts string) Option {
	return func(t *Template) { t.initials = parts }
}

// Compile parses a name template.
func Compile(src string, opts ...Option) (*Template, error) {
	t := &Template{src: src}
	for _, opt := range opts {
		opt(t)
	}
	if src == "" {
		return nil, &TemplateError{Template: src, Err: ErrEmptySegment}
	}
	for i, s := range strings.Split(src, "|") {
		seg, err := parseSegment(s)
		if err != nil {
			return nil, &TemplateError{Template: src, Segment: i, Err: err}
		}
		t.segments = append(t.segments, seg)
	}
	for i := 0; i < len(t.initials); i++ {
		part, ok := lookupPart(t.initials[i])
		if !ok {
			return nil, fmt.Errorf("name template %q: initials %q: %w", src, t.initials, ErrUnknownPart)
		}
		for i := range t.segments {
			if t.segments[i].part == part {
				t.segments[i].initials = true
			}
		}
	}
	return t, nil
}

// MustCompile is like Compile but panics if the template is invalid.
func MustCompile(src string, opts ...Option) *Template {
	t, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func lookupPart(c byte) (namelist.Part, bool) {
	switch c {
	case 'f':
		return namelist.First, true
	case 'v':
		return namelist.Von, true
	case 'l':
		return namelist.Last, true
	case 'j':
		return namelist.Jr, true
	default:
		return 0, false
	}
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func parseSegment(s string) (segment, error) {
	if s == "" {
		return segment{}, ErrEmptySegment
	}
	i := 0
	for i < len(s) && !isASCIILetter(s[i]) {
		i++
	}
	if i == len(s) {
		return segment{}, fmt.Errorf("%w: no part in %q", ErrUnknownPart, s)
	}
	seg := segment{pre: s[:i], joiner: " "}
	part, ok := lookupPart(s[i])
	if !ok {
		return segment{}, fmt.Errorf("%w: %q", ErrUnknownPart, s[i])
	}
	seg.part = part
	i++
	if part == namelist.Jr && i < len(s) && s[i] == 'r' {
		i++
	}
	if i < len(s) && s[i] == '!' {
		seg.initials = true
		i++
	}
	if i < len(s) && s[i] == '{' {
		end := strings.IndexByte(s[i+1:], '}')
		if end < 0 {
			return segment{}, ErrUnclosedJoiner
		}
		seg.joiner = s[i+1 : i+1+end]
		i += end + 2
	}
	seg.post = s[i:]
	return seg, nil
}

// String returns the source of the template.
func (t *Template) String() string { return t.src }

// Format renders a single person.
func (t *Template) Format(p namelist.Person) string {
	sb := strings.Builder{}
	for _, seg := range t.segments {
		toks := p.Part(seg.part)
		if len(toks) == 0 {
			continue
		}
		sb.WriteString(seg.pre)
		for i, tok := range toks {
			if i > 0 {
				sb.WriteString(seg.joiner)
			}
			if seg.initials {
				sb.WriteString(namelist.Initial(tok))
			} else {
				sb.WriteString(tok.Value)
			}
		}
		sb.WriteString(seg.post)
	}
	return sb.String()
}

// FormatName renders a single person with template t.
func FormatName(p namelist.Person, t *Template) string {
	return t.Format(p)
}
