package nameformat

import (
	"errors"
	"testing"

	"github.com/dschwilk/bibstuff/namelist"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, raw string) namelist.NameList {
	t.Helper()
	names, err := namelist.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return names
}

func TestTemplate_Format(t *testing.T) {
	tests := []struct {
		name     string
		template string
		opts     []Option
		person   namelist.Person
		want     string
	}{
		{
			"last first",
			"v{~}~|l,| j,| f{. }",
			nil,
			namelist.Person{First: []namelist.Token{namelist.Word("Dylan")}, Last: []namelist.Token{namelist.Word("Schwilk")}},
			"Schwilk, Dylan",
		},
		{
			"von joiner",
			"v{_}-|l{_}",
			nil,
			namelist.Person{
				Von:  []namelist.Token{namelist.Word("van"), namelist.Word("der")},
				Last: []namelist.Token{namelist.Word("Meer")},
			},
			"van_der-Meer",
		},
		{
			"empty von suppressed",
			"v{_}-|l{_}",
			nil,
			namelist.Person{Last: []namelist.Token{namelist.Word("Van"), namelist.Word("Stadt")}},
			"Van_Stadt",
		},
		{
			"empty joiner",
			"v{}|l{}",
			nil,
			namelist.Person{
				Von:  []namelist.Token{namelist.Word("van"), namelist.Word("der")},
				Last: []namelist.Token{namelist.Word("Meer")},
			},
			"vanderMeer",
		},
		{
			"bang initials",
			"f!{.}.| v| l",
			nil,
			namelist.Person{
				First: []namelist.Token{namelist.Word("Alan"), namelist.Word("Glen")},
				Last:  []namelist.Token{namelist.Word("Isaac")},
			},
			"A.G. Isaac",
		},
		{
			"option initials",
			"f{. }.| v| l",
			[]Option{WithInitials("f")},
			namelist.Person{
				First: []namelist.Token{namelist.Word(`{\"O}zgur`), namelist.Word("Ali")},
				Last:  []namelist.Token{namelist.Word("Jarvis")},
			},
			`{\"O}. A. Jarvis`,
		},
		{
			"jr kind",
			"l|, jr",
			nil,
			namelist.Person{Last: []namelist.Token{namelist.Word("Smith")}, Jr: []namelist.Token{namelist.Word("III")}},
			"Smith, III",
		},
		{
			"empty person",
			"f |l",
			nil,
			namelist.Person{},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Compile(tt.template, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got := FormatName(tt.person, tmpl); got != tt.want {
				t.Errorf("FormatName(%q) = %q; want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestCompile_errors(t *testing.T) {
	tests := []struct {
		template string
		opts     []Option
		want     error
	}{
		{"", nil, ErrEmptySegment},
		{"f||l", nil, ErrEmptySegment},
		{"x", nil, ErrUnknownPart},
		{"f|, q", nil, ErrUnknownPart},
		{"---", nil, ErrUnknownPart},
		{"v{~~|l", nil, ErrUnclosedJoiner},
		{"f|l", []Option{WithInitials("fz")}, ErrUnknownPart},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			_, err := Compile(tt.template, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v; want %v", tt.template, err, tt.want)
			}
		})
	}
}

func TestCompile_segmentIndex(t *testing.T) {
	_, err := Compile("f|v|q")
	var terr *TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("Compile() error = %v; want *TemplateError", err)
	}
	if terr.Segment != 2 {
		t.Errorf("TemplateError.Segment = %d; want 2", terr.Segment)
	}
}

func TestMustCompile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile() did not panic")
		}
	}()
	MustCompile("q")
}

func TestFormatNames(t *testing.T) {
	sep := Separators{Between: ", ", Last: ", and "}
	tests := []struct {
		name     string
		names    string
		template string
		opts     []Option
		want     string
	}{
		{
			"full first names",
			`J\orgen M\"{a}rtin and Sven \AAs`,
			"f{.}. |v |l| j",
			nil,
			`J\orgen. M\"{a}rtin, and Sven. \AAs`,
		},
		{
			"initials",
			`J\orgen M\"{a}rtin and Sven \AAs`,
			"f{.}. |v |l| j",
			[]Option{WithInitials("f")},
			`J. M\"{a}rtin, and S. \AAs`,
		},
		{
			"last first initials",
			`J\orgen M\"{a}rtin and Sven von der Stadt`,
			"v{~}~|l,| j,| f{. }.",
			[]Option{WithInitials("f")},
			`M\"{a}rtin, J., and von~der~Stadt, S.`,
		},
		{
			"three names",
			"Al Jones and Bo Smith and Cy Young",
			"f |l",
			nil,
			"Al Jones, Bo Smith, and Cy Young",
		},
		{
			"and others",
			"Al Jones and others",
			"f |l",
			nil,
			"Al Jones, and et al.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := MustCompile(tt.template, tt.opts...)
			got := FormatNames(mustParse(t, tt.names), tmpl, 3, "et al.", "Anonymous", sep)
			if got != tt.want {
				t.Errorf("FormatNames() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestListFormatter_Format(t *testing.T) {
	label := MustCompile("v{_}_|l{}")
	tests := []struct {
		name  string
		f     ListFormatter
		names string
		want  string
	}{
		{
			"anonymous",
			ListFormatter{First: label, MaxNames: 2, Sep: Separators{"+", "+"}, EtAl: "etal", Anonymous: "anon"},
			"",
			"anon",
		},
		{
			"etal truncation",
			ListFormatter{First: label, MaxNames: 2, Sep: Separators{"+", "+"}, EtAl: "etal", Anonymous: "anon"},
			"Al Jones and Bo Smith and Cy Young",
			"Jones+Smith+etal",
		},
		{
			"silent truncation",
			ListFormatter{First: label, MaxNames: 2, Sep: Separators{"+", "+"}, Anonymous: "anon"},
			"Al Jones and Bo Smith and Cy Young",
			"Jones+Smith",
		},
		{
			"exactly max names",
			ListFormatter{First: label, MaxNames: 2, Sep: Separators{"+", "+"}, EtAl: "etal"},
			"Al Jones and Bo Smith",
			"Jones+Smith",
		},
		{
			"others marker",
			ListFormatter{First: label, MaxNames: 2, Sep: Separators{"+", "+"}, EtAl: "etal", Anonymous: "anon"},
			"Al Jones and others",
			"Jones+etal",
		},
		{
			"person named others",
			ListFormatter{First: label, MaxNames: 2, Sep: Separators{"+", "+"}, EtAl: "etal", Anonymous: "anon"},
			"others",
			"others",
		},
		{
			"von joined",
			ListFormatter{First: label, MaxNames: 2, Sep: Separators{"+", "+"}, EtAl: "etal"},
			"Sven von der Stadt",
			"von_der_Stadt",
		},
		{
			"other template",
			ListFormatter{
				First:    MustCompile("v |l,| j,| f"),
				Other:    MustCompile("f |v |l|, j"),
				MaxNames: 3,
				Sep:      Separators{", ", ", and "},
				EtAl:     "et al.",
			},
			"Dylan Schwilk and Alan Glen Isaac and Sven von der Stadt",
			"Schwilk, Dylan, Alan Glen Isaac, and Sven von der Stadt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.f.Validate(); err != nil {
				t.Fatal(err)
			}
			if got := tt.f.Format(mustParse(t, tt.names)); got != tt.want {
				t.Errorf("Format() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestListFormatter_Validate(t *testing.T) {
	tests := []struct {
		name string
		f    ListFormatter
	}{
		{"missing template", ListFormatter{MaxNames: 1}},
		{"zero max names", ListFormatter{First: MustCompile("l")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.f.Validate(); err == nil {
				t.Error("Validate() = nil; want error")
			}
		})
	}
}

func TestSeparators_Join(t *testing.T) {
	sep := Separators{Between: ", ", Last: " & "}
	tests := []struct {
		xs   []string
		want string
	}{
		{nil, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A & B"},
		{[]string{"A", "B", "C"}, "A, B & C"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, sep.Join(tt.xs)); diff != "" {
			t.Errorf("Join(%q) mismatch (-want +got):\n%s", tt.xs, diff)
		}
	}
}
