// Package style holds the label and citation styles that configure name
// formatting and citekey generation.
package style

// Config is the root style configuration.
type Config struct {
	Label    LabelStyle    `yaml:"label"    env-prefix:"BIBSTUFF_LABEL_"`
	Citation CitationStyle `yaml:"citation" env-prefix:"BIBSTUFF_CITATION_"`
}

// LabelStyle configures citekey generation. The name block of a key is the
// formatted names of the entry joined by NameSep.
type LabelStyle struct {
	NameTemplate string     `yaml:"name_template" env:"NAME_TEMPLATE" env-default:"v{_}_|l{}" env-description:"name template for each person in a key"`
	MaxNames     int        `yaml:"max_names"     env:"MAX_NAMES"     env-default:"2"          env-description:"names kept before etal"`
	NameSep      Separators `yaml:"name_name_sep" env:"NAME_NAME_SEP" env-default:"+"          env-description:"separators between names, split on |"`
	EtAl         string     `yaml:"etal"          env:"ETAL"          env-description:"entry after truncated names, empty to omit"`
	Anonymous    string     `yaml:"anonymous"     env:"ANONYMOUS"     env-description:"name block of entries without names"`
	LowerName    bool       `yaml:"lower_name"    env:"LOWER_NAME"    env-description:"lower-case the name block"`
	ASCIINames   bool       `yaml:"ascii_names"   env:"ASCII_NAMES"   env-description:"render names as plain ASCII"`
	DefaultType  string     `yaml:"default_type"  env:"DEFAULT_TYPE"  env-default:"%(names)s-%(year)s"`

	// Types maps a lower-case entry type to its label template.
	Types map[string]string `yaml:"types,omitempty" env:"TYPES"`
}

// CitationStyle configures the name block of a formatted citation.
type CitationStyle struct {
	NameFirst string     `yaml:"name_first"    env:"NAME_FIRST"    env-default:"v |l,| j,| f" env-description:"name template for the first person"`
	NameOther string     `yaml:"name_other"    env:"NAME_OTHER"    env-default:"f |v |l|, j"  env-description:"name template for later persons"`
	NameSep   Separators `yaml:"name_name_sep" env:"NAME_NAME_SEP" env-default:", |, and "`
	EtAl      string     `yaml:"etal"          env:"ETAL"`
	Anonymous string     `yaml:"anonymous"     env:"ANONYMOUS"`
	Initials  string     `yaml:"initials"      env:"INITIALS"      env-description:"parts rendered as initials, any of f, v, l and j"`
	MaxNames  int        `yaml:"max_names"     env:"MAX_NAMES"     env-default:"3"`
}

// Default returns the default style. Load starts from Default, so fields
// that may be empty, like EtAl, carry no env-default tag.
func Default() Config {
	return Config{
		Label: LabelStyle{
			NameTemplate: "v{_}_|l{}",
			MaxNames:     2,
			NameSep:      Separators{"+"},
			EtAl:         "etal",
			Anonymous:    "anon",
			DefaultType:  "%(names)s-%(year)s",
		},
		Citation: CitationStyle{
			NameFirst: "v |l,| j,| f",
			NameOther: "f |v |l|, j",
			NameSep:   Separators{", ", ", and "},
			EtAl:      "et al.",
			Anonymous: "Anonymous",
			MaxNames:  3,
		},
	}
}
