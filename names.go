package bibstuff

import (
	"github.com/dschwilk/bibstuff/namelist"
)

// nameFields are the fields holding the names of an entry, in order of
// preference.
var nameFields = []Field{FieldAuthor, FieldEditor, FieldOrganization}

// ExtractNames parses the names of an entry from the first non-empty of the
// author, editor and organization fields. An organization is a single name
// and is never split into parts. The names are usable even when the error,
// a list of parse warnings, is non-nil.
func ExtractNames(e *Entry, opts ...namelist.Option) (namelist.NameList, error) {
	for _, f := range nameFields {
		raw := e.Get(f)
		if raw == "" {
			continue
		}
		if f == FieldOrganization {
			raw = "{" + raw + "}"
		}
		return namelist.Parse(raw, opts...)
	}
	return nil, nil
}
