// Package bibstuff labels bibtex entries. It extracts the names of an entry,
// formats them with a style and generates a unique citekey for each entry.
package bibstuff

import "strings"

type CiteKey = string

type EntryType = string

const (
	EntryArticle       EntryType = "article"
	EntryBook          EntryType = "book"
	EntryBooklet       EntryType = "booklet"
	EntryInBook        EntryType = "inbook"
	EntryInCollection  EntryType = "incollection"
	EntryInProceedings EntryType = "inproceedings"
	EntryManual        EntryType = "manual"
	EntryMastersThesis EntryType = "mastersthesis"
	EntryMisc          EntryType = "misc"
	EntryPhDThesis     EntryType = "phdthesis"
	EntryProceedings   EntryType = "proceedings"
	EntryTechReport    EntryType = "techreport"
	EntryUnpublished   EntryType = "unpublished"
)

type Field = string

const (
	FieldAddress      Field = "address"
	FieldAuthor       Field = "author"
	FieldBookTitle    Field = "booktitle"
	FieldChapter      Field = "chapter"
	FieldEditor       Field = "editor"
	FieldJournal      Field = "journal"
	FieldOrganization Field = "organization"
	FieldPublisher    Field = "publisher"
	FieldTitle        Field = "title"
	FieldYear         Field = "year"
)

// Entry is a single bibtex entry. Field names are lower-case and values are
// the raw field text without the outer braces or quotes.
type Entry struct {
	Type   EntryType        `yaml:"type"`
	Key    CiteKey          `yaml:"key,omitempty"`
	Fields map[Field]string `yaml:"fields,omitempty"`
}

// Get returns the value of field f with surrounding whitespace removed, or
// "" if the entry doesn't have the field.
func (e *Entry) Get(f Field) string {
	return strings.TrimSpace(e.Fields[strings.ToLower(f)])
}

func (e *Entry) Year() string { return e.Get(FieldYear) }

func (e *Entry) Journal() string { return e.Get(FieldJournal) }
