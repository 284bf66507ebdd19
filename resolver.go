package bibstuff

import (
	"fmt"

	"github.com/dschwilk/bibstuff/render"
)

// Resolver is an in-place mutation of bibtex entries, like assigning
// citekeys or replacing TeX markup in fields with plain text.
type Resolver interface {
	Resolve(entries []*Entry) error
}

type ResolverFunc func(entries []*Entry) error

func (r ResolverFunc) Resolve(entries []*Entry) error {
	return r(entries)
}

// ResolveAll applies each resolver to entries in order.
func ResolveAll(entries []*Entry, resolvers ...Resolver) error {
	for _, r := range resolvers {
		if err := r.Resolve(entries); err != nil {
			return err
		}
	}
	return nil
}

// RenderFieldsResolver replaces the TeX markup of fields with a plain text
// rendering, so {\"O}zgur becomes Özgur.
type RenderFieldsResolver struct {
	rend   *render.TextRenderer
	fields []Field
}

func NewRenderFieldsResolver(fields ...Field) *RenderFieldsResolver {
	return &RenderFieldsResolver{rend: render.NewTextRenderer(), fields: fields}
}

func (r *RenderFieldsResolver) Resolve(entries []*Entry) error {
	for _, e := range entries {
		for _, f := range r.fields {
			val, ok := e.Fields[f]
			if !ok {
				continue
			}
			s, err := r.rend.String(val)
			if err != nil {
				return fmt.Errorf("render field %q of entry %q: %w", f, e.Key, err)
			}
			e.Fields[f] = s
		}
	}
	return nil
}
