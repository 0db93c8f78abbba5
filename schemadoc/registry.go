package schemadoc

import (
	"github.com/nkpart/adt"
	"github.com/nkpart/adt/internal/ir"
)

// Registry holds the types declared by a set of documents, in document order.
type Registry struct {
	types  []*adt.Type
	byName map[string]*adt.Type
}

// Types returns the declared types in document order.
func (r *Registry) Types() []*adt.Type {
	return append([]*adt.Type(nil), r.types...)
}

// Names returns the declared type names in document order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.types))
	for i, t := range r.types {
		out[i] = t.Name()
	}
	return out
}

// Lookup finds a type by name.
func (r *Registry) Lookup(name string) (*adt.Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Len returns the number of declared types.
func (r *Registry) Len() int { return len(r.types) }

// build declares every type of doc. All problems are reported together.
func build(doc *ir.Document) (*Registry, error) {
	r := &Registry{byName: make(map[string]*adt.Type, len(doc.Types))}
	var iss adt.Issues
	for _, it := range doc.Types {
		docPath := adt.Root().Index(it.Doc)
		if _, dup := r.byName[it.Name]; dup {
			iss = adt.AppendIssues(iss, newIssue(docPath.Field("name"), adt.CodeDuplicateCase, pos{line: it.Line},
				"type "+it.Name+" declared more than once", "name", it.Name))
			continue
		}
		defs := make([]adt.CaseDef, len(it.Cases))
		for i, c := range it.Cases {
			defs[i] = adt.CaseDef{Name: c.Name, Fields: c.Fields}
		}
		t, err := adt.NewType(it.Name, defs...)
		if err != nil {
			more, ok := adt.AsIssues(rebase(err, docPath, pos{line: it.Line}))
			if !ok {
				return nil, err
			}
			iss = adt.AppendIssues(iss, more...)
			continue
		}
		r.types = append(r.types, t)
		r.byName[it.Name] = t
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}
