// Package ir defines the intermediate representation of type declarations
// read from schema documents. This package is internal and not part of the
// public API.
package ir

// Type is one declared type.
type Type struct {
	Name  string
	Cases []Case
	Doc   int // 0-based position of the source document
	Line  int // 1-based source line; 0 when unknown (JSON input)
}

// Case is one declared case.
type Case struct {
	Name   string
	Fields []string
	Line   int
}

// Document is the ordered list of types read from one input.
type Document struct {
	Types []*Type
}

// Names returns the declared type names in order.
func (d *Document) Names() []string {
	out := make([]string, len(d.Types))
	for i, t := range d.Types {
		out[i] = t.Name
	}
	return out
}

// CaseNames returns the case names of t in order.
func (t *Type) CaseNames() []string {
	out := make([]string, len(t.Cases))
	for i, c := range t.Cases {
		out[i] = c.Name
	}
	return out
}
