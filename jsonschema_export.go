package adt

import (
	"github.com/nkpart/adt/jsonschema"
)

// JSONSchema describes the wire form of t: one closed object per case with a
// constant "case" property and a closed "fields" object. Enumerations also
// list every case name on the "case" property.
func (t *Type) JSONSchema() (*jsonschema.Schema, error) {
	root := &jsonschema.Schema{SchemaURI: jsonschema.Draft, Title: t.name}
	if t.name != "" {
		root.Description = t.String()
	}
	var names []any
	if t.IsEnumeration() {
		for _, n := range t.schema.Names() {
			names = append(names, n)
		}
	}
	for _, c := range t.schema.cases {
		caseProp := jsonschema.ConstString(c.Name)
		caseProp.Enum = names
		props := map[string]*jsonschema.Schema{"case": caseProp}
		required := []string{"case"}
		if t.name != "" {
			props["type"] = jsonschema.ConstString(t.name)
		}
		if len(c.Fields) > 0 {
			fp := make(map[string]*jsonschema.Schema, len(c.Fields))
			for _, f := range c.Fields {
				fp[f] = &jsonschema.Schema{}
			}
			props["fields"] = jsonschema.Object(fp, append([]string(nil), c.Fields...)...)
			required = append(required, "fields")
		}
		o := jsonschema.Object(props, required...)
		o.Title = c.Name
		root.OneOf = append(root.OneOf, o)
	}
	return root, nil
}
