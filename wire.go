package adt

import (
	"context"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// Wire is the serialized form of an instance:
//
//	{"type":"Maybe","case":"just","fields":{"value":5}}
//
// Type is empty for anonymous types; Fields is omitted for nullary cases.
type Wire struct {
	Type   string         `json:"type,omitempty" yaml:"type,omitempty"`
	Case   string         `json:"case" yaml:"case"`
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Codec converts instances to and from a wire representation W.
type Codec[W any] interface {
	Encode(ctx context.Context, v *Value) (W, error)
	Decode(ctx context.Context, w W) (*Value, error)
}

// Wire returns the serialized form of v. Nested instances stay *Value and
// serialize through their own marshalers.
func (v *Value) Wire() Wire {
	w := Wire{Type: v.typ.name, Case: v.CaseName()}
	if len(v.fields) > 0 {
		w.Fields = v.FieldMap()
	}
	return w
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Wire())
}

// MarshalYAML implements yaml.Marshaler.
func (v *Value) MarshalYAML() (any, error) {
	return v.Wire(), nil
}

// FromWire rebuilds an instance of t. Nullary cases return the case
// singleton. Nested instances are not reconstructed; their fields arrive as
// decoded data.
func (t *Type) FromWire(w Wire) (*Value, error) {
	if w.Type != "" && w.Type != t.name {
		return nil, newIssue(Root().Field("type"), CodeTypeMismatch,
			fmt.Sprintf("got type %s, want %s", quote(w.Type), quote(t.name)), "got", w.Type, "want", t.name)
	}
	idx, ok := t.schema.Index(w.Case)
	if !ok {
		return nil, newIssue(Root().Field("case"), CodeUnknownCase,
			fmt.Sprintf("%s has no case %s", t.displayName(), quote(w.Case)), "name", w.Case)
	}
	c := t.schema.cases[idx]
	var iss Issues
	args := make([]any, len(c.Fields))
	known := make(map[string]struct{}, len(c.Fields))
	for i, f := range c.Fields {
		known[f] = struct{}{}
		x, ok := w.Fields[f]
		if !ok {
			iss = AppendIssues(iss, newIssue(Root().Field("fields").Field(f), CodeMissingField,
				fmt.Sprintf("%s requires field %s", c.Name, quote(f)), "name", f)...)
			continue
		}
		args[i] = x
	}
	var extra []string
	for k := range w.Fields {
		if _, ok := known[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		iss = AppendIssues(iss, newIssue(Root().Field("fields").Field(k), CodeUnknownField,
			fmt.Sprintf("%s has no field %s", c.Name, quote(k)), "name", k)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return t.construct(idx, args)
}
