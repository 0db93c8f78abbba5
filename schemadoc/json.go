package schemadoc

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/internal/dupkeys"
	"github.com/nkpart/adt/internal/ir"
)

// LoadJSON reads one document object or an array of them and declares their
// types.
func LoadJSON(b []byte) (*Registry, error) {
	doc, err := readJSON(b)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

func readJSON(b []byte) (*ir.Document, error) {
	dups, err := dupkeys.Find(b)
	if err != nil {
		return nil, parseIssue(err)
	}
	if len(dups) > 0 {
		var iss adt.Issues
		for _, d := range dups {
			iss = adt.AppendIssues(iss, newIssue(adt.At(d.Path).Field(d.Key), adt.CodeParseError, pos{},
				"duplicate JSON key "+d.Key, "name", d.Key))
		}
		return nil, iss
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, parseIssue(err)
	}
	var items []any
	switch x := raw.(type) {
	case []any:
		items = x
	case map[string]any:
		items = []any{x}
	default:
		return nil, adt.Issues{newIssue(adt.Root(), adt.CodeParseError, pos{},
			fmt.Sprintf("expected object or array, got %s", jsonKind(raw)))}
	}

	doc := &ir.Document{}
	var iss adt.Issues
	for i, item := range items {
		t, more := jsonType(item, i)
		iss = adt.AppendIssues(iss, more...)
		if t != nil {
			doc.Types = append(doc.Types, t)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return doc, nil
}

func parseIssue(err error) adt.Issues {
	it := newIssue(adt.Root(), adt.CodeParseError, pos{}, err.Error())
	it.Cause = err
	return adt.Issues{it}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	return "number"
}

func jsonType(v any, docIdx int) (*ir.Type, adt.Issues) {
	p := adt.Root().Index(docIdx)
	m, ok := v.(map[string]any)
	if !ok {
		return nil, adt.Issues{newIssue(p, adt.CodeParseError, pos{}, "expected object, got "+jsonKind(v))}
	}
	t := &ir.Type{Doc: docIdx}
	var iss adt.Issues
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch k {
		case "name", "cases":
		default:
			iss = adt.AppendIssues(iss, newIssue(p.Field(k), adt.CodeUnknownField, pos{}, "unknown key "+k, "name", k))
		}
	}
	switch name := m["name"].(type) {
	case string:
		t.Name = name
	case nil:
		iss = adt.AppendIssues(iss, newIssue(p.Field("name"), adt.CodeMissingField, pos{}, "name is required"))
	default:
		iss = adt.AppendIssues(iss, newIssue(p.Field("name"), adt.CodeParseError, pos{}, "expected string, got "+jsonKind(name)))
	}
	switch cases := m["cases"].(type) {
	case []any:
		for i, item := range cases {
			c, more := jsonCase(p.Field("cases").Index(i), item)
			iss = adt.AppendIssues(iss, more...)
			if c != nil {
				t.Cases = append(t.Cases, *c)
			}
		}
	case nil:
		iss = adt.AppendIssues(iss, newIssue(p.Field("cases"), adt.CodeMissingField, pos{}, "cases is required"))
	default:
		iss = adt.AppendIssues(iss, newIssue(p.Field("cases"), adt.CodeParseError, pos{}, "expected array, got "+jsonKind(cases)))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return t, nil
}

// jsonCase reads "nothing" or {"just": ["value"]}.
func jsonCase(p adt.PathRef, v any) (*ir.Case, adt.Issues) {
	switch x := v.(type) {
	case string:
		return &ir.Case{Name: x}, nil
	case map[string]any:
		if len(x) != 1 {
			return nil, adt.Issues{newIssue(p, adt.CodeParseError, pos{},
				fmt.Sprintf("case entry must have exactly one key, got %d", len(x)))}
		}
		for name, fv := range x {
			c := &ir.Case{Name: name}
			switch fs := fv.(type) {
			case nil:
			case []any:
				var iss adt.Issues
				for i, f := range fs {
					s, ok := f.(string)
					if !ok {
						iss = adt.AppendIssues(iss, newIssue(p.Field(name).Index(i), adt.CodeParseError, pos{},
							"expected string, got "+jsonKind(f)))
						continue
					}
					c.Fields = append(c.Fields, s)
				}
				if len(iss) > 0 {
					return nil, iss
				}
			default:
				return nil, adt.Issues{newIssue(p.Field(name), adt.CodeParseError, pos{}, "expected array, got "+jsonKind(fv))}
			}
			return c, nil
		}
	}
	return nil, adt.Issues{newIssue(p, adt.CodeParseError, pos{}, "expected string or object, got "+jsonKind(v))}
}
