package schemadoc

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/internal/ir"
)

// LoadYAML reads a multi-document YAML stream and declares its types.
func LoadYAML(r io.Reader) (*Registry, error) {
	doc, err := readYAML(r)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// readYAML decodes each document as a yaml.Node so that duplicate keys and
// wrong node kinds can be reported with their positions.
func readYAML(r io.Reader) (*ir.Document, error) {
	dec := yaml.NewDecoder(r)
	doc := &ir.Document{}
	var iss adt.Issues
	for i := 0; ; i++ {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			it := newIssue(adt.Root().Index(i), adt.CodeParseError, pos{}, err.Error())
			it.Cause = err
			return nil, adt.AppendIssues(iss, it)
		}
		if len(root.Content) == 0 {
			continue
		}
		t, more := yamlType(root.Content[0], i)
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

func at(n *yaml.Node) pos { return pos{line: n.Line, col: n.Column} }

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "document"
}

func kindIssue(p adt.PathRef, n *yaml.Node, want string) adt.Issue {
	return newIssue(p, adt.CodeParseError, at(n), fmt.Sprintf("expected %s, got %s", want, kindName(n.Kind)),
		"want", want, "got", kindName(n.Kind))
}

// pairs walks a mapping node, reporting duplicate keys.
func pairs(p adt.PathRef, n *yaml.Node, fn func(k, v *yaml.Node)) adt.Issues {
	var iss adt.Issues
	first := make(map[string]pos, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if prev, dup := first[k.Value]; dup {
			de := &DuplicateKeyError{Key: k.Value, FirstLine: prev.line, FirstCol: prev.col, Line: k.Line, Col: k.Column}
			it := newIssue(p.Field(k.Value), adt.CodeParseError, at(k), de.Error(), "name", k.Value)
			it.Cause = de
			iss = adt.AppendIssues(iss, it)
			continue
		}
		first[k.Value] = at(k)
		fn(k, v)
	}
	return iss
}

func yamlType(n *yaml.Node, docIdx int) (*ir.Type, adt.Issues) {
	p := adt.Root().Index(docIdx)
	if n.Kind != yaml.MappingNode {
		return nil, adt.Issues{kindIssue(p, n, "mapping")}
	}
	t := &ir.Type{Doc: docIdx, Line: n.Line}
	var iss adt.Issues
	var sawName, sawCases bool
	dups := pairs(p, n, func(k, v *yaml.Node) {
		switch k.Value {
		case "name":
			sawName = true
			if v.Kind != yaml.ScalarNode {
				iss = adt.AppendIssues(iss, kindIssue(p.Field("name"), v, "scalar"))
				return
			}
			t.Name = v.Value
			t.Line = v.Line
		case "cases":
			sawCases = true
			if v.Kind != yaml.SequenceNode {
				iss = adt.AppendIssues(iss, kindIssue(p.Field("cases"), v, "sequence"))
				return
			}
			for i, item := range v.Content {
				c, more := yamlCase(p.Field("cases").Index(i), item)
				iss = adt.AppendIssues(iss, more...)
				if c != nil {
					t.Cases = append(t.Cases, *c)
				}
			}
		default:
			iss = adt.AppendIssues(iss, newIssue(p.Field(k.Value), adt.CodeUnknownField, at(k),
				"unknown key "+k.Value, "name", k.Value))
		}
	})
	iss = adt.AppendIssues(iss, dups...)
	if !sawName {
		iss = adt.AppendIssues(iss, newIssue(p.Field("name"), adt.CodeMissingField, at(n), "name is required"))
	}
	if !sawCases {
		iss = adt.AppendIssues(iss, newIssue(p.Field("cases"), adt.CodeMissingField, at(n), "cases is required"))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return t, nil
}

// yamlCase reads "nothing" or "just: [value]".
func yamlCase(p adt.PathRef, n *yaml.Node) (*ir.Case, adt.Issues) {
	switch n.Kind {
	case yaml.ScalarNode:
		return &ir.Case{Name: n.Value, Line: n.Line}, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, adt.Issues{newIssue(p, adt.CodeParseError, at(n),
				fmt.Sprintf("case entry must have exactly one key, got %d", len(n.Content)/2))}
		}
		k, v := n.Content[0], n.Content[1]
		c := &ir.Case{Name: k.Value, Line: k.Line}
		switch {
		case v.Kind == yaml.ScalarNode && v.Tag == "!!null":
		case v.Kind == yaml.SequenceNode:
			var iss adt.Issues
			for i, f := range v.Content {
				if f.Kind != yaml.ScalarNode {
					iss = adt.AppendIssues(iss, kindIssue(p.Field(k.Value).Index(i), f, "scalar"))
					continue
				}
				c.Fields = append(c.Fields, f.Value)
			}
			if len(iss) > 0 {
				return nil, iss
			}
		default:
			return nil, adt.Issues{kindIssue(p.Field(k.Value), v, "sequence")}
		}
		return c, nil
	}
	return nil, adt.Issues{kindIssue(p, n, "scalar or mapping")}
}
