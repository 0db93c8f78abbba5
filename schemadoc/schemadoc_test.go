package schemadoc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/schemadoc"
)

const twoTypes = `
name: Maybe
cases:
  - nothing
  - just: [value]
---
name: Color
cases: [red, green, blue]
`

func TestLoadYAML_MultiDocument(t *testing.T) {
	reg, err := schemadoc.LoadYAML(strings.NewReader(twoTypes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff([]string{"Maybe", "Color"}, reg.Names()); d != "" {
		t.Fatalf("names (-want +got):\n%s", d)
	}
	maybe, ok := reg.Lookup("Maybe")
	if !ok {
		t.Fatalf("Maybe not registered")
	}
	if got := maybe.String(); got != "Maybe = nothing | just(value)" {
		t.Fatalf("String = %q", got)
	}
	color, _ := reg.Lookup("Color")
	if !color.IsEnumeration() {
		t.Fatalf("Color should be an enumeration")
	}
	if _, ok := reg.Lookup("Either"); ok {
		t.Fatalf("Either should not exist")
	}
	if reg.Len() != 2 || len(reg.Types()) != 2 {
		t.Fatalf("Len = %d", reg.Len())
	}
}

func TestLoadYAML_NullFieldsMeanNullary(t *testing.T) {
	reg, err := schemadoc.LoadYAML(strings.NewReader("name: Unit\ncases:\n  - unit:\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := reg.Lookup("Unit")
	if u.Schema().Arity(0) != 0 {
		t.Fatalf("unit should be nullary")
	}
}

func TestLoadYAML_DuplicateKey(t *testing.T) {
	_, err := schemadoc.LoadYAML(strings.NewReader("name: A\nname: B\ncases: [x]\n"))
	iss, ok := adt.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != adt.CodeParseError || iss[0].Path != "/0/name" {
		t.Fatalf("issue = %+v", iss[0])
	}
	if iss[0].Params["line"] != 2 {
		t.Fatalf("line = %v", iss[0].Params["line"])
	}
	var de *schemadoc.DuplicateKeyError
	if !errors.As(err, &de) || de.FirstLine != 1 || de.Line != 2 {
		t.Fatalf("expected DuplicateKeyError cause, got %v", de)
	}
}

func TestLoadYAML_StructuralErrors(t *testing.T) {
	cases := []struct {
		in   string
		code string
		path string
	}{
		{"- a\n- b\n", adt.CodeParseError, "/0"},
		{"name: A\n", adt.CodeMissingField, "/0/cases"},
		{"cases: [x]\n", adt.CodeMissingField, "/0/name"},
		{"name: A\ncases: x\n", adt.CodeParseError, "/0/cases"},
		{"name: A\ncases: [x]\nextra: 1\n", adt.CodeUnknownField, "/0/extra"},
		{"name: A\ncases:\n  - {a: [x], b: [y]}\n", adt.CodeParseError, "/0/cases/0"},
		{"name: A\ncases:\n  - a: [[x]]\n", adt.CodeParseError, "/0/cases/0/a/0"},
		{"name: A\ncases:\n  - a: x\n", adt.CodeParseError, "/0/cases/0/a"},
		{"name: A\ncases: [\n", adt.CodeParseError, "/0"},
	}
	for _, c := range cases {
		_, err := schemadoc.LoadYAML(strings.NewReader(c.in))
		iss, ok := adt.AsIssues(err)
		if !ok {
			t.Fatalf("%q: expected Issues, got %v", c.in, err)
		}
		if iss[0].Code != c.code || iss[0].Path != c.path {
			t.Fatalf("%q: got %s at %s, want %s at %s", c.in, iss[0].Code, iss[0].Path, c.code, c.path)
		}
	}
}

func TestLoadYAML_SchemaErrorsAreRebased(t *testing.T) {
	in := "name: A\ncases: [x]\n---\nname: B\ncases: [y, y]\n"
	_, err := schemadoc.LoadYAML(strings.NewReader(in))
	if !errors.Is(err, adt.ErrDuplicateCase) {
		t.Fatalf("expected duplicate_case, got %v", err)
	}
	iss, _ := adt.AsIssues(err)
	if iss[0].Path != "/1/cases/y" {
		t.Fatalf("path = %s", iss[0].Path)
	}
}

func TestLoadYAML_DuplicateTypeName(t *testing.T) {
	in := "name: A\ncases: [x]\n---\nname: A\ncases: [y]\n"
	_, err := schemadoc.LoadYAML(strings.NewReader(in))
	iss, ok := adt.AsIssues(err)
	if !ok || iss[0].Code != adt.CodeDuplicateCase || iss[0].Path != "/1/name" {
		t.Fatalf("expected duplicate type issue, got %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	reg, err := schemadoc.LoadJSON([]byte(`[
		{"name": "Maybe", "cases": ["nothing", {"just": ["value"]}]},
		{"name": "Unit", "cases": [{"unit": null}]}
	]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff([]string{"Maybe", "Unit"}, reg.Names()); d != "" {
		t.Fatalf("names (-want +got):\n%s", d)
	}
	single, err := schemadoc.LoadJSON([]byte(`{"name": "Color", "cases": ["red", "green"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := single.Lookup("Color"); !ok {
		t.Fatalf("single object form not accepted")
	}
}

func TestLoadJSON_Errors(t *testing.T) {
	cases := []struct {
		in   string
		code string
		path string
	}{
		{`{`, adt.CodeParseError, "/"},
		{`42`, adt.CodeParseError, "/"},
		{`{"name":"A","name":"B","cases":["x"]}`, adt.CodeParseError, "/name"},
		{`[{"name":"A"}]`, adt.CodeMissingField, "/0/cases"},
		{`[{"name":1,"cases":["x"]}]`, adt.CodeParseError, "/0/name"},
		{`[{"name":"A","cases":["x"],"z":1}]`, adt.CodeUnknownField, "/0/z"},
		{`[{"name":"A","cases":[1]}]`, adt.CodeParseError, "/0/cases/0"},
		{`[{"name":"A","cases":[{"a":[1]}]}]`, adt.CodeParseError, "/0/cases/0/a/0"},
		{`[{"name":"A","cases":["x","x"]}]`, adt.CodeDuplicateCase, "/0/cases/x"},
	}
	for _, c := range cases {
		_, err := schemadoc.LoadJSON([]byte(c.in))
		iss, ok := adt.AsIssues(err)
		if !ok {
			t.Fatalf("%s: expected Issues, got %v", c.in, err)
		}
		if iss[0].Code != c.code || iss[0].Path != c.path {
			t.Fatalf("%s: got %s at %s, want %s at %s", c.in, iss[0].Code, iss[0].Path, c.code, c.path)
		}
	}
}
