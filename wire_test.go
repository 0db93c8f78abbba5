package adt_test

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/nkpart/adt"
)

func TestMarshalJSON(t *testing.T) {
	maybe := newMaybe(t)
	cases := []struct {
		v    *adt.Value
		want string
	}{
		{maybe.MustConstruct("just", 5), `{"type":"Maybe","case":"just","fields":{"value":5}}`},
		{maybe.MustConstruct("nothing"), `{"type":"Maybe","case":"nothing"}`},
		{
			maybe.MustConstruct("just", maybe.MustConstruct("nothing")),
			`{"type":"Maybe","case":"just","fields":{"value":{"type":"Maybe","case":"nothing"}}}`,
		},
	}
	for _, c := range cases {
		b, err := json.Marshal(c.v)
		if err != nil {
			t.Fatalf("marshal %s: %v", c.v, err)
		}
		if string(b) != c.want {
			t.Fatalf("got %s, want %s", b, c.want)
		}
	}
}

func TestMarshalYAML(t *testing.T) {
	v := newMaybe(t).MustConstruct("just", "x")
	b, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{"type": "Maybe", "case": "just", "fields": map[string]any{"value": "x"}}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("yaml (-want +got):\n%s", d)
	}
}

func TestFromWire(t *testing.T) {
	maybe := newMaybe(t)
	v, err := maybe.FromWire(adt.Wire{Type: "Maybe", Case: "just", Fields: map[string]any{"value": 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Equal(maybe.MustConstruct("just", 1)) {
		t.Fatalf("got %s", v)
	}
	n, err := maybe.FromWire(adt.Wire{Case: "nothing"})
	if err != nil || n != maybe.MustConstruct("nothing") {
		t.Fatalf("nullary wire must yield the singleton, got %v, %v", n, err)
	}
}

func TestFromWire_Errors(t *testing.T) {
	maybe := newMaybe(t)
	_, err := maybe.FromWire(adt.Wire{Type: "Either", Case: "just"})
	if !errors.Is(err, adt.ErrTypeMismatch) {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
	_, err = maybe.FromWire(adt.Wire{Case: "some"})
	if !errors.Is(err, adt.ErrUnknownCase) {
		t.Fatalf("expected unknown_case, got %v", err)
	}
	_, err = maybe.FromWire(adt.Wire{Case: "just", Fields: map[string]any{"val": 1}})
	iss, ok := adt.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", err)
	}
	if iss[0].Code != adt.CodeMissingField || iss[0].Path != "/fields/value" {
		t.Fatalf("first issue = %+v", iss[0])
	}
	if iss[1].Code != adt.CodeUnknownField || iss[1].Path != "/fields/val" {
		t.Fatalf("second issue = %+v", iss[1])
	}
}
