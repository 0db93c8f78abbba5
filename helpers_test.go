package adt_test

import (
	"testing"

	"github.com/nkpart/adt"
)

func newMaybe(t *testing.T) *adt.Type {
	t.Helper()
	typ, err := adt.NewType("Maybe",
		adt.CaseDef{Name: "nothing"},
		adt.CaseDef{Name: "just", Fields: []string{"value"}},
	)
	if err != nil {
		t.Fatalf("declare Maybe: %v", err)
	}
	return typ
}

func newColor(t *testing.T) *adt.Type {
	t.Helper()
	typ, err := adt.NewType("Color",
		adt.CaseDef{Name: "red"},
		adt.CaseDef{Name: "green"},
		adt.CaseDef{Name: "blue"},
	)
	if err != nil {
		t.Fatalf("declare Color: %v", err)
	}
	return typ
}

func newShape(t *testing.T) *adt.Type {
	t.Helper()
	typ, err := adt.NewType("Shape",
		adt.CaseDef{Name: "circle", Fields: []string{"x", "y", "radius"}},
		adt.CaseDef{Name: "rect", Fields: []string{"x", "y", "w", "h"}},
		adt.CaseDef{Name: "tri", Fields: []string{"x", "y", "base"}},
	)
	if err != nil {
		t.Fatalf("declare Shape: %v", err)
	}
	return typ
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	if !adt.HasCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}
