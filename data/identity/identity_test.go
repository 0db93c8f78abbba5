package identity_test

import (
	"errors"
	"testing"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/data/identity"
)

func TestGet(t *testing.T) {
	got, err := identity.Get(identity.Wrap(3))
	if err != nil || got != 3 {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := identity.Wrap(3).Invoke("get", "extra"); err != nil {
		t.Fatalf("extra operation args are ignored by get, got %v", err)
	}
	if _, err := identity.Get(nil); !errors.Is(err, adt.ErrTypeMismatch) {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
}

func TestSingleCase(t *testing.T) {
	if len(identity.Type.Accessors()) != 0 {
		t.Fatalf("single-case types have no cross-case accessors")
	}
	if identity.Type.FoldAlias() != "identity" {
		t.Fatalf("alias = %q", identity.Type.FoldAlias())
	}
	got, err := identity.Wrap("x").Invoke("identity", adt.Fn1(func(v any) any { return v }))
	if err != nil || got != "x" {
		t.Fatalf("alias fold = %v, %v", got, err)
	}
}
