// Package data groups small types declared entirely through the public adt
// surface: maybe, either, validation and identity. The parent package holds
// the helpers they share.
package data

import (
	"fmt"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/i18n"
)

// Check returns a type_mismatch issue unless v is an instance of t.
func Check(t *adt.Type, v *adt.Value) error {
	if v != nil && v.Type() == t {
		return nil
	}
	got := "nil"
	if v != nil {
		got = v.Type().Name()
	}
	it := adt.Root().Issue(adt.CodeTypeMismatch, i18n.T(adt.CodeTypeMismatch, nil), "want", t.Name(), "got", got)
	it.Hint = fmt.Sprintf("expected %s instance, got %s", t.Name(), got)
	return adt.Issues{it}
}
