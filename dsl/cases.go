package dsl

import (
	"github.com/nkpart/adt"
	"github.com/nkpart/adt/internal/tape"
)

// CaseRecorder captures case declarations inside a declaration block.
type CaseRecorder struct {
	tape tape.Tape[[]string]
}

// Case records a case with its ordered field names.
func (r *CaseRecorder) Case(name string, fields ...string) *CaseRecorder {
	r.tape.Record(name, append([]string(nil), fields...))
	return r
}

func (r *CaseRecorder) defs() []adt.CaseDef {
	entries := r.tape.Entries()
	out := make([]adt.CaseDef, len(entries))
	for i, e := range entries {
		out[i] = adt.CaseDef{Name: e.Name, Fields: e.Payload}
	}
	return out
}

// Define declares a named type from a block of case declarations.
func Define(name string, block func(c *CaseRecorder)) (*adt.Type, error) {
	r := &CaseRecorder{}
	if block != nil {
		block(r)
	}
	return adt.NewType(name, r.defs()...)
}

// MustDefine is Define that panics on error.
func MustDefine(name string, block func(c *CaseRecorder)) *adt.Type {
	t, err := Define(name, block)
	if err != nil {
		panic(err)
	}
	return t
}

// Anonymous declares a type without a name.
func Anonymous(block func(c *CaseRecorder)) (*adt.Type, error) {
	return Define("", block)
}
