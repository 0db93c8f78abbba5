package adt

import (
	"fmt"
)

// Value is an instance of a generated type: a case tag and that case's field
// values. Values are immutable; they are created only by constructors and
// consumed by folds and derived operations.
type Value struct {
	typ    *Type
	tag    int
	fields []any
}

// Type returns the generated type of the instance.
func (v *Value) Type() *Type { return v.typ }

// CaseName returns the name of the instance's case.
func (v *Value) CaseName() string { return v.typ.schema.cases[v.tag].Name }

// CaseIndex returns the 1-based declaration index of the instance's case.
func (v *Value) CaseIndex() int { return v.tag + 1 }

// CaseArity returns the declared arity of the instance's case.
func (v *Value) CaseArity() int { return len(v.fields) }

// Fields returns a copy of the field values in declaration order (empty for
// nullary cases).
func (v *Value) Fields() []any {
	out := make([]any, len(v.fields))
	copy(out, v.fields)
	return out
}

// FieldMap returns the instance's field values keyed by field name.
func (v *Value) FieldMap() map[string]any {
	names := v.typ.schema.cases[v.tag].Fields
	out := make(map[string]any, len(names))
	for i, n := range names {
		out[n] = v.fields[i]
	}
	return out
}

// Get reads a cross-case field accessor. Accessors exist only for field names
// that every case declares at the same position.
func (v *Value) Get(field string) (any, error) {
	pos, ok := v.typ.accessors[field]
	if !ok {
		return nil, newIssue(Root().Field("fields").Field(field), CodeUnknownField,
			fmt.Sprintf("%s has no accessor %s", v.typ.displayName(), quote(field)), "name", field)
	}
	return v.fields[pos], nil
}

// Is reports whether the instance holds the named case.
func (v *Value) Is(caseName string) (bool, error) {
	pred, err := v.typ.Predicate(caseName)
	if err != nil {
		return false, err
	}
	return pred(v), nil
}

// When calls onMatch with the field values if the instance holds the named
// case, otherwise calls otherwise with no arguments.
func (v *Value) When(caseName string, onMatch, otherwise Handler) (any, error) {
	h, err := v.typ.CaseHandler(caseName)
	if err != nil {
		return nil, err
	}
	return h(v, onMatch, otherwise)
}

// ToInt returns the 1-based case index of an enumeration instance.
func (v *Value) ToInt() (int, error) {
	if !v.typ.IsEnumeration() {
		return 0, v.typ.notEnumeration("to_i")
	}
	return v.CaseIndex(), nil
}
