package adt

import (
	"fmt"
	"sort"
)

// OperationFunc builds the per-case handlers of an operation for one call.
// self is the receiving instance and args are the call arguments; the
// returned map is dispatched with Match.
type OperationFunc func(self *Value, args []any) (Handlers, error)

// DefineOperation installs a named operation on every instance of t. Names
// taken by derived methods are rejected; defining an existing operation again
// replaces it.
func (t *Type) DefineOperation(name string, fn OperationFunc) error {
	p := Root().Field("operations").Field(name)
	if !IsIdentifier(name) {
		return newIssue(p, CodeInvalidName, "operation name must be an identifier", "name", name)
	}
	if fn == nil {
		return newIssue(p, CodeMissingHandler, "operation body is nil", "name", name)
	}
	if _, taken := t.methods[name]; taken {
		return newIssue(p, CodeMethodConflict,
			fmt.Sprintf("%s already derives %s", t.displayName(), quote(name)), "name", name)
	}
	t.opsMu.Lock()
	t.ops[name] = fn
	t.opsMu.Unlock()
	return nil
}

// MustDefineOperation is DefineOperation that panics on error.
func (t *Type) MustDefineOperation(name string, fn OperationFunc) {
	if err := t.DefineOperation(name, fn); err != nil {
		panic(err)
	}
}

func (t *Type) operation(name string) (OperationFunc, bool) {
	t.opsMu.RLock()
	defer t.opsMu.RUnlock()
	fn, ok := t.ops[name]
	return fn, ok
}

// Operations returns the defined operation names, sorted.
func (t *Type) Operations() []string {
	t.opsMu.RLock()
	out := make([]string, 0, len(t.ops))
	for k := range t.ops {
		out = append(out, k)
	}
	t.opsMu.RUnlock()
	sort.Strings(out)
	return out
}

// Call invokes a defined operation on v. Unlike Invoke it never reaches
// derived methods.
func (v *Value) Call(name string, args ...any) (any, error) {
	op, ok := v.typ.operation(name)
	if !ok {
		return nil, newIssue(Root().Field("operations").Field(name), CodeUnknownMethod,
			fmt.Sprintf("%s has no operation %s", v.typ.displayName(), quote(name)), "name", name)
	}
	return v.runOperation(op, args)
}

func (v *Value) runOperation(op OperationFunc, args []any) (any, error) {
	hs, err := op(v, args)
	if err != nil {
		return nil, err
	}
	return v.Match(hs)
}
