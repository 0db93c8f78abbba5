// Package validation provides a result that accumulates errors:
// failure(errors) | success(value).
package validation

import (
	"fmt"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/data"
	"github.com/nkpart/adt/dsl"
	"github.com/nkpart/adt/i18n"
)

// Type is the Validation type.
var Type = dsl.MustDefine("Validation", func(c *dsl.CaseRecorder) {
	c.Case("failure", "errors")
	c.Case("success", "value")
})

// Failure builds a failure from a list of errors.
func Failure(errs ...any) *adt.Value {
	return Type.MustConstruct("failure", append([]any{}, errs...))
}

// FailWith builds a failure holding a single error.
func FailWith(err any) *adt.Value { return Failure(err) }

// Success builds a success.
func Success(v any) *adt.Value { return Type.MustConstruct("success", v) }

// Errors returns the errors of a failure; successes have none.
func Errors(v *adt.Value) ([]any, error) {
	if err := data.Check(Type, v); err != nil {
		return nil, err
	}
	return adt.FoldAs[[]any](v,
		adt.Fn1(func(errs any) any {
			if list, ok := errs.([]any); ok {
				return list
			}
			return []any{errs}
		}),
		adt.Const(nil),
	)
}

// Map applies fn to a success value.
func Map(v *adt.Value, fn func(any) any) (*adt.Value, error) {
	if err := data.Check(Type, v); err != nil {
		return nil, err
	}
	return adt.FoldAs[*adt.Value](v,
		adt.Const(v),
		adt.Fn1(func(x any) any { return Success(fn(x)) }),
	)
}

// Bind chains a validation that depends on the success value.
func Bind(v *adt.Value, fn func(any) *adt.Value) (*adt.Value, error) {
	if err := data.Check(Type, v); err != nil {
		return nil, err
	}
	return adt.FoldAs[*adt.Value](v,
		adt.Const(v),
		adt.FnE(1, func(args ...any) (any, error) {
			out := fn(args[0])
			if err := data.Check(Type, out); err != nil {
				return nil, err
			}
			return out, nil
		}),
	)
}

// Ap applies the function held by vf to the value held by va. Errors from
// both sides are accumulated, vf's first.
func Ap(vf, va *adt.Value) (*adt.Value, error) {
	if err := data.Check(Type, vf); err != nil {
		return nil, err
	}
	if err := data.Check(Type, va); err != nil {
		return nil, err
	}
	ef, _ := Errors(vf)
	ea, _ := Errors(va)
	if vf.CaseName() == "failure" || va.CaseName() == "failure" {
		all := make([]any, 0, len(ef)+len(ea))
		return Failure(append(append(all, ef...), ea...)...), nil
	}
	fn, ok := vf.Fields()[0].(func(any) any)
	if !ok {
		it := adt.Root().Field("value").Issue(adt.CodeTypeMismatch, i18n.T(adt.CodeTypeMismatch, nil))
		it.Hint = fmt.Sprintf("success holds %T, want func(any) any", vf.Fields()[0])
		return nil, adt.Issues{it}
	}
	return Success(fn(va.Fields()[0])), nil
}
