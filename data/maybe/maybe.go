// Package maybe provides an optional value: nothing | just(value).
package maybe

import (
	"reflect"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/data"
	"github.com/nkpart/adt/dsl"
)

// Type is the Maybe type. Instances respond to or_value(default).
var Type = declare()

func declare() *adt.Type {
	t := dsl.MustDefine("Maybe", func(c *dsl.CaseRecorder) {
		c.Case("nothing")
		c.Case("just", "value")
	})
	dsl.MustOperation(t, "or_value", func(on *dsl.OperationRecorder, args ...any) {
		var def any
		if len(args) > 0 {
			def = args[0]
		}
		on.Case("nothing", adt.Const(def))
		on.Case("just", adt.Fn1(func(v any) any { return v }))
	})
	return t
}

// Nothing returns the empty value.
func Nothing() *adt.Value { return Type.MustConstruct("nothing") }

// Just wraps v.
func Just(v any) *adt.Value { return Type.MustConstruct("just", v) }

// FromNil returns Nothing for nil (including typed nil pointers, maps,
// slices and funcs) and Just(v) otherwise.
func FromNil(v any) *adt.Value {
	if isNil(v) {
		return Nothing()
	}
	return Just(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Map applies fn to a just value.
func Map(m *adt.Value, fn func(v any) any) (*adt.Value, error) {
	if err := data.Check(Type, m); err != nil {
		return nil, err
	}
	return adt.FoldAs[*adt.Value](m,
		adt.Fn0(func() any { return m }),
		adt.Fn1(func(v any) any { return Just(fn(v)) }),
	)
}

// Bind chains a computation that itself may produce nothing.
func Bind(m *adt.Value, fn func(v any) *adt.Value) (*adt.Value, error) {
	if err := data.Check(Type, m); err != nil {
		return nil, err
	}
	return adt.FoldAs[*adt.Value](m,
		adt.Fn0(func() any { return m }),
		adt.FnE(1, func(args ...any) (any, error) {
			out := fn(args[0])
			if err := data.Check(Type, out); err != nil {
				return nil, err
			}
			return out, nil
		}),
	)
}

// Filter keeps a just value only when pred holds.
func Filter(m *adt.Value, pred func(v any) bool) (*adt.Value, error) {
	if err := data.Check(Type, m); err != nil {
		return nil, err
	}
	return adt.FoldAs[*adt.Value](m,
		adt.Fn0(func() any { return m }),
		adt.Fn1(func(v any) any {
			if pred(v) {
				return m
			}
			return Nothing()
		}),
	)
}

// OrElse returns m when it is a just, otherwise other.
func OrElse(m, other *adt.Value) (*adt.Value, error) {
	if err := data.Check(Type, m); err != nil {
		return nil, err
	}
	return adt.MatchAs[*adt.Value](m, adt.Handlers{
		"nothing": adt.Const(other),
		"just":    adt.Const(m),
	})
}

// OrValue unwraps a just value, or returns def for nothing.
func OrValue(m *adt.Value, def any) (any, error) {
	if err := data.Check(Type, m); err != nil {
		return nil, err
	}
	return m.Invoke("or_value", def)
}

// OrNil unwraps a just value, or returns nil.
func OrNil(m *adt.Value) (any, error) {
	return OrValue(m, nil)
}
