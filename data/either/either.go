// Package either provides a disjunction: left(value) | right(value).
// Both cases declare "value" first, so instances expose a value accessor.
package either

import (
	"github.com/nkpart/adt"
	"github.com/nkpart/adt/data"
	"github.com/nkpart/adt/dsl"
)

// Type is the Either type.
var Type = dsl.New("Either").Case("left", "value").Case("right", "value").MustBuild()

// Left builds a left value.
func Left(v any) *adt.Value { return Type.MustConstruct("left", v) }

// Right builds a right value.
func Right(v any) *adt.Value { return Type.MustConstruct("right", v) }

// Value returns the payload of either case.
func Value(e *adt.Value) (any, error) {
	if err := data.Check(Type, e); err != nil {
		return nil, err
	}
	return e.Get("value")
}

// Map applies fn to a right value.
func Map(e *adt.Value, fn func(v any) any) (*adt.Value, error) {
	if err := data.Check(Type, e); err != nil {
		return nil, err
	}
	return adt.FoldAs[*adt.Value](e,
		adt.Const(e),
		adt.Fn1(func(v any) any { return Right(fn(v)) }),
	)
}

// Swap exchanges the cases.
func Swap(e *adt.Value) (*adt.Value, error) {
	if err := data.Check(Type, e); err != nil {
		return nil, err
	}
	return adt.FoldAs[*adt.Value](e,
		adt.Fn1(func(v any) any { return Right(v) }),
		adt.Fn1(func(v any) any { return Left(v) }),
	)
}
